package shared

// DomainError represents a domain-level error with a stable, caller-facing code
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewDomainErrorWithDetails creates a new domain error carrying diagnostic details
func NewDomainErrorWithDetails(code, message, details string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Stable error codes surfaced to API callers
const (
	CodeAuthRequired    = "AUTH_REQUIRED"
	CodeInvalidKey      = "INVALID_KEY"
	CodeKeyExpired      = "KEY_EXPIRED"
	CodeForbidden       = "FORBIDDEN"
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeNoConnection    = "NO_CONNECTION"
	CodeSendFailed      = "SEND_FAILED"
	CodeInternalError   = "INTERNAL_ERROR"
)

// Common domain errors
var (
	ErrNotFound     = NewDomainError(CodeNotFound, "Resource not found")
	ErrForbidden    = NewDomainError(CodeForbidden, "Permission denied")
	ErrAuthRequired = NewDomainError(CodeAuthRequired, "API key required")
	ErrInvalidKey   = NewDomainError(CodeInvalidKey, "Invalid API key")
	ErrKeyExpired   = NewDomainError(CodeKeyExpired, "API key expired")
)
