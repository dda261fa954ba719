package dto

import (
	"net/http"

	"github.com/codatendechat/gateway/internal/domain/shared"
)

// ErrorResponse is the wire shape of every error the gateway returns.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: message, Code: code}
}

// NewErrorResponseWithDetails creates an error response carrying diagnostic details
func NewErrorResponseWithDetails(code, message, details string) ErrorResponse {
	return ErrorResponse{Error: message, Code: code, Details: details}
}

// ErrorCodeHTTPStatus maps stable error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	shared.CodeAuthRequired: http.StatusUnauthorized,
	shared.CodeInvalidKey:   http.StatusUnauthorized,
	shared.CodeKeyExpired:   http.StatusUnauthorized,

	shared.CodeForbidden: http.StatusForbidden,

	shared.CodeValidationError: http.StatusBadRequest,
	shared.CodeNoConnection:    http.StatusBadRequest,

	shared.CodeNotFound: http.StatusNotFound,

	shared.CodeSendFailed:    http.StatusInternalServerError,
	shared.CodeInternalError: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
