package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/codatendechat/gateway/internal/domain/gateway"
	"github.com/codatendechat/gateway/internal/domain/shared"
	"github.com/codatendechat/gateway/internal/infrastructure/logger"
	"github.com/codatendechat/gateway/internal/interfaces/http/dto"
)

// Context keys populated by the auth middleware
const (
	ContextKeyApiToken  = "api_token"
	ContextKeyCompanyID = "company_id"
)

// Authenticator resolves opaque API keys into tokens
type Authenticator interface {
	Authenticate(ctx context.Context, key string) (*gateway.ApiToken, error)
}

// APIKeyAuth authenticates every request from its API key. The key is read
// from the x-api-key header, then the Authorization bearer token, then the
// api_key query parameter.
//
// On an expired key the resolved token is still stored in the context before
// aborting, so the audit trail can attribute the rejection to its company.
func APIKeyAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.Authenticate(c.Request.Context(), ExtractAPIKey(c))
		if token != nil {
			c.Set(ContextKeyApiToken, token)
			c.Set(ContextKeyCompanyID, token.CompanyID)
			annotateRequest(c, token)
		}
		if err != nil {
			status, body := authErrorResponse(err)
			c.AbortWithStatusJSON(status, body)
			return
		}
		c.Next()
	}
}

// ExtractAPIKey pulls the API key out of the request, trying the x-api-key
// header, the Authorization bearer token, and the api_key query parameter in
// that order. Returns "" when none is present.
func ExtractAPIKey(c *gin.Context) string {
	if key := c.GetHeader("x-api-key"); key != "" {
		return key
	}
	if auth := c.GetHeader("Authorization"); auth != "" {
		const prefix = "Bearer "
		if strings.HasPrefix(auth, prefix) {
			return strings.TrimSpace(auth[len(prefix):])
		}
	}
	return c.Query("api_key")
}

// annotateRequest stamps the resolved identity onto the active span and the
// request-scoped logger, so accepted and rejected requests alike are
// attributable in traces and log lines.
func annotateRequest(c *gin.Context, token *gateway.ApiToken) {
	if span := trace.SpanFromContext(c.Request.Context()); span.IsRecording() {
		span.SetAttributes(
			attribute.String("company_id", token.CompanyID.String()),
			attribute.String("api_token_id", token.ID.String()),
		)
	}

	ctx, log := logger.WithCompanyID(c.Request.Context(), logger.GetGinLogger(c), token.CompanyID.String())
	ctx, log = logger.WithTokenID(ctx, log, token.ID.String())
	c.Request = c.Request.WithContext(ctx)
	c.Set("logger", log)
}

func authErrorResponse(err error) (int, dto.ErrorResponse) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return dto.GetHTTPStatus(domainErr.Code), dto.NewErrorResponse(domainErr.Code, domainErr.Message)
	}
	return dto.GetHTTPStatus(shared.CodeInternalError),
		dto.NewErrorResponse(shared.CodeInternalError, "Internal server error")
}

// GetApiToken returns the authenticated token, or nil before authentication
func GetApiToken(c *gin.Context) *gateway.ApiToken {
	if value, ok := c.Get(ContextKeyApiToken); ok {
		if token, ok := value.(*gateway.ApiToken); ok {
			return token
		}
	}
	return nil
}

// GetCompanyID returns the authenticated company, or uuid.Nil before authentication
func GetCompanyID(c *gin.Context) uuid.UUID {
	if value, ok := c.Get(ContextKeyCompanyID); ok {
		if id, ok := value.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
