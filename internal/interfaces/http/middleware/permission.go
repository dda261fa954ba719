package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/codatendechat/gateway/internal/domain/shared"
	"github.com/codatendechat/gateway/internal/interfaces/http/dto"
)

// RequirePermission creates middleware that requires the token to carry the
// given permission. Must run behind APIKeyAuth.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := GetApiToken(c)
		if token == nil {
			c.AbortWithStatusJSON(
				dto.GetHTTPStatus(shared.CodeAuthRequired),
				dto.NewErrorResponse(shared.CodeAuthRequired, "API key required"),
			)
			return
		}

		if !token.HasPermission(permission) {
			c.AbortWithStatusJSON(
				dto.GetHTTPStatus(shared.CodeForbidden),
				dto.NewErrorResponse(shared.CodeForbidden, "Permission denied"),
			)
			return
		}

		c.Next()
	}
}
