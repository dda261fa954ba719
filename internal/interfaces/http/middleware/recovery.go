package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codatendechat/gateway/internal/domain/shared"
	logctx "github.com/codatendechat/gateway/internal/infrastructure/logger"
	"github.com/codatendechat/gateway/internal/interfaces/http/dto"
)

// Recovery converts panics into 500 responses so a misbehaving handler never
// takes the gateway down. The panic is logged with its stack.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Error("panic recovered",
					zap.Any("panic", recovered),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", logctx.GetRequestID(c.Request.Context())),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(
					dto.GetHTTPStatus(shared.CodeInternalError),
					dto.NewErrorResponseWithDetails(
						shared.CodeInternalError,
						"Internal server error",
						fmt.Sprintf("%v", recovered),
					),
				)
			}
		}()
		c.Next()
	}
}
