// Package router assembles the gin engine: global middleware, the public
// docs routes, and the authenticated API surface.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codatendechat/gateway/internal/domain/shared"
	"github.com/codatendechat/gateway/internal/infrastructure/logger"
	"github.com/codatendechat/gateway/internal/interfaces/http/dto"
	"github.com/codatendechat/gateway/internal/interfaces/http/handler"
	"github.com/codatendechat/gateway/internal/interfaces/http/middleware"
)

// RouteRegistrar defines the interface for registering authenticated routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Config carries everything the router needs to assemble the engine
type Config struct {
	Logger         *zap.Logger
	Authenticator  middleware.Authenticator
	Auditor        middleware.Auditor
	Docs           *handler.DocsHandler
	ServiceName    string
	TracingEnabled bool
}

// New assembles the gin engine.
//
// Middleware order matters: CORS answers preflights before anything else,
// the audit middleware sits outside authentication and recovery so every
// terminal branch of a real API request is captured, and authentication
// guards only the API surface, not the docs routes.
func New(cfg Config, registrars ...RouteRegistrar) *gin.Engine {
	engine := gin.New()

	engine.Use(middleware.CORS())
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.ServiceName,
		Enabled:     cfg.TracingEnabled,
	}))
	engine.Use(middleware.TraceAttributes())
	engine.Use(middleware.Audit(cfg.Auditor))
	engine.Use(middleware.Recovery(cfg.Logger))

	engine.GET("/", cfg.Docs.Docs)
	engine.GET("/docs", cfg.Docs.Docs)

	api := engine.Group("", middleware.APIKeyAuth(cfg.Authenticator))
	for _, registrar := range registrars {
		registrar.RegisterRoutes(api)
	}

	// Unknown paths still require a valid key; with one they report the
	// path, without one the usual auth failure.
	engine.NoRoute(middleware.APIKeyAuth(cfg.Authenticator), func(c *gin.Context) {
		c.JSON(
			dto.GetHTTPStatus(shared.CodeNotFound),
			dto.NewErrorResponse(shared.CodeNotFound, "Endpoint not found"),
		)
	})

	return engine
}
