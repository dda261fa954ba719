// Command server runs the external API gateway.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appengagement "github.com/codatendechat/gateway/internal/application/engagement"
	appgateway "github.com/codatendechat/gateway/internal/application/gateway"
	"github.com/codatendechat/gateway/internal/infrastructure/config"
	"github.com/codatendechat/gateway/internal/infrastructure/logger"
	"github.com/codatendechat/gateway/internal/infrastructure/persistence"
	"github.com/codatendechat/gateway/internal/infrastructure/telemetry"
	"github.com/codatendechat/gateway/internal/infrastructure/whatsapp"
	"github.com/codatendechat/gateway/internal/interfaces/http/handler"
	"github.com/codatendechat/gateway/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting external API gateway",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	tokenRepo := persistence.NewGormApiTokenRepository(db.DB)
	logRepo := persistence.NewGormApiLogRepository(db.DB)
	contactRepo := persistence.NewGormContactRepository(db.DB)
	ticketRepo := persistence.NewGormTicketRepository(db.DB)
	messageRepo := persistence.NewGormMessageRepository(db.DB)
	queueRepo := persistence.NewGormQueueRepository(db.DB)
	tagRepo := persistence.NewGormTagRepository(db.DB)
	whatsappRepo := persistence.NewGormWhatsAppRepository(db.DB)

	// Services
	authService := appgateway.NewAuthService(tokenRepo, log)
	auditService := appgateway.NewAuditService(logRepo, log)
	sender := whatsapp.NewHTTPSender(&cfg.Sender)

	contactService := appengagement.NewContactService(contactRepo)
	ticketService := appengagement.NewTicketService(ticketRepo, contactRepo, messageRepo)
	messageService := appengagement.NewMessageService(messageRepo, ticketRepo, whatsappRepo, sender)
	directoryService := appengagement.NewDirectoryService(queueRepo, tagRepo, whatsappRepo)

	engine := router.New(router.Config{
		Logger:         log,
		Authenticator:  authService,
		Auditor:        auditService,
		Docs:           handler.NewDocsHandler(cfg.App.BaseURL),
		ServiceName:    cfg.Telemetry.ServiceName,
		TracingEnabled: cfg.Telemetry.Enabled,
	},
		handler.NewContactHandler(contactService),
		handler.NewTicketHandler(ticketService),
		handler.NewMessageHandler(messageService),
		handler.NewDirectoryHandler(directoryService),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
