package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"consult-contact-relay/config"
	v1 "consult-contact-relay/internal/delivery/http/v1"
	"consult-contact-relay/internal/usecase"
	"consult-contact-relay/pkg/email"
	"consult-contact-relay/pkg/logger"
	"consult-contact-relay/pkg/redis"
	"consult-contact-relay/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Contact Relay API
// @version         1.0
// @description     Relays the consulting site's contact form to the administrator mailbox.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting contact relay", "port", cfg.Port, "transport", cfg.MailTransport)

	// 3. Setup Redis (optional, rate limiting falls back to memory)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable - rate limiting will use in-memory store", "error", err)
		} else {
			defer redis.Close()
		}
	}

	// 4. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 5. Setup UseCases
	validator := validation.New(validation.ParsePhonePolicy(cfg.PhonePolicy))
	contactUC := usecase.NewContactUsecase(emailService, validator)
	diagnosticsUC := usecase.NewDiagnosticsUsecase(emailService)
	healthUC := usecase.NewHealthUsecase(emailService)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:     contactUC,
		DiagnosticsUC: diagnosticsUC,
		HealthUC:      healthUC,
		Config:        cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// In-flight submissions may still be waiting on the mail transport
	timeout := time.Duration(cfg.MailTimeoutSeconds+5) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
