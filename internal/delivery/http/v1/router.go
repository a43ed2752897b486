package v1

import (
	"net/http"
	"time"

	"consult-contact-relay/config"
	"consult-contact-relay/internal/delivery/http/middleware"
	"consult-contact-relay/internal/delivery/http/response"
	"consult-contact-relay/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ContactUC     domain.ContactUsecase
	DiagnosticsUC domain.DiagnosticsUsecase
	HealthUC      domain.HealthUsecase
	Config        *config.Config
	// RateLimit overrides the contact limiter (tests); nil builds it from Config
	RateLimit gin.HandlerFunc
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins, cfg.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler())

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not found", nil)
	})

	limiter := deps.RateLimit
	if limiter == nil {
		window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
		limiter = middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(cfg.ContactRateLimit, window))
	}

	api := r.Group("/api")

	// Public routes
	NewContactHandler(api, deps.ContactUC, limiter)
	NewDiagnosticsHandler(api, deps.DiagnosticsUC, deps.HealthUC, cfg.DiagnosticsEnabled)

	return r
}
