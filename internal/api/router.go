// Package api provides the HTTP API for FloodLens.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/floodlens/floodlens/internal/api/handler"
	"github.com/floodlens/floodlens/internal/api/middleware"
	"github.com/floodlens/floodlens/internal/assessment"
	"github.com/floodlens/floodlens/internal/vision"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version   string
	AIModel   string
	Logger    zerolog.Logger
	Metrics   *middleware.Metrics
	Analyzer  *vision.Service
	Simulator *assessment.Simulator
}

// NewRouter creates a chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - order matters
	r.Use(middleware.RequestID)          // Generate/propagate request ID first
	r.Use(middleware.Tracing())          // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers
	r.Use(cors.Handler(cors.Options{       // Allow-all CORS, matching the public API contract
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.AIModel)
	analyzeHandler := handler.NewAnalyzeHandler(cfg.Analyzer, cfg.Simulator, cfg.Logger)

	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit)

	// Health endpoints
	r.With(standardRateLimit).Get("/", opsHandler.Root)
	r.With(standardRateLimit).Get("/health", opsHandler.HealthCheck)

	// Analysis endpoints - these fan out to the AI provider, so the
	// stricter tier applies
	r.Route("/api/analyze", func(r chi.Router) {
		r.Use(expensiveRateLimit)
		r.Post("/image", analyzeHandler.AnalyzeImage)
		r.Post("/coordinates", analyzeHandler.AnalyzeCoordinates)
	})

	return r
}
