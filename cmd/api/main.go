// Package main provides the entrypoint for the FloodLens API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/floodlens/floodlens/internal/api"
	"github.com/floodlens/floodlens/internal/api/middleware"
	"github.com/floodlens/floodlens/internal/assessment"
	"github.com/floodlens/floodlens/internal/config"
	"github.com/floodlens/floodlens/internal/provider/resilience"
	"github.com/floodlens/floodlens/internal/telemetry"
	"github.com/floodlens/floodlens/internal/vision"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "floodlens-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting FloodLens API")

	cfg := config.FromEnv()
	if cfg.AIAPIKey == "" {
		log.Warn().Msg("AI_API_KEY not set - image analysis will always fall back to simulated assessments")
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.TelemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.TelemetryEnabled {
		log.Info().
			Str("otlp_endpoint", cfg.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// AI model client behind a circuit-breaker transport. No retry layer:
	// a failed call falls straight through to the simulated fallback.
	modelClient := vision.NewOpenAIClient(vision.ClientConfig{
		APIKey: cfg.AIAPIKey,
		Model:  cfg.AIModel,
		HTTPClient: &http.Client{
			Transport: resilience.NewTransport(nil, resilience.DefaultBreakerConfig("ai-model")),
		},
	})

	simulator := assessment.NewSimulator(nil)
	analyzer := vision.NewService(vision.ServiceConfig{
		Client:    modelClient,
		Parser:    assessment.NewParser(log),
		Simulator: simulator,
		Logger:    log,
	})
	log.Info().Str("model", cfg.AIModel).Msg("vision service initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:   Version,
		AIModel:   cfg.AIModel,
		Logger:    log,
		Metrics:   metrics,
		Analyzer:  analyzer,
		Simulator: simulator,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
