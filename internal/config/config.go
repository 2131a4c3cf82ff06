// Package config loads process configuration from the environment once at
// startup. Components receive the resulting struct by reference; nothing
// reads the environment after boot.
package config

import (
	"os"

	"github.com/floodlens/floodlens/internal/vision"
)

// Config holds all process configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// Environment is the deployment environment name.
	Environment string

	// AIAPIKey authenticates against the AI service. When empty the
	// image flow still works: every call fails and is masked by the
	// simulated fallback.
	AIAPIKey string

	// AIModel is the vision model identifier.
	AIModel string

	// OTLPEndpoint is the OpenTelemetry collector endpoint.
	OTLPEndpoint string

	// TelemetryEnabled toggles OTLP export.
	TelemetryEnabled bool
}

// FromEnv builds a Config from the process environment, applying defaults
// for anything unset.
func FromEnv() Config {
	return Config{
		Port:             envOr("PORT", "8000"),
		Environment:      envOr("APP_ENV", "development"),
		AIAPIKey:         os.Getenv("AI_API_KEY"),
		AIModel:          envOr("AI_MODEL", vision.DefaultModel),
		OTLPEndpoint:     envOr("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		TelemetryEnabled: os.Getenv("OTEL_ENABLED") == "true",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
