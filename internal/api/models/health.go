// Package models defines the wire-level request and response types of the
// FloodLens API.
package models

import "time"

// HealthStatusHealthy is the status value reported by a live service.
const HealthStatusHealthy = "healthy"

// RootHealth is the GET / payload.
type RootHealth struct {
	Message   string    `json:"message"`
	Version   string    `json:"version"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health is the GET /health payload.
type Health struct {
	Status    string    `json:"status"`
	AIModel   string    `json:"ai_model"`
	Timestamp time.Time `json:"timestamp"`
}
