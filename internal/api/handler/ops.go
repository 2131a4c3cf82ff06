// Package handler provides HTTP handlers for the FloodLens API.
package handler

import (
	"net/http"
	"time"

	"github.com/floodlens/floodlens/internal/api/models"
	"github.com/floodlens/floodlens/internal/api/response"
)

// OpsHandler handles the health endpoints.
type OpsHandler struct {
	version string
	aiModel string
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, aiModel string) *OpsHandler {
	return &OpsHandler{
		version: version,
		aiModel: aiModel,
	}
}

// Root handles GET / - basic health payload.
func (h *OpsHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.RootHealth{
		Message:   "FloodLens flood risk assessment API",
		Version:   h.version,
		Status:    models.HealthStatusHealthy,
		Timestamp: time.Now(),
	})
}

// HealthCheck handles GET /health - detailed health payload.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Health{
		Status:    models.HealthStatusHealthy,
		AIModel:   h.aiModel,
		Timestamp: time.Now(),
	})
}
