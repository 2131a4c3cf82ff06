package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/floodlens/floodlens/internal/api/models"
	"github.com/floodlens/floodlens/internal/api/response"
	"github.com/floodlens/floodlens/internal/assessment"
	"github.com/floodlens/floodlens/internal/vision"
)

// Success messages, part of the response contract.
const (
	imageAnalysisMessage      = "Image analysis completed successfully"
	coordinateAnalysisMessage = "Coordinate-based analysis completed successfully"
)

// uploadField is the multipart form field carrying the image bytes.
const uploadField = "file"

// AnalyzeHandler handles the flood-risk analysis endpoints.
type AnalyzeHandler struct {
	analyzer  *vision.Service
	simulator *assessment.Simulator
	logger    zerolog.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analyzer *vision.Service, simulator *assessment.Simulator, logger zerolog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:  analyzer,
		simulator: simulator,
		logger:    logger,
	}
}

// AnalyzeImage handles POST /api/analyze/image - multipart image upload.
// Invalid input (wrong content type, undecodable image) is a client error;
// AI failures never surface, they are masked by the simulated fallback
// inside the vision service.
func (h *AnalyzeHandler) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		response.BadRequest(w, r, "image file upload is required in field \"file\"")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalError(w, r, err.Error())
		return
	}

	h.logger.Info().
		Str("filename", header.Filename).
		Str("content_type", header.Header.Get("Content-Type")).
		Int("size", len(data)).
		Msg("analyzing image")

	img, err := vision.DecodeUpload(header.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, vision.ErrUnsupportedContentType) || errors.Is(err, vision.ErrInvalidImage) {
			response.BadRequest(w, r, err.Error())
			return
		}
		response.InternalError(w, r, err.Error())
		return
	}

	a := h.analyzer.AnalyzeImage(r.Context(), img)
	response.JSON(w, r, http.StatusOK, models.NewImageAnalysisResponse(a, imageAnalysisMessage))
}

// AnalyzeCoordinates handles POST /api/analyze/coordinates. The
// coordinates are decoded but deliberately unused: the assessment is
// always simulated for this flow.
func (h *AnalyzeHandler) AnalyzeCoordinates(w http.ResponseWriter, r *http.Request) {
	var req models.CoordinateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body")
		return
	}

	h.logger.Info().
		Float64("latitude", req.Latitude).
		Float64("longitude", req.Longitude).
		Msg("analyzing coordinates")

	a := h.simulator.Generate(assessment.FlowCoordinates)
	response.JSON(w, r, http.StatusOK, models.NewCoordinateAnalysisResponse(a, coordinateAnalysisMessage))
}
