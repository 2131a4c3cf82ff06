package models

import "github.com/floodlens/floodlens/internal/assessment"

// CoordinateRequest is the POST /api/analyze/coordinates body. The values
// are accepted without range validation and are not used in the
// computation; this is documented behavior of the API, not an oversight.
type CoordinateRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ImageAnalysisResponse is the POST /api/analyze/image success payload.
// AIAnalysis duplicates ImageAnalysis for compatibility with existing
// consumers of the API.
type ImageAnalysisResponse struct {
	Success           bool     `json:"success"`
	RiskLevel         string   `json:"risk_level"`
	Description       string   `json:"description"`
	Recommendations   []string `json:"recommendations"`
	Elevation         float64  `json:"elevation"`
	DistanceFromWater float64  `json:"distance_from_water"`
	ImageAnalysis     string   `json:"image_analysis"`
	AIAnalysis        string   `json:"ai_analysis"`
	Message           string   `json:"message"`
}

// CoordinateAnalysisResponse is the POST /api/analyze/coordinates success
// payload.
type CoordinateAnalysisResponse struct {
	Success           bool     `json:"success"`
	RiskLevel         string   `json:"risk_level"`
	Description       string   `json:"description"`
	Recommendations   []string `json:"recommendations"`
	Elevation         float64  `json:"elevation"`
	DistanceFromWater float64  `json:"distance_from_water"`
	Message           string   `json:"message"`
}

// NewImageAnalysisResponse maps a domain assessment onto the image wire
// shape.
func NewImageAnalysisResponse(a assessment.Assessment, message string) ImageAnalysisResponse {
	return ImageAnalysisResponse{
		Success:           true,
		RiskLevel:         string(a.RiskLevel),
		Description:       a.Description,
		Recommendations:   a.Recommendations,
		Elevation:         a.Elevation,
		DistanceFromWater: a.DistanceFromWater,
		ImageAnalysis:     a.ImageAnalysis,
		AIAnalysis:        a.ImageAnalysis,
		Message:           message,
	}
}

// NewCoordinateAnalysisResponse maps a domain assessment onto the
// coordinate wire shape.
func NewCoordinateAnalysisResponse(a assessment.Assessment, message string) CoordinateAnalysisResponse {
	return CoordinateAnalysisResponse{
		Success:           true,
		RiskLevel:         string(a.RiskLevel),
		Description:       a.Description,
		Recommendations:   a.Recommendations,
		Elevation:         a.Elevation,
		DistanceFromWater: a.DistanceFromWater,
		Message:           message,
	}
}
