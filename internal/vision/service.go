package vision

import (
	"context"
	"image"

	"github.com/rs/zerolog"

	"github.com/floodlens/floodlens/internal/assessment"
)

// FallbackImageAnalysis is the placeholder written into an assessment when
// the real model call failed and a simulated result masks it. It is the
// only outward signal that the analysis was fabricated.
const FallbackImageAnalysis = "Image analysis was not available, using simulated assessment"

// ServiceConfig holds the collaborators of the analysis service.
type ServiceConfig struct {
	// Client is the model client (required).
	Client ModelClient

	// Parser turns model text into an assessment (required).
	Parser *assessment.Parser

	// Simulator fabricates assessments on model failure (required).
	Simulator *assessment.Simulator

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service orchestrates the image flow: one model call, a tolerant parse,
// and a simulated fallback that absorbs every upstream failure.
type Service struct {
	client    ModelClient
	parser    *assessment.Parser
	simulator *assessment.Simulator
	logger    zerolog.Logger
}

// NewService creates an analysis service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		client:    cfg.Client,
		parser:    cfg.Parser,
		simulator: cfg.Simulator,
		logger:    cfg.Logger,
	}
}

// AnalyzeImage runs the model over a decoded image and parses the reply.
// Any failure from the external call is absorbed: the caller gets a
// simulated assessment with ImageAnalysis set to FallbackImageAnalysis,
// never an error. There is no retry; one failure falls straight through.
func (s *Service) AnalyzeImage(ctx context.Context, img image.Image) assessment.Assessment {
	text, err := s.client.Analyze(ctx, Prompt, img)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Msg("model call failed, falling back to simulated assessment")

		a := s.simulator.Generate(assessment.FlowImage)
		a.ImageAnalysis = FallbackImageAnalysis
		return a
	}

	return s.parser.Parse(text)
}
