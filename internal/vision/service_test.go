package vision_test

import (
	"context"
	"errors"
	"image"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/floodlens/floodlens/internal/assessment"
	"github.com/floodlens/floodlens/internal/vision"
)

// fakeModelClient returns a canned reply or error and records the prompt
// it was called with.
type fakeModelClient struct {
	reply  string
	err    error
	prompt string
	calls  int
}

func (f *fakeModelClient) Analyze(_ context.Context, prompt string, _ image.Image) (string, error) {
	f.calls++
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestService(client vision.ModelClient) *vision.Service {
	log := zerolog.New(io.Discard)
	return vision.NewService(vision.ServiceConfig{
		Client:    client,
		Parser:    assessment.NewParser(log),
		Simulator: assessment.NewSimulator(nil),
		Logger:    log,
	})
}

func testImage() image.Image {
	return image.NewNRGBA(image.Rect(0, 0, 4, 4))
}

func TestService_SuccessfulAnalysis(t *testing.T) {
	client := &fakeModelClient{
		reply: `{"risk_level": "High", "description": "Steep valley floor.", "image_analysis": "River visible."}`,
	}
	svc := newTestService(client)

	a := svc.AnalyzeImage(context.Background(), testImage())

	assert.Equal(t, assessment.RiskHigh, a.RiskLevel)
	assert.Equal(t, "Steep valley floor.", a.Description)
	assert.Equal(t, "River visible.", a.ImageAnalysis)
	assert.Equal(t, assessment.SourceAI, a.Source)
	assert.Equal(t, vision.Prompt, client.prompt)
}

func TestService_ModelFailureFallsBackToSimulated(t *testing.T) {
	client := &fakeModelClient{err: errors.New("connection refused")}
	svc := newTestService(client)

	a := svc.AnalyzeImage(context.Background(), testImage())

	assert.Equal(t, assessment.SourceSimulated, a.Source)
	assert.Equal(t, vision.FallbackImageAnalysis, a.ImageAnalysis)
	assert.True(t, a.RiskLevel.IsValid())
	assert.Equal(t, assessment.DescriptionFor(assessment.FlowImage, a.RiskLevel), a.Description)
	assert.Equal(t, 1, client.calls, "a failed call is not retried")
}

func TestService_ProseReplyGetsDefaults(t *testing.T) {
	client := &fakeModelClient{reply: "I cannot determine the flood risk from this image."}
	svc := newTestService(client)

	a := svc.AnalyzeImage(context.Background(), testImage())

	assert.Equal(t, assessment.DefaultRiskLevel, a.RiskLevel)
	assert.Equal(t, client.reply, a.ImageAnalysis)
	assert.Equal(t, assessment.SourceAI, a.Source)
}
