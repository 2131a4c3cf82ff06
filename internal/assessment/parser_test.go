package assessment_test

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/floodlens/floodlens/internal/assessment"
)

func newParser() *assessment.Parser {
	return assessment.NewParser(zerolog.New(io.Discard))
}

func TestParser_AllKeysPresent(t *testing.T) {
	p := newParser()

	text := `Here is my assessment of the terrain:
{
  "risk_level": "High",
  "description": "Low-lying area next to a river bend.",
  "recommendations": ["Install flood barriers", "Elevate utilities"],
  "elevation": 12.5,
  "distance_from_water": 85,
  "image_analysis": "A river is visible along the left edge."
}
Let me know if you need more detail.`

	a := p.Parse(text)

	assert.Equal(t, assessment.RiskHigh, a.RiskLevel)
	assert.Equal(t, "Low-lying area next to a river bend.", a.Description)
	assert.Equal(t, []string{"Install flood barriers", "Elevate utilities"}, a.Recommendations)
	assert.Equal(t, 12.5, a.Elevation)
	assert.Equal(t, 85.0, a.DistanceFromWater)
	assert.Equal(t, "A river is visible along the left edge.", a.ImageAnalysis)
	assert.Equal(t, assessment.SourceAI, a.Source)
}

func TestParser_NoBraces(t *testing.T) {
	p := newParser()

	text := "The terrain appears flat with dense vegetation and no visible water."
	a := p.Parse(text)

	assert.Equal(t, assessment.DefaultRiskLevel, a.RiskLevel)
	assert.Equal(t, assessment.DefaultDescription, a.Description)
	assert.Equal(t, assessment.DefaultRecommendations(), a.Recommendations)
	assert.Equal(t, assessment.DefaultElevation, a.Elevation)
	assert.Equal(t, assessment.DefaultDistanceFromWater, a.DistanceFromWater)
	assert.Equal(t, text, a.ImageAnalysis, "raw input is preserved verbatim")
}

func TestParser_EmptyInput(t *testing.T) {
	p := newParser()

	a := p.Parse("")

	assert.Equal(t, assessment.Defaults().RiskLevel, a.RiskLevel)
	assert.Empty(t, a.ImageAnalysis)
}

func TestParser_MalformedJSON(t *testing.T) {
	p := newParser()

	text := `Result: {risk_level: High, this is not json}`
	a := p.Parse(text)

	assert.Equal(t, assessment.DefaultRiskLevel, a.RiskLevel)
	assert.Equal(t, assessment.DefaultDescription, a.Description)
	assert.Equal(t, assessment.DefaultRecommendations(), a.Recommendations)
	assert.Equal(t, assessment.DefaultElevation, a.Elevation)
	assert.Equal(t, assessment.DefaultDistanceFromWater, a.DistanceFromWater)
	assert.Equal(t, text, a.ImageAnalysis, "decode errors keep the raw text, they do not drop it")
}

func TestParser_PartialKeys(t *testing.T) {
	p := newParser()

	text := `{"risk_level": "Very High", "elevation": 3.2}`
	a := p.Parse(text)

	// Present keys pass through unmodified
	assert.Equal(t, assessment.RiskVeryHigh, a.RiskLevel)
	assert.Equal(t, 3.2, a.Elevation)

	// Missing keys get exactly their documented defaults
	assert.Equal(t, assessment.DefaultDescription, a.Description)
	assert.Equal(t, assessment.DefaultRecommendations(), a.Recommendations)
	assert.Equal(t, assessment.DefaultDistanceFromWater, a.DistanceFromWater)
	assert.Empty(t, a.ImageAnalysis, "image_analysis defaults to empty when a JSON object was found")
}

func TestParser_WrongTypesFallBackToDefaults(t *testing.T) {
	p := newParser()

	text := `{"risk_level": 4, "elevation": "high", "recommendations": "stay dry"}`
	a := p.Parse(text)

	assert.Equal(t, assessment.DefaultRiskLevel, a.RiskLevel)
	assert.Equal(t, assessment.DefaultElevation, a.Elevation)
	assert.Equal(t, assessment.DefaultRecommendations(), a.Recommendations)
}

func TestParser_GreedyBraceSpan(t *testing.T) {
	p := newParser()

	// Two objects in one reply: the span runs from the first '{' to the
	// last '}', which makes this undecodable and lands on defaults. This
	// pins the documented heuristic, fragile as it is.
	text := `{"risk_level": "Low"} and also {"risk_level": "High"}`
	a := p.Parse(text)

	assert.Equal(t, assessment.DefaultRiskLevel, a.RiskLevel)
	assert.Equal(t, text, a.ImageAnalysis)
}

func TestParser_UnrecognizedKeysIgnored(t *testing.T) {
	p := newParser()

	text := `{"risk_level": "Low", "confidence": 0.9, "model": "whatever"}`
	a := p.Parse(text)

	assert.Equal(t, assessment.RiskLow, a.RiskLevel)
	assert.Equal(t, assessment.DefaultDescription, a.Description)
}
