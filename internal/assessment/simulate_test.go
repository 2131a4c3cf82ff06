package assessment_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floodlens/floodlens/internal/assessment"
)

func seededSimulator() *assessment.Simulator {
	return assessment.NewSimulator(rand.New(rand.NewPCG(42, 1)))
}

func TestSimulator_GenerateRanges(t *testing.T) {
	sim := seededSimulator()

	for i := 0; i < 500; i++ {
		a := sim.Generate(assessment.FlowImage)

		assert.True(t, a.RiskLevel.IsValid(), "level %q", a.RiskLevel)
		assert.GreaterOrEqual(t, a.Elevation, 10.0)
		assert.LessOrEqual(t, a.Elevation, 100.0)
		assert.GreaterOrEqual(t, a.DistanceFromWater, 200.0)
		assert.LessOrEqual(t, a.DistanceFromWater, 2000.0)

		// Exactly one decimal place
		assert.Equal(t, math.Round(a.Elevation*10)/10, a.Elevation)
		assert.Equal(t, math.Round(a.DistanceFromWater*10)/10, a.DistanceFromWater)
	}
}

func TestSimulator_CopyMatchesLevel(t *testing.T) {
	sim := seededSimulator()

	for _, flow := range []assessment.Flow{assessment.FlowImage, assessment.FlowCoordinates} {
		for i := 0; i < 50; i++ {
			a := sim.Generate(flow)

			assert.Equal(t, assessment.DescriptionFor(flow, a.RiskLevel), a.Description)
			assert.Equal(t, assessment.RecommendationsFor(flow, a.RiskLevel), a.Recommendations)
			assert.Equal(t, assessment.SourceSimulated, a.Source)
			assert.Empty(t, a.ImageAnalysis)
		}
	}
}

func TestSimulator_AllLevelsReachable(t *testing.T) {
	sim := seededSimulator()

	seen := make(map[assessment.RiskLevel]bool)
	for i := 0; i < 500; i++ {
		seen[sim.Generate(assessment.FlowImage).RiskLevel] = true
	}

	for _, level := range assessment.Levels() {
		assert.True(t, seen[level], "level %q never drawn", level)
	}
}

func TestRecommendationsFor_ReturnsCopy(t *testing.T) {
	recs := assessment.RecommendationsFor(assessment.FlowCoordinates, assessment.RiskLow)
	require.NotEmpty(t, recs)

	recs[0] = "mutated"

	again := assessment.RecommendationsFor(assessment.FlowCoordinates, assessment.RiskLow)
	assert.NotEqual(t, "mutated", again[0], "table entries must not be shared with callers")
}

func TestCopyTables_FlowPhrasingDiffers(t *testing.T) {
	// The two flows describe the same levels with different copy, and the
	// coordinate Low tier carries a shorter recommendation list.
	for _, level := range assessment.Levels() {
		assert.NotEqual(t,
			assessment.DescriptionFor(assessment.FlowImage, level),
			assessment.DescriptionFor(assessment.FlowCoordinates, level))
	}

	assert.Len(t, assessment.RecommendationsFor(assessment.FlowCoordinates, assessment.RiskLow), 2)
	assert.Len(t, assessment.RecommendationsFor(assessment.FlowImage, assessment.RiskLow), 3)
}
