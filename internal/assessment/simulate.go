package assessment

import (
	"math"
	"math/rand/v2"
	"sync"
)

// Flow selects which copy table a simulated assessment draws from. The
// image and coordinate flows describe the same risk levels with different
// phrasing.
type Flow string

// Simulation flows.
const (
	FlowImage       Flow = "image"
	FlowCoordinates Flow = "coordinates"
)

// Ranges for the fabricated terrain estimates, in meters.
const (
	minElevation = 10.0
	maxElevation = 100.0
	minDistance  = 200.0
	maxDistance  = 2000.0
)

var imageDescriptions = map[RiskLevel]string{
	RiskLow:      "Image analysis shows low flood risk terrain.",
	RiskMedium:   "Image analysis indicates moderate flood risk factors.",
	RiskHigh:     "Image analysis reveals high flood risk characteristics.",
	RiskVeryHigh: "Image analysis shows very high flood risk indicators.",
}

var imageRecommendations = map[RiskLevel][]string{
	RiskLow: {
		"Continue monitoring terrain changes",
		"Maintain current drainage systems",
		"Stay informed about weather patterns",
	},
	RiskMedium: {
		"Improve drainage infrastructure",
		"Consider flood monitoring systems",
		"Develop emergency response plan",
	},
	RiskHigh: {
		"Install comprehensive flood barriers",
		"Implement early warning systems",
		"Consider structural reinforcements",
	},
	RiskVeryHigh: {
		"Immediate flood protection measures needed",
		"Consider relocation to higher ground",
		"Implement comprehensive emergency protocols",
	},
}

var coordinateDescriptions = map[RiskLevel]string{
	RiskLow:      "Coordinates indicate low flood risk terrain.",
	RiskMedium:   "Coordinates indicate moderate flood risk factors.",
	RiskHigh:     "Coordinates indicate high flood risk potential.",
	RiskVeryHigh: "Coordinates indicate very high flood risk area.",
}

var coordinateRecommendations = map[RiskLevel][]string{
	RiskLow: {
		"Monitor weather conditions",
		"Stay informed about local alerts",
	},
	RiskMedium: {
		"Improve drainage infrastructure",
		"Consider flood monitoring systems",
		"Develop emergency response plan",
	},
	RiskHigh: {
		"Install flood barriers",
		"Implement early warning systems",
		"Consider structural reinforcements",
	},
	RiskVeryHigh: {
		"Immediate flood protection measures needed",
		"Consider relocation to higher ground",
		"Implement comprehensive emergency protocols",
	},
}

// DescriptionFor returns the fixed description for a flow and level.
func DescriptionFor(flow Flow, level RiskLevel) string {
	if flow == FlowCoordinates {
		return coordinateDescriptions[level]
	}
	return imageDescriptions[level]
}

// RecommendationsFor returns a copy of the fixed recommendation list for a
// flow and level.
func RecommendationsFor(flow Flow, level RiskLevel) []string {
	table := imageRecommendations
	if flow == FlowCoordinates {
		table = coordinateRecommendations
	}
	recs := table[level]
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}

// Simulator fabricates plausible-looking assessments from fixed copy
// tables and uniform draws. It is the fallback for the coordinate flow and
// for AI-call failures in the image flow.
type Simulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator creates a simulator. A nil rng gets an internally seeded
// source; tests pass a seeded one for reproducible output.
func NewSimulator(rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Simulator{rng: rng}
}

// Generate fabricates a complete assessment for the given flow: a
// uniformly chosen risk level, the matching description and
// recommendations, elevation in [10,100] and distance from water in
// [200,2000], both rounded to one decimal place.
func (s *Simulator) Generate(flow Flow) Assessment {
	s.mu.Lock()
	levels := Levels()
	level := levels[s.rng.IntN(len(levels))]
	elevation := roundOne(minElevation + s.rng.Float64()*(maxElevation-minElevation))
	distance := roundOne(minDistance + s.rng.Float64()*(maxDistance-minDistance))
	s.mu.Unlock()

	return Assessment{
		RiskLevel:         level,
		Description:       DescriptionFor(flow, level),
		Recommendations:   RecommendationsFor(flow, level),
		Elevation:         elevation,
		DistanceFromWater: distance,
		Source:            SourceSimulated,
	}
}

func roundOne(v float64) float64 {
	return math.Round(v*10) / 10
}
