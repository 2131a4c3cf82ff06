// Package assessment contains the flood-risk domain model: the assessment
// record, the tolerant model-response parser, and the simulated generator
// used when no real signal is available.
package assessment

// RiskLevel is the primary output classification.
type RiskLevel string

// The closed set of risk levels.
const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskVeryHigh RiskLevel = "Very High"
)

// Levels returns all valid risk levels in severity order.
func Levels() []RiskLevel {
	return []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskVeryHigh}
}

// IsValid reports whether l is one of the enumerated levels.
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLow, RiskMedium, RiskHigh, RiskVeryHigh:
		return true
	}
	return false
}

// Source identifies where an assessment came from. It is never serialized
// on the wire; it exists so callers and tests can tell a real AI-derived
// assessment from a fabricated one.
type Source string

// Assessment sources.
const (
	SourceAI        Source = "ai"
	SourceSimulated Source = "simulated"
)

// Assessment is a fully populated flood-risk assessment. Every field has a
// non-null value once constructed; there is no partial or invalid state.
type Assessment struct {
	RiskLevel         RiskLevel
	Description       string
	Recommendations   []string
	Elevation         float64
	DistanceFromWater float64
	ImageAnalysis     string
	Source            Source
}

// Default field values substituted for anything the model response lacks.
const (
	DefaultRiskLevel         = RiskMedium
	DefaultDescription       = "Analysis completed"
	DefaultElevation         = 50.0
	DefaultDistanceFromWater = 1000.0
)

// DefaultRecommendations returns the fallback recommendation list.
func DefaultRecommendations() []string {
	return []string{
		"Monitor weather conditions",
		"Stay informed about local alerts",
	}
}

// Defaults returns a fully populated assessment carrying every default
// value. The parser starts from this and overlays whatever the model
// actually provided.
func Defaults() Assessment {
	return Assessment{
		RiskLevel:         DefaultRiskLevel,
		Description:       DefaultDescription,
		Recommendations:   DefaultRecommendations(),
		Elevation:         DefaultElevation,
		DistanceFromWater: DefaultDistanceFromWater,
		ImageAnalysis:     "",
		Source:            SourceAI,
	}
}

// FromPartial merges a decoded JSON object over the defaults. Keys that
// are absent or carry the wrong type keep their default; present keys are
// passed through unmodified.
func FromPartial(partial map[string]any) Assessment {
	a := Defaults()

	if v, ok := partial["risk_level"].(string); ok {
		a.RiskLevel = RiskLevel(v)
	}
	if v, ok := partial["description"].(string); ok {
		a.Description = v
	}
	if v, ok := partial["recommendations"].([]any); ok {
		recs := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				recs = append(recs, s)
			}
		}
		a.Recommendations = recs
	}
	if v, ok := partial["elevation"].(float64); ok {
		a.Elevation = v
	}
	if v, ok := partial["distance_from_water"].(float64); ok {
		a.DistanceFromWater = v
	}
	if v, ok := partial["image_analysis"].(string); ok {
		a.ImageAnalysis = v
	}

	return a
}
