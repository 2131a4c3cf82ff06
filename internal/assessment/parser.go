package assessment

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
)

// Parser extracts a structured assessment from free-form model output.
// It never fails outward: whatever the input looks like, Parse returns a
// fully populated Assessment.
type Parser struct {
	logger zerolog.Logger
}

// NewParser creates a parser that logs decode failures to the given logger.
func NewParser(logger zerolog.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse extracts the span from the first '{' to the last '}' in text and
// decodes it as a JSON object, overlaying the recognized keys on the
// defaults. When no brace pair exists, or the span is not valid JSON, the
// full default record is returned with ImageAnalysis set to the raw input.
//
// The brace slice deliberately ignores nesting: a single greedy span, not
// per-brace balancing. Models that wrap their JSON in prose are handled;
// prose containing stray braces around the object is not.
func (p *Parser) Parse(text string) Assessment {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		a := Defaults()
		a.ImageAnalysis = text
		return a
	}

	var partial map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &partial); err != nil {
		p.logger.Error().
			Err(err).
			Int("span_start", start).
			Int("span_end", end).
			Msg("failed to decode model response, using defaults")
		a := Defaults()
		a.ImageAnalysis = text
		return a
	}

	return FromPartial(partial)
}
