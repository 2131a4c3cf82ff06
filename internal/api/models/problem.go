package models

import (
	"encoding/json"
	"net/http"
)

// Problem represents an RFC7807 error response, written with
// Content-Type: application/problem+json.
type Problem struct {
	// Type is a URI reference that identifies the problem type.
	Type string `json:"type"`

	// Title is a short, human-readable summary of the problem type.
	Title string `json:"title"`

	// Status is the HTTP status code for this occurrence.
	Status int `json:"status"`

	// Detail is a human-readable explanation specific to this occurrence.
	Detail string `json:"detail,omitempty"`

	// Instance is a URI reference identifying the specific occurrence.
	Instance string `json:"instance,omitempty"`

	// TraceID is the request trace identifier for debugging.
	TraceID string `json:"traceId"`
}

// ProblemType constants for the error types this API emits.
const (
	ProblemTypeValidation      = "https://floodlens.dev/problems/validation-error"
	ProblemTypeTooManyRequests = "https://floodlens.dev/problems/too-many-requests"
	ProblemTypeInternal        = "https://floodlens.dev/problems/internal-error"
)

// Write writes the Problem as JSON to the ResponseWriter.
func (p *Problem) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	if p.TraceID != "" {
		w.Header().Set("X-Request-Id", p.TraceID)
	}
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// NewBadRequest creates a 400 Bad Request problem.
func NewBadRequest(traceID, detail string) *Problem {
	return &Problem{
		Type:    ProblemTypeValidation,
		Title:   "Validation error",
		Status:  http.StatusBadRequest,
		Detail:  detail,
		TraceID: traceID,
	}
}

// NewTooManyRequests creates a 429 Too Many Requests problem.
func NewTooManyRequests(traceID, detail string) *Problem {
	return &Problem{
		Type:    ProblemTypeTooManyRequests,
		Title:   "Too many requests",
		Status:  http.StatusTooManyRequests,
		Detail:  detail,
		TraceID: traceID,
	}
}

// NewInternalError creates a 500 Internal Server Error problem.
func NewInternalError(traceID, detail string) *Problem {
	return &Problem{
		Type:    ProblemTypeInternal,
		Title:   "Internal server error",
		Status:  http.StatusInternalServerError,
		Detail:  detail,
		TraceID: traceID,
	}
}
