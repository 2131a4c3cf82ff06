// Package resilience provides a circuit-breaker HTTP transport for
// external provider calls. There is deliberately no retry layer: a failed
// AI call falls straight through to the simulated fallback, so the breaker
// only shields the provider from hammering while it is down.
package resilience

import (
	"errors"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerConfig holds configuration for the circuit-breaker transport.
type BreakerConfig struct {
	// Name identifies the breaker for logging and state callbacks.
	Name string

	// MaxRequests is the number of probe requests allowed in half-open
	// state. Default: 1
	MaxRequests uint32

	// Interval is the cyclic period for clearing counts while closed.
	// Default: 0 (disabled)
	Interval time.Duration

	// Timeout is how long the breaker stays open before half-opening.
	// Default: 60 seconds
	Timeout time.Duration

	// ReadyToTrip decides when to open the breaker. If nil,
	// DefaultReadyToTrip is used.
	ReadyToTrip func(counts gobreaker.Counts) bool

	// OnStateChange is called on breaker state transitions.
	OnStateChange func(name string, from gobreaker.State, to gobreaker.State)
}

// DefaultBreakerConfig returns a sensible default configuration.
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:        name,
		MaxRequests: 1,
		Timeout:     60 * time.Second,
		ReadyToTrip: DefaultReadyToTrip,
	}
}

// DefaultReadyToTrip opens the breaker once at least 5 requests were made
// and half of them failed.
func DefaultReadyToTrip(counts gobreaker.Counts) bool {
	failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
	return counts.Requests >= 5 && failureRatio >= 0.5
}

// Transport is an http.RoundTripper that routes every request through a
// circuit breaker. 5xx responses count as failures so a struggling
// provider trips the breaker, not just network errors.
type Transport struct {
	base    http.RoundTripper
	breaker *gobreaker.CircuitBreaker[*http.Response]
}

// NewTransport creates a breaker transport around base. A nil base uses
// http.DefaultTransport.
func NewTransport(base http.RoundTripper, cfg BreakerConfig) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: cfg.ReadyToTrip,
	}
	if settings.ReadyToTrip == nil {
		settings.ReadyToTrip = DefaultReadyToTrip
	}
	if cfg.OnStateChange != nil {
		settings.OnStateChange = cfg.OnStateChange
	}

	return &Transport{
		base:    base,
		breaker: gobreaker.NewCircuitBreaker[*http.Response](settings),
	}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.breaker.Execute(func() (*http.Response, error) {
		r, err := t.base.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		if r.StatusCode >= 500 {
			// Hand the response back so the caller can still read it;
			// the error return is what trips the breaker.
			return r, &ServerError{StatusCode: r.StatusCode}
		}
		return r, nil
	})

	if err != nil {
		var srvErr *ServerError
		if resp != nil && errors.As(err, &srvErr) {
			return resp, nil
		}
		return nil, err
	}
	return resp, nil
}

// State returns the current breaker state.
func (t *Transport) State() gobreaker.State {
	return t.breaker.State()
}

// Counts returns the current breaker counts.
func (t *Transport) Counts() gobreaker.Counts {
	return t.breaker.Counts()
}

// ServerError marks an HTTP 5xx response as a breaker failure.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return "server error: " + http.StatusText(e.StatusCode)
}
