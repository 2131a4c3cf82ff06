package resilience_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floodlens/floodlens/internal/provider/resilience"
)

func newClient(t *testing.T, cfg resilience.BreakerConfig) (*http.Client, *resilience.Transport) {
	t.Helper()
	tr := resilience.NewTransport(nil, cfg)
	return &http.Client{Transport: tr}, tr
}

func TestTransport_SuccessPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client, tr := newClient(t, resilience.DefaultBreakerConfig("test"))

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, gobreaker.StateClosed, tr.State())
}

func TestTransport_ServerErrorReturnedToCaller(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client, tr := newClient(t, resilience.DefaultBreakerConfig("test"))

	// A 5xx counts against the breaker but the caller still gets the
	// response, not an error.
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, uint32(1), tr.Counts().TotalFailures)
}

func TestTransport_TripsAfterRepeatedFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, tr := newClient(t, resilience.DefaultBreakerConfig("test"))

	for i := 0; i < 5; i++ {
		resp, err := client.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, gobreaker.StateOpen, tr.State())

	// Requests while open are rejected without reaching the server.
	_, err := client.Get(srv.URL)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
