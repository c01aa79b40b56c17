package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedHandler(rl *RateLimiter) http.Handler {
	return rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func doRequest(handler http.Handler, addr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	handler := limitedHandler(NewRateLimiter(1, 3))

	for i := 0; i < 3; i++ {
		rec := doRequest(handler, "10.0.0.1:5000")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doRequest(handler, "10.0.0.1:5000")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "rate limit exceeded")
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	handler := limitedHandler(NewRateLimiter(1, 1))

	require.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1:5000").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(handler, "10.0.0.1:5000").Code)

	// A different client gets its own bucket.
	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.2:5000").Code)
}

func TestRateLimiterRetryAfterTracksRefillRate(t *testing.T) {
	rl := NewRateLimiter(0.2, 1) // one token every five seconds
	handler := limitedHandler(rl)

	doRequest(handler, "10.0.0.1:5000")
	rec := doRequest(handler, "10.0.0.1:5000")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("Retry-After"))
}
