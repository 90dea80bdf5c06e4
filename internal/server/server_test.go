package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor-api/internal/server/ratelimit"
)

func TestHandleHealth(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
}

func TestWithCORSPreflight(t *testing.T) {
	s := &Server{}
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest("OPTIONS", "/v1/generate", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWithRateLimitBlocksAndSetsHeaders(t *testing.T) {
	cfg := &ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		EndpointConfigs: []ratelimit.EndpointConfig{
			{Path: "/v1/generate", Method: "POST", Limit: 5, Window: time.Minute, Burst: 1},
		},
		Whitelist: map[string]bool{},
		Blacklist: map[string]bool{},
	}
	s := &Server{rateLimiter: ratelimit.NewLimiter(cfg)}
	defer s.rateLimiter.Stop()

	var served int
	handler := s.withRateLimit(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		served++
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/v1/generate", nil)
	req.RemoteAddr = "203.0.113.7:51000"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, 1, served)
}

func TestExtractClientID(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	req.RemoteAddr = "198.51.100.3:40022"
	assert.Equal(t, "198.51.100.3", extractClientID(req))

	req.RemoteAddr = "no-port-here"
	assert.Equal(t, "no-port-here", extractClientID(req))
}
