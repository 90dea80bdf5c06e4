// Package server provides the HTTP REST API for the resume tailoring service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-tailor-api/internal/config"
	"github.com/jonathan/resume-tailor-api/internal/db"
	"github.com/jonathan/resume-tailor-api/internal/llm"
	"github.com/jonathan/resume-tailor-api/internal/server/middleware"
	"github.com/jonathan/resume-tailor-api/internal/server/ratelimit"
	"github.com/jonathan/resume-tailor-api/internal/storage"
	"github.com/jonathan/resume-tailor-api/internal/tailoring"
)

// demoUserID is the fixed identity used when the server runs without a
// database. All demo-mode requests share it.
var demoUserID = uuid.MustParse("00000000-0000-0000-0000-00000000d390")

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	store       storage.ObjectStore
	svc         *tailoring.Service
	model       llm.Client
	jwtService  *JWTService
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration
type Config struct {
	Port int
	App  *config.AppConfig
}

// New creates a new server instance. The server degrades gracefully: without
// a database it serves demo responses with no persistence, and without a
// Gemini API key the generate endpoint returns a canned resume.
func New(ctx context.Context, cfg Config) (*Server, error) {
	s := &Server{}

	if cfg.App.DatabaseConfigured() {
		database, err := db.Connect(ctx, cfg.App.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("failed to ensure database schema: %w", err)
		}
		s.db = database

		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)
	} else {
		log.Println("DATABASE_URL not set: running in demo mode without persistence or authentication")
	}

	storageCfg := storage.ConfigFromEnv()
	if storageCfg.Configured() {
		objectStore, err := storage.NewS3Store(ctx, storageCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create object store: %w", err)
		}
		s.store = objectStore
	} else {
		log.Println("S3 storage not configured: document uploads will be simulated")
	}

	if cfg.App.GeminiConfigured() {
		model, err := llm.NewGeminiClient(ctx, cfg.App.GeminiAPIKey, cfg.App.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.model = model

		// A nil *db.DB must not become a non-nil RecordStore interface.
		var records tailoring.RecordStore
		if s.db != nil {
			records = s.db
		}
		s.svc = tailoring.NewService(records, model)
	} else {
		log.Println("GEMINI_API_KEY not set: generate endpoint will return demo data")
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Setup router
	mux := http.NewServeMux()
	auth := s.authMiddleware()

	mux.Handle("POST /v1/generate", auth(http.HandlerFunc(s.handleGenerate)))
	mux.Handle("POST /v1/ingest/document", auth(http.HandlerFunc(s.handleUploadDocument)))
	mux.Handle("GET /v1/ingest/document", auth(http.HandlerFunc(s.handleListDocuments)))
	mux.Handle("POST /v1/ingest/manual", auth(http.HandlerFunc(s.handleManualIngest)))
	mux.Handle("GET /v1/resumes", auth(http.HandlerFunc(s.handleListResumes)))
	mux.Handle("GET /v1/resumes/{id}", auth(http.HandlerFunc(s.handleGetResume)))
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for model calls
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// authMiddleware returns the bearer-token middleware when authentication is
// configured, or a middleware injecting the shared demo identity otherwise.
func (s *Server) authMiddleware() func(http.Handler) http.Handler {
	if s.jwtService != nil {
		return middleware.Auth(s.jwtService.AsTokenValidator())
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, middleware.WithUserID(r, demoUserID))
		})
	}
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.model != nil {
		if err := s.model.Close(); err != nil {
			log.Printf("Error closing model client: %v", err)
		}
	}
	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request. For a
// single-instance deployment this is the IP from RemoteAddr; behind a trusted
// proxy it could use X-Forwarded-For instead.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
