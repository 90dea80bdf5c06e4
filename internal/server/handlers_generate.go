package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/resume-tailor-api/internal/jobdesc"
	"github.com/jonathan/resume-tailor-api/internal/parsing"
	"github.com/jonathan/resume-tailor-api/internal/server/middleware"
	"github.com/jonathan/resume-tailor-api/internal/tailoring"
	"github.com/jonathan/resume-tailor-api/internal/types"
)

// handleGenerate runs the tailoring flow: resolve the job description,
// gather the user's career context, call the model, validate and return the
// tailored resume.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	jd := strings.TrimSpace(req.JobDescription)
	if jd == "" && strings.TrimSpace(req.JobURL) != "" {
		fetched, err := jobdesc.Fetch(r.Context(), req.JobURL)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest,
				fmt.Sprintf("Failed to fetch job description from URL: %v", err))
			return
		}
		jd = strings.TrimSpace(fetched)
	}
	if jd == "" {
		s.errorResponse(w, http.StatusBadRequest, "jobDescription is required")
		return
	}

	// Without a model key the endpoint stays usable for demos: return a
	// canned resume and say so.
	if s.svc == nil {
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"success":        true,
			"demo":           true,
			"message":        "AI generation is not configured; returning a sample tailored resume.",
			"tailoredResume": tailoring.DemoResume(),
			"savedResumeId":  nil,
			"generatedAt":    time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	result, err := s.svc.Tailor(r.Context(), tailoring.Request{
		UserID:         userID,
		JobDescription: jd,
		UseDocuments:   req.UseDocuments,
		DemoData:       req.DemoData,
	})
	if err != nil {
		s.tailorErrorResponse(w, err)
		return
	}

	var savedID any
	if result.SavedResumeID != nil {
		savedID = result.SavedResumeID.String()
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":        true,
		"tailoredResume": result.Resume,
		"savedResumeId":  savedID,
		"generatedAt":    time.Now().UTC().Format(time.RFC3339),
	})
}

// tailorErrorResponse maps tailoring errors to HTTP responses. Parse failures
// include the raw model output so a client can inspect what came back.
func (s *Server) tailorErrorResponse(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)

	var parseErr *parsing.ParseError
	if errors.As(err, &parseErr) {
		log.Printf("Failed to parse model response: %v", err)
		s.jsonResponse(w, status, map[string]any{
			"error":       "Failed to parse AI response",
			"details":     parseErr.Message,
			"rawResponse": parseErr.Raw,
		})
		return
	}

	if status >= http.StatusInternalServerError {
		log.Printf("Generate request failed: %v", err)
	}
	s.errorResponse(w, status, err.Error())
}
