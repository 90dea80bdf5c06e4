package server

import (
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-tailor-api/internal/server/middleware"
)

// handleListResumes returns the user's previously generated resumes.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if s.db == nil {
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"demo":    true,
			"resumes": []any{},
		})
		return
	}

	resumes, err := s.db.ListGeneratedResumes(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to list generated resumes: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes})
}

// handleGetResume returns one generated resume, scoped to the caller.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	resume, err := s.db.GetGeneratedResume(r.Context(), userID, resumeID)
	if err != nil {
		log.Printf("Failed to fetch generated resume %s: %v", resumeID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch resume")
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}
