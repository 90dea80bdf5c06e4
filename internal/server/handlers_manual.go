package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/jonathan/resume-tailor-api/internal/server/middleware"
	"github.com/jonathan/resume-tailor-api/internal/types"
)

// manualIngestResults reports what was written per collection.
type manualIngestResults struct {
	Profile         bool `json:"profile"`
	WorkExperiences int  `json:"work_experiences"`
	Educations      int  `json:"educations"`
	Skills          int  `json:"skills"`
}

// handleManualIngest writes manually entered career records. Each collection
// validates and commits independently; a bad record in one collection is
// reported without blocking writes to the others, and any failure alongside
// a success returns 207.
func (s *Server) handleManualIngest(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload types.ManualIngestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.IsEmpty() {
		s.errorResponse(w, http.StatusBadRequest, "At least one of profile, work_experiences, educations or skills is required")
		return
	}

	var results manualIngestResults
	var failures []string

	if payload.Profile != nil {
		if err := payload.ValidateProfile(); err != nil {
			failures = append(failures, fmt.Sprintf("profile: %v", err))
		} else if s.db == nil {
			results.Profile = true
		} else if _, err := s.db.UpsertProfile(r.Context(), userID, payload.Profile); err != nil {
			log.Printf("Failed to upsert profile: %v", err)
			failures = append(failures, fmt.Sprintf("profile: %v", err))
		} else {
			results.Profile = true
		}
	}

	if len(payload.WorkExperiences) > 0 {
		if err := payload.ValidateWorkExperiences(); err != nil {
			failures = append(failures, err.Error())
		} else if s.db == nil {
			results.WorkExperiences = len(payload.WorkExperiences)
		} else if inserted, err := s.db.InsertWorkExperiences(r.Context(), userID, payload.WorkExperiences); err != nil {
			log.Printf("Failed to insert work experiences: %v", err)
			failures = append(failures, fmt.Sprintf("work_experiences: %v", err))
		} else {
			results.WorkExperiences = len(inserted)
		}
	}

	if len(payload.Educations) > 0 {
		if err := payload.ValidateEducations(); err != nil {
			failures = append(failures, err.Error())
		} else if s.db == nil {
			results.Educations = len(payload.Educations)
		} else if inserted, err := s.db.InsertEducations(r.Context(), userID, payload.Educations); err != nil {
			log.Printf("Failed to insert educations: %v", err)
			failures = append(failures, fmt.Sprintf("educations: %v", err))
		} else {
			results.Educations = len(inserted)
		}
	}

	if len(payload.Skills) > 0 {
		if err := payload.ValidateSkills(); err != nil {
			failures = append(failures, err.Error())
		} else if s.db == nil {
			results.Skills = len(payload.Skills)
		} else if inserted, err := s.db.InsertSkills(r.Context(), userID, payload.Skills); err != nil {
			log.Printf("Failed to insert skills: %v", err)
			failures = append(failures, fmt.Sprintf("skills: %v", err))
		} else {
			results.Skills = len(inserted)
		}
	}

	body := map[string]any{"results": results}
	if s.db == nil {
		body["demo"] = true
		body["message"] = "Demo mode: career data accepted but not stored."
	}

	if len(failures) > 0 {
		body["errors"] = failures
		s.jsonResponse(w, http.StatusMultiStatus, body)
		return
	}
	s.jsonResponse(w, http.StatusOK, body)
}
