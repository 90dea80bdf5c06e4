package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-tailor-api/internal/extraction"
	"github.com/jonathan/resume-tailor-api/internal/server/middleware"
)

// handleUploadDocument accepts a multipart resume upload, stores the file and
// records it with any extracted text.
func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, extraction.MaxFileSize+4096)
	if err := r.ParseMultipartForm(extraction.MaxFileSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.errorResponse(w, http.StatusBadRequest, "File size must be less than 10MB")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !extraction.AllowedType(contentType) {
		s.errorResponse(w, http.StatusBadRequest,
			"Invalid file type. Please upload PDF, DOC, DOCX, TXT, or PAGES files.")
		return
	}
	if header.Size > extraction.MaxFileSize {
		s.errorResponse(w, http.StatusBadRequest, "File size must be less than 10MB")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	// Demo deployments accept the upload but persist nothing.
	if s.db == nil {
		text, ok := extraction.ExtractText(contentType, data)
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"demo":            true,
			"message":         "Demo mode: document accepted but not stored.",
			"id":              uuid.New().String(),
			"file_url":        nil,
			"uploaded_at":     time.Now().UTC().Format(time.RFC3339),
			"has_parsed_text": ok && text != "",
		})
		return
	}

	key := fmt.Sprintf("%s/%d_%s", userID, time.Now().Unix(),
		extraction.SanitizeFilename(header.Filename))

	var fileURL string
	if s.store != nil {
		fileURL, err = s.store.Upload(r.Context(), key, contentType, bytes.NewReader(data))
		if err != nil {
			log.Printf("Failed to upload document to storage: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "Failed to store uploaded file")
			return
		}
	} else {
		fileURL = "local://" + key
	}

	var parsedText *string
	if text, ok := extraction.ExtractText(contentType, data); ok && text != "" {
		parsedText = &text
	}

	doc, err := s.db.InsertDocument(r.Context(), userID, fileURL, key, parsedText)
	if err != nil {
		// The object is orphaned without its record; clean it up.
		if s.store != nil {
			if delErr := s.store.Delete(r.Context(), key); delErr != nil {
				log.Printf("Failed to delete orphaned object %s: %v", key, delErr)
			}
		}
		log.Printf("Failed to record uploaded document: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save document record")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":              doc.ID.String(),
		"file_url":        doc.FileURL,
		"uploaded_at":     doc.UploadedAt.UTC().Format(time.RFC3339),
		"has_parsed_text": doc.ParsedText != nil,
	})
}

// handleListDocuments returns the user's uploaded documents, newest first.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if s.db == nil {
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"demo":      true,
			"documents": []any{},
		})
		return
	}

	docs, err := s.db.ListDocuments(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to list documents: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"documents": docs})
}
