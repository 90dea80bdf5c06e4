package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UploadedDocument is a stored reference to an uploaded file. ParsedText is
// nil when no text could be extracted from the file type.
type UploadedDocument struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	FileURL    string    `json:"file_url"`
	StorageKey string    `json:"-"`
	ParsedText *string   `json:"parsed_text,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// InsertDocument stores a document reference and returns the stored row.
func (db *DB) InsertDocument(ctx context.Context, userID uuid.UUID, fileURL, storageKey string, parsedText *string) (*UploadedDocument, error) {
	doc := UploadedDocument{
		UserID:     userID,
		FileURL:    fileURL,
		StorageKey: storageKey,
		ParsedText: parsedText,
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO uploaded_documents (user_id, file_url, storage_key, parsed_text)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, uploaded_at`,
		userID, fileURL, storageKey, parsedText,
	).Scan(&doc.ID, &doc.UploadedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}
	return &doc, nil
}

// ListDocuments retrieves a user's uploaded documents, most recent first.
func (db *DB) ListDocuments(ctx context.Context, userID uuid.UUID) ([]UploadedDocument, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, file_url, storage_key, parsed_text, uploaded_at
		 FROM uploaded_documents WHERE user_id = $1 ORDER BY uploaded_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []UploadedDocument
	for rows.Next() {
		var doc UploadedDocument
		if err := rows.Scan(&doc.ID, &doc.UserID, &doc.FileURL, &doc.StorageKey, &doc.ParsedText, &doc.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// FetchDocumentTexts returns the extracted text of every uploaded document,
// most recent first. Documents without extracted text yield empty strings so
// the caller can distinguish "no documents" from "no text".
func (db *DB) FetchDocumentTexts(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT COALESCE(parsed_text, '')
		 FROM uploaded_documents WHERE user_id = $1 ORDER BY uploaded_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document texts: %w", err)
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("failed to scan document text: %w", err)
		}
		texts = append(texts, text)
	}
	return texts, rows.Err()
}

// DeleteDocument removes a document reference by ID.
func (db *DB) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM uploaded_documents WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
