package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-tailor-api/internal/types"
)

// GeneratedResume is a persisted generation result.
type GeneratedResume struct {
	ID                   uuid.UUID            `json:"id"`
	UserID               uuid.UUID            `json:"user_id"`
	TargetJobDescription string               `json:"target_job_description"`
	TailoredResume       types.TailoredResume `json:"tailored_resume"`
	CreatedAt            time.Time            `json:"created_at"`
}

// SaveGeneratedResume persists a generation result keyed by the requesting
// user and the original job description, returning the new record's ID.
func (db *DB) SaveGeneratedResume(ctx context.Context, userID uuid.UUID, jobDescription string, resume *types.TailoredResume) (uuid.UUID, error) {
	payload, err := json.Marshal(resume)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO generated_resumes (user_id, target_job_description, tailored_json)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userID, jobDescription, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save generated resume: %w", err)
	}
	return id, nil
}

// ListGeneratedResumes retrieves a user's generated resumes, most recent first.
func (db *DB) ListGeneratedResumes(ctx context.Context, userID uuid.UUID) ([]GeneratedResume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, target_job_description, tailored_json, created_at
		 FROM generated_resumes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated resumes: %w", err)
	}
	defer rows.Close()

	var resumes []GeneratedResume
	for rows.Next() {
		resume, err := scanGeneratedResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, *resume)
	}
	return resumes, rows.Err()
}

// GetGeneratedResume retrieves one generated resume owned by the given user.
// Returns (nil, nil) when not found.
func (db *DB) GetGeneratedResume(ctx context.Context, userID, resumeID uuid.UUID) (*GeneratedResume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, user_id, target_job_description, tailored_json, created_at
		 FROM generated_resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID)

	resume, err := scanGeneratedResume(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return resume, nil
}

func scanGeneratedResume(row pgx.Row) (*GeneratedResume, error) {
	var (
		resume  GeneratedResume
		payload []byte
	)
	if err := row.Scan(&resume.ID, &resume.UserID, &resume.TargetJobDescription, &payload, &resume.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan generated resume: %w", err)
	}
	if err := json.Unmarshal(payload, &resume.TailoredResume); err != nil {
		return nil, fmt.Errorf("failed to decode generated resume: %w", err)
	}
	return &resume, nil
}
