package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-tailor-api/internal/types"
)

// FetchProfile retrieves a user's profile. Returns (nil, nil) when the user
// has no profile yet.
func (db *DB) FetchProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	var (
		p              types.Profile
		languages      []byte
		certifications []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT COALESCE(full_name, ''), COALESCE(date_of_birth, ''), COALESCE(phone, ''),
		        COALESCE(email, ''), COALESCE(linkedin_url, ''), COALESCE(portfolio_url, ''),
		        COALESCE(summary_bio, ''), languages, certifications
		 FROM profiles WHERE id = $1`,
		userID,
	).Scan(&p.FullName, &p.DateOfBirth, &p.Phone, &p.Email, &p.LinkedInURL,
		&p.PortfolioURL, &p.SummaryBio, &languages, &certifications)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	if len(languages) > 0 {
		if err := json.Unmarshal(languages, &p.Languages); err != nil {
			return nil, fmt.Errorf("failed to decode profile languages: %w", err)
		}
	}
	if len(certifications) > 0 {
		if err := json.Unmarshal(certifications, &p.Certifications); err != nil {
			return nil, fmt.Errorf("failed to decode profile certifications: %w", err)
		}
	}

	return &p, nil
}

// UpsertProfile inserts or updates a user's profile and returns the stored row.
func (db *DB) UpsertProfile(ctx context.Context, userID uuid.UUID, p *types.Profile) (*types.Profile, error) {
	languages, err := json.Marshal(orEmptyLanguages(p.Languages))
	if err != nil {
		return nil, fmt.Errorf("failed to encode languages: %w", err)
	}
	certifications, err := json.Marshal(orEmptyCertifications(p.Certifications))
	if err != nil {
		return nil, fmt.Errorf("failed to encode certifications: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles (id, full_name, date_of_birth, phone, email, linkedin_url, portfolio_url, summary_bio, languages, certifications)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		   full_name = $2, date_of_birth = $3, phone = $4, email = $5,
		   linkedin_url = $6, portfolio_url = $7, summary_bio = $8,
		   languages = $9, certifications = $10, updated_at = NOW()`,
		userID, p.FullName, p.DateOfBirth, p.Phone, p.Email,
		p.LinkedInURL, p.PortfolioURL, p.SummaryBio, languages, certifications,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return db.FetchProfile(ctx, userID)
}

// FetchWorkExperiences retrieves a user's work history, most recent first.
func (db *DB) FetchWorkExperiences(ctx context.Context, userID uuid.UUID) ([]types.WorkExperience, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT company, job_title, COALESCE(location, ''), start_date, COALESCE(end_date, ''),
		        is_current, COALESCE(duties, ''), COALESCE(achievements, '')
		 FROM work_experiences WHERE user_id = $1 ORDER BY start_date DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work experiences: %w", err)
	}
	defer rows.Close()

	var experiences []types.WorkExperience
	for rows.Next() {
		var exp types.WorkExperience
		if err := rows.Scan(&exp.Company, &exp.JobTitle, &exp.Location, &exp.StartDate,
			&exp.EndDate, &exp.IsCurrent, &exp.Duties, &exp.Achievements); err != nil {
			return nil, fmt.Errorf("failed to scan work experience: %w", err)
		}
		experiences = append(experiences, exp)
	}
	return experiences, rows.Err()
}

// InsertWorkExperiences inserts the given work experiences for a user and
// returns the inserted records.
func (db *DB) InsertWorkExperiences(ctx context.Context, userID uuid.UUID, experiences []types.WorkExperience) ([]types.WorkExperience, error) {
	inserted := make([]types.WorkExperience, 0, len(experiences))
	for _, exp := range experiences {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO work_experiences (user_id, company, job_title, location, start_date, end_date, is_current, duties, achievements)
			 VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7, NULLIF($8, ''), NULLIF($9, ''))`,
			userID, exp.Company, exp.JobTitle, exp.Location, exp.StartDate,
			exp.EndDate, exp.IsCurrent, exp.Duties, exp.Achievements)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert work experience: %w", err)
		}
		inserted = append(inserted, exp)
	}
	return inserted, nil
}

// FetchEducations retrieves a user's education history, most recent first.
func (db *DB) FetchEducations(ctx context.Context, userID uuid.UUID) ([]types.Education, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT institution, degree, COALESCE(field_of_study, ''), start_date, COALESCE(end_date, '')
		 FROM educations WHERE user_id = $1 ORDER BY start_date DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch educations: %w", err)
	}
	defer rows.Close()

	var educations []types.Education
	for rows.Next() {
		var edu types.Education
		if err := rows.Scan(&edu.Institution, &edu.Degree, &edu.FieldOfStudy, &edu.StartDate, &edu.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		educations = append(educations, edu)
	}
	return educations, rows.Err()
}

// InsertEducations inserts the given education entries for a user.
func (db *DB) InsertEducations(ctx context.Context, userID uuid.UUID, educations []types.Education) ([]types.Education, error) {
	inserted := make([]types.Education, 0, len(educations))
	for _, edu := range educations {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO educations (user_id, institution, degree, field_of_study, start_date, end_date)
			 VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''))`,
			userID, edu.Institution, edu.Degree, edu.FieldOfStudy, edu.StartDate, edu.EndDate)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert education: %w", err)
		}
		inserted = append(inserted, edu)
	}
	return inserted, nil
}

// FetchSkills retrieves a user's skills in insertion order.
func (db *DB) FetchSkills(ctx context.Context, userID uuid.UUID) ([]types.Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, category, proficiency
		 FROM skills WHERE user_id = $1 ORDER BY created_at`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	defer rows.Close()

	var skills []types.Skill
	for rows.Next() {
		var s types.Skill
		if err := rows.Scan(&s.Name, &s.Category, &s.Proficiency); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// InsertSkills inserts the given skills for a user.
func (db *DB) InsertSkills(ctx context.Context, userID uuid.UUID, skills []types.Skill) ([]types.Skill, error) {
	inserted := make([]types.Skill, 0, len(skills))
	for _, s := range skills {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO skills (user_id, name, category, proficiency)
			 VALUES ($1, $2, $3, $4)`,
			userID, s.Name, s.Category, s.Proficiency)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert skill: %w", err)
		}
		inserted = append(inserted, s)
	}
	return inserted, nil
}

func orEmptyLanguages(l []types.Language) []types.Language {
	if l == nil {
		return []types.Language{}
	}
	return l
}

func orEmptyCertifications(c []types.Certification) []types.Certification {
	if c == nil {
		return []types.Certification{}
	}
	return c
}
