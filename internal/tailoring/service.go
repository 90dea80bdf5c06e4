// Package tailoring orchestrates resume generation: context acquisition,
// prompt construction, the model call, response parsing, and best-effort
// persistence of the result.
package tailoring

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-tailor-api/internal/background"
	"github.com/jonathan/resume-tailor-api/internal/parsing"
	"github.com/jonathan/resume-tailor-api/internal/prompts"
	"github.com/jonathan/resume-tailor-api/internal/schemas"
	"github.com/jonathan/resume-tailor-api/internal/types"
	"golang.org/x/sync/errgroup"
)

// RecordStore is the record-store dependency of the tailoring service.
// Document texts are returned most-recent first.
type RecordStore interface {
	FetchProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
	FetchWorkExperiences(ctx context.Context, userID uuid.UUID) ([]types.WorkExperience, error)
	FetchEducations(ctx context.Context, userID uuid.UUID) ([]types.Education, error)
	FetchSkills(ctx context.Context, userID uuid.UUID) ([]types.Skill, error)
	FetchDocumentTexts(ctx context.Context, userID uuid.UUID) ([]string, error)
	SaveGeneratedResume(ctx context.Context, userID uuid.UUID, jobDescription string, resume *types.TailoredResume) (uuid.UUID, error)
}

// Generator is the text-completion dependency of the tailoring service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Request describes a single tailoring invocation.
type Request struct {
	UserID         uuid.UUID
	JobDescription string
	UseDocuments   bool
	// DemoData supplies records directly instead of reading the store.
	DemoData *types.ManualIngestPayload
}

// Result is the outcome of a successful generation. Persistence is
// best-effort: SavedResumeID is nil and PersistErr holds the logged reason
// when the save failed, without affecting the resume itself.
type Result struct {
	Resume        *types.TailoredResume
	SavedResumeID *uuid.UUID
	PersistErr    error
}

// DefaultModelTimeout bounds the single synchronous model call.
const DefaultModelTimeout = 90 * time.Second

// Service implements the tailoring flow against injected dependencies.
type Service struct {
	store        RecordStore // nil when no record store is configured
	model        Generator
	modelTimeout time.Duration
	promptTmpl   string
}

// NewService creates a tailoring service. store may be nil for deployments
// without a configured record store; such requests must carry DemoData.
func NewService(store RecordStore, model Generator) *Service {
	return &Service{
		store:        store,
		model:        model,
		modelTimeout: DefaultModelTimeout,
		promptTmpl:   prompts.MustGet("tailoring.json", "tailor_resume"),
	}
}

// WithModelTimeout overrides the bound on the model call.
func (s *Service) WithModelTimeout(d time.Duration) *Service {
	s.modelTimeout = d
	return s
}

// Tailor runs the generation flow: validate, acquire context, build the
// prompt, call the model once (no retries), parse the response, and attempt
// to persist the result.
func (s *Service) Tailor(ctx context.Context, req Request) (*Result, error) {
	jobDescription := strings.TrimSpace(req.JobDescription)
	if jobDescription == "" {
		return nil, &ValidationError{Message: "job description is required"}
	}

	userContext, err := s.acquireContext(ctx, req)
	if err != nil {
		return nil, err
	}

	prompt := prompts.Format(s.promptTmpl, map[string]string{
		"Context":        userContext,
		"JobDescription": jobDescription,
	})

	modelCtx, cancel := context.WithTimeout(ctx, s.modelTimeout)
	defer cancel()

	raw, err := s.model.Generate(modelCtx, prompt)
	if err != nil {
		return nil, &UpstreamError{Cause: err}
	}

	resume, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	result := &Result{Resume: resume}
	if s.store != nil {
		if id, saveErr := s.store.SaveGeneratedResume(ctx, req.UserID, jobDescription, resume); saveErr != nil {
			// Best-effort: a failed save never downgrades a successful generation.
			log.Printf("Failed to save generated resume (non-fatal): %v", saveErr)
			result.PersistErr = saveErr
		} else {
			result.SavedResumeID = &id
		}
	}

	return result, nil
}

// acquireContext selects between caller-supplied records, uploaded-document
// text, and stored manual records.
func (s *Service) acquireContext(ctx context.Context, req Request) (string, error) {
	if req.DemoData != nil && !req.DemoData.IsEmpty() {
		d := req.DemoData
		return background.Build(d.Profile, d.WorkExperiences, d.Educations, d.Skills), nil
	}

	if s.store == nil {
		return "User has not provided background information yet.", nil
	}

	if req.UseDocuments {
		texts, err := s.store.FetchDocumentTexts(ctx, req.UserID)
		if err != nil {
			return "", &StoreError{Op: "document fetch", Cause: err}
		}
		if len(texts) == 0 {
			return "", &NotFoundError{Message: "no uploaded documents found, upload a resume first"}
		}
		if joined := background.JoinDocumentTexts(texts); joined != "" {
			return joined, nil
		}
		// Fall back to manual entries when extraction isn't available yet.
		manual, err := s.buildManualContext(ctx, req.UserID)
		if err != nil {
			return "", err
		}
		if manual == "" {
			return "", &ValidationError{Message: "no parsed text available from uploaded documents, upload a TXT resume or use manual entry"}
		}
		return manual, nil
	}

	manual, err := s.buildManualContext(ctx, req.UserID)
	if err != nil {
		return "", err
	}
	if manual == "" {
		return "", &NotFoundError{Message: "no user data found, add your information first"}
	}
	return manual, nil
}

// buildManualContext fetches the four record collections in parallel and
// renders them. Returns "" when every collection is empty.
func (s *Service) buildManualContext(ctx context.Context, userID uuid.UUID) (string, error) {
	var (
		profile *types.Profile
		work    []types.WorkExperience
		edu     []types.Education
		skills  []types.Skill
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.store.FetchProfile(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		work, err = s.store.FetchWorkExperiences(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		edu, err = s.store.FetchEducations(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		skills, err = s.store.FetchSkills(gCtx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", &StoreError{Op: "record fetch", Cause: err}
	}

	if profile == nil && len(work) == 0 && len(edu) == 0 {
		return "", nil
	}
	return background.Build(profile, work, edu, skills), nil
}

// parseResponse validates the extracted payload against the resume schema
// for field-level diagnostics, then decodes it.
func parseResponse(raw string) (*types.TailoredResume, error) {
	payload := parsing.ExtractJSONPayload(raw)
	if err := schemas.ValidateTailoredResume([]byte(payload)); err != nil {
		return nil, &parsing.ParseError{
			Message: "model response failed schema validation",
			Raw:     raw,
			Cause:   err,
		}
	}
	return parsing.ParseTailoredResume(raw)
}
