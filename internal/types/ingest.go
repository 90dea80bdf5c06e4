package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ManualIngestPayload is the request body for manual career data ingestion.
// Each collection is written independently; partial failure of one does not
// roll back the others.
type ManualIngestPayload struct {
	Profile         *Profile         `json:"profile,omitempty"`
	WorkExperiences []WorkExperience `json:"work_experiences,omitempty" validate:"omitempty,dive"`
	Educations      []Education      `json:"educations,omitempty" validate:"omitempty,dive"`
	Skills          []Skill          `json:"skills,omitempty" validate:"omitempty,dive"`
}

// IsEmpty reports whether the payload carries no data at all.
func (p *ManualIngestPayload) IsEmpty() bool {
	return p.Profile == nil &&
		len(p.WorkExperiences) == 0 &&
		len(p.Educations) == 0 &&
		len(p.Skills) == 0
}

// Each collection validates on its own so that a bad record in one cannot
// block writes to the others.

// ValidateProfile validates the profile fields, if present.
func (p *ManualIngestPayload) ValidateProfile() error {
	if p.Profile == nil {
		return nil
	}
	return validate.Struct(p.Profile)
}

// ValidateWorkExperiences validates each work experience entry.
func (p *ManualIngestPayload) ValidateWorkExperiences() error {
	for i := range p.WorkExperiences {
		if err := validate.Struct(&p.WorkExperiences[i]); err != nil {
			return fmt.Errorf("work_experiences[%d]: %w", i, err)
		}
	}
	return nil
}

// ValidateEducations validates each education entry.
func (p *ManualIngestPayload) ValidateEducations() error {
	for i := range p.Educations {
		if err := validate.Struct(&p.Educations[i]); err != nil {
			return fmt.Errorf("educations[%d]: %w", i, err)
		}
	}
	return nil
}

// ValidateSkills validates each skill entry.
func (p *ManualIngestPayload) ValidateSkills() error {
	for i := range p.Skills {
		if err := validate.Struct(&p.Skills[i]); err != nil {
			return fmt.Errorf("skills[%d]: %w", i, err)
		}
	}
	return nil
}

// GenerateRequest is the request body for resume generation.
type GenerateRequest struct {
	JobDescription string               `json:"jobDescription"`
	JobURL         string               `json:"jobUrl,omitempty"`
	UseDocuments   bool                 `json:"useDocuments,omitempty"`
	DemoData       *ManualIngestPayload `json:"demoData,omitempty"`
}
