// Package types provides type definitions for structured data used throughout the resume-tailor system.
package types

// Language is a spoken language with a proficiency level.
type Language struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

// Certification is a professional certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// Profile holds identity and contact information for a user.
// All fields are optional; only populated fields are rendered into context.
type Profile struct {
	FullName       string          `json:"full_name,omitempty"`
	DateOfBirth    string          `json:"date_of_birth,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	LinkedInURL    string          `json:"linkedin_url,omitempty"`
	PortfolioURL   string          `json:"portfolio_url,omitempty"`
	SummaryBio     string          `json:"summary_bio,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
}

// WorkExperience is a single employment history entry.
// An empty EndDate means the position is ongoing.
type WorkExperience struct {
	Company      string `json:"company" validate:"required,min=1"`
	JobTitle     string `json:"job_title" validate:"required,min=1"`
	Location     string `json:"location,omitempty"`
	StartDate    string `json:"start_date" validate:"required,min=1"`
	EndDate      string `json:"end_date,omitempty"`
	IsCurrent    bool   `json:"is_current,omitempty"`
	Duties       string `json:"duties,omitempty"`
	Achievements string `json:"achievements,omitempty"`
}

// Education is a single education history entry.
type Education struct {
	Institution  string `json:"institution" validate:"required,min=1"`
	Degree       string `json:"degree" validate:"required,min=1"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	StartDate    string `json:"start_date" validate:"required,min=1"`
	EndDate      string `json:"end_date,omitempty"`
}

// Skill categories. "Hard" and "Technical" are treated as synonyms when
// grouping skills for context rendering.
const (
	SkillCategoryHard      = "Hard"
	SkillCategoryTechnical = "Technical"
	SkillCategoryTool      = "Tool"
	SkillCategorySoft      = "Soft"
)

// Skill is a named skill with a category and optional 0-100 proficiency.
// Proficiency is used only for manual-entry grouping and is never surfaced
// in generated resumes.
type Skill struct {
	Name        string `json:"name" validate:"required,min=1"`
	Category    string `json:"category" validate:"required,oneof=Hard Technical Tool Soft"`
	Proficiency int    `json:"proficiency,omitempty" validate:"omitempty,min=0,max=100"`
}
