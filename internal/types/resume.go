package types

// TailoredWorkExperience is one employment entry in a generated resume.
type TailoredWorkExperience struct {
	Company    string   `json:"company"`
	JobTitle   string   `json:"jobTitle"`
	Location   string   `json:"location,omitempty"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Highlights []string `json:"highlights"`
}

// TailoredEducation is one education entry in a generated resume.
type TailoredEducation struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field,omitempty"`
	GraduationDate string `json:"graduationDate"`
}

// SkillGroups partitions resume skills into the three rendered buckets.
type SkillGroups struct {
	Technical []string `json:"technical"`
	Tools     []string `json:"tools"`
	Soft      []string `json:"soft"`
}

// TailoredResume is the structured output of a generation request.
// Once parsed it is immutable; regeneration produces a new instance.
// The slice fields are never nil so downstream rendering stays total.
type TailoredResume struct {
	Summary         string                   `json:"summary"`
	WorkExperiences []TailoredWorkExperience `json:"workExperiences"`
	Skills          SkillGroups              `json:"skills"`
	Education       []TailoredEducation      `json:"education"`
	MatchScore      int                      `json:"matchScore"`
	KeyStrengths    []string                 `json:"keyStrengths"`
	Recommendations []string                 `json:"recommendations"`
}

// EnsureArrays replaces nil slices with empty ones. Model output regularly
// omits empty arrays and the API contract requires them to be present.
func (r *TailoredResume) EnsureArrays() {
	if r.WorkExperiences == nil {
		r.WorkExperiences = []TailoredWorkExperience{}
	}
	for i := range r.WorkExperiences {
		if r.WorkExperiences[i].Highlights == nil {
			r.WorkExperiences[i].Highlights = []string{}
		}
	}
	if r.Education == nil {
		r.Education = []TailoredEducation{}
	}
	if r.KeyStrengths == nil {
		r.KeyStrengths = []string{}
	}
	if r.Recommendations == nil {
		r.Recommendations = []string{}
	}
	if r.Skills.Technical == nil {
		r.Skills.Technical = []string{}
	}
	if r.Skills.Tools == nil {
		r.Skills.Tools = []string{}
	}
	if r.Skills.Soft == nil {
		r.Skills.Soft = []string{}
	}
}
