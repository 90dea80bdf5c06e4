package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualIngestPayloadIsEmpty(t *testing.T) {
	var p ManualIngestPayload
	assert.True(t, p.IsEmpty())

	p.Skills = []Skill{{Name: "Go", Category: SkillCategoryTechnical}}
	assert.False(t, p.IsEmpty())
}

func TestManualIngestPayloadValidateCollections(t *testing.T) {
	p := ManualIngestPayload{
		Profile: &Profile{FullName: "Jane Doe"},
		WorkExperiences: []WorkExperience{
			{Company: "Acme", JobTitle: "Engineer", StartDate: "2020-01"},
		},
		Skills: []Skill{{Name: "Go", Category: SkillCategoryTechnical, Proficiency: 90}},
	}
	assert.NoError(t, p.ValidateProfile())
	assert.NoError(t, p.ValidateWorkExperiences())
	assert.NoError(t, p.ValidateEducations())
	assert.NoError(t, p.ValidateSkills())
}

// One collection's validation failure must not implicate the others.
func TestManualIngestPayloadValidateMissingRequired(t *testing.T) {
	p := ManualIngestPayload{
		Profile:         &Profile{FullName: "Jane Doe"},
		WorkExperiences: []WorkExperience{{Company: "Acme"}},
	}
	assert.NoError(t, p.ValidateProfile())

	err := p.ValidateWorkExperiences()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "work_experiences[0]")
}

func TestManualIngestPayloadValidateBadCategory(t *testing.T) {
	p := ManualIngestPayload{
		Skills: []Skill{{Name: "Go", Category: "Wizardry"}},
	}
	err := p.ValidateSkills()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skills[0]")
}

func TestManualIngestPayloadValidateNilProfile(t *testing.T) {
	var p ManualIngestPayload
	assert.NoError(t, p.ValidateProfile())
}

func TestEnsureArrays(t *testing.T) {
	r := &TailoredResume{Summary: "x"}
	r.EnsureArrays()

	require.NotNil(t, r.WorkExperiences)
	assert.Empty(t, r.WorkExperiences)
	assert.NotNil(t, r.Skills.Technical)
	assert.NotNil(t, r.Skills.Tools)
	assert.NotNil(t, r.Skills.Soft)
	assert.NotNil(t, r.Education)
	assert.NotNil(t, r.KeyStrengths)
	assert.NotNil(t, r.Recommendations)
}

func TestEnsureArraysFillsNestedHighlights(t *testing.T) {
	r := &TailoredResume{
		WorkExperiences: []TailoredWorkExperience{{Company: "Acme"}},
	}
	r.EnsureArrays()
	assert.NotNil(t, r.WorkExperiences[0].Highlights)
}
