package background

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-tailor-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EmptyInputsReturnSentinel(t *testing.T) {
	result := Build(nil, nil, nil, nil)
	assert.Equal(t, NoBackgroundSentinel, result)
}

func TestBuild_SectionOrderAndPresence(t *testing.T) {
	profile := &types.Profile{FullName: "Jane Doe"}
	work := []types.WorkExperience{{Company: "Acme", JobTitle: "Engineer", StartDate: "2019-01"}}
	edu := []types.Education{{Institution: "State University", Degree: "BSc", StartDate: "2015-09", EndDate: "2019-05"}}
	skills := []types.Skill{{Name: "Go", Category: types.SkillCategoryTechnical}}

	result := Build(profile, work, edu, skills)

	profileIdx := strings.Index(result, "**PROFILE:**")
	workIdx := strings.Index(result, "**WORK EXPERIENCE:**")
	eduIdx := strings.Index(result, "**EDUCATION:**")
	skillsIdx := strings.Index(result, "**SKILLS:**")

	require.GreaterOrEqual(t, profileIdx, 0)
	require.Greater(t, workIdx, profileIdx)
	require.Greater(t, eduIdx, workIdx)
	require.Greater(t, skillsIdx, eduIdx)
}

func TestBuild_OmitsSectionsWithoutInput(t *testing.T) {
	work := []types.WorkExperience{{Company: "Acme", JobTitle: "Engineer", StartDate: "2019-01"}}

	result := Build(nil, work, nil, nil)

	assert.NotContains(t, result, "**PROFILE:**")
	assert.Contains(t, result, "**WORK EXPERIENCE:**")
	assert.NotContains(t, result, "**EDUCATION:**")
	assert.NotContains(t, result, "**SKILLS:**")
}

func TestBuild_OngoingWorkRendersPresent(t *testing.T) {
	work := []types.WorkExperience{{Company: "Acme", JobTitle: "Engineer", StartDate: "2019-01"}}

	result := Build(nil, work, nil, nil)

	assert.Contains(t, result, "Duration: 2019-01 to Present")
}

func TestBuild_EndedWorkRendersEndDate(t *testing.T) {
	work := []types.WorkExperience{{Company: "Acme", JobTitle: "Engineer", StartDate: "2019-01", EndDate: "2021-06"}}

	result := Build(nil, work, nil, nil)

	assert.Contains(t, result, "Duration: 2019-01 to 2021-06")
}

func TestBuild_MissingTitleAndCompanyFallBackToGenericLabels(t *testing.T) {
	work := []types.WorkExperience{{StartDate: "2019-01"}}

	result := Build(nil, work, nil, nil)

	assert.Contains(t, result, "Position at Company")
}

func TestBuild_HardAndTechnicalShareBucket(t *testing.T) {
	skills := []types.Skill{
		{Name: "Go", Category: types.SkillCategoryHard},
		{Name: "PostgreSQL", Category: types.SkillCategoryTechnical},
	}

	result := Build(nil, nil, nil, skills)

	assert.Contains(t, result, "Technical Skills: Go, PostgreSQL")
}

func TestBuild_SkillBucketsOmittedWhenEmpty(t *testing.T) {
	skills := []types.Skill{{Name: "Communication", Category: types.SkillCategorySoft}}

	result := Build(nil, nil, nil, skills)

	assert.Contains(t, result, "Soft Skills: Communication")
	assert.NotContains(t, result, "Technical Skills:")
	assert.NotContains(t, result, "Tools:")
}

func TestBuild_ProfileRendersOnlyPopulatedFields(t *testing.T) {
	profile := &types.Profile{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Languages: []types.Language{
			{Language: "English", Level: "Native"},
			{Language: "Spanish", Level: "B2"},
		},
		Certifications: []types.Certification{
			{Name: "CKA", Issuer: "CNCF", Year: "2023"},
		},
	}

	result := Build(profile, nil, nil, nil)

	assert.Contains(t, result, "Name: Jane Doe")
	assert.Contains(t, result, "Email: jane@example.com")
	assert.NotContains(t, result, "Phone:")
	assert.NotContains(t, result, "LinkedIn:")
	assert.Contains(t, result, "Languages: English (Native), Spanish (B2)")
	assert.Contains(t, result, "- CKA by CNCF (2023)")
}

func TestBuild_EducationWithoutFieldSkipsFieldClause(t *testing.T) {
	edu := []types.Education{{Institution: "State University", Degree: "BSc", StartDate: "2015-09"}}

	result := Build(nil, nil, edu, nil)

	assert.Contains(t, result, "BSc\nState University")
	assert.NotContains(t, result, " in ")
}

func TestBuild_PreservesWorkOrdering(t *testing.T) {
	work := []types.WorkExperience{
		{Company: "Newest Corp", JobTitle: "Staff Engineer", StartDate: "2022-01"},
		{Company: "Older Corp", JobTitle: "Engineer", StartDate: "2018-01", EndDate: "2021-12"},
	}

	result := Build(nil, work, nil, nil)

	assert.Less(t, strings.Index(result, "Newest Corp"), strings.Index(result, "Older Corp"))
}

func TestJoinDocumentTexts(t *testing.T) {
	joined := JoinDocumentTexts([]string{"first resume", "", "  ", "second resume"})
	assert.Equal(t, "first resume\n\n---\n\nsecond resume", joined)
}

func TestJoinDocumentTexts_AllEmpty(t *testing.T) {
	assert.Equal(t, "", JoinDocumentTexts([]string{"", "   "}))
}
