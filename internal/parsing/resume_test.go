package parsing

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResumeJSON = `{
	"summary": "Seasoned backend engineer.",
	"workExperiences": [
		{
			"company": "Acme",
			"jobTitle": "Engineer",
			"startDate": "2019-01",
			"endDate": "Present",
			"highlights": ["Cut p99 latency by 40%"]
		}
	],
	"skills": {"technical": ["Go"], "tools": ["Docker"], "soft": ["Mentoring"]},
	"education": [],
	"matchScore": 85,
	"keyStrengths": ["Distributed systems"],
	"recommendations": ["Quantify more outcomes"]
}`

func TestExtractJSONPayload_JSONFence(t *testing.T) {
	text := "Here is your tailored resume:\n```json\n{\"summary\": \"x\"}\n```\nLet me know if you need changes."
	assert.Equal(t, `{"summary": "x"}`, ExtractJSONPayload(text))
}

func TestExtractJSONPayload_GenericFence(t *testing.T) {
	text := "```\n{\"summary\": \"x\"}\n```"
	assert.Equal(t, `{"summary": "x"}`, ExtractJSONPayload(text))
}

func TestExtractJSONPayload_PrefersJSONFenceOverGeneric(t *testing.T) {
	text := "```\nnot this\n```\n```json\n{\"summary\": \"x\"}\n```"
	assert.Equal(t, `{"summary": "x"}`, ExtractJSONPayload(text))
}

func TestExtractJSONPayload_RawTextFallback(t *testing.T) {
	assert.Equal(t, `{"summary": "x"}`, ExtractJSONPayload("  {\"summary\": \"x\"}\n"))
}

func TestParseTailoredResume_Valid(t *testing.T) {
	resume, err := ParseTailoredResume("```json\n" + validResumeJSON + "\n```")
	require.NoError(t, err)

	assert.Equal(t, "Seasoned backend engineer.", resume.Summary)
	require.Len(t, resume.WorkExperiences, 1)
	assert.Equal(t, "Acme", resume.WorkExperiences[0].Company)
	assert.Equal(t, 85, resume.MatchScore)
}

func TestParseTailoredResume_InvalidJSONCarriesRawText(t *testing.T) {
	raw := "I'm sorry, I cannot produce a resume for this request."

	resume, err := ParseTailoredResume(raw)
	require.Error(t, err)
	assert.Nil(t, resume)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, raw, parseErr.Raw)
}

func TestParseTailoredResume_NilArraysBecomeEmpty(t *testing.T) {
	resume, err := ParseTailoredResume(`{"summary": "x", "matchScore": 50}`)
	require.NoError(t, err)

	assert.NotNil(t, resume.WorkExperiences)
	assert.NotNil(t, resume.Education)
	assert.NotNil(t, resume.KeyStrengths)
	assert.NotNil(t, resume.Recommendations)
	assert.NotNil(t, resume.Skills.Technical)
	assert.NotNil(t, resume.Skills.Tools)
	assert.NotNil(t, resume.Skills.Soft)
}

func TestParseTailoredResume_ClampsMatchScore(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected int
	}{
		{"above range", 140, 100},
		{"below range", -10, 0},
		{"within range", 73, 73},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resume, err := ParseTailoredResume(
				`{"summary": "x", "matchScore": ` + strconv.Itoa(tt.score) + `}`)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resume.MatchScore)
		})
	}
}
