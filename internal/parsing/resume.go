package parsing

import (
	"encoding/json"

	"github.com/jonathan/resume-tailor-api/internal/types"
)

// ParseTailoredResume extracts the JSON payload from raw model output and
// decodes it into a TailoredResume. The result always has non-nil array
// fields and a matchScore clamped to [0, 100]. On failure the returned
// ParseError carries the full raw text.
func ParseTailoredResume(raw string) (*types.TailoredResume, error) {
	payload := ExtractJSONPayload(raw)

	var resume types.TailoredResume
	if err := json.Unmarshal([]byte(payload), &resume); err != nil {
		return nil, &ParseError{
			Message: "model response is not valid JSON",
			Raw:     raw,
			Cause:   err,
		}
	}

	resume.EnsureArrays()
	resume.MatchScore = clampScore(resume.MatchScore)

	return &resume, nil
}

// clampScore bounds a match score to [0, 100]. The model occasionally
// returns values outside the requested range.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
