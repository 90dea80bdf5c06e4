package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor-api/internal/server/middleware"
	"github.com/jonathan/resume-tailor-api/internal/tailoring"
	"github.com/jonathan/resume-tailor-api/internal/types"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

const validModelResponse = `{"summary":"Engineer.","workExperiences":[],"skills":{"technical":["Go"],"tools":[],"soft":[]},"education":[],"matchScore":80,"keyStrengths":["Go"],"recommendations":[]}`

func demoPayload() *types.ManualIngestPayload {
	return &types.ManualIngestPayload{
		Profile: &types.Profile{FullName: "Jane Doe"},
		WorkExperiences: []types.WorkExperience{
			{Company: "Acme", JobTitle: "Engineer", StartDate: "2020-01"},
		},
	}
}

func generateRequest(t *testing.T, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/v1/generate", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return middleware.WithUserID(req, uuid.New())
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGenerateMissingJobDescription(t *testing.T) {
	gen := &stubGenerator{response: validModelResponse}
	s := &Server{svc: tailoring.NewService(nil, gen)}

	rec := httptest.NewRecorder()
	s.handleGenerate(rec, generateRequest(t, map[string]any{"jobDescription": "   "}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, gen.prompts)
}

func TestGenerateInvalidBody(t *testing.T) {
	s := &Server{svc: tailoring.NewService(nil, &stubGenerator{})}

	req := httptest.NewRequest("POST", "/v1/generate", strings.NewReader("{not json"))
	req = middleware.WithUserID(req, uuid.New())
	rec := httptest.NewRecorder()
	s.handleGenerate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateDemoModeWithoutModel(t *testing.T) {
	s := &Server{} // no model configured

	rec := httptest.NewRecorder()
	s.handleGenerate(rec, generateRequest(t, map[string]any{"jobDescription": "Go developer"}))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["demo"])
	assert.NotNil(t, body["tailoredResume"])
	assert.Nil(t, body["savedResumeId"])
}

func TestGenerateWithDemoData(t *testing.T) {
	gen := &stubGenerator{response: validModelResponse}
	s := &Server{svc: tailoring.NewService(nil, gen)}

	rec := httptest.NewRecorder()
	s.handleGenerate(rec, generateRequest(t, map[string]any{
		"jobDescription": "Senior Go developer",
		"demoData":       demoPayload(),
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Nil(t, body["savedResumeId"])
	assert.NotEmpty(t, body["generatedAt"])

	resume, ok := body["tailoredResume"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(80), resume["matchScore"])

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Jane Doe")
	assert.Contains(t, gen.prompts[0], "Senior Go developer")
}

func TestGenerateFetchesJobURL(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><main>Platform engineer opening in Berlin</main></body></html>`))
	}))
	defer page.Close()

	gen := &stubGenerator{response: validModelResponse}
	s := &Server{svc: tailoring.NewService(nil, gen)}

	rec := httptest.NewRecorder()
	s.handleGenerate(rec, generateRequest(t, map[string]any{
		"jobUrl":   page.URL,
		"demoData": demoPayload(),
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Platform engineer opening in Berlin")
}

func TestGenerateJobURLFetchFailure(t *testing.T) {
	s := &Server{svc: tailoring.NewService(nil, &stubGenerator{response: validModelResponse})}

	rec := httptest.NewRecorder()
	s.handleGenerate(rec, generateRequest(t, map[string]any{
		"jobUrl": "ftp://example.com/job",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateUnparseableResponseReturnsRaw(t *testing.T) {
	gen := &stubGenerator{response: "I cannot produce JSON today"}
	s := &Server{svc: tailoring.NewService(nil, gen)}

	rec := httptest.NewRecorder()
	s.handleGenerate(rec, generateRequest(t, map[string]any{
		"jobDescription": "Go developer",
		"demoData":       demoPayload(),
	}))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Failed to parse AI response", body["error"])
	assert.Equal(t, "I cannot produce JSON today", body["rawResponse"])
}

func TestGenerateWithoutStoreUsesSentinel(t *testing.T) {
	gen := &stubGenerator{response: validModelResponse}
	s := &Server{svc: tailoring.NewService(nil, gen)}

	rec := httptest.NewRecorder()
	s.handleGenerate(rec, generateRequest(t, map[string]any{
		"jobDescription": "Go developer",
	}))

	// Without a store the service still generates using the explicit
	// no-background sentinel, so this succeeds.
	assert.Equal(t, http.StatusOK, rec.Code)
}
