package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-fit/internal/types"
)

const testTaxonomy = `{
	"programming_languages": ["Python", "SQL", "Java"],
	"ml_frameworks": ["TensorFlow", "PyTorch"],
	"containers": ["Docker", "Kubernetes"],
	"cloud_platforms": ["AWS"]
}`

const testTrainingTable = `has_base,skill_similarity,domain_overlap,difficulty
1,0.95,0.95,easy
1,0.90,0.92,easy
1,0.85,0.88,easy
1,0.92,0.85,easy
1,0.88,0.90,easy
1,0.80,0.82,easy
1,0.83,0.87,easy
1,0.90,0.80,easy
1,0.60,0.65,medium
1,0.55,0.60,medium
0,0.60,0.70,medium
1,0.50,0.55,medium
0,0.65,0.60,medium
1,0.58,0.62,medium
0,0.55,0.65,medium
1,0.62,0.58,medium
0,0.30,0.35,hard
0,0.25,0.30,hard
0,0.20,0.25,hard
0,0.35,0.40,hard
0,0.15,0.20,hard
0,0.28,0.32,hard
0,0.10,0.15,hard
0,0.32,0.28,hard
`

const testResume = `John Doe
john.doe@example.com

EXPERIENCE
Senior Software Engineer, Acme (2018 - 2023)
- Built Python data pipelines processing 2M events daily
- Deployed services with Docker and AWS across three regions
- Led a team of 5 engineers migrating SQL workloads

EDUCATION
B.S. Computer Science, State University
`

const testJob = `REQUIREMENTS
We are hiring a machine learning engineer for our platform team.
5+ years of experience required.
Must know Python, TensorFlow, Docker, and Kubernetes.
Experience with AWS and SQL is a plus.
`

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dir := t.TempDir()
	taxonomyPath := filepath.Join(dir, "taxonomy.json")
	require.NoError(t, os.WriteFile(taxonomyPath, []byte(testTaxonomy), 0o644))
	trainingPath := filepath.Join(dir, "skill_relationships.csv")
	require.NoError(t, os.WriteFile(trainingPath, []byte(testTrainingTable), 0o644))

	s, err := New(Config{
		Port:         8080,
		TaxonomyPath: taxonomyPath,
		TrainingPath: trainingPath,
		ModelPath:    filepath.Join(dir, "model.json"),
		Logger:       zap.NewNop(),
	})
	require.NoError(t, err)
	return s
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["database"])
}

func TestHandleAnalyze_ReturnsReport(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	s := newTestServer(t)

	rec := postJSON(t, s.Handler(), "/api/analyze", AnalyzeRequest{
		ResumeText: testResume,
		JobText:    testJob,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report types.AnalysisReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "john.doe@example.com", report.CandidateInfo.Email)
	assert.InDelta(t, 66.67, report.SkillAnalysis.MatchPercentage, 0.01)
	assert.NotEmpty(t, report.Recommendation)
}

func TestHandleAnalyze_InvalidBody(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestHandleAnalyze_ValidationErrors(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	s := newTestServer(t)
	handler := s.Handler()

	tests := []struct {
		name string
		req  AnalyzeRequest
	}{
		{
			name: "missing resume text",
			req:  AnalyzeRequest{JobText: testJob},
		},
		{
			name: "missing job text and url",
			req:  AnalyzeRequest{ResumeText: testResume},
		},
		{
			name: "both job text and url",
			req: AnalyzeRequest{
				ResumeText: testResume,
				JobText:    testJob,
				JobURL:     "https://example.com/job",
			},
		},
		{
			name: "invalid job url",
			req:  AnalyzeRequest{ResumeText: testResume, JobURL: "not-a-url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, handler, "/api/analyze", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "validation failed")
		})
	}
}

func TestHandleTrain(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	s := newTestServer(t)

	rec := postJSON(t, s.Handler(), "/api/train", struct{}{})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp TrainResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Greater(t, resp.TrainAccuracy, 0.0)
	assert.Equal(t, 24, resp.NumSamples)
	assert.ElementsMatch(t, []string{"easy", "medium", "hard"}, resp.Classes)
	assert.False(t, resp.Persisted)
}

func TestAnalysesEndpoints_WithoutDatabase(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	s := newTestServer(t)
	handler := s.Handler()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/analyses"},
		{http.MethodGet, "/api/analyses/4f6f3a1e-8f4e-4d5b-9c2a-1b2c3d4e5f60"},
		{http.MethodDelete, "/api/analyses/4f6f3a1e-8f4e-4d5b-9c2a-1b2c3d4e5f60"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			assert.Contains(t, rec.Body.String(), "database unavailable")
		})
	}
}

func TestAuth_RequiredWhenSecretConfigured(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("FIT_JWT_SECRET", "integration-test-secret")
	s := newTestServer(t)
	handler := s.Handler()

	// Health stays open
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// API requests without a token are rejected
	rec = postJSON(t, handler, "/api/analyze", AnalyzeRequest{ResumeText: testResume, JobText: testJob})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A valid bearer token grants access
	token, err := s.jwtService.GenerateToken("analyst@example.com")
	require.NoError(t, err)

	payload, err := json.Marshal(AnalyzeRequest{ResumeText: testResume, JobText: testJob})
	require.NoError(t, err)
	authed := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(payload))
	authed.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authed)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRateLimit_RejectsBurstOverflow(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	s := newTestServer(t)
	handler := s.Handler()

	// POST /api/analyze allows a burst of 10; the 11th request is rejected
	var last *httptest.ResponseRecorder
	for i := 0; i < 11; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader([]byte("{}")))
		req.RemoteAddr = "203.0.113.7:1234"
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Contains(t, last.Body.String(), "rate limit exceeded")
}

func TestMethodNotAllowed(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrValidation))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrAnalysisNotFound))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(ErrDatabaseUnavailable))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("boom")))
}
