package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/applytrack/resume-analyzer/internal/analyzer"
	"github.com/applytrack/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Config{Port: 8080})
	require.NoError(t, err)
	t.Cleanup(func() { s.rateLimiter.Stop() })
	return s
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth_OK(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Handler(), "GET", "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAnalyze_ReturnsMergedResult(t *testing.T) {
	s := newTestServer(t)
	body := map[string]string{"text": "Jane Smith\njane@example.com\n\nSKILLS\nGo, Python, Docker"}

	rec := doJSON(t, s.Handler(), "POST", "/analyze", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID       string              `json:"id"`
		Parsed   *types.ParsedResume `json:"parsed"`
		Analysis *types.ATSAnalysis  `json:"analysis"`
		Rubric   *types.RubricScore  `json:"rubric"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Empty(t, resp.ID, "no persistence without a database")
	require.NotNil(t, resp.Parsed)
	assert.Equal(t, "jane@example.com", resp.Parsed.ContactInfo.Email)
	require.NotNil(t, resp.Analysis)
	assert.NotEmpty(t, resp.Analysis.Rating)
	require.NotNil(t, resp.Rubric)
	assert.Len(t, resp.Rubric.Buckets, 7)
}

func TestAnalyze_EmptyTextIsValid(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Handler(), "POST", "/analyze", map[string]string{"text": ""})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Analysis *types.ATSAnalysis `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Analysis.OverallScore)
	assert.Equal(t, types.RatingPoor, resp.Analysis.Rating)
}

func TestAnalyze_InvalidJSON(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_InvalidUserID(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Handler(), "POST", "/analyze", map[string]string{
		"text":    "hello",
		"user_id": "not-a-uuid",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_OversizedInput(t *testing.T) {
	s, err := New(Config{Port: 8080, Analyzer: analyzer.Config{MaxInputBytes: 64}})
	require.NoError(t, err)
	t.Cleanup(func() { s.rateLimiter.Stop() })

	rec := doJSON(t, s.Handler(), "POST", "/analyze", map[string]string{
		"text": strings.Repeat("x", 100),
	})

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestScorecard_FromText(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Handler(), "POST", "/scorecard", map[string]string{
		"text": "Jane Smith\njane@example.com\n\nSKILLS\nGo, Python",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var score types.RubricScore
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &score))
	assert.Len(t, score.Buckets, 7)
	assert.Greater(t, score.Score, 0)
}

func TestScorecard_FromParsedRecord(t *testing.T) {
	s := newTestServer(t)
	parsed := types.NewParsedResume()
	parsed.ContactInfo.Email = "jane@example.com"
	parsed.Skills = []string{"Go", "Python", "SQL", "Docker", "AWS", "Redis", "React", "Git"}

	rec := doJSON(t, s.Handler(), "POST", "/scorecard", map[string]any{"parsed": parsed})
	require.Equal(t, http.StatusOK, rec.Code)

	var score types.RubricScore
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &score))
	assert.Equal(t, 20, score.Buckets[2].Score)
}

func TestPersistenceEndpoints_UnavailableWithoutDB(t *testing.T) {
	s := newTestServer(t)
	handler := s.Handler()

	for _, tc := range []struct{ method, path string }{
		{"GET", "/users/3b241101-e2bb-4255-8caf-4136c566a962/analyses"},
		{"GET", "/analyses/3b241101-e2bb-4255-8caf-4136c566a962"},
		{"DELETE", "/analyses/3b241101-e2bb-4255-8caf-4136c566a962"},
	} {
		rec := doJSON(t, handler, tc.method, tc.path, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRateLimitHeaders_Present(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Handler(), "POST", "/analyze", map[string]string{"text": "hi"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_BurstExhaustion(t *testing.T) {
	s := newTestServer(t)
	handler := s.Handler()

	var tooMany bool
	for i := 0; i < 15; i++ {
		rec := doJSON(t, handler, "POST", "/analyze", map[string]string{"text": "hi"})
		if rec.Code == http.StatusTooManyRequests {
			tooMany = true
			assert.NotEmpty(t, rec.Header().Get("Retry-After"))
			break
		}
	}
	assert.True(t, tooMany, "burst of 10 should exhaust within 15 requests")
}

func TestCORS_PreflightHandled(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest("OPTIONS", "/analyze", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
