package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func postJSON(t *testing.T, mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func generateMux() *http.ServeMux {
	mux := http.NewServeMux()
	NewGenerateHandler(testConfig(), zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestGenerate(t *testing.T) {
	rec := postJSON(t, generateMux(), "/api/v1/generate",
		`{"schema": {"id": "text", "email": "text", "age": "integer"}, "count": 5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Count)
	require.Len(t, resp.Records, 5)
	for _, record := range resp.Records {
		assert.Contains(t, record["email"], "@")
		assert.NotEmpty(t, record["id"])
	}
}

func TestGenerateDefaultCount(t *testing.T) {
	rec := postJSON(t, generateMux(), "/api/v1/generate", `{"schema": {"name": "text"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.Count)
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	body := `{"schema": {"name": "text", "age": "integer"}, "count": 3, "seed": 7}`

	first := postJSON(t, generateMux(), "/api/v1/generate", body)
	second := postJSON(t, generateMux(), "/api/v1/generate", body)
	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestGeneratePagination(t *testing.T) {
	body := `{"schema": {"name": "text"}, "count": 25, "seed": 9, "page": 3, "page_size": 10}`
	rec := postJSON(t, generateMux(), "/api/v1/generate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 25, resp.Total)
	assert.Equal(t, 3, resp.Page)
	assert.Equal(t, 5, resp.Count)
	assert.Len(t, resp.Records, 5)

	// Same seed, same page, same records.
	again := postJSON(t, generateMux(), "/api/v1/generate", body)
	assert.JSONEq(t, rec.Body.String(), again.Body.String())
}

func TestGeneratePaginationPastEnd(t *testing.T) {
	rec := postJSON(t, generateMux(), "/api/v1/generate",
		`{"schema": {"name": "text"}, "count": 5, "page": 9, "page_size": 10}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Records)
	assert.Equal(t, 5, resp.Total)
}

func TestGenerateRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"bad schema type", `{"schema": {"id": "varchar"}}`},
		{"empty schema", `{"schema": {}}`},
		{"negative count", `{"schema": {"id": "text"}, "count": -1}`},
		{"count over limit", `{"schema": {"id": "text"}, "count": 5000}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, generateMux(), "/api/v1/generate", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGenerateMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	generateMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/generate", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
