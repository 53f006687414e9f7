package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/educator/internal/educate"
	"github.com/abhisek/educator/internal/generate"
	"github.com/abhisek/educator/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func newTestRouter(provider llm.Provider, templateFallback bool) http.Handler {
	svc := educate.NewService(provider, nil, testLogger())
	return NewRouter(svc, testLogger(), templateFallback)
}

func postGenerate(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGenerate_Success(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Text: "Gravity is the force that attracts objects toward each other.",
	})
	router := newTestRouter(provider, true)

	rec := postGenerate(t, router, `{"prompt":"What is gravity","content_type":"explanation"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generate.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.GeneratedText, "Gravity")
	assert.Equal(t, "What is gravity", resp.Prompt)
	assert.Equal(t, generate.TypeExplanation, resp.ContentType)
	assert.GreaterOrEqual(t, resp.ProcessingTime, 0.0)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestGenerate_DefaultsApplied(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	router := newTestRouter(provider, true)

	rec := postGenerate(t, router, `{"prompt":"gravity"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generate.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, generate.TypeExplanation, resp.ContentType)
	// json numbers decode as float64 in the parameters map
	assert.EqualValues(t, generate.DefaultLength, resp.Parameters["max_length"])
	assert.EqualValues(t, generate.DefaultTemperature, resp.Parameters["temperature"])
}

func TestGenerate_ValidationErrors(t *testing.T) {
	router := newTestRouter(nil, true)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing prompt", `{"content_type":"quiz"}`, "topic or question"},
		{"prompt too long", `{"prompt":"` + strings.Repeat("p", 1001) + `"}`, "1000"},
		{"bad content type", `{"prompt":"x","content_type":"poem"}`, "content type"},
		{"max_length too small", `{"prompt":"x","max_length":10}`, "max_length"},
		{"temperature too high", `{"prompt":"x","temperature":3.0}`, "temperature"},
		{"top_p out of range", `{"prompt":"x","top_p":1.5}`, "top_p"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postGenerate(t, router, tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Contains(t, resp.Error, tt.want)
		})
	}
}

func TestGenerate_MultibytePromptAtLimit(t *testing.T) {
	// 1000 CJK characters is 3000 bytes; both the handler validation and
	// the service re-validation must count characters and accept it.
	provider := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	router := newTestRouter(provider, true)

	rec := postGenerate(t, router, `{"prompt":"`+strings.Repeat("光", 1000)+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generate.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success, resp.Error)
}

func TestGenerate_MalformedBody(t *testing.T) {
	router := newTestRouter(nil, true)
	rec := postGenerate(t, router, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerate_ModelNotReady(t *testing.T) {
	router := newTestRouter(nil, false)

	rec := postGenerate(t, router, `{"prompt":"gravity"}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, modelNotReadyMsg, resp.Error)
}

func TestGenerate_TemplateFallbackServes(t *testing.T) {
	router := newTestRouter(nil, true)

	rec := postGenerate(t, router, `{"prompt":"What is gravity","content_type":"summary"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generate.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.GeneratedText, "Summary of gravity:"), resp.GeneratedText)
}

func TestGenerate_ProviderFailureKeeps200(t *testing.T) {
	provider := llm.NewMockProvider() // empty queue → provider unavailable
	router := newTestRouter(provider, true)

	rec := postGenerate(t, router, `{"prompt":"gravity"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generate.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(llm.NewMockProvider(), true)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var health generate.HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, educate.ServiceName, health.Service)
	assert.True(t, health.ModelLoaded)
	assert.NotEmpty(t, health.Timestamp)
}

func TestHealth_ModelNotLoaded(t *testing.T) {
	router := newTestRouter(nil, true)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var health generate.HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.False(t, health.ModelLoaded)
}

func TestContentTypes(t *testing.T) {
	router := newTestRouter(nil, true)

	req := httptest.NewRequest(http.MethodGet, "/api/content-types", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var list generate.ContentTypeList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.ContentTypes, 6)
	assert.Equal(t, "explanation", list.ContentTypes[0].Value)
	assert.Equal(t, "Explanation", list.ContentTypes[0].Label)
}
