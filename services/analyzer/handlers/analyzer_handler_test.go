package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/mocks"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
	"github.com/RuvinSL/seo-analyzer/pkg/testutil"
	"github.com/RuvinSL/seo-analyzer/services/analyzer/core"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestAnalyzerHandler_Analyze_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)
	logger := &testutil.TestLogger{}

	result := &models.AnalysisResult{URL: "https://example.com", Scores: models.Scores{SEO: 80}}
	analyzer.EXPECT().
		Analyze(gomock.Any(), models.AnalysisRequest{URL: "example.com", Strategy: models.StrategyDesktop}).
		Return(&models.AnalysisResponse{
			Status:     "success",
			Score:      80,
			AIAnalysis: models.AIAnalysis{Score: 80, Summary: "Scan based on local analysis.", Data: result},
			Data:       result,
		}, nil)

	handler := NewAnalyzerHandler(analyzer, logger)
	w := httptest.NewRecorder()
	handler.Analyze(w, postJSON(t, "/api/v1/analyze", map[string]string{"url": "example.com", "strategy": "desktop"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp models.AnalysisResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 80, resp.Score)
	assert.Equal(t, "https://example.com", resp.Data.URL)
	assert.Equal(t, "https://example.com", resp.AIAnalysis.Data.URL)

	assert.Equal(t, []string{"Processing analysis request"}, logger.Messages("info"))
	assert.Empty(t, logger.ErrorCalls)
}

func TestAnalyzerHandler_Analyze_Errors(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setup          func(*mocks.MockAnalyzer)
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "invalid json",
			body:           "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request format",
		},
		{
			name:           "missing url",
			body:           map[string]string{"strategy": "mobile"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "URL is required",
		},
		{
			name:           "blank url",
			body:           map[string]string{"url": "   "},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "URL is required",
		},
		{
			name: "uncoercible url",
			body: map[string]string{"url": "ftp://example.com"},
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().Analyze(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: unsupported scheme", core.ErrInvalidURL))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid URL",
		},
		{
			name: "unexpected failure",
			body: map[string]string{"url": "https://example.com"},
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Analysis failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			analyzer := mocks.NewMockAnalyzer(ctrl)
			if tt.setup != nil {
				tt.setup(analyzer)
			}
			logger := &testutil.TestLogger{}

			w := httptest.NewRecorder()
			NewAnalyzerHandler(analyzer, logger).Analyze(w, postJSON(t, "/api/v1/analyze", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedError, resp.Error)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.NotZero(t, resp.Timestamp)

			if tt.expectedStatus == http.StatusInternalServerError {
				assert.Equal(t, []string{"Analysis failed"}, logger.Messages("error"))
			} else {
				assert.Empty(t, logger.ErrorCalls)
			}
		})
	}
}

type fakeTools struct {
	sitemap   []string
	links     []string
	status    models.LinkStatus
	err       error
	lastInput string
}

func (f *fakeTools) ListSitemap(_ context.Context, rawURL string) ([]string, error) {
	f.lastInput = rawURL
	return f.sitemap, f.err
}

func (f *fakeTools) ScanLinks(_ context.Context, rawURL string) ([]string, error) {
	f.lastInput = rawURL
	return f.links, f.err
}

func (f *fakeTools) CheckLink(_ context.Context, rawURL string) (models.LinkStatus, error) {
	f.lastInput = rawURL
	return f.status, f.err
}

func TestToolsHandler_Copilot(t *testing.T) {
	ctrl := gomock.NewController(t)
	enricher := mocks.NewMockEnricher(ctrl)
	enricher.EXPECT().
		Reply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.CopilotRequest) models.CopilotResponse {
			assert.Equal(t, "why so slow?", req.Message)
			assert.Equal(t, "acme.test", req.SiteData.Domain)
			return models.CopilotResponse{Reply: "Compress images.", Source: models.SourceFallback}
		})

	handler := NewToolsHandler(enricher, &fakeTools{}, &testutil.TestLogger{})

	w := httptest.NewRecorder()
	handler.Copilot(w, postJSON(t, "/api/v1/copilot", `{"message":"why so slow?","siteData":{"domain":"acme.test","score":64}}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.CopilotResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, models.CopilotResponse{Reply: "Compress images.", Source: models.SourceFallback}, resp)

	w = httptest.NewRecorder()
	handler.Copilot(w, postJSON(t, "/api/v1/copilot", `{"message":""}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToolsHandler_Generate(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"generated", nil, http.StatusOK},
		{"unsupported type", fmt.Errorf("%w: %q", core.ErrUnsupportedType, "slogan"), http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			enricher := mocks.NewMockEnricher(ctrl)
			enricher.EXPECT().
				Generate(gomock.Any(), models.GenerateRequest{Type: "title", Content: "Oak tables"}).
				Return(models.GenerateResponse{Result: "Oak Tables", Source: models.SourceModel}, tt.err)

			w := httptest.NewRecorder()
			NewToolsHandler(enricher, &fakeTools{}, &testutil.TestLogger{}).
				Generate(w, postJSON(t, "/api/v1/generate", models.GenerateRequest{Type: "title", Content: "Oak tables"}))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.err == nil {
				assert.JSONEq(t, `{"result":"Oak Tables","source":"model"}`, w.Body.String())
			}
		})
	}
}

func TestToolsHandler_SiteTools(t *testing.T) {
	checked := models.LinkStatus{
		Link:       models.Link{URL: "https://example.com/gone"},
		Accessible: false,
		StatusCode: 404,
	}

	tests := []struct {
		name           string
		call           func(*ToolsHandler) http.HandlerFunc
		tools          *fakeTools
		body           any
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "sitemap",
			call:           func(h *ToolsHandler) http.HandlerFunc { return h.Sitemap },
			tools:          &fakeTools{sitemap: []string{"https://example.com/a"}},
			body:           urlRequest{URL: "example.com"},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"urls":["https://example.com/a"]}`,
		},
		{
			name:           "empty sitemap",
			call:           func(h *ToolsHandler) http.HandlerFunc { return h.Sitemap },
			tools:          &fakeTools{sitemap: []string{}},
			body:           urlRequest{URL: "example.com"},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"urls":[]}`,
		},
		{
			name:           "scan links",
			call:           func(h *ToolsHandler) http.HandlerFunc { return h.ScanLinks },
			tools:          &fakeTools{links: []string{"https://example.com/x", "https://other.org/"}},
			body:           urlRequest{URL: "https://example.com"},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"links":["https://example.com/x","https://other.org/"]}`,
		},
		{
			name:           "scan links upstream failure",
			call:           func(h *ToolsHandler) http.HandlerFunc { return h.ScanLinks },
			tools:          &fakeTools{err: fmt.Errorf("%w: status 503", core.ErrUpstream)},
			body:           urlRequest{URL: "https://example.com"},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "check link",
			call:           func(h *ToolsHandler) http.HandlerFunc { return h.CheckLink },
			tools:          &fakeTools{status: checked},
			body:           urlRequest{URL: "https://example.com/gone"},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"url":"https://example.com/gone","accessible":false,"status_code":404,"checked_at":"0001-01-01T00:00:00Z"}`,
		},
		{
			name:           "check link invalid url",
			call:           func(h *ToolsHandler) http.HandlerFunc { return h.CheckLink },
			tools:          &fakeTools{err: fmt.Errorf("%w: missing host", core.ErrInvalidURL)},
			body:           urlRequest{URL: "https://"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing url",
			call:           func(h *ToolsHandler) http.HandlerFunc { return h.Sitemap },
			tools:          &fakeTools{},
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			call:           func(h *ToolsHandler) http.HandlerFunc { return h.CheckLink },
			tools:          &fakeTools{},
			body:           `{"url":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewToolsHandler(nil, tt.tools, &testutil.TestLogger{})

			w := httptest.NewRecorder()
			tt.call(handler)(w, postJSON(t, "/api/v1/tool", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			if req, ok := tt.body.(urlRequest); ok {
				assert.Equal(t, req.URL, tt.tools.lastInput)
			}
		})
	}
}

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name           string
		checks         map[string]error
		expectedStatus int
		expectedState  string
	}{
		{"no dependencies", nil, http.StatusOK, "healthy"},
		{"redis healthy", map[string]error{"redis": nil}, http.StatusOK, "healthy"},
		{"redis down", map[string]error{"redis": errors.New("connection refused")}, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			checks := map[string]interfaces.HealthChecker{}
			for name, err := range tt.checks {
				checker := mocks.NewMockHealthChecker(ctrl)
				checker.EXPECT().CheckHealth(gomock.Any()).Return(err)
				checks[name] = checker
			}

			handler := NewHealthHandler("analyzer", "1.2.3", checks, &testutil.TestLogger{})
			w := httptest.NewRecorder()
			handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			var status models.HealthStatus
			require.NoError(t, json.NewDecoder(w.Body).Decode(&status))
			assert.Equal(t, tt.expectedState, status.Status)
			assert.Equal(t, "analyzer", status.Service)
			assert.Equal(t, "1.2.3", status.Version)
			assert.Equal(t, "0m", status.Uptime)
			for name, err := range tt.checks {
				if err != nil {
					assert.True(t, strings.HasPrefix(status.Checks[name], "unhealthy: "))
				} else {
					assert.Equal(t, "healthy", status.Checks[name])
				}
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "5m", formatDuration(5*time.Minute))
	assert.Equal(t, "2h 3m", formatDuration(2*time.Hour+3*time.Minute))
	assert.Equal(t, "1d 1h 0m", formatDuration(25*time.Hour))
}
