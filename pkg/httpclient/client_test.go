package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return mockLogger
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	timeout := 30 * time.Second

	client := New(timeout, mockLogger)

	assert.NotNil(t, client)
	assert.NotNil(t, client.client)
	assert.Equal(t, mockLogger, client.logger)
	assert.Equal(t, timeout, client.timeout)
	assert.Equal(t, timeout, client.client.Timeout)
	assert.False(t, client.insecure)
	assert.Equal(t, []string{defaultUserAgent}, client.userAgents)

	var _ interfaces.HTTPClient = client
}

func TestClientGetSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)

	expectedBody := "<html><head><title>Test Page</title></head><body>Test Content</body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, defaultUserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8", r.Header.Get("Accept"))
		assert.Equal(t, "en-US,en;q=0.9", r.Header.Get("Accept-Language"))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("X-Frame-Options", "DENY")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(expectedBody))
	}))
	defer server.Close()

	mockLogger.EXPECT().Debug("Making HTTP request",
		"method", "GET",
		"url", server.URL).Times(1)
	mockLogger.EXPECT().Debug("HTTP response received",
		"url", server.URL,
		"status_code", 200,
		"content_length", len(expectedBody),
		"duration", gomock.Any()).Times(1)

	client := New(30*time.Second, mockLogger)

	resp, err := client.Get(context.Background(), server.URL)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, expectedBody, string(resp.Body))
	assert.Equal(t, "DENY", resp.Headers.Get("X-Frame-Options"))
}

func TestClientGet_UserAgentPoolAndHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pool := []string{"agent-a", "agent-b"}
	seen := make(chan string, 20)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
		seen <- r.Header.Get("User-Agent")
	}))
	defer server.Close()

	client := New(5*time.Second, quietLogger(ctrl),
		WithUserAgents(pool...),
		WithHeader("Cache-Control", "no-cache"),
	)

	for i := 0; i < 20; i++ {
		_, err := client.Get(context.Background(), server.URL)
		require.NoError(t, err)
	}
	close(seen)

	for ua := range seen {
		assert.Contains(t, pool, ua)
	}
}

func TestClientGet_NonSuccessStatusIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not found"))
	}))
	defer server.Close()

	client := New(5*time.Second, quietLogger(ctrl))

	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClientGet_InvalidURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := New(5*time.Second, mocks.NewMockLogger(ctrl))

	resp, err := client.Get(context.Background(), "://bad url")
	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "failed to create request")
}

func TestClientGet_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := New(5*time.Second, quietLogger(ctrl))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	resp, err := client.Get(ctx, server.URL)
	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClientGet_TranscodesCharset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		w.Write([]byte("<p>caf\xe9</p>"))
	}))
	defer server.Close()

	client := New(5*time.Second, quietLogger(ctrl))

	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "<p>café</p>", string(resp.Body))
}

func TestClient_InsecureTLS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	strict := New(5*time.Second, quietLogger(ctrl))
	_, err := strict.Get(context.Background(), server.URL)
	assert.Error(t, err, "self-signed certificate must be rejected by default")

	relaxed := New(5*time.Second, quietLogger(ctrl), WithInsecureTLS())
	resp, err := relaxed.Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClientHead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.Header().Add("Set-Cookie", "a=1; Secure")
		w.Header().Add("Set-Cookie", "b=2")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(5*time.Second, quietLogger(ctrl))

	resp, err := client.Head(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Nil(t, resp.Body)
	assert.Len(t, resp.Headers.Values("Set-Cookie"), 2)
}

func TestToUTF8(t *testing.T) {
	assert.Equal(t, []byte("plain"), toUTF8([]byte("plain"), "text/plain"))
	assert.Equal(t, []byte{}, toUTF8([]byte{}, "text/html"))
	assert.Equal(t, "<b>ok</b>", string(toUTF8([]byte("<b>ok</b>"), "text/html; charset=utf-8")))
}
