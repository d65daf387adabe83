package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferAdapter(level slog.Level) (interfaces.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewAdapter(slog.New(handler)), &buf
}

func TestNew(t *testing.T) {
	logger := New("test-service", slog.LevelInfo)

	assert.NotNil(t, logger)

	adapter, ok := logger.(*LoggerAdapter)
	assert.True(t, ok)
	assert.NotNil(t, adapter.logger)
}

func TestLoggerAdapter_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l interfaces.Logger)
		level string
		msg   string
	}{
		{"debug", func(l interfaces.Logger) { l.Debug("debug message", "key", "value") }, "DEBUG", "debug message"},
		{"info", func(l interfaces.Logger) { l.Info("info message", "key", "value") }, "INFO", "info message"},
		{"warn", func(l interfaces.Logger) { l.Warn("warn message", "key", "value") }, "WARN", "warn message"},
		{"error", func(l interfaces.Logger) { l.Error("error message", "key", "value") }, "ERROR", "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, buf := newBufferAdapter(slog.LevelDebug)

			tt.log(adapter)

			output := buf.String()
			assert.Contains(t, output, tt.msg)
			assert.Contains(t, output, `"level":"`+tt.level+`"`)
			assert.Contains(t, output, `"key":"value"`)
		})
	}
}

func TestLoggerAdapter_With(t *testing.T) {
	adapter, buf := newBufferAdapter(slog.LevelInfo)

	child := adapter.With("request_id", "req-123")
	child.Info("with context")

	assert.Contains(t, buf.String(), `"request_id":"req-123"`)

	buf.Reset()
	adapter.Info("without context")
	assert.NotContains(t, buf.String(), "request_id")
}

func TestNewWithWriter_ServiceMetadata(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("seo-analyzer", slog.LevelInfo, &buf)

	logger.Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "seo-analyzer", entry["service"])
	assert.Equal(t, float64(os.Getpid()), entry["pid"])
	assert.Equal(t, runtime.Version(), entry["go_version"])

	ts, ok := entry["time"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("svc", slog.LevelWarn, &buf)

	logger.Info("dropped")
	logger.Warn("kept")

	output := buf.String()
	assert.NotContains(t, output, "dropped")
	assert.Contains(t, output, "kept")
}

func TestNewWithFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger := NewWithFiles("seo-analyzer", slog.LevelInfo, dir)
	logger.Info("written to file")

	content, err := os.ReadFile(filepath.Join(dir, "seo-analyzer.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "written to file")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for input, want := range tests {
		assert.Equal(t, want, ParseLevel(input), "input %q", input)
	}
}

func TestWithContext(t *testing.T) {
	t.Run("with request id", func(t *testing.T) {
		adapter, buf := newBufferAdapter(slog.LevelInfo)
		ctx := ContextWithRequestID(context.Background(), "req-789")

		WithContext(ctx, adapter).Info("scoped")

		assert.Contains(t, buf.String(), `"request_id":"req-789"`)
		assert.Equal(t, "req-789", RequestIDFromContext(ctx))
	})

	t.Run("without request id", func(t *testing.T) {
		adapter, buf := newBufferAdapter(slog.LevelInfo)

		WithContext(context.Background(), adapter).Info("plain")

		assert.NotContains(t, buf.String(), "request_id")
	})

	t.Run("untyped key is ignored", func(t *testing.T) {
		adapter, buf := newBufferAdapter(slog.LevelInfo)
		ctx := context.WithValue(context.Background(), "request_id", "req-1") //nolint:staticcheck

		WithContext(ctx, adapter).Info("plain")

		assert.False(t, strings.Contains(buf.String(), "req-1"))
	})
}

func TestWithError(t *testing.T) {
	adapter, buf := newBufferAdapter(slog.LevelInfo)

	WithError(adapter, errors.New("boom")).Error("failed")
	assert.Contains(t, buf.String(), `"error":"boom"`)

	buf.Reset()
	WithError(adapter, nil).Info("fine")
	assert.NotContains(t, buf.String(), `"error"`)
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.NotPanics(t, func() {
		logger.With("k", "v").Error("nothing")
	})
}
