// Package testutil holds hand-written test doubles shared by package tests.
package testutil

import (
	"sync"

	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
)

type LogCall struct {
	Message string
	Args    []any
}

// TestLogger implements the Logger interface for testing. It is safe for
// concurrent use because pipeline branches log from several goroutines.
type TestLogger struct {
	mu         sync.Mutex
	InfoCalls  []LogCall
	ErrorCalls []LogCall
	DebugCalls []LogCall
	WarnCalls  []LogCall
}

func (t *TestLogger) record(dst *[]LogCall, msg string, args []any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	*dst = append(*dst, LogCall{Message: msg, Args: args})
}

func (t *TestLogger) Info(msg string, args ...any)  { t.record(&t.InfoCalls, msg, args) }
func (t *TestLogger) Debug(msg string, args ...any) { t.record(&t.DebugCalls, msg, args) }
func (t *TestLogger) Error(msg string, args ...any) { t.record(&t.ErrorCalls, msg, args) }
func (t *TestLogger) Warn(msg string, args ...any)  { t.record(&t.WarnCalls, msg, args) }

func (t *TestLogger) With(args ...any) interfaces.Logger {
	return t
}

// Messages returns every logged message at the given level
func (t *TestLogger) Messages(level string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var calls []LogCall
	switch level {
	case "info":
		calls = t.InfoCalls
	case "error":
		calls = t.ErrorCalls
	case "debug":
		calls = t.DebugCalls
	case "warn":
		calls = t.WarnCalls
	}

	msgs := make([]string, 0, len(calls))
	for _, c := range calls {
		msgs = append(msgs, c.Message)
	}
	return msgs
}

func (t *TestLogger) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.InfoCalls = nil
	t.ErrorCalls = nil
	t.DebugCalls = nil
	t.WarnCalls = nil
}

type RequestCall struct {
	Method     string
	Path       string
	StatusCode int
	Duration   float64
}

type ProbeCall struct {
	Probe string
	OK    bool
}

// MetricsRecorder implements interfaces.MetricsCollector and keeps every call
type MetricsRecorder struct {
	mu           sync.Mutex
	Requests     []RequestCall
	Analyses     []bool
	LinkChecks   []bool
	Probes       []ProbeCall
	Enrichments  []string
	CacheLookups []bool
}

func (m *MetricsRecorder) RecordRequest(method, path string, statusCode int, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, RequestCall{method, path, statusCode, duration})
}

func (m *MetricsRecorder) RecordAnalysis(success bool, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Analyses = append(m.Analyses, success)
}

func (m *MetricsRecorder) RecordLinkCheck(success bool, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LinkChecks = append(m.LinkChecks, success)
}

func (m *MetricsRecorder) RecordProbe(probe string, ok bool, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Probes = append(m.Probes, ProbeCall{probe, ok})
}

func (m *MetricsRecorder) RecordEnrichment(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Enrichments = append(m.Enrichments, source)
}

func (m *MetricsRecorder) RecordCacheLookup(hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheLookups = append(m.CacheLookups, hit)
}

// ProbeOK returns the recorded outcome of a probe and whether it was recorded
func (m *MetricsRecorder) ProbeOK(probe string) (ok, found bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.Probes {
		if p.Probe == probe {
			return p.OK, true
		}
	}
	return false, false
}

var (
	_ interfaces.Logger           = (*TestLogger)(nil)
	_ interfaces.MetricsCollector = (*MetricsRecorder)(nil)
)
