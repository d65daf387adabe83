package interfaces

import (
	"context"
	"net/url"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/models"
)

// Analyzer defines the contract for running a full page analysis
type Analyzer interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResponse, error)
}

// Fetcher retrieves the raw markup of a page.
// A failed fetch is returned as the empty sentinel, never as an error.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string, strategy models.Strategy) models.RawFetchResult
}

// Extractor derives every markup signal from a fetched page
type Extractor interface {
	Extract(raw models.RawFetchResult, baseURL string) models.ExtractionBundle
}

// CrawlProber inspects robots.txt and the sitemap of a site.
// The report carries documented defaults even when an error is returned.
type CrawlProber interface {
	Probe(ctx context.Context, site *url.URL) (models.CrawlReport, error)
}

// LinkChecker defines the contract for checking link accessibility
type LinkChecker interface {
	CheckLinks(ctx context.Context, links []models.Link) ([]models.LinkStatus, error)
	CheckLink(ctx context.Context, link models.Link) models.LinkStatus
}

// SecurityAuditor reports the security headers served for a page
type SecurityAuditor interface {
	Audit(ctx context.Context, pageURL string) (models.SecurityHeaders, error)
}

// TLSInspector judges the certificate a host presents
type TLSInspector interface {
	Inspect(ctx context.Context, host string) (models.TLSReport, error)
}

// DNSInspector resolves the address and mail records of a host
type DNSInspector interface {
	Inspect(ctx context.Context, host string) (models.DNSReport, error)
}

// AuditProvider fetches an external performance audit for a page
type AuditProvider interface {
	Audit(ctx context.Context, pageURL string, strategy models.Strategy) (*models.LighthouseReport, error)
}

// Enricher turns analysis results into natural-language text.
// Implementations never fail: they fall back to rule-based text.
type Enricher interface {
	Summarize(ctx context.Context, result *models.AnalysisResult) models.Summary
	Reply(ctx context.Context, req models.CopilotRequest) models.CopilotResponse
	Generate(ctx context.Context, req models.GenerateRequest) (models.GenerateResponse, error)
}

// TextGenerator is a generative-text backend
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// HTTPClient defines the contract for HTTP operations
type HTTPClient interface {
	Get(ctx context.Context, url string) (*models.HTTPResponse, error)
	Head(ctx context.Context, url string) (*models.HTTPResponse, error)
}

// Logger defines the contract for logging operations
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordRequest(method, path string, statusCode int, duration float64)
	RecordAnalysis(success bool, duration float64)
	RecordLinkCheck(success bool, duration float64)
	RecordProbe(probe string, ok bool, duration float64)
	RecordEnrichment(source string)
	RecordCacheLookup(hit bool)
}

// Cache defines the contract for caching operations
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// HealthChecker defines the contract for health check operations
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}
