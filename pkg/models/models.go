package models

import (
	"net/http"
	"time"
)

// Strategy selects the device profile a page is audited for
type Strategy string

const (
	StrategyMobile  Strategy = "mobile"
	StrategyDesktop Strategy = "desktop"
)

// Valid reports whether s is a known strategy
func (s Strategy) Valid() bool {
	return s == StrategyMobile || s == StrategyDesktop
}

// AnalysisRequest is the body of POST /analyze
type AnalysisRequest struct {
	URL               string            `json:"url" validate:"required"`
	ExternalAuditData *LighthouseReport `json:"externalAuditData,omitempty"`
	Strategy          Strategy          `json:"strategy,omitempty"`
}

// AnalysisResponse is the envelope returned for a successful analysis
type AnalysisResponse struct {
	Status     string          `json:"status"`
	Score      int             `json:"score"`
	AIAnalysis AIAnalysis      `json:"aiAnalysis"`
	Data       *AnalysisResult `json:"data"`
}

// AIAnalysis carries the summary, either model generated or rule based
type AIAnalysis struct {
	Score             int             `json:"score"`
	Summary           string          `json:"summary"`
	CompetitorInsight string          `json:"competitor_insight"`
	Suggestions       []Issue         `json:"suggestions"`
	Data              *AnalysisResult `json:"data,omitempty"`
	Source            string          `json:"source"`
}

// Summary is what the enricher produces for a finished analysis
type Summary struct {
	Summary           string
	CompetitorInsight string
	Source            string
}

const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// Link is a single anchor discovered on a page
type Link struct {
	URL      string   `json:"url"`
	Text     string   `json:"text"`
	Type     LinkType `json:"type"`
	NoFollow bool     `json:"nofollow"`
}

type LinkType string

const (
	LinkTypeInternal LinkType = "internal"
	LinkTypeExternal LinkType = "external"
	LinkTypeUnknown  LinkType = "unknown"
)

// LinkStatus is the outcome of a single existence check
type LinkStatus struct {
	Link       Link      `json:"link"`
	Accessible bool      `json:"accessible"`
	StatusCode int       `json:"status_code"`
	Error      string    `json:"error,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
}

type HTTPResponse struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

type ErrorResponse struct {
	Error      string    `json:"error"`
	StatusCode int       `json:"status_code"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// CopilotRequest is a chat message about a previously analyzed site
type CopilotRequest struct {
	Message  string      `json:"message"`
	SiteData SiteContext `json:"siteData"`
}

// SiteContext is the subset of a stored analysis the copilot reasons about
type SiteContext struct {
	Domain     string      `json:"domain"`
	Score      int         `json:"score"`
	Issues     int         `json:"issues"`
	AIAnalysis *AIAnalysis `json:"aiAnalysis,omitempty"`
}

type CopilotResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
}

// GenerateRequest asks for a rewritten title, description or h1
type GenerateRequest struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Current string `json:"current"`
}

type GenerateResponse struct {
	Result string `json:"result"`
	Source string `json:"source"`
}

// SiteToolRequest is shared by the sitemap, scan-links and check-link tools
type SiteToolRequest struct {
	URL string `json:"url"`
}

type SitemapResponse struct {
	URLs []string `json:"urls"`
}

type LinkListResponse struct {
	Links []string `json:"links"`
}
