package models

import "time"

// RawFetchResult is the outcome of the primary content fetch. A failed
// fetch is represented by EmptyFetchResult, never by nil.
type RawFetchResult struct {
	HTML       string
	Headers    map[string]string
	StatusCode int
	ElapsedMs  int64
	FinalURL   string
	Err        string
}

// EmptyFetchResult returns the sentinel used when the page could not be fetched
func EmptyFetchResult(elapsedMs int64, err error) RawFetchResult {
	r := RawFetchResult{Headers: map[string]string{}, ElapsedMs: elapsedMs}
	if err != nil {
		r.Err = err.Error()
	}
	return r
}

// Empty reports whether the fetch produced no markup
func (r RawFetchResult) Empty() bool {
	return r.HTML == ""
}

// PageMeta holds the head-level metadata of a page
type PageMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	H1          string `json:"h1"`
	H1Count     int    `json:"h1_count"`
	Canonical   string `json:"canonical"`
	Robots      string `json:"robots"`
	Generator   string `json:"generator"`
	Viewport    string `json:"viewport"`
	OGImage     string `json:"og_image"`
}

type Keyword struct {
	Word    string  `json:"word"`
	Count   int     `json:"count"`
	Density float64 `json:"density"`
}

type LinkEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// LinkProfile summarizes the anchors of a page
type LinkProfile struct {
	Internal   int        `json:"internal"`
	External   int        `json:"external"`
	Dofollow   int        `json:"dofollow"`
	Nofollow   int        `json:"nofollow"`
	Total      int        `json:"total"`
	Edges      []LinkEdge `json:"edges"`
	Discovered []Link     `json:"-"`
}

type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// ImageStats are computed over every image on the page, not the truncated list
type ImageStats struct {
	Total             int      `json:"total"`
	MissingAlt        int      `json:"missing_alt"`
	MissingAltSources []string `json:"missing_alt_sources"`
}

type Heading struct {
	Level int    `json:"level"`
	Tag   string `json:"tag"`
	Text  string `json:"text"`
}

type Sentiment struct {
	Score     int    `json:"score"`
	Tone      string `json:"tone"`
	WordsSeen int    `json:"words_seen"`
}

type ContentStats struct {
	WordCount       int       `json:"word_count"`
	TextToHTMLRatio int       `json:"text_to_html_ratio"`
	Readability     int       `json:"readability"`
	Sentiment       Sentiment `json:"sentiment"`
	SampleSentence  string    `json:"sample_sentence"`
}

type Branding struct {
	HasFavicon   bool `json:"has_favicon"`
	HasAppleIcon bool `json:"has_apple_icon"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type Social struct {
	OGType      string       `json:"og_type"`
	TwitterCard string       `json:"twitter_card"`
	Links       []SocialLink `json:"links"`
}

type Hreflang struct {
	Lang string `json:"lang"`
	URL  string `json:"url"`
}

type DOMStats struct {
	Elements int `json:"elements"`
	Depth    int `json:"depth"`
}

type AssetStats struct {
	CSS     int      `json:"css"`
	JS      int      `json:"js"`
	Scripts []string `json:"scripts"`
}

// ExtractionBundle is the union of every markup-derived signal
type ExtractionBundle struct {
	Meta       PageMeta     `json:"meta"`
	Keywords   []Keyword    `json:"keywords"`
	Links      LinkProfile  `json:"links"`
	Images     []Image      `json:"images"`
	ImageStats ImageStats   `json:"image_stats"`
	Headings   []Heading    `json:"headings"`
	Schemas    []string     `json:"schemas"`
	TechStack  []string     `json:"tech_stack"`
	Content    ContentStats `json:"content"`
	Branding   Branding     `json:"branding"`
	Social     Social       `json:"social"`
	Hreflangs  []Hreflang   `json:"hreflangs"`
	DOM        DOMStats     `json:"dom"`
	Assets     AssetStats   `json:"assets"`
}

// NewExtractionBundle returns a bundle whose collections are all empty, not nil
func NewExtractionBundle() ExtractionBundle {
	return ExtractionBundle{
		Keywords:   []Keyword{},
		Links:      LinkProfile{Edges: []LinkEdge{}, Discovered: []Link{}},
		Images:     []Image{},
		ImageStats: ImageStats{MissingAltSources: []string{}},
		Headings:   []Heading{},
		Schemas:    []string{},
		TechStack:  []string{},
		Content:    ContentStats{Readability: 50, Sentiment: Sentiment{Tone: ToneNeutral}},
		Social:     Social{Links: []SocialLink{}},
		Hreflangs:  []Hreflang{},
		Assets:     AssetStats{Scripts: []string{}},
	}
}

const (
	TonePositive = "Positive"
	ToneNegative = "Negative"
	ToneNeutral  = "Neutral"
)

type RobotsStatus string

const (
	RobotsAllowed    RobotsStatus = "Allowed"
	RobotsBlockedAll RobotsStatus = "Blocked (All)"
	RobotsMissing    RobotsStatus = "Missing"
)

// CrawlReport is the robots.txt and sitemap probe outcome
type CrawlReport struct {
	RobotsStatus     RobotsStatus `json:"robots_status"`
	SitemapURL       string       `json:"sitemap_url,omitempty"`
	SitemapFound     bool         `json:"sitemap_found"`
	SitemapPageCount int          `json:"sitemap_page_count"`
}

type SecurityHeaders struct {
	XSS           bool   `json:"xss"`
	ContentType   bool   `json:"content_type"`
	FrameOptions  bool   `json:"frame_options"`
	HSTS          bool   `json:"hsts"`
	CookieCount   int    `json:"cookie_count"`
	SecureCookies bool   `json:"secure_cookies"`
	Server        string `json:"server"`
}

type TLSReport struct {
	Valid         bool       `json:"valid"`
	Issuer        string     `json:"issuer"`
	DaysRemaining int        `json:"days_remaining"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

type MXRecord struct {
	Host     string `json:"host"`
	Priority uint16 `json:"priority"`
}

type DNSReport struct {
	HostIP string     `json:"host_ip"`
	MX     []MXRecord `json:"mx"`
	TXT    []string   `json:"txt"`
	SPF    bool       `json:"spf"`
	DMARC  bool       `json:"dmarc"`
}

const Unknown = "Unknown"

// AuxiliaryBundle is the union of the network probe outcomes
type AuxiliaryBundle struct {
	Crawl       CrawlReport     `json:"crawl"`
	BrokenLinks []string        `json:"broken_links"`
	Security    SecurityHeaders `json:"security_headers"`
	TLS         TLSReport       `json:"tls"`
	DNS         DNSReport       `json:"dns"`
	HostIP      string          `json:"host_ip"`
}

// NewAuxiliaryBundle returns the documented probe defaults
func NewAuxiliaryBundle() AuxiliaryBundle {
	return AuxiliaryBundle{
		Crawl:       CrawlReport{RobotsStatus: RobotsMissing},
		BrokenLinks: []string{},
		TLS:         TLSReport{Issuer: Unknown},
		DNS:         DNSReport{HostIP: Unknown, MX: []MXRecord{}, TXT: []string{}},
		HostIP:      Unknown,
	}
}

type Scores struct {
	SEO           int `json:"seo"`
	Performance   int `json:"performance"`
	Accessibility int `json:"accessibility"`
	BestPractices int `json:"best_practices"`
}

type CoreWebVitals struct {
	LCP string `json:"lcp"`
	CLS string `json:"cls"`
	FCP string `json:"fcp"`
}

const NotAvailable = "N/A"

type IndexStatus struct {
	IsIndexable    bool   `json:"is_indexable"`
	BlockingFactor string `json:"blocking_factor"`
	EstimatedPages int    `json:"estimated_pages"`
	SitemapCount   int    `json:"sitemap_count"`
}

// ProbeStatus records whether a pipeline branch succeeded or fell back to defaults
type ProbeStatus struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

const (
	AuditSourceExternal = "external"
	AuditSourceLocal    = "local"
)

// AnalysisResult is the aggregate record returned for one analysis
type AnalysisResult struct {
	URL string `json:"url"`
	ExtractionBundle
	AuxiliaryBundle
	Scores         Scores                 `json:"scores"`
	CoreWebVitals  CoreWebVitals          `json:"core_web_vitals"`
	Issues         []Issue                `json:"issues"`
	ResponseTimeMs int64                  `json:"response_time_ms"`
	IndexStatus    IndexStatus            `json:"index_status"`
	AuditSource    string                 `json:"audit_source"`
	Probes         map[string]ProbeStatus `json:"probes"`
	AnalyzedAt     time.Time              `json:"analyzed_at"`
}

type IssueCategory string

const (
	CategorySEO           IssueCategory = "SEO"
	CategoryContent       IssueCategory = "Content"
	CategoryAccessibility IssueCategory = "Accessibility"
	CategoryPerformance   IssueCategory = "Performance"
	CategorySecurity      IssueCategory = "Security"
)

type IssuePriority string

const (
	PriorityCritical IssuePriority = "Critical"
	PriorityHigh     IssuePriority = "High"
	PriorityMedium   IssuePriority = "Medium"
	PriorityLow      IssuePriority = "Low"
)

type Issue struct {
	Category      IssueCategory `json:"category"`
	Priority      IssuePriority `json:"priority"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Fix           string        `json:"fix"`
	AffectedItems []string      `json:"affected_items,omitempty"`
}
