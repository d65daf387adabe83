package core

import (
	"math"
	"strings"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/models"
)

const (
	BlockingNone      = "None"
	BlockingNoindex   = "Meta Tag (noindex)"
	BlockingNoRobots  = "Missing Robots.txt"
	BlockingRobotsAll = "Robots.txt (Disallow: /)"
)

// Merge joins the branch outputs into one result. Nil collections left by
// a failed branch are replaced with empty ones before anything is read.
func Merge(raw models.RawFetchResult, extraction models.ExtractionBundle, aux models.AuxiliaryBundle, pageURL string) *models.AnalysisResult {
	extraction = extractionDefaults(extraction)
	aux = auxiliaryDefaults(aux)

	result := &models.AnalysisResult{
		URL:              pageURL,
		ExtractionBundle: extraction,
		AuxiliaryBundle:  aux,
		Issues:           []models.Issue{},
		ResponseTimeMs:   raw.ElapsedMs,
		CoreWebVitals: models.CoreWebVitals{
			LCP: models.NotAvailable,
			CLS: models.NotAvailable,
			FCP: models.NotAvailable,
		},
		AuditSource: models.AuditSourceLocal,
		Probes:      map[string]models.ProbeStatus{},
		AnalyzedAt:  time.Now().UTC(),
	}
	result.IndexStatus = indexability(extraction, aux.Crawl)

	return result
}

// indexability decides whether search engines may index the page
func indexability(extraction models.ExtractionBundle, crawl models.CrawlReport) models.IndexStatus {
	status := models.IndexStatus{
		IsIndexable:    true,
		BlockingFactor: BlockingNone,
		SitemapCount:   crawl.SitemapPageCount,
	}

	switch {
	case strings.Contains(strings.ToLower(extraction.Meta.Robots), "noindex"):
		status.BlockingFactor = BlockingNoindex
	case crawl.RobotsStatus == models.RobotsMissing:
		status.BlockingFactor = BlockingNoRobots
	case crawl.RobotsStatus == models.RobotsBlockedAll:
		status.BlockingFactor = BlockingRobotsAll
	}

	if status.BlockingFactor != BlockingNone {
		status.IsIndexable = false
		return status
	}

	status.EstimatedPages = max(1, int(math.Round(float64(extraction.Links.Internal)*1.2)))
	return status
}

func extractionDefaults(b models.ExtractionBundle) models.ExtractionBundle {
	d := models.NewExtractionBundle()
	if b.Keywords == nil {
		b.Keywords = d.Keywords
	}
	if b.Links.Edges == nil {
		b.Links.Edges = d.Links.Edges
	}
	if b.Links.Discovered == nil {
		b.Links.Discovered = d.Links.Discovered
	}
	if b.Images == nil {
		b.Images = d.Images
	}
	if b.ImageStats.MissingAltSources == nil {
		b.ImageStats.MissingAltSources = d.ImageStats.MissingAltSources
	}
	if b.Headings == nil {
		b.Headings = d.Headings
	}
	if b.Schemas == nil {
		b.Schemas = d.Schemas
	}
	if b.TechStack == nil {
		b.TechStack = d.TechStack
	}
	if b.Content.Sentiment.Tone == "" {
		b.Content.Sentiment.Tone = d.Content.Sentiment.Tone
	}
	if b.Social.Links == nil {
		b.Social.Links = d.Social.Links
	}
	if b.Hreflangs == nil {
		b.Hreflangs = d.Hreflangs
	}
	if b.Assets.Scripts == nil {
		b.Assets.Scripts = d.Assets.Scripts
	}
	return b
}

func auxiliaryDefaults(b models.AuxiliaryBundle) models.AuxiliaryBundle {
	if b.Crawl.RobotsStatus == "" {
		b.Crawl.RobotsStatus = models.RobotsMissing
	}
	if b.BrokenLinks == nil {
		b.BrokenLinks = []string{}
	}
	if b.TLS.Issuer == "" {
		b.TLS.Issuer = models.Unknown
	}
	if b.DNS.HostIP == "" {
		b.DNS.HostIP = models.Unknown
	}
	if b.DNS.MX == nil {
		b.DNS.MX = []models.MXRecord{}
	}
	if b.DNS.TXT == nil {
		b.DNS.TXT = []string{}
	}
	if b.HostIP == "" {
		b.HostIP = b.DNS.HostIP
	}
	return b
}
