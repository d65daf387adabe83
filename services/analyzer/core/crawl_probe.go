package core

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
)

var (
	blockAllPattern  = regexp.MustCompile(`(?i)User-agent:\s*\*\s*[\r\n]+Disallow:\s*/\s*($|[\r\n])`)
	sitemapDirective = regexp.MustCompile(`(?i)Sitemap:\s*(https?://\S+)`)
)

// Conventional sitemap locations tried after the declared one
var sitemapFallbackPaths = []string{"/sitemap.xml", "/sitemap_index.xml", "/wp-sitemap.xml"}

// CrawlProbe classifies robots.txt and finds the first usable sitemap
type CrawlProbe struct {
	client         interfaces.HTTPClient
	logger         interfaces.Logger
	robotsTimeout  time.Duration
	sitemapTimeout time.Duration
}

func NewCrawlProbe(client interfaces.HTTPClient, logger interfaces.Logger, robotsTimeout, sitemapTimeout time.Duration) *CrawlProbe {
	return &CrawlProbe{
		client:         client,
		logger:         logger,
		robotsTimeout:  robotsTimeout,
		sitemapTimeout: sitemapTimeout,
	}
}

// Probe implements interfaces.CrawlProber. robots.txt failing to load is
// reported as Missing and returned as an error; sitemap misses are not errors.
func (p *CrawlProbe) Probe(ctx context.Context, site *url.URL) (models.CrawlReport, error) {
	report := models.CrawlReport{RobotsStatus: models.RobotsMissing}
	root := siteRoot(site)

	robots, robotsErr := p.fetchRobots(ctx, root)
	declared := ""
	if robotsErr == nil {
		report.RobotsStatus = classifyRobots(robots)
		declared = declaredSitemap(robots)
	}

	for _, candidate := range sitemapCandidates(root, declared) {
		if ctx.Err() != nil {
			break
		}
		count, ok := p.trySitemap(ctx, candidate)
		if !ok {
			continue
		}
		report.SitemapURL = candidate
		report.SitemapFound = true
		report.SitemapPageCount = count
		break
	}

	if !report.SitemapFound && declared != "" {
		report.SitemapURL = declared
	}

	return report, robotsErr
}

func (p *CrawlProbe) fetchRobots(ctx context.Context, root *url.URL) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.robotsTimeout)
	defer cancel()

	resp, err := p.client.Get(ctx, root.String()+"/robots.txt")
	if err != nil {
		return "", fmt.Errorf("robots.txt: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("robots.txt: unexpected status %d", resp.StatusCode)
	}
	return string(resp.Body), nil
}

func (p *CrawlProbe) trySitemap(ctx context.Context, candidate string) (int, bool) {
	ctx, cancel := context.WithTimeout(ctx, p.sitemapTimeout)
	defer cancel()

	resp, err := p.client.Get(ctx, candidate)
	if err != nil {
		p.logger.Debug("Sitemap candidate failed", "url", candidate, "error", err)
		return 0, false
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, false
	}
	return sitemapLocCount(string(resp.Body))
}

// classifyRobots detects a blanket "User-agent: * / Disallow: /"
func classifyRobots(body string) models.RobotsStatus {
	if blockAllPattern.MatchString(body) {
		return models.RobotsBlockedAll
	}
	return models.RobotsAllowed
}

func declaredSitemap(body string) string {
	m := sitemapDirective.FindStringSubmatch(body)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// sitemapCandidates lists the declared sitemap first, then the conventional paths
func sitemapCandidates(root *url.URL, declared string) []string {
	candidates := []string{declared}
	for _, p := range sitemapFallbackPaths {
		candidates = append(candidates, root.String()+p)
	}
	return dedupe(candidates)
}

// sitemapLocCount accepts urlset and sitemapindex documents with at least one <loc>
func sitemapLocCount(body string) (int, bool) {
	if !strings.Contains(body, "<urlset") && !strings.Contains(body, "<sitemapindex") {
		return 0, false
	}
	count := strings.Count(body, "<loc>")
	return count, count > 0
}

var _ interfaces.CrawlProber = (*CrawlProbe)(nil)
