package core

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/RuvinSL/seo-analyzer/pkg/models"
)

// Baseline scores of a page scanned without an external audit
const (
	baseSEO           = 100
	basePerformance   = 70
	baseAccessibility = 80
	baseBestPractices = 80
)

const (
	minTitleLength       = 30
	thinContentWords     = 300
	stuffingDensityLimit = 5.0
)

// Score fills scores, vitals and issues on result. A report with category
// scores takes precedence over the local heuristics.
func Score(result *models.AnalysisResult, report *models.LighthouseReport) {
	if report.HasCategories() {
		result.AuditSource = models.AuditSourceExternal
		result.Scores = models.Scores{
			SEO:           report.CategoryScore("seo"),
			Performance:   report.CategoryScore("performance"),
			Accessibility: report.CategoryScore("accessibility"),
			BestPractices: report.CategoryScore("best-practices"),
		}
		result.CoreWebVitals = models.CoreWebVitals{
			LCP: report.DisplayValue("largest-contentful-paint"),
			CLS: report.DisplayValue("cumulative-layout-shift"),
			FCP: report.DisplayValue("first-contentful-paint"),
		}
		result.Issues = auditIssues(report)
		return
	}

	result.AuditSource = models.AuditSourceLocal
	result.Scores = mechanicalScores(result.Meta)
	result.CoreWebVitals = models.CoreWebVitals{
		LCP: fmt.Sprintf("%.1f s (Est)", float64(result.ResponseTimeMs)/1000),
		CLS: models.NotAvailable,
		FCP: models.NotAvailable,
	}
	result.Issues = mechanicalIssues(result)
}

func mechanicalScores(meta models.PageMeta) models.Scores {
	seo := baseSEO
	if meta.Title == "" {
		seo -= 30
	}
	if meta.Description == "" {
		seo -= 20
	}
	if meta.H1 == "" {
		seo -= 15
	}
	return models.Scores{
		SEO:           max(0, seo),
		Performance:   basePerformance,
		Accessibility: baseAccessibility,
		BestPractices: baseBestPractices,
	}
}

// mechanicalIssues evaluates every local rule in a fixed order
func mechanicalIssues(r *models.AnalysisResult) []models.Issue {
	issues := []models.Issue{}
	add := func(cat models.IssueCategory, prio models.IssuePriority, title, desc, fix string, items ...string) {
		issues = append(issues, models.Issue{
			Category:      cat,
			Priority:      prio,
			Title:         title,
			Description:   desc,
			Fix:           fix,
			AffectedItems: items,
		})
	}

	meta := r.Meta
	if meta.Title == "" {
		add(models.CategorySEO, models.PriorityCritical, "Missing Title Tag",
			"The page lacks a title tag.", "Add <title> tag to head.")
	} else if len([]rune(meta.Title)) < minTitleLength {
		add(models.CategorySEO, models.PriorityMedium, "Short Title",
			"Title is too short.", "Make title 50-60 characters.")
	}

	if meta.H1 == "" {
		add(models.CategorySEO, models.PriorityHigh, "Missing H1 Tag",
			"No H1 heading found.", "Add exactly one H1 tag describing the page.")
	} else if meta.H1Count > 1 {
		add(models.CategorySEO, models.PriorityMedium, "Multiple H1 Tags",
			"More than one H1 tag found.", "Ensure only one H1 per page for clear structure.")
	}

	if skipped := skippedHeadings(r.Headings); len(skipped) > 0 {
		add(models.CategorySEO, models.PriorityLow, "Skipped Heading Levels",
			fmt.Sprintf("Headings should not skip levels (e.g., H1 -> H3). Issues: %s...", strings.Join(skipped[:min(3, len(skipped))], ", ")),
			"Maintain sequential order (H1 -> H2 -> H3).")
	}

	if meta.Canonical == "" {
		add(models.CategorySEO, models.PriorityMedium, "Missing Canonical Tag",
			"Canonical tag helps prevent duplicate content issues.", `Add <link rel="canonical" href="...">.`)
	} else if comparableURL(meta.Canonical) != comparableURL(r.URL) {
		add(models.CategorySEO, models.PriorityLow, "Canonical Mismatch",
			"Canonical URL differs from current URL.", "Verify if this is intentional for duplicate content handling.")
	}

	if r.Content.WordCount < thinContentWords {
		add(models.CategoryContent, models.PriorityHigh, "Thin Content",
			fmt.Sprintf("Only %d words found.", r.Content.WordCount), "Add more text content (aim for 600+ words).")
	}

	if stuffed := stuffedKeywords(r.Keywords); len(stuffed) > 0 {
		add(models.CategoryContent, models.PriorityHigh, "Keyword Stuffing Detected",
			"Keywords with >5% density: "+strings.Join(stuffed, ", "),
			"Reduce keyword repetition to avoid penalty (keep under 3-4%).")
	}

	if r.ImageStats.MissingAlt > 0 {
		add(models.CategoryAccessibility, models.PriorityMedium, "Missing Alt Text",
			fmt.Sprintf("%d images are missing alt attributes.", r.ImageStats.MissingAlt),
			`Add alt="" description to images.`, r.ImageStats.MissingAltSources...)
	}

	for _, tech := range r.TechStack {
		if fix, ok := cmsFixes[tech]; ok {
			add(models.CategoryPerformance, models.PriorityMedium, tech+" Optimization",
				tech+" detected.", fix)
		}
	}

	if !r.Crawl.SitemapFound {
		add(models.CategorySEO, models.PriorityMedium, "Missing Sitemap",
			"Sitemap.xml not detected at root.", "Generate and submit sitemap.xml.")
	}

	if r.Crawl.RobotsStatus == models.RobotsMissing {
		add(models.CategorySEO, models.PriorityMedium, "Missing Robots.txt",
			"Robots.txt file not found.", "Create robots.txt to guide crawlers.")
	}

	if u, err := url.Parse(r.URL); err == nil && u.Scheme != "https" {
		add(models.CategorySecurity, models.PriorityCritical, "Not Using HTTPS",
			"Site is insecure.", "Install SSL certificate immediately.")
	}

	return issues
}

// cmsFixes maps a detected platform to its caching advice
var cmsFixes = map[string]string{
	"WordPress": "Install a caching plugin like WP Rocket or Autoptimize.",
	"Shopify":   "Remove unused apps and defer third-party app scripts.",
}

// skippedHeadings lists jumps such as "H3 follows H1". The first heading
// is compared against an implied H1.
func skippedHeadings(headings []models.Heading) []string {
	var skipped []string
	last := 1
	for _, h := range headings {
		if h.Level > last+1 {
			skipped = append(skipped, fmt.Sprintf("H%d follows H%d", h.Level, last))
		}
		last = h.Level
	}
	return skipped
}

func stuffedKeywords(keywords []models.Keyword) []string {
	var words []string
	for _, k := range keywords {
		if k.Density > stuffingDensityLimit {
			words = append(words, k.Word)
		}
	}
	return words
}
