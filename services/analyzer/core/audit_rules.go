package core

import (
	"fmt"
	"math"

	"github.com/RuvinSL/seo-analyzer/pkg/models"
)

type auditTrigger int

const (
	belowPassing auditTrigger = iota // score < 0.9
	auditFailed                      // score == 0
)

// auditRule turns one Lighthouse audit into an issue
type auditRule struct {
	audit    string
	trigger  auditTrigger
	category models.IssueCategory
	priority models.IssuePriority
	title    string
	desc     func(models.LighthouseAudit) string
	fix      string
	// snippets selects node snippets instead of urls as affected items
	snippets bool
	// items is false for rules that never list affected items
	items bool
}

func staticDesc(s string) func(models.LighthouseAudit) string {
	return func(models.LighthouseAudit) string { return s }
}

var auditRules = []auditRule{
	{
		audit: "uses-optimized-images", trigger: belowPassing,
		category: models.CategoryPerformance, priority: models.PriorityHigh,
		title: "Optimize Images",
		desc: func(a models.LighthouseAudit) string {
			var bytes float64
			if a.Details != nil {
				bytes = a.Details.OverallSavingsBytes
			}
			return fmt.Sprintf("Compress images to save data. Potential savings: %.0fKB.", math.Round(bytes/1024))
		},
		fix:   "Use WebP format and compress images.",
		items: true,
	},
	{
		audit: "offscreen-images", trigger: belowPassing,
		category: models.CategoryPerformance, priority: models.PriorityMedium,
		title: "Defer Offscreen Images",
		desc:  staticDesc("Lazy load images that are below the fold."),
		fix:   `Add loading="lazy" attribute to <img> tags.`,
		items: true,
	},
	{
		audit: "unused-css-rules", trigger: belowPassing,
		category: models.CategoryPerformance, priority: models.PriorityMedium,
		title: "Remove Unused CSS",
		desc:  staticDesc("Reduce file size by removing unused styles."),
		fix:   "Check coverage tab in Chrome DevTools and remove dead code.",
		items: true,
	},
	{
		audit: "render-blocking-resources", trigger: belowPassing,
		category: models.CategoryPerformance, priority: models.PriorityHigh,
		title: "Eliminate Render-Blocking Resources",
		desc:  staticDesc("Resources are blocking the first paint of your page."),
		fix:   "Inline critical CSS and defer non-critical JS.",
		items: true,
	},
	{
		audit: "document-title", trigger: auditFailed,
		category: models.CategorySEO, priority: models.PriorityCritical,
		title: "Missing Title Tag",
		desc:  staticDesc("The page lacks a title tag."),
		fix:   "Add <title> tag.",
	},
	{
		audit: "meta-description", trigger: auditFailed,
		category: models.CategorySEO, priority: models.PriorityHigh,
		title: "Missing Meta Description",
		desc:  staticDesc("No description found."),
		fix:   `Add <meta name="description">.`,
	},
	{
		audit: "link-text", trigger: belowPassing,
		category: models.CategorySEO, priority: models.PriorityMedium,
		title: "Non-Descriptive Links",
		desc:  staticDesc(`Links like "click here" are bad for SEO.`),
		fix:   "Use descriptive text for links.",
		items: true, snippets: true,
	},
	{
		audit: "image-alt", trigger: belowPassing,
		category: models.CategoryAccessibility, priority: models.PriorityHigh,
		title: "Missing Alt Text",
		desc:  staticDesc("Images missing alt attributes."),
		fix:   `Add alt="" to images for SEO & screen readers.`,
		items: true, snippets: true,
	},
	{
		audit: "is-on-https", trigger: auditFailed,
		category: models.CategorySecurity, priority: models.PriorityCritical,
		title: "Not Using HTTPS",
		desc:  staticDesc("Site is insecure."),
		fix:   "Install SSL certificate immediately.",
	},
}

// auditIssues applies the rule table in order. Audits that are absent or
// carry a null score never fire.
func auditIssues(report *models.LighthouseReport) []models.Issue {
	issues := []models.Issue{}
	for _, rule := range auditRules {
		a, ok := report.Audits[rule.audit]
		if !ok || a.Score == nil || !rule.fires(*a.Score) {
			continue
		}
		issue := models.Issue{
			Category:    rule.category,
			Priority:    rule.priority,
			Title:       rule.title,
			Description: rule.desc(a),
			Fix:         rule.fix,
		}
		if rule.items {
			issue.AffectedItems = affectedItems(a, rule.snippets)
		}
		issues = append(issues, issue)
	}
	return issues
}

func (r auditRule) fires(score float64) bool {
	if r.trigger == auditFailed {
		return score == 0
	}
	return score < 0.9
}

func affectedItems(a models.LighthouseAudit, snippets bool) []string {
	if a.Details == nil {
		return nil
	}
	var items []string
	for _, it := range a.Details.Items {
		switch {
		case snippets && it.Node != nil && it.Node.Snippet != "":
			items = append(items, it.Node.Snippet)
		case !snippets && it.URL != "":
			items = append(items, it.URL)
		}
	}
	return items
}
