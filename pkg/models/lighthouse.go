package models

import "math"

// LighthouseReport is the subset of a Lighthouse result the scorer reads.
// Scores are pointers because Lighthouse reports null for audits that do
// not apply.
type LighthouseReport struct {
	Categories map[string]LighthouseCategory `json:"categories"`
	Audits     map[string]LighthouseAudit    `json:"audits"`
}

type LighthouseCategory struct {
	Score *float64 `json:"score"`
}

type LighthouseAudit struct {
	Score        *float64      `json:"score"`
	DisplayValue string        `json:"displayValue,omitempty"`
	Details      *AuditDetails `json:"details,omitempty"`
}

type AuditDetails struct {
	OverallSavingsMs    float64     `json:"overallSavingsMs,omitempty"`
	OverallSavingsBytes float64     `json:"overallSavingsBytes,omitempty"`
	Items               []AuditItem `json:"items,omitempty"`
}

type AuditItem struct {
	URL  string     `json:"url,omitempty"`
	Node *AuditNode `json:"node,omitempty"`
}

type AuditNode struct {
	Snippet string `json:"snippet,omitempty"`
}

// HasCategories reports whether the report carries any category scores
func (r *LighthouseReport) HasCategories() bool {
	return r != nil && len(r.Categories) > 0
}

// CategoryScore returns the 0-100 score of a category, 0 when absent
func (r *LighthouseReport) CategoryScore(name string) int {
	if r == nil {
		return 0
	}
	c, ok := r.Categories[name]
	if !ok || c.Score == nil {
		return 0
	}
	return int(math.Round(*c.Score * 100))
}

// DisplayValue returns the display string of an audit, or N/A
func (r *LighthouseReport) DisplayValue(audit string) string {
	if r == nil {
		return NotAvailable
	}
	a, ok := r.Audits[audit]
	if !ok || a.DisplayValue == "" {
		return NotAvailable
	}
	return a.DisplayValue
}
