package core

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
)

// HTMLExtractor parses fetched markup once and runs every signal extractor
// over the same read-only document
type HTMLExtractor struct {
	logger interfaces.Logger
}

func NewHTMLExtractor(logger interfaces.Logger) *HTMLExtractor {
	return &HTMLExtractor{logger: logger}
}

// Extract implements interfaces.Extractor. An empty or unparsable page
// yields the default bundle.
func (e *HTMLExtractor) Extract(raw models.RawFetchResult, baseURL string) models.ExtractionBundle {
	bundle := models.NewExtractionBundle()
	if raw.Empty() {
		return bundle
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw.HTML))
	if err != nil {
		e.logger.Warn("Failed to parse HTML", "url", baseURL, "error", err)
		return bundle
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	bundle.Meta = extractMeta(doc, base)
	bundle.Social = extractSocial(doc, base)
	bundle.Hreflangs = extractHreflangs(doc, base)
	bundle.Branding = extractBranding(doc)
	bundle.Links = extractLinks(doc, base)
	bundle.Images, bundle.ImageStats = extractImages(doc, base)
	bundle.Assets = extractAssets(doc, base)
	bundle.Headings = extractHeadings(doc)
	bundle.Schemas = extractSchemas(doc)
	bundle.DOM = extractDOMStats(doc)
	bundle.TechStack = detectTechStack(raw.HTML, raw.Headers)
	bundle.Content, bundle.Keywords = extractContent(doc, raw.HTML, bundle.Meta)

	e.logger.Debug("Extraction completed",
		"url", baseURL,
		"links", bundle.Links.Total,
		"images", bundle.ImageStats.Total,
		"words", bundle.Content.WordCount,
	)

	return bundle
}

// collapseSpace trims s and folds every whitespace run into one space
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncateRunes cuts s to at most n runes
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// relHas reports whether a rel attribute contains token
func relHas(rel, token string) bool {
	for _, f := range strings.Fields(strings.ToLower(rel)) {
		if f == token {
			return true
		}
	}
	return false
}

// dedupe keeps the first occurrence of each non-empty value
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

var _ interfaces.Extractor = (*HTMLExtractor)(nil)
