package core

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
	"golang.org/x/net/html"
)

const maxHeadingText = 60

func extractHeadings(doc *goquery.Document) []models.Heading {
	headings := []models.Heading{}
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		headings = append(headings, models.Heading{
			Level: int(tag[1] - '0'),
			Tag:   tag,
			Text:  truncateRunes(collapseSpace(s.Text()), maxHeadingText),
		})
	})
	return headings
}

// schemaLabel names a JSON-LD payload by its @type
func schemaLabel(payload any) string {
	switch v := payload.(type) {
	case map[string]any:
		switch t := v["@type"].(type) {
		case nil:
			return models.Unknown
		case string:
			return t
		default:
			raw, err := json.Marshal(t)
			if err != nil {
				return models.Unknown
			}
			return string(raw)
		}
	case []any:
		return "Graph Array"
	default:
		return models.Unknown
	}
}

// extractSchemas labels every JSON-LD block; malformed blocks are skipped
func extractSchemas(doc *goquery.Document) []string {
	labels := []string{}
	doc.Find("script[type]").Each(func(_ int, s *goquery.Selection) {
		if !strings.EqualFold(strings.TrimSpace(s.AttrOr("type", "")), "application/ld+json") {
			return
		}
		var payload any
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return
		}
		labels = append(labels, schemaLabel(payload))
	})
	return dedupe(labels)
}

// extractDOMStats counts elements and measures the deepest element, where
// <html> sits at depth 0
func extractDOMStats(doc *goquery.Document) models.DOMStats {
	var stats models.DOMStats

	var walk func(n *html.Node, depth int)
	walk = func(n *html.Node, depth int) {
		childDepth := depth
		if n.Type == html.ElementNode {
			stats.Elements++
			if depth > stats.Depth {
				stats.Depth = depth
			}
			childDepth = depth + 1
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, childDepth)
		}
	}
	for _, root := range doc.Nodes {
		walk(root, 0)
	}
	return stats
}

var techSignatures = []struct {
	marker string
	name   string
}{
	{"wp-content", "WordPress"},
	{"cdn.shopify.com", "Shopify"},
	{"__next", "Next.js"},
	{"react", "React"},
	{"bootstrap", "Bootstrap"},
}

// detectTechStack reads server headers and well-known markers in the markup
func detectTechStack(rawHTML string, headers map[string]string) []string {
	found := []string{}
	for _, h := range []string{"server", "x-powered-by"} {
		if v := strings.TrimSpace(headers[h]); v != "" {
			found = append(found, v)
		}
	}

	lower := strings.ToLower(rawHTML)
	for _, sig := range techSignatures {
		if strings.Contains(lower, sig.marker) {
			found = append(found, sig.name)
		}
	}
	return dedupe(found)
}
