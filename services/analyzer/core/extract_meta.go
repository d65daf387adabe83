package core

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
)

// metaContent returns the content of the first <meta> whose name or
// property equals key, compared case-insensitively
func metaContent(doc *goquery.Document, key string) string {
	var content string
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		name := s.AttrOr("name", s.AttrOr("property", ""))
		if strings.EqualFold(strings.TrimSpace(name), key) {
			content = strings.TrimSpace(s.AttrOr("content", ""))
			return false
		}
		return true
	})
	return content
}

// linkHref returns the href of the first <link> whose rel contains token
func linkHref(doc *goquery.Document, token string) (string, bool) {
	var href string
	var found bool
	doc.Find("link[rel]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if relHas(s.AttrOr("rel", ""), token) {
			href, found = s.AttrOr("href", ""), true
			return false
		}
		return true
	})
	return href, found
}

func extractMeta(doc *goquery.Document, base *url.URL) models.PageMeta {
	meta := models.PageMeta{
		Title:       collapseSpace(doc.Find("title").First().Text()),
		Description: metaContent(doc, "description"),
		Robots:      metaContent(doc, "robots"),
		Generator:   metaContent(doc, "generator"),
		Viewport:    metaContent(doc, "viewport"),
	}

	// Open Graph is only consulted when the primary tag is absent
	if meta.Title == "" {
		meta.Title = metaContent(doc, "og:title")
	}
	if meta.Description == "" {
		meta.Description = metaContent(doc, "og:description")
	}

	h1s := doc.Find("h1")
	meta.H1Count = h1s.Length()
	meta.H1 = collapseSpace(h1s.First().Text())
	if meta.H1 == "" {
		meta.H1 = collapseSpace(doc.Find(".h1").First().Text())
	}

	if href, ok := linkHref(doc, "canonical"); ok {
		if abs, ok := resolve(base, href); ok {
			meta.Canonical = abs
		}
	}
	if img := metaContent(doc, "og:image"); img != "" {
		if abs, ok := resolve(base, img); ok {
			meta.OGImage = abs
		}
	}

	return meta
}

var socialPlatforms = []struct {
	domain   string
	platform string
}{
	{"twitter.com", "X (Twitter)"},
	{"x.com", "X (Twitter)"},
	{"facebook.com", "Facebook"},
	{"linkedin.com", "LinkedIn"},
	{"instagram.com", "Instagram"},
	{"youtube.com", "YouTube"},
}

func socialPlatform(host string) string {
	host = strings.ToLower(host)
	for _, p := range socialPlatforms {
		if host == p.domain || strings.HasSuffix(host, "."+p.domain) {
			return p.platform
		}
	}
	return ""
}

func extractSocial(doc *goquery.Document, base *url.URL) models.Social {
	social := models.Social{
		OGType:      metaContent(doc, "og:type"),
		TwitterCard: metaContent(doc, "twitter:card"),
		Links:       []models.SocialLink{},
	}

	seen := make(map[string]struct{})
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		abs, ok := resolve(base, s.AttrOr("href", ""))
		if !ok {
			return
		}
		u, err := url.Parse(abs)
		if err != nil {
			return
		}
		platform := socialPlatform(u.Hostname())
		if platform == "" {
			return
		}
		if _, dup := seen[abs]; dup {
			return
		}
		seen[abs] = struct{}{}
		social.Links = append(social.Links, models.SocialLink{Platform: platform, URL: abs})
	})

	return social
}

func extractHreflangs(doc *goquery.Document, base *url.URL) []models.Hreflang {
	out := []models.Hreflang{}
	doc.Find("link[hreflang]").Each(func(_ int, s *goquery.Selection) {
		if !relHas(s.AttrOr("rel", ""), "alternate") {
			return
		}
		lang := strings.TrimSpace(s.AttrOr("hreflang", ""))
		abs, ok := resolve(base, s.AttrOr("href", ""))
		if lang == "" || !ok {
			return
		}
		out = append(out, models.Hreflang{Lang: lang, URL: abs})
	})
	return out
}

func extractBranding(doc *goquery.Document) models.Branding {
	var b models.Branding
	doc.Find("link[rel]").Each(func(_ int, s *goquery.Selection) {
		rel := s.AttrOr("rel", "")
		if relHas(rel, "icon") {
			b.HasFavicon = true
		}
		if relHas(rel, "apple-touch-icon") || relHas(rel, "apple-touch-icon-precomposed") {
			b.HasAppleIcon = true
		}
	})
	return b
}
