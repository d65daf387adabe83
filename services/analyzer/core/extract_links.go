package core

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
)

const maxImages = 20

// usableHref filters anchors that do not point anywhere
func usableHref(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return false
	}
	return !strings.HasPrefix(strings.ToLower(href), "javascript:")
}

// extractLinks classifies every unique anchor target. Edges only connect
// the page to internal targets; they describe the site's own structure.
func extractLinks(doc *goquery.Document, base *url.URL) models.LinkProfile {
	profile := models.LinkProfile{
		Edges:      []models.LinkEdge{},
		Discovered: []models.Link{},
	}

	pageHost := ""
	source := ""
	if base != nil {
		pageHost = base.Hostname()
		source = base.String()
	}

	seen := make(map[string]struct{})
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		if !usableHref(href) {
			return
		}
		abs, ok := resolve(base, href)
		if !ok {
			return
		}
		u, err := url.Parse(abs)
		if err != nil {
			return
		}
		u.Fragment = ""
		key := u.String()
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}

		link := models.Link{
			URL:      key,
			Text:     truncateRunes(collapseSpace(s.Text()), 100),
			Type:     models.LinkTypeExternal,
			NoFollow: relHas(s.AttrOr("rel", ""), "nofollow"),
		}
		if sameSite(u.Hostname(), pageHost) {
			link.Type = models.LinkTypeInternal
		}

		if link.Type == models.LinkTypeInternal {
			profile.Internal++
			profile.Edges = append(profile.Edges, models.LinkEdge{Source: source, Target: key})
		} else {
			profile.External++
		}
		if link.NoFollow {
			profile.Nofollow++
		} else {
			profile.Dofollow++
		}
		profile.Discovered = append(profile.Discovered, link)
	})

	profile.Total = len(profile.Discovered)
	return profile
}

// extractImages returns at most maxImages images; the stats cover all of them
func extractImages(doc *goquery.Document, base *url.URL) ([]models.Image, models.ImageStats) {
	images := []models.Image{}
	stats := models.ImageStats{MissingAltSources: []string{}}

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		stats.Total++

		alt, hasAlt := s.Attr("alt")
		alt = strings.TrimSpace(alt)
		src, srcOK := resolve(base, s.AttrOr("src", ""))

		if !hasAlt || alt == "" {
			stats.MissingAlt++
			if srcOK {
				stats.MissingAltSources = append(stats.MissingAltSources, src)
			}
		}
		if srcOK && len(images) < maxImages {
			images = append(images, models.Image{Src: src, Alt: alt})
		}
	})

	return images, stats
}

func extractAssets(doc *goquery.Document, base *url.URL) models.AssetStats {
	assets := models.AssetStats{Scripts: []string{}}

	doc.Find("link[rel]").Each(func(_ int, s *goquery.Selection) {
		if relHas(s.AttrOr("rel", ""), "stylesheet") {
			assets.CSS++
		}
	})

	doc.Find("script[src]").Each(func(_ int, s *goquery.Selection) {
		assets.JS++
		if src, ok := resolve(base, s.AttrOr("src", "")); ok {
			assets.Scripts = append(assets.Scripts, src)
		}
	})

	return assets
}
