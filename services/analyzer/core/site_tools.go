package core

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
)

const maxToolResults = 50

// ErrUpstream is returned when a site tool could not read the target page
var ErrUpstream = errors.New("target site unreachable")

// SiteTools are the single-purpose helpers behind the sitemap, scan-links
// and check-link endpoints
type SiteTools struct {
	client  interfaces.HTTPClient
	checker interfaces.LinkChecker
	logger  interfaces.Logger
}

func NewSiteTools(client interfaces.HTTPClient, checker interfaces.LinkChecker, logger interfaces.Logger) *SiteTools {
	return &SiteTools{client: client, checker: checker, logger: logger}
}

// sitemapDocument matches both <urlset> and <sitemapindex> roots
type sitemapDocument struct {
	URLs     []string `xml:"url>loc"`
	Sitemaps []string `xml:"sitemap>loc"`
}

// ListSitemap returns up to 50 locations from <origin>/sitemap.xml. A
// missing or unreadable sitemap yields an empty list.
func (t *SiteTools) ListSitemap(ctx context.Context, rawURL string) ([]string, error) {
	u, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}
	sitemapURL := siteRoot(u).String() + "/sitemap.xml"

	resp, err := t.client.Get(ctx, sitemapURL)
	if err != nil || resp.StatusCode >= 400 {
		t.logger.Debug("Sitemap not available", "url", sitemapURL, "error", err)
		return []string{}, nil
	}

	var doc sitemapDocument
	if err := xml.NewDecoder(bytes.NewReader(resp.Body)).Decode(&doc); err != nil {
		t.logger.Debug("Sitemap is not valid XML", "url", sitemapURL, "error", err)
		return []string{}, nil
	}

	locs := make([]string, 0, maxToolResults)
	for _, loc := range append(doc.URLs, doc.Sitemaps...) {
		if len(locs) == maxToolResults {
			break
		}
		if loc = strings.TrimSpace(loc); loc != "" {
			locs = append(locs, loc)
		}
	}
	return locs, nil
}

// ScanLinks returns up to 50 unique absolute links found on the page
func (t *SiteTools) ScanLinks(ctx context.Context, rawURL string) ([]string, error) {
	u, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	resp, err := t.client.Get(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !usableHref(href) {
			return
		}
		if abs, ok := resolve(u, href); ok {
			links = append(links, abs)
		}
	})

	links = dedupe(links)
	return links[:min(maxToolResults, len(links))], nil
}

// CheckLink reports whether a single URL answers HEAD with a status below 400
func (t *SiteTools) CheckLink(ctx context.Context, rawURL string) (models.LinkStatus, error) {
	u, err := NormalizeURL(rawURL)
	if err != nil {
		return models.LinkStatus{}, err
	}
	link := models.Link{URL: u.String(), Type: models.LinkTypeUnknown}
	return t.checker.CheckLink(ctx, link), nil
}
