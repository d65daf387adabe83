package core

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/httpclient"
	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
)

// BrowserUserAgents is the pool the content fetcher picks from
var BrowserUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
}

// NewContentClient builds the permissive client used for page content.
// It accepts any certificate; CertInspector judges certificates on its own.
func NewContentClient(timeout time.Duration, logger interfaces.Logger) *httpclient.Client {
	return httpclient.New(timeout, logger,
		httpclient.WithInsecureTLS(),
		httpclient.WithUserAgents(BrowserUserAgents...),
		httpclient.WithHeader("Cache-Control", "no-cache"),
		httpclient.WithHeader("Upgrade-Insecure-Requests", "1"),
	)
}

// PageFetcher retrieves page markup and converts every failure into the
// empty sentinel
type PageFetcher struct {
	client interfaces.HTTPClient
	logger interfaces.Logger
	now    func() time.Time
}

func NewPageFetcher(client interfaces.HTTPClient, logger interfaces.Logger) *PageFetcher {
	return &PageFetcher{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// Fetch implements interfaces.Fetcher
func (f *PageFetcher) Fetch(ctx context.Context, pageURL string, strategy models.Strategy) models.RawFetchResult {
	start := f.now()
	elapsed := func() int64 { return f.now().Sub(start).Milliseconds() }

	u, err := url.Parse(pageURL)
	if err != nil {
		return models.EmptyFetchResult(0, err)
	}
	target := withCacheBuster(u, start.UnixMilli())

	f.logger.Debug("Fetching page", "url", pageURL, "strategy", strategy)

	resp, err := f.client.Get(ctx, target)
	if err != nil {
		f.logger.Warn("Page fetch failed, continuing with empty content",
			"url", pageURL,
			"error", err,
		)
		return models.EmptyFetchResult(elapsed(), err)
	}

	if resp.StatusCode >= 400 {
		f.logger.Warn("Page returned an error status, continuing with empty content",
			"url", pageURL,
			"status_code", resp.StatusCode,
		)
		empty := models.EmptyFetchResult(elapsed(), fmt.Errorf("unexpected status %d", resp.StatusCode))
		empty.StatusCode = resp.StatusCode
		return empty
	}

	headers := make(map[string]string, len(resp.Headers))
	for key, values := range resp.Headers {
		headers[strings.ToLower(key)] = strings.Join(values, ", ")
	}

	return models.RawFetchResult{
		HTML:       string(resp.Body),
		Headers:    headers,
		StatusCode: resp.StatusCode,
		ElapsedMs:  elapsed(),
		FinalURL:   pageURL,
	}
}

var _ interfaces.Fetcher = (*PageFetcher)(nil)
