package core

import (
	"context"
	"fmt"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
	"golang.org/x/sync/errgroup"
)

// BatchLinkChecker issues HEAD requests in fixed-size parallel batches so
// that peak outbound connections stay bounded
type BatchLinkChecker struct {
	client    interfaces.HTTPClient
	logger    interfaces.Logger
	metrics   interfaces.MetricsCollector
	batchSize int
	timeout   time.Duration
}

func NewBatchLinkChecker(client interfaces.HTTPClient, logger interfaces.Logger, metrics interfaces.MetricsCollector, batchSize int, timeout time.Duration) *BatchLinkChecker {
	if batchSize <= 0 {
		batchSize = 5
	}
	return &BatchLinkChecker{
		client:    client,
		logger:    logger,
		metrics:   metrics,
		batchSize: batchSize,
		timeout:   timeout,
	}
}

// CheckLinks checks every link and returns statuses in input order
func (c *BatchLinkChecker) CheckLinks(ctx context.Context, links []models.Link) ([]models.LinkStatus, error) {
	results := make([]models.LinkStatus, len(links))

	for start := 0; start < len(links); start += c.batchSize {
		end := min(start+c.batchSize, len(links))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.batchSize)
		for i := start; i < end; i++ {
			g.Go(func() error {
				results[i] = c.CheckLink(gctx, links[i])
				return nil
			})
		}
		// CheckLink never returns an error; Wait only joins the batch
		_ = g.Wait()

		if err := ctx.Err(); err != nil {
			for i := end; i < len(links); i++ {
				results[i] = failedStatus(links[i], err)
			}
			return results, fmt.Errorf("link check interrupted: %w", err)
		}
	}

	return results, nil
}

// CheckLink performs one HEAD request. Errors and statuses >= 400 are inaccessible.
func (c *BatchLinkChecker) CheckLink(ctx context.Context, link models.Link) models.LinkStatus {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.Head(ctx, link.URL)
	duration := time.Since(start).Seconds()

	if err != nil {
		c.metrics.RecordLinkCheck(false, duration)
		c.logger.Debug("Link check failed", "url", link.URL, "error", err)
		return failedStatus(link, err)
	}

	accessible := resp.StatusCode < 400
	c.metrics.RecordLinkCheck(accessible, duration)

	return models.LinkStatus{
		Link:       link,
		Accessible: accessible,
		StatusCode: resp.StatusCode,
		CheckedAt:  time.Now(),
	}
}

func failedStatus(link models.Link, err error) models.LinkStatus {
	return models.LinkStatus{
		Link:      link,
		Error:     err.Error(),
		CheckedAt: time.Now(),
	}
}

// brokenLinks keeps the URLs of inaccessible statuses
func brokenLinks(statuses []models.LinkStatus) []string {
	broken := []string{}
	for _, s := range statuses {
		if !s.Accessible {
			broken = append(broken, s.Link.URL)
		}
	}
	return broken
}

var _ interfaces.LinkChecker = (*BatchLinkChecker)(nil)
