package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
)

const defaultPageSpeedEndpoint = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"

var pageSpeedCategories = []string{"performance", "seo", "accessibility", "best-practices"}

// PageSpeedProvider runs a Lighthouse audit through PageSpeed Insights
type PageSpeedProvider struct {
	endpoint string
	apiKey   string
	client   interfaces.HTTPClient
	logger   interfaces.Logger
}

func NewPageSpeedProvider(apiKey string, client interfaces.HTTPClient, logger interfaces.Logger) *PageSpeedProvider {
	return &PageSpeedProvider{
		endpoint: defaultPageSpeedEndpoint,
		apiKey:   apiKey,
		client:   client,
		logger:   logger,
	}
}

// Audit implements interfaces.AuditProvider
func (p *PageSpeedProvider) Audit(ctx context.Context, pageURL string, strategy models.Strategy) (*models.LighthouseReport, error) {
	if p.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	q := url.Values{}
	q.Set("url", pageURL)
	q.Set("strategy", string(strategy))
	for _, c := range pageSpeedCategories {
		q.Add("category", c)
	}
	q.Set("key", p.apiKey)

	resp, err := p.client.Get(ctx, p.endpoint+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("pagespeed request: %w", err)
	}
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("pagespeed returned status %d", resp.StatusCode)
	}

	var payload struct {
		LighthouseResult *models.LighthouseReport `json:"lighthouseResult"`
	}
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse pagespeed response: %w", err)
	}
	if !payload.LighthouseResult.HasCategories() {
		return nil, errors.New("pagespeed response carried no categories")
	}

	p.logger.Debug("PageSpeed audit received",
		"url", pageURL,
		"strategy", strategy,
		"performance", payload.LighthouseResult.CategoryScore("performance"),
	)

	return payload.LighthouseResult, nil
}

var _ interfaces.AuditProvider = (*PageSpeedProvider)(nil)
