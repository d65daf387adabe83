package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
)

// HeaderAuditor reports the protective headers a page is served with
type HeaderAuditor struct {
	client  interfaces.HTTPClient
	timeout time.Duration
}

// NewHeaderAuditor expects a client with strict certificate validation
func NewHeaderAuditor(client interfaces.HTTPClient, timeout time.Duration) *HeaderAuditor {
	return &HeaderAuditor{client: client, timeout: timeout}
}

// Audit implements interfaces.SecurityAuditor
func (a *HeaderAuditor) Audit(ctx context.Context, pageURL string) (models.SecurityHeaders, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.Head(ctx, pageURL)
	if err != nil {
		return models.SecurityHeaders{}, fmt.Errorf("security headers: %w", err)
	}

	h := resp.Headers
	cookies := h.Values("Set-Cookie")

	report := models.SecurityHeaders{
		XSS:          h.Get("X-XSS-Protection") != "",
		ContentType:  h.Get("X-Content-Type-Options") != "",
		FrameOptions: h.Get("X-Frame-Options") != "",
		HSTS:         h.Get("Strict-Transport-Security") != "",
		CookieCount:  len(cookies),
		Server:       h.Get("Server"),
	}
	for _, c := range cookies {
		if strings.Contains(strings.ToLower(c), "secure") {
			report.SecureCookies = true
			break
		}
	}

	return report, nil
}

var _ interfaces.SecurityAuditor = (*HeaderAuditor)(nil)
