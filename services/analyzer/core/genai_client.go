package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"google.golang.org/genai"
)

// ErrNoAPIKey is returned by generators that were configured without a key
var ErrNoAPIKey = errors.New("generative api key not configured")

// GeminiConfig configures the generative-text client
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL overrides the public endpoint; empty keeps the default
	BaseURL string
}

// GeminiClient generates text through the Gemini API
type GeminiClient struct {
	client *genai.Client
	model  string
	logger interfaces.Logger
}

// NewGeminiClient builds the SDK client. Without an API key the client is
// still usable and every call returns ErrNoAPIKey.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig, logger interfaces.Logger) (*GeminiClient, error) {
	c := &GeminiClient{model: cfg.Model, logger: logger}
	if cfg.APIKey == "" {
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generative client: %w", err)
	}
	c.client = client
	return c, nil
}

// GenerateText implements interfaces.TextGenerator
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", ErrNoAPIKey
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("generative api returned status %d: %s", apiErr.Code, apiErr.Message)
		}
		return "", fmt.Errorf("generative api error: %w", err)
	}

	c.logger.Debug("Generative API responded",
		"model", c.model,
		"candidates", len(resp.Candidates),
		"duration", time.Since(start),
	)

	text := firstCandidateText(resp)
	if text == "" {
		return "", errors.New("generative api returned no candidates")
	}
	return text, nil
}

// firstCandidateText joins the text parts of the first candidate, skipping
// thought parts
func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String())
}

var _ interfaces.TextGenerator = (*GeminiClient)(nil)
