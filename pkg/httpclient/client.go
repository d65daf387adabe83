package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
	"golang.org/x/net/html/charset"
)

const (
	defaultUserAgent = "SEOAnalyzer/1.0"
	maxBodySize      = 10 * 1024 * 1024
)

// Option configures a Client
type Option func(*Client)

// WithInsecureTLS accepts any server certificate. Only the content fetcher
// uses this; certificate judgement is done separately.
func WithInsecureTLS() Option {
	return func(c *Client) {
		c.insecure = true
	}
}

// WithUserAgents makes every request pick a user agent at random from pool
func WithUserAgents(pool ...string) Option {
	return func(c *Client) {
		if len(pool) > 0 {
			c.userAgents = pool
		}
	}
}

// WithHeader adds a header sent on every request
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// Client implements the HTTPClient interface
type Client struct {
	client     *http.Client
	logger     interfaces.Logger
	timeout    time.Duration
	insecure   bool
	userAgents []string
	headers    http.Header
}

// New builds a client with a pooled transport and an overall request timeout
func New(timeout time.Duration, logger interfaces.Logger, opts ...Option) *Client {
	c := &Client{
		logger:     logger,
		timeout:    timeout,
		userAgents: []string{defaultUserAgent},
		headers:    http.Header{},
	}
	for _, opt := range opts {
		opt(c)
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       60 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	if c.insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	c.client = &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
	return c
}

// Get performs an HTTP GET request. HTML bodies are transcoded to UTF-8.
func (c *Client) Get(ctx context.Context, url string) (*models.HTTPResponse, error) {
	req, err := c.newRequest(ctx, http.MethodGet, url)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Making HTTP request",
		"method", req.Method,
		"url", url,
	)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("HTTP request failed",
			"url", url,
			"error", err,
			"duration", time.Since(start),
		)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.logger.Debug("Failed to read response body",
			"url", url,
			"error", err,
		)
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	body = toUTF8(body, resp.Header.Get("Content-Type"))

	c.logger.Debug("HTTP response received",
		"url", url,
		"status_code", resp.StatusCode,
		"content_length", len(body),
		"duration", time.Since(start),
	)

	return &models.HTTPResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
		Headers:    resp.Header,
	}, nil
}

// Head performs an HTTP HEAD request
func (c *Client) Head(ctx context.Context, url string) (*models.HTTPResponse, error) {
	req, err := c.newRequest(ctx, http.MethodHead, url)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("HEAD request failed",
			"url", url,
			"error", err,
			"duration", time.Since(start),
		)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return &models.HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, method, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	return req, nil
}

func (c *Client) userAgent() string {
	return c.userAgents[rand.IntN(len(c.userAgents))]
}

// toUTF8 transcodes markup declared in another charset. Anything that is
// not HTML, or cannot be decoded, is returned unchanged.
func toUTF8(body []byte, contentType string) []byte {
	if len(body) == 0 || !strings.Contains(strings.ToLower(contentType), "html") {
		return body
	}

	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return body
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return body
	}
	return decoded
}

// Ensure Client implements interfaces.HTTPClient
var _ interfaces.HTTPClient = (*Client)(nil)
