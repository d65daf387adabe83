package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/cache"
	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
	"golang.org/x/sync/errgroup"
)

// Probe names as they appear in AnalysisResult.Probes and in metrics
const (
	ProbeFetch       = "fetch"
	ProbeCrawl       = "crawl"
	ProbeBrokenLinks = "broken_links"
	ProbeSecurity    = "security_headers"
	ProbeTLS         = "tls"
	ProbeDNS         = "dns"
	ProbePageSpeed   = "pagespeed"
)

// Dependencies are the collaborators of an Analyzer. Audits and Cache
// may be nil.
type Dependencies struct {
	Fetcher     interfaces.Fetcher
	Extractor   interfaces.Extractor
	Crawl       interfaces.CrawlProber
	LinkChecker interfaces.LinkChecker
	Security    interfaces.SecurityAuditor
	TLS         interfaces.TLSInspector
	DNS         interfaces.DNSInspector
	Audits      interfaces.AuditProvider
	Enricher    interfaces.Enricher
	Cache       interfaces.Cache
	Logger      interfaces.Logger
	Metrics     interfaces.MetricsCollector
}

// Options tune a run
type Options struct {
	Deadline        time.Duration
	BrokenLinkLimit int
	CacheTTL        time.Duration
}

type Analyzer struct {
	Dependencies
	opts Options
}

func NewAnalyzer(deps Dependencies, opts Options) *Analyzer {
	if opts.Deadline <= 0 {
		opts.Deadline = 25 * time.Second
	}
	if opts.BrokenLinkLimit <= 0 {
		opts.BrokenLinkLimit = 5
	}
	return &Analyzer{Dependencies: deps, opts: opts}
}

// Analyze runs the whole pipeline for one URL. Only an unusable URL is an
// error; every other failure degrades to defaults.
func (a *Analyzer) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResponse, error) {
	start := time.Now()

	target, err := NormalizeURL(req.URL)
	if err != nil {
		a.Metrics.RecordAnalysis(false, time.Since(start).Seconds())
		return nil, err
	}
	pageURL := target.String()

	strategy := req.Strategy
	if !strategy.Valid() {
		strategy = models.StrategyMobile
	}

	logger := a.Logger.With("url", pageURL, "strategy", strategy)
	logger.Info("Starting page analysis")

	cacheable := a.Cache != nil && req.ExternalAuditData == nil
	key := cacheKey(pageURL, strategy)
	if cacheable {
		if resp, ok := a.cached(ctx, key, logger); ok {
			a.Metrics.RecordAnalysis(true, time.Since(start).Seconds())
			return resp, nil
		}
	}

	run := a.fanOut(ctx, target, strategy, req.ExternalAuditData, logger)

	aux := models.AuxiliaryBundle{
		Crawl:       run.crawl,
		BrokenLinks: run.broken,
		Security:    run.security,
		TLS:         run.tls,
		DNS:         run.dns,
		HostIP:      run.dns.HostIP,
	}
	result := Merge(run.page.raw, run.page.extraction, aux, pageURL)
	result.Probes = run.probes.snapshot()

	audit := req.ExternalAuditData
	if !audit.HasCategories() {
		audit = run.audit
	}
	Score(result, audit)

	summary := a.Enricher.Summarize(ctx, result)

	resp := &models.AnalysisResponse{
		Status: "success",
		Score:  result.Scores.SEO,
		AIAnalysis: models.AIAnalysis{
			Score:             result.Scores.SEO,
			Summary:           summary.Summary,
			CompetitorInsight: summary.CompetitorInsight,
			Suggestions:       result.Issues,
			Data:              result,
			Source:            summary.Source,
		},
		Data: result,
	}

	if cacheable {
		a.store(ctx, key, resp, logger)
	}

	a.Metrics.RecordAnalysis(true, time.Since(start).Seconds())
	logger.Info("Page analysis completed",
		"duration", time.Since(start),
		"seo_score", result.Scores.SEO,
		"issues", len(result.Issues),
		"audit_source", result.AuditSource,
	)

	return resp, nil
}

type pageOutput struct {
	raw        models.RawFetchResult
	extraction models.ExtractionBundle
}

// runOutput holds one variable per branch; each is written by exactly one
// goroutine and read only after Wait
type runOutput struct {
	page     pageOutput
	broken   []string
	crawl    models.CrawlReport
	security models.SecurityHeaders
	tls      models.TLSReport
	dns      models.DNSReport
	audit    *models.LighthouseReport
	probes   *probeSet
}

func (a *Analyzer) fanOut(ctx context.Context, site *url.URL, strategy models.Strategy, external *models.LighthouseReport, logger interfaces.Logger) *runOutput {
	ctx, cancel := context.WithTimeout(ctx, a.opts.Deadline)
	defer cancel()

	out := &runOutput{probes: newProbeSet()}
	r := &probeRunner{probes: out.probes, logger: logger, metrics: a.Metrics}
	defaults := models.NewAuxiliaryBundle()
	pageURL, host := site.String(), site.Hostname()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out.page = runProbe(gctx, r, ProbeFetch,
			pageOutput{raw: models.EmptyFetchResult(0, nil), extraction: models.NewExtractionBundle()},
			func(ctx context.Context) (pageOutput, error) {
				raw := a.Fetcher.Fetch(ctx, pageURL, strategy)
				page := pageOutput{raw: raw, extraction: a.Extractor.Extract(raw, pageURL)}
				if raw.Err != "" {
					return page, errors.New(raw.Err)
				}
				return page, nil
			})

		discovered := out.page.extraction.Links.Discovered
		links := discovered[:min(a.opts.BrokenLinkLimit, len(discovered))]
		out.broken = runProbe(gctx, r, ProbeBrokenLinks, []string{},
			func(ctx context.Context) ([]string, error) {
				statuses, err := a.LinkChecker.CheckLinks(ctx, links)
				return brokenLinks(statuses), err
			})
		return nil
	})

	g.Go(func() error {
		out.crawl = runProbe(gctx, r, ProbeCrawl, defaults.Crawl,
			func(ctx context.Context) (models.CrawlReport, error) {
				return a.Crawl.Probe(ctx, site)
			})
		return nil
	})

	g.Go(func() error {
		out.security = runProbe(gctx, r, ProbeSecurity, defaults.Security,
			func(ctx context.Context) (models.SecurityHeaders, error) {
				return a.Security.Audit(ctx, pageURL)
			})
		return nil
	})

	g.Go(func() error {
		out.tls = runProbe(gctx, r, ProbeTLS, defaults.TLS,
			func(ctx context.Context) (models.TLSReport, error) {
				return a.TLS.Inspect(ctx, host)
			})
		return nil
	})

	g.Go(func() error {
		out.dns = runProbe(gctx, r, ProbeDNS, defaults.DNS,
			func(ctx context.Context) (models.DNSReport, error) {
				report, err := a.DNS.Inspect(ctx, host)
				if IsNotFound(err) {
					logger.Warn("Target host does not resolve", "host", host)
				}
				return report, err
			})
		return nil
	})

	if a.Audits != nil && external == nil {
		g.Go(func() error {
			out.audit = runProbe(gctx, r, ProbePageSpeed, (*models.LighthouseReport)(nil),
				func(ctx context.Context) (*models.LighthouseReport, error) {
					return a.Audits.Audit(ctx, pageURL, strategy)
				})
			return nil
		})
	}

	// branches never return errors; Wait only joins them
	_ = g.Wait()

	return out
}

type probeRunner struct {
	probes  *probeSet
	logger  interfaces.Logger
	metrics interfaces.MetricsCollector
}

// runProbe executes one branch, records its outcome and converts a panic
// into the fallback value
func runProbe[T any](ctx context.Context, r *probeRunner, name string, fallback T, fn func(context.Context) (T, error)) (out T) {
	start := time.Now()

	finish := func(err error) {
		r.probes.set(name, err)
		r.metrics.RecordProbe(name, err == nil, time.Since(start).Seconds())
		if err != nil {
			r.logger.Warn("Probe degraded, using defaults", "probe", name, "error", err)
		}
	}

	defer func() {
		if rec := recover(); rec != nil {
			out = fallback
			finish(fmt.Errorf("panic: %v", rec))
		}
	}()

	out, err := fn(ctx)
	finish(err)
	return out
}

// probeSet collects branch outcomes from concurrent goroutines
type probeSet struct {
	mu     sync.Mutex
	status map[string]models.ProbeStatus
}

func newProbeSet() *probeSet {
	return &probeSet{status: make(map[string]models.ProbeStatus)}
}

func (p *probeSet) set(name string, err error) {
	s := models.ProbeStatus{OK: err == nil}
	if err != nil {
		s.Error = err.Error()
	}
	p.mu.Lock()
	p.status[name] = s
	p.mu.Unlock()
}

func (p *probeSet) snapshot() map[string]models.ProbeStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]models.ProbeStatus, len(p.status))
	for k, v := range p.status {
		out[k] = v
	}
	return out
}

func cacheKey(pageURL string, strategy models.Strategy) string {
	sum := sha256.Sum256([]byte(pageURL + "|" + string(strategy)))
	return "analysis:" + hex.EncodeToString(sum[:])
}

func (a *Analyzer) cached(ctx context.Context, key string, logger interfaces.Logger) (*models.AnalysisResponse, bool) {
	data, err := a.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			logger.Warn("Cache lookup failed", "error", err)
		}
		a.Metrics.RecordCacheLookup(false)
		return nil, false
	}

	var resp models.AnalysisResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		logger.Warn("Discarding unreadable cache entry", "error", err)
		if err := a.Cache.Delete(ctx, key); err != nil {
			logger.Warn("Failed to drop unreadable cache entry", "error", err)
		}
		a.Metrics.RecordCacheLookup(false)
		return nil, false
	}

	a.Metrics.RecordCacheLookup(true)
	logger.Info("Serving analysis from cache")
	return &resp, true
}

func (a *Analyzer) store(ctx context.Context, key string, resp *models.AnalysisResponse, logger interfaces.Logger) {
	data, err := json.Marshal(resp)
	if err != nil {
		logger.Warn("Failed to encode analysis for cache", "error", err)
		return
	}
	if err := a.Cache.Set(ctx, key, data, a.opts.CacheTTL); err != nil {
		logger.Warn("Failed to cache analysis", "error", err)
	}
}

var _ interfaces.Analyzer = (*Analyzer)(nil)
