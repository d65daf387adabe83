package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/cache"
	"github.com/RuvinSL/seo-analyzer/pkg/config"
	"github.com/RuvinSL/seo-analyzer/pkg/httpclient"
	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/logger"
	"github.com/RuvinSL/seo-analyzer/pkg/metrics"
	"github.com/RuvinSL/seo-analyzer/pkg/middleware"
	"github.com/RuvinSL/seo-analyzer/services/analyzer/core"
	"github.com/RuvinSL/seo-analyzer/services/analyzer/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	serviceName      = "analyzer"
	checkLinkTimeout = 5 * time.Second
)

func createLogger(cfg *config.Config) interfaces.Logger {
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.LogDir != "" {
		return logger.NewWithFiles(serviceName, level, cfg.LogDir)
	}
	return logger.New(serviceName, level)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyzer: %v\n", err)
		os.Exit(1)
	}

	log := createLogger(cfg)

	metricsCollector := metrics.NewPrometheusCollector(serviceName)
	prometheus.MustRegister(metricsCollector.GetCollectors()...)

	svc, cleanup := buildServices(context.Background(), cfg, log, metricsCollector)
	defer cleanup()

	router := newRouter(svc, cfg, log, metricsCollector, prometheus.DefaultGatherer)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AnalysisDeadline + 35*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Starting Analyzer Service",
			"port", cfg.Port,
			"log_level", cfg.LogLevel,
			"version", cfg.AppVersion,
			"generative_text", cfg.GeminiAPIKey != "",
			"pagespeed", cfg.PageSpeedAPIKey != "",
			"cache", cfg.CacheEnabled(),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server exited")
}

// services holds the handlers the router serves
type services struct {
	analyzer *handlers.AnalyzerHandler
	tools    *handlers.ToolsHandler
	health   *handlers.HealthHandler
}

// buildServices wires the pipeline. Optional backends (Gemini, PageSpeed,
// Redis) are only enabled when configured; the returned func releases them.
func buildServices(ctx context.Context, cfg *config.Config, log interfaces.Logger, collector interfaces.MetricsCollector) (*services, func()) {
	// trust judgements (headers, links) use the strict client; page content,
	// robots.txt and sitemaps are read permissively
	strictClient := httpclient.New(cfg.FetchTimeout, log)
	contentClient := core.NewContentClient(cfg.FetchTimeout, log)

	var generator interfaces.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gemini, err := core.NewGeminiClient(ctx, core.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.GeminiTimeout,
		}, log)
		if err != nil {
			log.Warn("Generative text unavailable, using fallbacks", "error", err)
		} else {
			generator = gemini
		}
	}
	enricher := core.NewTextEnricher(generator, log, collector, cfg.GeminiTimeout)

	var audits interfaces.AuditProvider
	if cfg.PageSpeedAPIKey != "" {
		audits = core.NewPageSpeedProvider(cfg.PageSpeedAPIKey, httpclient.New(cfg.PageSpeedTimeout, log), log)
	}

	var responseCache interfaces.Cache = cache.Noop{}
	healthChecks := map[string]interfaces.HealthChecker{}
	cleanup := func() {}
	if cfg.CacheEnabled() {
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Warn("Response cache unavailable, continuing without it", "error", err)
		} else {
			responseCache = redisCache
			healthChecks["redis"] = redisCache
			cleanup = func() { redisCache.Close() }
		}
	}

	linkChecker := core.NewBatchLinkChecker(strictClient, log, collector, cfg.BrokenLinkBatch, cfg.LinkCheckTimeout)

	analyzer := core.NewAnalyzer(core.Dependencies{
		Fetcher:     core.NewPageFetcher(contentClient, log),
		Extractor:   core.NewHTMLExtractor(log),
		Crawl:       core.NewCrawlProbe(contentClient, log, cfg.RobotsTimeout, cfg.SitemapTimeout),
		LinkChecker: linkChecker,
		Security:    core.NewHeaderAuditor(strictClient, cfg.SecurityTimeout),
		TLS:         core.NewCertInspector(cfg.TLSTimeout),
		DNS:         core.NewRecordInspector(nil, cfg.DNSTimeout),
		Audits:      audits,
		Enricher:    enricher,
		Cache:       responseCache,
		Logger:      log,
		Metrics:     collector,
	}, core.Options{
		Deadline:        cfg.AnalysisDeadline,
		BrokenLinkLimit: cfg.BrokenLinkLimit,
		CacheTTL:        cfg.CacheTTL,
	})

	singleChecker := core.NewBatchLinkChecker(strictClient, log, collector, 1, checkLinkTimeout)
	tools := core.NewSiteTools(contentClient, singleChecker, log)

	return &services{
		analyzer: handlers.NewAnalyzerHandler(analyzer, log),
		tools:    handlers.NewToolsHandler(enricher, tools, log),
		health:   handlers.NewHealthHandler(serviceName, cfg.AppVersion, healthChecks, log),
	}, cleanup
}

func newRouter(svc *services, cfg *config.Config, log interfaces.Logger, collector *metrics.PrometheusCollector, gatherer prometheus.Gatherer) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = handlers.NotFound(log)
	router.MethodNotAllowedHandler = handlers.MethodNotAllowed(log)

	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(log))
	router.Use(middleware.Metrics(collector))
	router.Use(middleware.InFlight(collector))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// a subrouter drops method mismatches once a sibling route's prefix
	// matches, so each API path carries its own 405 fallback
	apiRoutes := []struct {
		path    string
		handler http.HandlerFunc
	}{
		{"/analyze", svc.analyzer.Analyze},
		{"/copilot", svc.tools.Copilot},
		{"/generate", svc.tools.Generate},
		{"/sitemap", svc.tools.Sitemap},
		{"/scan-links", svc.tools.ScanLinks},
		{"/check-link", svc.tools.CheckLink},
	}
	for _, route := range apiRoutes {
		api.HandleFunc(route.path, route.handler).Methods(http.MethodPost, http.MethodOptions)
		api.Handle(route.path, router.MethodNotAllowedHandler)
	}

	router.HandleFunc("/analyze", svc.analyzer.Analyze).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/health", svc.health.Health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return router
}
