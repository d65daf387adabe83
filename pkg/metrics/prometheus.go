package metrics

import (
	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements metrics collection using Prometheus
type PrometheusCollector struct {
	serviceName string

	// HTTP metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	// Pipeline metrics
	analysisTotal     *prometheus.CounterVec
	analysisDuration  *prometheus.HistogramVec
	linkChecksTotal   *prometheus.CounterVec
	linkCheckDuration *prometheus.HistogramVec
	probesTotal       *prometheus.CounterVec
	probeDuration     *prometheus.HistogramVec
	enrichmentTotal   *prometheus.CounterVec
	cacheLookupsTotal *prometheus.CounterVec
}

// NewPrometheusCollector creates a new Prometheus metrics collector
func NewPrometheusCollector(serviceName string) *PrometheusCollector {
	labels := prometheus.Labels{"service": serviceName}

	return &PrometheusCollector{
		serviceName: serviceName,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: labels,
			},
			[]string{"method", "path", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: labels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "http_requests_in_flight",
				Help:        "Number of HTTP requests currently being processed",
				ConstLabels: labels,
			},
		),

		analysisTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "seo_analysis_total",
				Help:        "Total number of page analyses",
				ConstLabels: labels,
			},
			[]string{"status"},
		),

		analysisDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "seo_analysis_duration_seconds",
				Help:        "Page analysis duration in seconds",
				ConstLabels: labels,
				Buckets:     []float64{0.5, 1, 2.5, 5, 10, 15, 25, 40},
			},
			[]string{"status"},
		),

		linkChecksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "link_checks_total",
				Help:        "Total number of link checks",
				ConstLabels: labels,
			},
			[]string{"status"},
		),

		linkCheckDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "link_check_duration_seconds",
				Help:        "Link check duration in seconds",
				ConstLabels: labels,
				Buckets:     []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"status"},
		),

		probesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "seo_probe_total",
				Help:        "Pipeline probe outcomes; failures fall back to defaults",
				ConstLabels: labels,
			},
			[]string{"probe", "status"},
		),

		probeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "seo_probe_duration_seconds",
				Help:        "Pipeline probe duration in seconds",
				ConstLabels: labels,
				Buckets:     []float64{0.05, 0.1, 0.5, 1, 2, 5, 8, 15},
			},
			[]string{"probe"},
		),

		enrichmentTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "seo_enrichment_total",
				Help:        "Enrichment results by source (model or fallback)",
				ConstLabels: labels,
			},
			[]string{"source"},
		),

		cacheLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "seo_cache_lookups_total",
				Help:        "Analysis cache lookups by result",
				ConstLabels: labels,
			},
			[]string{"result"},
		),
	}
}

// GetCollectors returns all Prometheus collectors for registration
func (p *PrometheusCollector) GetCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		p.httpRequestsTotal,
		p.httpRequestDuration,
		p.httpRequestsInFlight,
		p.analysisTotal,
		p.analysisDuration,
		p.linkChecksTotal,
		p.linkCheckDuration,
		p.probesTotal,
		p.probeDuration,
		p.enrichmentTotal,
		p.cacheLookupsTotal,
	}
}

// RecordRequest records HTTP request metrics
func (p *PrometheusCollector) RecordRequest(method, path string, statusCode int, duration float64) {
	status := statusCodeToString(statusCode)

	p.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	p.httpRequestDuration.WithLabelValues(method, path, status).Observe(duration)
}

// RecordAnalysis records page analysis metrics
func (p *PrometheusCollector) RecordAnalysis(success bool, duration float64) {
	status := outcome(success)

	p.analysisTotal.WithLabelValues(status).Inc()
	p.analysisDuration.WithLabelValues(status).Observe(duration)
}

// RecordLinkCheck records link check metrics
func (p *PrometheusCollector) RecordLinkCheck(success bool, duration float64) {
	status := outcome(success)

	p.linkChecksTotal.WithLabelValues(status).Inc()
	p.linkCheckDuration.WithLabelValues(status).Observe(duration)
}

// RecordProbe records one pipeline branch; a failed probe means defaults were used
func (p *PrometheusCollector) RecordProbe(probe string, ok bool, duration float64) {
	status := "ok"
	if !ok {
		status = "degraded"
	}

	p.probesTotal.WithLabelValues(probe, status).Inc()
	p.probeDuration.WithLabelValues(probe).Observe(duration)
}

// RecordEnrichment records where an enrichment text came from
func (p *PrometheusCollector) RecordEnrichment(source string) {
	p.enrichmentTotal.WithLabelValues(source).Inc()
}

// RecordCacheLookup records an analysis cache hit or miss
func (p *PrometheusCollector) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	p.cacheLookupsTotal.WithLabelValues(result).Inc()
}

// IncRequestsInFlight increments the in-flight requests gauge
func (p *PrometheusCollector) IncRequestsInFlight() {
	p.httpRequestsInFlight.Inc()
}

// DecRequestsInFlight decrements the in-flight requests gauge
func (p *PrometheusCollector) DecRequestsInFlight() {
	p.httpRequestsInFlight.Dec()
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// statusCodeToString converts HTTP status code to string category
func statusCodeToString(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

// Ensure PrometheusCollector implements interfaces.MetricsCollector
var _ interfaces.MetricsCollector = (*PrometheusCollector)(nil)
