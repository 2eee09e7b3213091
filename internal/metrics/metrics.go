package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the dashboard backend.
type Metrics struct {
	// HTTP metrics
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Hosted database metrics
	UpstreamCalls   *prometheus.CounterVec
	UpstreamLatency *prometheus.HistogramVec

	// Fallbacks served from the synthetic generators
	SyntheticFallbacks *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// statusCoder is satisfied by upstream API errors.
type statusCoder interface {
	error
	StatusCode() int
}

// NewMetrics creates all metrics and registers them with reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "route"},
		),
		UpstreamCalls: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notion_calls_total",
				Help:      "Calls to the hosted database by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		UpstreamLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "notion_call_duration_seconds",
				Help:      "Hosted database call latency in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"operation"},
		),
		SyntheticFallbacks: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "synthetic_fallbacks_total",
				Help:      "Responses served from generated sample data",
			},
			[]string{"resource"},
		),
		RateLimitHits: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limit_hits_total",
				Help:      "Rate limit rejections",
			},
			[]string{"scope"},
		),
	}
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordRequest records a completed HTTP request.
func (m *Metrics) RecordRequest(method, route string, status int, latency time.Duration) {
	m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(latency.Seconds())
}

// RecordUpstreamCall records one hosted database call.
func (m *Metrics) RecordUpstreamCall(operation string, err error, latency time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		var sc statusCoder
		if errors.As(err, &sc) {
			outcome = strconv.Itoa(sc.StatusCode())
		}
	}
	m.UpstreamCalls.WithLabelValues(operation, outcome).Inc()
	m.UpstreamLatency.WithLabelValues(operation).Observe(latency.Seconds())
}

// RecordFallback records that a resource was answered with sample data.
func (m *Metrics) RecordFallback(resource string) {
	m.SyntheticFallbacks.WithLabelValues(resource).Inc()
}

// RecordRateLimitHit records a rate limit hit.
func (m *Metrics) RecordRateLimitHit(scope string) {
	m.RateLimitHits.WithLabelValues(scope).Inc()
}
