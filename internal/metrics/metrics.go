/**
 * @description
 * Prometheus collectors for the dashboard backend. Following the explicit
 * dependency injection pattern, the Metrics struct is constructed once at
 * startup and passed to the components that record measurements. A nil
 * *Metrics is valid and turns every recording call into a no-op.
 */

package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the application.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	fallbackServedTotal *prometheus.CounterVec
}

// New creates a Metrics instance and registers all collectors. If registry is
// nil, prometheus.DefaultRegisterer is used.
func New(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by handler, method and status",
			},
			[]string{"handler", "method", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"handler", "method"},
		),
		upstreamRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yaya_upstream_requests_total",
				Help: "Total number of YaYa Wallet API calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		upstreamRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "yaya_upstream_request_duration_seconds",
				Help:    "Duration of YaYa Wallet API calls in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"operation"},
		),
		fallbackServedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sample_data_fallbacks_total",
				Help: "Total number of responses served from generated sample data",
			},
			[]string{"operation"},
		),
	}
}

// RecordHTTPRequest records one handled HTTP request.
func (m *Metrics) RecordHTTPRequest(handler, method string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(handler, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(handler, method).Observe(seconds)
}

// RecordUpstreamRequest records one attempt against the YaYa Wallet API.
// outcome is "live" for a usable response and "error" otherwise.
func (m *Metrics) RecordUpstreamRequest(operation, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.upstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.upstreamRequestDuration.WithLabelValues(operation).Observe(seconds)
}

// RecordFallback records one response served from sample data.
func (m *Metrics) RecordFallback(operation string) {
	if m == nil {
		return
	}
	m.fallbackServedTotal.WithLabelValues(operation).Inc()
}
