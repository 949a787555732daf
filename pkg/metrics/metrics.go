package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exposed by the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	IntegrationRequestsTotal   *prometheus.CounterVec
	IntegrationRequestDuration *prometheus.HistogramVec
}

// New registers and returns the service collectors.
// serviceName is attached to every metric as a constant label.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests processed.",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request processing time in seconds.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		IntegrationRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "integration_requests_total",
				Help:        "Total number of requests to upstream services.",
				ConstLabels: constLabels,
			},
			[]string{"target", "method", "status"},
		),
		IntegrationRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "integration_request_duration_seconds",
				Help:        "Upstream request time in seconds.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"target", "method"},
		),
	}
}
