package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the Prometheus collectors for the API. Each handler instance
// owns its registry so repeated construction in tests does not trip duplicate
// registration.
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "calcsuite_http_requests_total",
		Help: "Number of API requests by endpoint and status code.",
	}, []string{"endpoint", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "calcsuite_http_request_duration_seconds",
		Help:    "API request duration by endpoint.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	registry.MustRegister(requests, duration)

	return &metrics{
		registry: registry,
		requests: requests,
		duration: duration,
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
