// Package metrics provides Prometheus instrumentation for the concerto
// HTTP service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "concerto"

// Manager owns the service's metric collectors on a private registry,
// keeping the default Go collectors out of the scrape.
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	searchesTotal  prometheus.Counter
	eventsFetched  prometheus.Counter
	eventsReturned prometheus.Counter
	upstreamErrors prometheus.Counter
}

// NewManager creates a metrics manager with all collectors registered.
func NewManager() *Manager {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Manager{
		registry: registry,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint and status code.",
		}, []string{"endpoint", "code"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by endpoint.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		searchesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Event searches served.",
		}),
		eventsFetched: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_fetched_total",
			Help:      "Raw events fetched from the provider.",
		}),
		eventsReturned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_returned_total",
			Help:      "Events returned to callers after dedup and filtering.",
		}),
		upstreamErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_errors_total",
			Help:      "Failed provider requests.",
		}),
	}
}

// Handler serves the scrape endpoint for this manager's registry.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request.
func (m *Manager) ObserveRequest(endpoint string, code int, duration time.Duration) {
	m.httpRequests.WithLabelValues(endpoint, strconv.Itoa(code)).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordSearch records one served search with its fetched and returned
// event counts.
func (m *Manager) RecordSearch(fetched, returned int) {
	m.searchesTotal.Inc()
	m.eventsFetched.Add(float64(fetched))
	m.eventsReturned.Add(float64(returned))
}

// RecordUpstreamError counts a failed provider request.
func (m *Manager) RecordUpstreamError() {
	m.upstreamErrors.Inc()
}
