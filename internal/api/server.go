package api

import (
	"context"
	"net/http"

	"github.com/concerto-events/concerto/internal/metrics"
	"github.com/concerto-events/concerto/internal/ticketmaster"
)

// Source abstracts the provider client so handlers can be tested
// against a fake.
type Source interface {
	SearchEvents(ctx context.Context, q ticketmaster.SearchQuery) ([]ticketmaster.RawEvent, error)
	SuggestLocations(ctx context.Context, query string) ([]string, error)
}

// Server wires the HTTP routes for the search API.
type Server struct {
	source        Source
	metrics       *metrics.Manager
	defaultRadius int
	pageSize      int
}

// NewServer creates a Server. metrics may be nil in tests.
func NewServer(source Source, m *metrics.Manager, defaultRadius, pageSize int) *Server {
	return &Server{
		source:        source,
		metrics:       m,
		defaultRadius: defaultRadius,
		pageSize:      pageSize,
	}
}

// Register attaches all routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/events", withMetrics(s.metrics, "events", s.handleEvents))
	mux.HandleFunc("/suggest", withMetrics(s.metrics, "suggest", s.handleSuggest))
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
