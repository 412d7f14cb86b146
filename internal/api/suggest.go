package api

import (
	"net/http"
	"strings"

	"github.com/concerto-events/concerto/internal/logger"
)

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// handleSuggest serves GET /suggest?q=. It returns up to ten unique
// "City, ST" strings matching the partial query.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(q) < 2 {
		writeError(w, http.StatusBadRequest, "q must be at least 2 characters")
		return
	}

	suggestions, err := s.source.SuggestLocations(r.Context(), q)
	if err != nil {
		logger.Error("location suggest failed", logger.Fields{"query": q}, err)
		if s.metrics != nil {
			s.metrics.RecordUpstreamError()
		}
		writeError(w, http.StatusBadGateway, "could not load location suggestions")
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, suggestResponse{Suggestions: suggestions})
}
