package api

import (
	"net/http"
	"time"

	"github.com/concerto-events/concerto/internal/metrics"
)

// statusRecorder captures the response code for instrumentation.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withMetrics wraps a handler with request counting and latency
// observation under the given endpoint label.
func withMetrics(m *metrics.Manager, endpoint string, next http.HandlerFunc) http.HandlerFunc {
	if m == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next(rec, r)
		m.ObserveRequest(endpoint, rec.status, time.Since(start))
	}
}
