package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
)

// withLogging writes one access log entry per request once the handler
// returns. The matched chi route is logged next to the raw URI so case
// ids do not fragment per-endpoint queries.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		entry := logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("duration", time.Since(started))
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if pattern := rc.RoutePattern(); pattern != "" {
				entry = entry.Str("route", pattern)
			}
		}
		entry.Send()
	})
}
