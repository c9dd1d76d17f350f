package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-case-tracker/internal/utils"
)

const (
	traceIDHeader   = utils.TraceIDHeader
	maxTraceIDBytes = 128
)

// withTraceID tags the request with a trace id and a logger carrying it.
// A client supplied X-Trace-ID is reused when it is a plain token,
// otherwise a fresh UUID is issued. The id is echoed in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = uuid.NewString()
		}

		l := h.logger.WithTraceID(traceID)
		ctx := context.WithValue(l.WithContext(r.Context()), utils.TraceIDCtxKey, traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validTraceID accepts non-empty ids made of letters, digits, '-', '_'
// and '.', so nothing odd ends up in logs or response headers.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDBytes {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
