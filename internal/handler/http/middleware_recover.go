package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
)

// withRecover turns a handler panic into the 500 envelope. Aborted
// handlers keep their net/http semantics.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			h.writeError(w, r, fmt.Errorf("panic: %v", rvr), internalServerErrorMessage)
		}()

		next.ServeHTTP(w, r)
	})
}
