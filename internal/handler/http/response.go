package http

import (
	"net/http"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/utils"
	"github.com/MKhiriev/go-case-tracker/models"
)

type envelope = models.Response

// writeEnvelope sends body with status. Success is derived from status.
func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, body envelope) {
	body.Success = status >= 200 && status < 300
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}

// writeError answers with the status mapped from err. fallback is the
// message used when err has no client-facing text of its own.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	body := envelope{Message: messageFromError(err, status, fallback)}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(fallback)
		if h.exposeErrors {
			body.Error = err.Error()
		}
	} else {
		log.Debug().Err(err).Int("status", status).Msg(body.Message)
	}

	writeEnvelope(w, r, status, body)
}
