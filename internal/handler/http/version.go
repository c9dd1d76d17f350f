package http

import (
	"net/http"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/utils"
	"github.com/MKhiriev/go-case-tracker/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	body := models.HealthResponse{
		Success: true,
		Message: "Server is running",
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}

	if _, err := utils.WriteJSON(w, body, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing health response failed")
	}
}
