package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/utils"
	"github.com/MKhiriev/go-case-tracker/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := utils.DecodeBody(r, &creds); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err), internalServerErrorMessage)
		return
	}

	if _, err := h.authority.Login(w, r, creds); err != nil {
		h.writeError(w, r, err, internalServerErrorMessage)
		return
	}

	writeEnvelope(w, r, http.StatusOK, envelope{Message: "Login successful"})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := utils.DecodeBody(r, &creds); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err), internalServerErrorMessage)
		return
	}

	user, err := h.services.AuthService.Signup(ctx, creds)
	if err != nil {
		h.writeError(w, r, err, internalServerErrorMessage)
		return
	}

	log.Info().Str("user_id", user.UserID).Msg("user signed up")
	writeEnvelope(w, r, http.StatusOK, envelope{Message: "User signed up successfully", Data: user})
}

// logout always succeeds; the authority logs store failures.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.authority.Logout(w, r)
	writeEnvelope(w, r, http.StatusOK, envelope{Message: "Logout successful"})
}

// me answers 200 either way and reports the login state in success.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	body := models.Response{Success: false, Message: "User is not logged in"}
	if h.authority.IsAuthenticated(r) {
		body = models.Response{Success: true, Message: "User is logged in"}
	}

	if _, err := utils.WriteJSON(w, body, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}
