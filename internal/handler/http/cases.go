package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-case-tracker/internal/service"
	"github.com/MKhiriev/go-case-tracker/internal/utils"
	"github.com/MKhiriev/go-case-tracker/internal/validators"
	"github.com/MKhiriev/go-case-tracker/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

func (h *Handler) listCases(w http.ResponseWriter, r *http.Request) {
	req, err := listRequestFromQuery(r)
	if err != nil {
		h.writeError(w, r, err, "Failed to fetch cases")
		return
	}

	page, err := h.services.CaseService.List(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "Failed to fetch cases")
		return
	}

	cases := page.Cases
	if cases == nil {
		cases = []models.Case{}
	}
	total := page.TotalCount

	writeEnvelope(w, r, http.StatusOK, envelope{
		Message:    "Cases fetched successfully",
		Data:       cases,
		TotalCount: &total,
	})
}

func (h *Handler) getCase(w http.ResponseWriter, r *http.Request) {
	c, err := h.services.CaseService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Failed to fetch case")
		return
	}

	writeEnvelope(w, r, http.StatusOK, envelope{Message: "Case fetched successfully", Data: c})
}

func (h *Handler) createCase(w http.ResponseWriter, r *http.Request) {
	var input models.CaseInput
	if err := utils.DecodeBody(r, &input); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err), "Failed to create case")
		return
	}

	c, err := h.services.CaseService.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err, "Failed to create case")
		return
	}

	writeEnvelope(w, r, http.StatusCreated, envelope{Message: "Case created successfully", Data: c})
}

func (h *Handler) updateCase(w http.ResponseWriter, r *http.Request) {
	var update models.CaseUpdate
	if err := utils.DecodeBody(r, &update); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err), "Failed to update case")
		return
	}

	c, err := h.services.CaseService.Update(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		h.writeError(w, r, err, "Failed to update case")
		return
	}

	writeEnvelope(w, r, http.StatusOK, envelope{Message: "Case updated successfully", Data: c})
}

func (h *Handler) deleteCase(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CaseService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "Failed to delete case")
		return
	}

	writeEnvelope(w, r, http.StatusOK, envelope{Message: "Case deleted successfully"})
}

// listRequestFromQuery reads page and limit, defaulting to 1 and 10.
// Values that are not integers are validation errors; range checks are
// left to the case service.
func listRequestFromQuery(r *http.Request) (models.CaseListRequest, error) {
	q := r.URL.Query()
	req := models.CaseListRequest{Page: defaultPage, Limit: defaultLimit}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidPage)
		}
		req.Page = page
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidLimit)
		}
		req.Limit = limit
	}

	return req, nil
}
