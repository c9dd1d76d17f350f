package http

import (
	"net/http"

	"github.com/MKhiriev/go-case-tracker/models"
)

// SessionAuthority logs browsers in and out and guards protected routes.
type SessionAuthority interface {
	Login(w http.ResponseWriter, r *http.Request, creds models.Credentials) (models.User, error)
	Logout(w http.ResponseWriter, r *http.Request)
	IsAuthenticated(r *http.Request) bool
	RequireAuthenticated(next http.Handler) http.Handler
}
