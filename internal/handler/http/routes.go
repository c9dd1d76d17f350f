package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	// set before any sub-router is mounted so they inherit both
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withRecover)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.allowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)

		r.With(h.withTimeout).Get("/health", h.health)

		r.Route("/cases", func(r chi.Router) {
			// routes without a session
			r.Group(func(r chi.Router) {
				r.Use(h.withTimeout)

				r.Post("/login", h.login)
				r.Post("/signup", h.signup)
				r.Get("/me", h.me)
			})

			r.Group(func(r chi.Router) {
				r.Use(h.authority.RequireAuthenticated)

				// streamed bodies are bounded by the upload cap, not the request deadline
				r.Get("/files/{id}", h.downloadFile)
				r.Post("/upload", h.uploadFile)

				r.Group(func(r chi.Router) {
					r.Use(h.withTimeout)

					r.Post("/logout", h.logout)
					r.Get("/files", h.listFiles)

					r.Get("/", h.listCases)
					r.Post("/", h.createCase)
					r.Get("/{id}", h.getCase)
					r.Put("/{id}", h.updateCase)
					r.Delete("/{id}", h.deleteCase)
				})
			})
		})
	})

	if h.socket != nil {
		router.Handle("/socket", h.socket)
	}

	return router
}

// withTimeout bounds the request context by the configured request timeout.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	if h.requestTimeout <= 0 {
		return next
	}
	return middleware.Timeout(h.requestTimeout)(next)
}
