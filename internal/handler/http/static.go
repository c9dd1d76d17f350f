package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// notFound serves files of the front-end bundle for GET and HEAD requests
// outside the API, and answers everything else with the JSON 404.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if file, ok := h.staticFile(r); ok {
		http.ServeFile(w, r, file)
		return
	}

	writeEnvelope(w, r, http.StatusNotFound, envelope{Message: "Route not found"})
}

func (h *Handler) staticFile(r *http.Request) (string, bool) {
	if h.staticDir == "" {
		return "", false
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return "", false
	}

	p := path.Clean("/" + r.URL.Path)
	if p == "/api" || strings.HasPrefix(p, "/api/") || p == "/socket" {
		return "", false
	}
	if p == "/" {
		p = "/index.html"
	}

	file := filepath.Join(h.staticDir, filepath.FromSlash(p))
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		return "", false
	}
	return file, true
}
