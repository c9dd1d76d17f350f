package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-case-tracker/internal/config"
	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/service"
)

// multipartOverhead is the room left for part headers and boundaries on
// top of the largest accepted file.
const multipartOverhead = 1 << 20

type Handler struct {
	services  *service.Services
	authority SessionAuthority
	socket    http.Handler

	allowedOrigin  string
	staticDir      string
	exposeErrors   bool
	requestTimeout time.Duration
	maxUploadSize  int64

	logger *logger.Logger
}

// NewHandler builds the REST handler. socket may be nil, in which case
// /socket is not served.
func NewHandler(services *service.Services, authority SessionAuthority, socket http.Handler, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		authority:      authority,
		socket:         socket,
		allowedOrigin:  cfg.App.AllowedOrigin,
		staticDir:      cfg.App.StaticDir,
		exposeErrors:   cfg.App.ExposeErrors,
		requestTimeout: cfg.Server.RequestTimeout,
		maxUploadSize:  cfg.Storage.Files.MaxUploadSize,
		logger:         logger,
	}
}
