package handler

import (
	"github.com/MKhiriev/go-case-tracker/internal/config"
	"github.com/MKhiriev/go-case-tracker/internal/handler/http"
	"github.com/MKhiriev/go-case-tracker/internal/handler/ws"
	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/service"
)

type Handlers struct {
	HTTP   *http.Handler
	Socket *ws.Handler
}

// NewHandlers builds the REST gateway and, when broker is set, the socket
// endpoint it mounts at /socket.
func NewHandlers(services *service.Services, authority http.SessionAuthority, broker ws.Broker, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{}
	if broker != nil {
		handlers.Socket = ws.NewHandler(broker, cfg.App.AllowedOrigin, logger)
		handlers.HTTP = http.NewHandler(services, authority, handlers.Socket, cfg, logger)
	} else {
		handlers.HTTP = http.NewHandler(services, authority, nil, cfg, logger)
	}

	return handlers, nil
}
