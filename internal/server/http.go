package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-case-tracker/internal/config"
	"github.com/MKhiriev/go-case-tracker/internal/logger"
)

const (
	readHeaderTimeout      = 10 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}
}

// listenAndServe blocks until the server stops. A graceful shutdown is
// not an error.
func (h *httpServer) listenAndServe() error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}
	return h.serve(listener)
}

func (h *httpServer) serve(listener net.Listener) error {
	h.logger.Info().Str("address", listener.Addr().String()).Msg("http server listening")
	if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("http server shutdown")
	}
}
