package server

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-case-tracker/internal/config"
	"github.com/MKhiriev/go-case-tracker/internal/handler"
	"github.com/MKhiriev/go-case-tracker/internal/logger"
)

var errNoServersAreCreated = errors.New("no http handler or listen address configured")

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	s.logger.Info().Msg("starting http server")
	go func() {
		serveErr <- s.httpServer.listenAndServe()
	}()

	select {
	case err := <-serveErr:
		// listener failed before ctx ended
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	if err := <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("http server stopped")
	return nil
}
