// Package app is the composition root of the case tracker server. It
// builds storage, services, the session authority, the notification hub,
// transport handlers and background workers from one configuration.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-case-tracker/internal/config"
	"github.com/MKhiriev/go-case-tracker/internal/handler"
	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/notify"
	"github.com/MKhiriev/go-case-tracker/internal/server"
	"github.com/MKhiriev/go-case-tracker/internal/service"
	"github.com/MKhiriev/go-case-tracker/internal/session"
	"github.com/MKhiriev/go-case-tracker/internal/store"
	"github.com/MKhiriev/go-case-tracker/internal/workers"
)

type App struct {
	cfg *config.StructuredConfig

	db       *store.DB
	hub      *notify.Hub
	handlers *handler.Handlers
	workers  *workers.Workers

	logger *logger.Logger
}

// New connects to the database, applies migrations and wires every
// component. On error everything opened so far is closed again.
func New(ctx context.Context, cfg *config.StructuredConfig, logger *logger.Logger) (*App, error) {
	db, err := store.NewConnect(ctx, cfg.Storage.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	a := &App{cfg: cfg, db: db, logger: logger}
	if err = a.wire(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}

	return a, nil
}

func (a *App) wire(ctx context.Context) error {
	if err := a.db.Migrate(); err != nil {
		return err
	}

	storages, err := store.NewStorages(ctx, a.db, a.cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	sessionStore, err := store.NewSessionStoreFromConfig(storages.SessionRepository, a.cfg.App)
	if err != nil {
		return err
	}

	a.hub = notify.NewHub(a.logger)

	services, err := service.NewServices(storages, a.hub, *a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	authority := session.NewAuthority(sessionStore, services.AuthService, a.cfg.App.SessionCookieName, a.logger)

	a.handlers, err = handler.NewHandlers(services, authority, a.hub, *a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	a.workers = workers.NewWorkers(sessionStore, a.cfg.Workers, a.logger)
	return nil
}

// Handler returns the root HTTP handler. It is meant for tests that serve
// the app through httptest.
func (a *App) Handler() http.Handler {
	return a.handlers.HTTP.Init()
}

// Run starts the background workers and serves until ctx is done.
func (a *App) Run(ctx context.Context) error {
	srv, err := server.NewServer(a.handlers, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.workers.Run(ctx)

	return srv.Run(ctx)
}

// Close disconnects socket subscribers and closes the database.
func (a *App) Close() error {
	if a.hub != nil {
		a.hub.Close()
	}

	if a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}
	return nil
}
