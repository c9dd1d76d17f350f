package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-case-tracker/internal/app"
	"github.com/MKhiriev/go-case-tracker/internal/config"
	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("case-tracker-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	// a linker-injected version wins over the built-in default
	if buildVersion != "" && cfg.App.Version == config.Defaults().App.Version {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("files_backend", cfg.Storage.Files.Backend).
		Str("allowed_origin", cfg.App.AllowedOrigin).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating app")
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Err(err).Msg("error closing app")
		}
	}()

	if err = a.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
