package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-case-tracker/internal/adapter"
	"github.com/MKhiriev/go-case-tracker/internal/client"
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
	log := logger.NewLoggerTo("case-tracker-client", os.Stderr)

	newAPI := func(cfg *config.ClientConfig) (adapter.CaseTrackerClient, error) {
		return adapter.NewHTTPCaseTrackerClient(cfg.ServerURL, cfg.RequestTimeout, log)
	}
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app, err := client.NewApp(newAPI, info.String(), os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
