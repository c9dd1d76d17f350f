package service

import (
	"context"

	"github.com/MKhiriev/go-case-tracker/internal/config"
	"github.com/MKhiriev/go-case-tracker/internal/logger"
)

// appInfoService answers the health endpoint. The version is fixed at
// startup, so lookups never touch storage.
type appInfoService struct {
	version string
}

// NewAppInfoService fails when no version is configured, so a health
// check can never report an empty one.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", cfg.Version).Msg("health endpoint version set")
	return &appInfoService{version: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
