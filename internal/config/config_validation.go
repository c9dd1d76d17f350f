// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with a description otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Files.Backend {
	case FilesBackendDisk:
		if cfg.Storage.Files.UploadDir == "" {
			return fmt.Errorf("%w: upload directory is required", ErrInvalidStorageConfigs)
		}
	case FilesBackendS3:
		if cfg.Storage.S3.Bucket == "" || cfg.Storage.S3.Region == "" {
			return fmt.Errorf("%w: s3 bucket and region are required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown files backend %q", ErrInvalidStorageConfigs, cfg.Storage.Files.Backend)
	}

	if cfg.Storage.Files.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}

	if cfg.App.SessionSecret == "" {
		return fmt.Errorf("%w: session secret is required", ErrInvalidAppConfigs)
	}

	if cfg.App.SessionCookieName == "" || cfg.App.SessionLifetime <= 0 {
		return fmt.Errorf("%w: session cookie name and lifetime are required", ErrInvalidAppConfigs)
	}

	if cfg.Workers.SessionCleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
