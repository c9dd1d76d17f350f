// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Two bare variables used by hosting platforms are honoured as fallbacks:
// PORT for the listen address and DATABASE_URI for the DSN.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Server.HTTPAddress == "" {
		if port := os.Getenv("PORT"); port != "" {
			cfg.Server.HTTPAddress = ":" + port
		}
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = os.Getenv("DATABASE_URI")
	}

	return nil
}

// loadDotEnv exports the variables of the file at path into the process
// environment. Variables that are already set keep their value. A missing
// file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading %s: %w", path, err)
}
