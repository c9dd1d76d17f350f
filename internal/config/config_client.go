package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// ClientConfig holds the settings of the command line client.
type ClientConfig struct {
	// ServerURL is the base address of the case tracker server.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds every outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Username and Password log the client in before commands that need
	// a session.
	// Env: CLIENT_USERNAME, CLIENT_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// LogLevel is a zerolog level name.
	// Env: CLIENT_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// ClientDefaults returns the client configuration used when no source sets
// a field.
func ClientDefaults() *ClientConfig {
	return &ClientConfig{
		ServerURL:      "http://localhost:4000",
		RequestTimeout: 30 * time.Second,
		LogLevel:       "warn",
	}
}

// GetClientConfig merges defaults, the .env file, CLIENT_* environment
// variables and flagCfg, in that order. flagCfg carries the command line
// flags; its zero fields leave the lower layers in place.
func GetClientConfig(flagCfg *ClientConfig) (*ClientConfig, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	envCfg := &ClientConfig{}
	if err := env.ParseWithOptions(envCfg, env.Options{Prefix: "CLIENT_"}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	cfg := ClientDefaults()
	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if src == nil {
			continue
		}
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.ServerURL) == "" {
		return fmt.Errorf("%w: server URL is required", ErrInvalidClientConfigs)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}
	if (cfg.Username == "") != (cfg.Password == "") {
		return fmt.Errorf("%w: %w", ErrInvalidClientConfigs, errPartialCredentials)
	}
	return nil
}

var errPartialCredentials = errors.New("username and password must be set together")
