package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, empty address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or an unknown files backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing session secret).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero cleanup interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

// ErrInvalidClientConfigs indicates an incomplete command line client
// configuration (for example, a username without a password).
var ErrInvalidClientConfigs = errors.New("invalid client configuration")
