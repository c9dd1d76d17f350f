package service

import "errors"

var (
	// ErrValidation wraps every input rule violation. The validator error
	// joined with it carries the specific rule.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials means the user exists but the password does not
	// match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrPayloadTooLarge      = errors.New("payload too large")

	// ErrFileMissingOnDisk means metadata exists but the stored bytes are gone.
	ErrFileMissingOnDisk = errors.New("file not found on disk")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
