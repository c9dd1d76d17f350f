// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading requests. Callers can match against
// them with [errors.Is].
var (
	// ErrInvalidBody is returned when a JSON or form body cannot be decoded.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrFileFieldMissing is returned when an upload carries no "file" part.
	ErrFileFieldMissing = errors.New("no file uploaded")

	// ErrNotMultipart is returned when an upload is not multipart/form-data.
	ErrNotMultipart = errors.New("upload must be multipart/form-data")
)
