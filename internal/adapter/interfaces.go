// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client for the case tracker API.
//
// [CaseTrackerClient] mirrors the calls made by the browser front end. The
// HTTP implementation ([NewHTTPCaseTrackerClient]) keeps the session cookie
// between calls, so a successful Login authenticates every later request.
//
// Non-2xx responses are mapped by mapHTTPError onto the sentinels in
// errors.go, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401,
// [ErrNotFound] for 404). The server's message is kept in the error text.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-case-tracker/models"
)

// CaseTrackerClient defines the operations of the case tracker API.
type CaseTrackerClient interface {
	// Health reports the server status and version. No session is needed.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Signup creates an account. It does not log the account in.
	Signup(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login starts a session. The cookie is kept for later calls.
	Login(ctx context.Context, creds models.Credentials) error

	// Me reports whether the current session is logged in.
	Me(ctx context.Context) (bool, error)

	// Logout ends the current session.
	Logout(ctx context.Context) error

	// ListCases returns one page of cases, newest first.
	ListCases(ctx context.Context, page, limit int) (models.CasePage, error)

	GetCase(ctx context.Context, id string) (models.Case, error)
	CreateCase(ctx context.Context, input models.CaseInput) (models.Case, error)
	UpdateCase(ctx context.Context, id string, update models.CaseUpdate) (models.Case, error)
	DeleteCase(ctx context.Context, id string) error

	// ListFiles returns the metadata of every stored file.
	ListFiles(ctx context.Context) ([]models.StoredFile, error)

	// UploadFile sends content as the "file" part of a multipart form.
	UploadFile(ctx context.Context, fileName, contentType string, content io.Reader) (models.StoredFile, error)

	// DownloadFile copies the stored bytes to dst and returns the name,
	// type and size announced by the server.
	DownloadFile(ctx context.Context, id string, dst io.Writer) (models.StoredFile, error)

	// WatchCases subscribes to the notification socket and calls fn for
	// every created case until ctx is done or the server closes the channel.
	WatchCases(ctx context.Context, fn func(models.CaseCreatedPayload)) error
}
