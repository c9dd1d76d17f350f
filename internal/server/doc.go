// Package server runs the HTTP transport.
//
// It owns the listener: Run serves until the caller's context ends and
// then drains in-flight requests within the configured shutdown timeout.
// Translating OS signals into that cancellation is left to cmd/server.
package server
