// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the case tracker binaries.
//
// Components receive a *Logger at construction time. Request handlers and
// services resolve the request-scoped logger (carrying the trace id) with
// FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so every zerolog method is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout, tagged with role.
func NewLogger(role string) *Logger {
	return NewLoggerTo(role, os.Stdout)
}

// NewLoggerTo returns a JSON logger writing to w. Every entry carries the
// role, a timestamp and the calling function name under "func". The
// global level starts at debug; narrow it with SetLevel.
func NewLoggerTo(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		if fn := runtime.FuncForPC(pc); fn != nil {
			return fn.Name()
		}
		return "unknown"
	}

	return &Logger{
		Logger: zerolog.New(w).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// SetLevel applies level globally. An empty level is a no-op; an unknown
// one is returned as an error and leaves the level unchanged.
func (l *Logger) SetLevel(level string) error {
	if level == "" {
		return nil
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(parsed)
	return nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID returns a copy of l whose entries carry trace_id.
// The receiver is not modified.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str("trace_id", traceID).Logger()}
}

// FromRequest is FromContext for r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one it falls
// back to zerolog's default context logger, so it never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
