// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bufio"
	"errors"
	"net"
	"net/http"
)

var errHijackNotSupported = errors.New("underlying response writer cannot be hijacked")

// responseWriter records the status and body size of a response for the
// access log without buffering it.
type responseWriter struct {
	http.ResponseWriter

	status      int // zero until the header is written
	wroteHeader bool
	size        int
}

// WriteHeader forwards only the first status, like net/http does.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status, w.wroteHeader = statusCode, true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Flush forwards to the underlying writer when it supports flushing.
func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack lets the socket endpoint take over the connection. The access log
// then reports 101 Switching Protocols.
func (w *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errHijackNotSupported
	}

	conn, rw, err := hj.Hijack()
	if err == nil {
		w.status = http.StatusSwitchingProtocols
		w.wroteHeader = true
	}
	return conn, rw, err
}

// Unwrap exposes the wrapped writer to [http.ResponseController].
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
