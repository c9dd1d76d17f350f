package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip encoded request bodies and compresses responses
// for clients that accept gzip. File downloads and already encoded or
// empty responses are passed through untouched.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := inflateBody(r.Body)
			if err != nil {
				writeEnvelope(w, r, http.StatusBadRequest, envelope{Message: "Invalid gzip data"})
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)
		gw := &gzipResponseWriter{ResponseWriter: w, zw: zw}

		next.ServeHTTP(gw, r)

		if gw.compressing() {
			_ = zw.Close()
		}
		zw.Reset(io.Discard)
		gzipWriters.Put(zw)
	})
}

// inflateBody wraps body in a pooled gzip reader that returns to the pool
// on Close.
func inflateBody(body io.ReadCloser) (io.ReadCloser, error) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(body); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}
	return &wrappedReadCloser{
		Reader: zr,
		OnClose: func() {
			_ = zr.Close()
			gzipReaders.Put(zr)
		},
	}, nil
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

// gzipResponseWriter picks compression or passthrough when the status
// is written, once the handler's headers are final.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer

	wroteHeader bool
	passthrough bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	h := w.Header()
	w.passthrough = !compressible(h, statusCode)
	if !w.passthrough {
		h.Set("Content-Encoding", "gzip")
		h.Add("Vary", "Accept-Encoding")
		h.Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.passthrough {
		return w.ResponseWriter.Write(data)
	}
	return w.zw.Write(data)
}

func (w *gzipResponseWriter) compressing() bool {
	return w.wroteHeader && !w.passthrough
}

func compressible(h http.Header, status int) bool {
	switch {
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	case h.Get("Content-Disposition") != "", h.Get("Content-Encoding") != "":
		return false
	}
	return true
}
