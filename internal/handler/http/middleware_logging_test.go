package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accessLogRequest carries a zerolog logger writing to buf, the way
// withTraceID stores it.
func accessLogRequest(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

type accessLogEntry struct {
	URI      string  `json:"uri"`
	Method   string  `json:"method"`
	Status   int     `json:"status"`
	Size     int     `json:"size"`
	Duration float64 `json:"duration"`
}

func decodeAccessLog(t *testing.T, buf *bytes.Buffer) accessLogEntry {
	t.Helper()

	var entry accessLogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log: %s", buf.String())
	return entry
}

func TestWithLogging_RecordsRequest(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		target  string
		handler http.HandlerFunc
		status  int
		size    int
	}{
		{
			name:   "case list",
			method: http.MethodGet,
			target: "/api/cases/?page=2&limit=5",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"success":true}`))
			},
			status: http.StatusOK,
			size:   len(`{"success":true}`),
		},
		{
			name:   "case created",
			method: http.MethodPost,
			target: "/api/cases/",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{}`))
			},
			status: http.StatusCreated,
			size:   2,
		},
		{
			name:   "unauthorized without body",
			method: http.MethodDelete,
			target: "/api/cases/c-1",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			status: http.StatusUnauthorized,
		},
		{
			name:    "handler writes nothing",
			method:  http.MethodGet,
			target:  "/api/health",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			status:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rec := httptest.NewRecorder()

			withLogging(tt.handler).ServeHTTP(rec, accessLogRequest(tt.method, tt.target, &buf))

			entry := decodeAccessLog(t, &buf)
			assert.Equal(t, tt.target, entry.URI)
			assert.Equal(t, tt.method, entry.Method)
			assert.Equal(t, tt.status, entry.Status)
			assert.Equal(t, tt.size, entry.Size)
		})
	}
}

func TestWithLogging_Duration(t *testing.T) {
	var buf bytes.Buffer
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(20 * time.Millisecond)
	})

	withLogging(slow).ServeHTTP(httptest.NewRecorder(), accessLogRequest(http.MethodGet, "/api/cases/files", &buf))

	// zerolog writes durations in milliseconds by default
	assert.GreaterOrEqual(t, decodeAccessLog(t, &buf).Duration, float64(20))
}

func TestWithLogging_PassesResponseThrough(t *testing.T) {
	var buf bytes.Buffer
	rec := httptest.NewRecorder()
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"Case not found"}`))
	})

	withLogging(h).ServeHTTP(rec, accessLogRequest(http.MethodGet, "/api/cases/missing", &buf))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"message":"Case not found"}`, rec.Body.String())
}

func TestWithLogging_WithoutLoggerInContext(t *testing.T) {
	rec := httptest.NewRecorder()
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NotPanics(t, func() {
		withLogging(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWithLogging_RoutePattern(t *testing.T) {
	var buf bytes.Buffer
	router := chi.NewRouter()
	router.Use(withLogging)
	router.Get("/api/cases/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), accessLogRequest(http.MethodGet, "/api/cases/42", &buf))

	var entry struct {
		URI   string `json:"uri"`
		Route string `json:"route"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/api/cases/42", entry.URI)
	assert.Equal(t, "/api/cases/{id}", entry.Route)
}
