package store

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-case-tracker/internal/config"
	"github.com/MKhiriev/go-case-tracker/internal/logger"
)

// fakeS3 answers the handful of path-style calls the blob storage makes.
type fakeS3 struct {
	mu      sync.Mutex
	buckets map[string]bool
	objects map[string][]byte
	types   map[string]string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{
		buckets: make(map[string]bool),
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	bucket, key, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")

	if key == "" {
		switch r.Method {
		case http.MethodHead:
			if !f.buckets[bucket] {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusOK)
		case http.MethodPut:
			f.buckets[bucket] = true
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[key] = body
		f.types[key] = r.Header.Get("Content-Type")
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		body, ok := f.objects[key]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	case http.MethodDelete:
		delete(f.objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestS3Storage(t *testing.T) (BlobStorage, *fakeS3) {
	t.Helper()

	fake := newFakeS3()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	blobs, err := NewS3BlobStorage(testContext(), config.S3{
		Region:    "us-east-1",
		Bucket:    "cases",
		AccessKey: "test",
		SecretKey: "test",
		Endpoint:  srv.URL,
	}, logger.Nop())
	require.NoError(t, err)

	return blobs, fake
}

func TestS3BlobStorage_CreatesMissingBucket(t *testing.T) {
	_, fake := newTestS3Storage(t)
	assert.True(t, fake.buckets["cases"])
}

func TestS3BlobStorage_PutOpenDelete(t *testing.T) {
	blobs, fake := newTestS3Storage(t)
	ctx := testContext()

	n, err := blobs.Put(ctx, "1718000000000-notes.txt", strings.NewReader("hello"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.Equal(t, []byte("hello"), fake.objects["1718000000000-notes.txt"])
	assert.Equal(t, "text/plain", fake.types["1718000000000-notes.txt"])

	rc, size, err := blobs.Open(ctx, "1718000000000-notes.txt")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
	assert.Equal(t, int64(5), size)

	require.NoError(t, blobs.Delete(ctx, "1718000000000-notes.txt"))
	assert.NotContains(t, fake.objects, "1718000000000-notes.txt")
}

func TestS3BlobStorage_OpenMissing(t *testing.T) {
	blobs, _ := newTestS3Storage(t)

	_, _, err := blobs.Open(testContext(), "nope")
	require.ErrorIs(t, err, ErrBlobNotFound)
}
