package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
)

// diskBlobStorage keeps blobs as plain files under root.
type diskBlobStorage struct {
	root   string
	logger *logger.Logger
}

// NewDiskBlobStorage creates root when missing.
func NewDiskBlobStorage(root string, logger *logger.Logger) (BlobStorage, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		logger.Err(err).Str("func", "NewDiskBlobStorage").Str("root", root).Msg("failed to create upload directory")
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}

	logger.Debug().Str("root", root).Msg("creating disk blob storage")
	return &diskBlobStorage{root: root, logger: logger}, nil
}

// Put streams r into a temporary file next to the target and renames it into
// place once fully written, so readers never see a partial blob.
func (d *diskBlobStorage) Put(ctx context.Context, key string, r io.Reader, _ string) (int64, error) {
	log := logger.FromContext(ctx)

	path, err := d.path(key)
	if err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(d.root, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "diskBlobStorage.Put").Msg("failed to create temp file")
		return 0, fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	written, copyErr := io.Copy(tmp, &contextReader{ctx: ctx, r: r})
	closeErr := tmp.Close()
	if err = errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(tmpName)
		return written, err
	}

	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		log.Err(err).Str("func", "diskBlobStorage.Put").Str("key", key).Msg("failed to move blob into place")
		return 0, fmt.Errorf("error storing blob: %w", err)
	}

	return written, nil
}

func (d *diskBlobStorage) Open(_ context.Context, key string) (io.ReadCloser, int64, error) {
	path, err := d.path(key)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, 0, ErrBlobNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("error opening blob: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, fmt.Errorf("error reading blob info: %w", err)
	}

	return f, info.Size(), nil
}

func (d *diskBlobStorage) Delete(_ context.Context, key string) error {
	path, err := d.path(key)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error deleting blob: %w", err)
	}
	return nil
}

// path maps key to a file directly inside root. Keys are flat names.
func (d *diskBlobStorage) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return "", ErrInvalidBlobKey
	}
	return filepath.Join(d.root, key), nil
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
