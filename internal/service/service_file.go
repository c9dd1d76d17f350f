package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/store"
	"github.com/MKhiriev/go-case-tracker/internal/utils"
	"github.com/MKhiriev/go-case-tracker/internal/validators"
	"github.com/MKhiriev/go-case-tracker/models"
)

// fileService keeps uploaded bytes in a BlobStorage and their metadata in
// a FileRepository.
type fileService struct {
	repository store.FileRepository
	blobs      store.BlobStorage

	validator validators.Validator
	maxSize   int64

	ids    idGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewFileService builds a FileService. maxSize is the exclusive upper bound
// of an upload; a non-positive value falls back to the attachment default.
func NewFileService(repository store.FileRepository, blobs store.BlobStorage, maxSize int64, logger *logger.Logger) FileService {
	constraints := validators.AttachmentConstraints
	if maxSize > 0 {
		constraints.MaxSize = maxSize
	}

	return &fileService{
		repository: repository,
		blobs:      blobs,
		validator:  validators.NewFileValidator(constraints),
		maxSize:    constraints.MaxSize,
		ids:        utils.NewUUIDGenerator(),
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

// Store validates the upload, streams it to blob storage and records its
// metadata. The blob is removed again when the metadata insert fails.
func (s *fileService) Store(ctx context.Context, upload models.FileUpload) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, upload); err != nil {
		if errors.Is(err, validators.ErrUnsupportedFileType) {
			return models.StoredFile{}, fmt.Errorf("%w: %w", ErrUnsupportedMediaType, err)
		}
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if upload.Body == nil {
		return models.StoredFile{}, fmt.Errorf("%w: empty file body", ErrValidation)
	}

	now := s.now()
	name := baseFileName(upload.FileName)
	key := strconv.FormatInt(now.UnixMilli(), 10) + "-" + name
	contentType := validators.NormalizeContentType(upload.ContentType)

	limited := &sizeLimitedReader{r: upload.Body, max: s.maxSize}
	size, err := s.blobs.Put(ctx, key, limited, contentType)
	if err != nil {
		if limited.exceeded {
			return models.StoredFile{}, ErrPayloadTooLarge
		}
		log.Err(err).Str("key", key).Msg("storing file bytes failed")
		return models.StoredFile{}, fmt.Errorf("storing file bytes failed: %w", err)
	}

	file := models.StoredFile{
		ID:        s.ids.Generate(),
		FileName:  name,
		FilePath:  key,
		FileType:  contentType,
		FileSize:  size,
		CreatedAt: now,
	}

	saved, err := s.repository.Create(ctx, file)
	if err != nil {
		log.Err(err).Str("key", key).Msg("saving file metadata failed")
		if delErr := s.blobs.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			log.Warn().Err(delErr).Str("key", key).Msg("orphaned blob left behind")
		}
		return models.StoredFile{}, fmt.Errorf("saving file metadata failed: %w", err)
	}

	return saved, nil
}

func (s *fileService) List(ctx context.Context) ([]models.StoredFile, error) {
	files, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing files failed: %w", err)
	}
	return files, nil
}

func (s *fileService) Get(ctx context.Context, id string) (models.StoredFile, error) {
	if !utils.IsUUID(id) {
		return models.StoredFile{}, store.ErrFileNotFound
	}
	return s.repository.GetByID(ctx, id)
}

// Open reports ErrFileMissingOnDisk when the metadata exists but the bytes
// are gone.
func (s *fileService) Open(ctx context.Context, id string) (models.StoredFile, io.ReadCloser, error) {
	file, err := s.Get(ctx, id)
	if err != nil {
		return models.StoredFile{}, nil, err
	}

	rc, size, err := s.blobs.Open(ctx, file.FilePath)
	if err != nil {
		if errors.Is(err, store.ErrBlobNotFound) {
			logger.FromContext(ctx).Warn().Str("file_id", id).Str("key", file.FilePath).Msg("file bytes missing")
			return models.StoredFile{}, nil, ErrFileMissingOnDisk
		}
		return models.StoredFile{}, nil, fmt.Errorf("opening file bytes failed: %w", err)
	}
	if size >= 0 {
		file.FileSize = size
	}

	return file, rc, nil
}

// baseFileName strips any directory part a client may have sent.
func baseFileName(name string) string {
	return filepath.Base(filepath.Clean("/" + strings.ReplaceAll(name, "\\", "/")))
}

// sizeLimitedReader fails once max bytes have been read, so an upload of
// exactly max bytes is rejected as well.
type sizeLimitedReader struct {
	r        io.Reader
	max      int64
	n        int64
	exceeded bool
}

func (l *sizeLimitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.n += int64(n)
	if l.n >= l.max {
		l.exceeded = true
		return n, ErrPayloadTooLarge
	}
	return n, err
}
