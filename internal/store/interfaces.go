package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-case-tracker/models"
)

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser inserts the user. A taken username yields ErrUserAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername yields ErrUserNotFound when nobody has the name.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// CaseRepository persists cases.
type CaseRepository interface {
	Create(ctx context.Context, c models.Case) (models.Case, error)
	GetByID(ctx context.Context, id string) (models.Case, error)
	List(ctx context.Context, req models.CaseListRequest) (models.CasePage, error)
	// Update applies the non-blank fields of upd in one statement and
	// returns the stored result. created_at is never touched.
	Update(ctx context.Context, id string, upd models.CaseUpdate, updatedAt time.Time) (models.Case, error)
	Delete(ctx context.Context, id string) error
}

// FileRepository persists file metadata.
type FileRepository interface {
	Create(ctx context.Context, f models.StoredFile) (models.StoredFile, error)
	GetByID(ctx context.Context, id string) (models.StoredFile, error)
	List(ctx context.Context) ([]models.StoredFile, error)
}

// SessionRepository persists server-side session state.
type SessionRepository interface {
	// Get returns the record when it exists and expires after now.
	Get(ctx context.Context, id string, now time.Time) (models.SessionRecord, error)
	Upsert(ctx context.Context, rec models.SessionRecord) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// BlobStorage keeps file bytes addressed by key.
type BlobStorage interface {
	// Put stores r under key and returns the number of bytes written.
	// A read error from r aborts the write and leaves nothing behind.
	Put(ctx context.Context, key string, r io.Reader, contentType string) (int64, error)
	// Open yields ErrBlobNotFound when the key is absent. The returned size
	// is -1 when unknown.
	Open(ctx context.Context, key string) (io.ReadCloser, int64, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ErrorClassificator maps driver errors onto the categories repositories
// care about.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
	IsInvalidInput(err error) bool
}
