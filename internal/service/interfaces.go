package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/go-case-tracker/models"
)

type AuthService interface {
	// Signup registers a new account. The username must be an email.
	Signup(ctx context.Context, creds models.Credentials) (models.User, error)
	// Login verifies creds and returns the account on success.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
}

type CaseService interface {
	List(ctx context.Context, req models.CaseListRequest) (models.CasePage, error)
	Get(ctx context.Context, id string) (models.Case, error)
	Create(ctx context.Context, input models.CaseInput) (models.Case, error)
	Update(ctx context.Context, id string, update models.CaseUpdate) (models.Case, error)
	Delete(ctx context.Context, id string) error
}

type FileService interface {
	Store(ctx context.Context, upload models.FileUpload) (models.StoredFile, error)
	List(ctx context.Context) ([]models.StoredFile, error)
	Get(ctx context.Context, id string) (models.StoredFile, error)
	// Open returns the metadata and a reader over the stored bytes. The
	// caller closes the reader.
	Open(ctx context.Context, id string) (models.StoredFile, io.ReadCloser, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// EventSink receives domain events after the change they describe is
// stored. Delivery is best effort.
type EventSink interface {
	Publish(ctx context.Context, topic, event string, payload any) error
}
