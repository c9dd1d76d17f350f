package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-case-tracker/internal/config"
	"github.com/MKhiriev/go-case-tracker/internal/crypto"
	"github.com/MKhiriev/go-case-tracker/internal/logger"
)

// Storages bundles every persistence component the services depend on.
type Storages struct {
	UserRepository    UserRepository
	CaseRepository    CaseRepository
	FileRepository    FileRepository
	SessionRepository SessionRepository
	BlobStorage       BlobStorage
}

// NewStorages builds the repositories on top of db and the blob backend
// selected by cfg.Files.Backend.
func NewStorages(ctx context.Context, db *DB, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	blobs, err := NewBlobStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		CaseRepository:    NewCaseRepository(db, log),
		FileRepository:    NewFileRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		BlobStorage:       blobs,
	}, nil
}

func NewBlobStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (BlobStorage, error) {
	switch cfg.Files.Backend {
	case config.FilesBackendDisk, "":
		return NewDiskBlobStorage(cfg.Files.UploadDir, log)
	case config.FilesBackendS3:
		return NewS3BlobStorage(ctx, cfg.S3, log)
	default:
		return nil, fmt.Errorf("unknown files backend %q", cfg.Files.Backend)
	}
}

// NewSessionStoreFromConfig wires a [SessionStore] over the session table.
// Cookies are signed and encrypted with keys derived from the session
// secret.
func NewSessionStoreFromConfig(repo SessionRepository, cfg config.App) (*SessionStore, error) {
	lifetime := cfg.SessionLifetime
	if lifetime <= 0 {
		lifetime = 30 * 24 * time.Hour
	}

	keys, err := crypto.NewKeyChainService().DeriveSessionKeys(cfg.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("error deriving session keys: %w", err)
	}

	return NewSessionStore(repo, lifetime, cfg.SessionSecure, keys.Pairs()...), nil
}
