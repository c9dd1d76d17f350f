package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/models"
)

// sessionRepository stores encoded session values in the "sessions" table.
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

// Get treats an expired row exactly like a missing one.
func (r *sessionRepository) Get(ctx context.Context, id string, now time.Time) (models.SessionRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionQuery(r.builder, id, now)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Get").Msg("failed to build query")
		return models.SessionRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rec models.SessionRecord
	err = r.withRetry(ctx, func() error {
		return r.QueryRowContext(ctx, query, args...).
			Scan(&rec.ID, &rec.Data, &rec.ExpiresAt, &rec.CreatedAt, &rec.UpdatedAt)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SessionRecord{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "sessionRepository.Get").Msg("failed to select session")
		return models.SessionRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rec, nil
}

// Upsert inserts rec or replaces data and expiry of an existing row.
// created_at of an existing row is preserved.
func (r *sessionRepository) Upsert(ctx context.Context, rec models.SessionRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSessionQuery(r.builder, rec)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Upsert").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.Upsert").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete is idempotent.
func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.Delete").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpired removes every session whose expiry is at or before now and
// reports how many were removed.
func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredSessionsQuery(r.builder, now)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteExpired").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteExpired").Msg("failed to delete expired sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return removed, nil
}
