package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-case-tracker/internal/config"
	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/migrations"
)

const sqliteScheme = "sqlite://"

// retry policy for idempotent reads hitting a transient driver error.
const (
	maxReadAttempts = 3
	retryBackoff    = 50 * time.Millisecond
)

// DB wraps the connection pool together with everything repositories need
// to speak the connected dialect.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	builder            sq.StatementBuilderType
}

// NewConnect opens the database named by cfg.DSN. A DSN starting with
// "sqlite://" selects the embedded SQLite driver, anything else goes to
// PostgreSQL through pgx.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, ErrUnsupportedDSN
	}

	if path, ok := strings.CutPrefix(cfg.DSN, sqliteScheme); ok {
		return NewConnectSQLite(ctx, path, log)
	}

	return NewConnectPostgres(ctx, cfg.DSN, log)
}

func newDB(conn *sql.DB, dialect string, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: classifier,
		logger:             log,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

// Dialect reports the database/sql driver name in use.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema for the connected dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}
	return nil
}

// rebind rewrites "?" placeholders of a raw query for the connected dialect.
func (db *DB) rebind(query string) string {
	if db.dialect != migrations.DialectPostgres {
		return query
	}

	out, err := sq.Dollar.ReplacePlaceholders(query)
	if err != nil {
		return query
	}
	return out
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}

func (db *DB) isInvalidInput(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsInvalidInput(err)
}

// withRetry runs fn again while it keeps failing with a retryable error.
// Only idempotent reads go through here.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxReadAttempts; attempt++ {
		err = fn()
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().
			Err(err).
			Int("attempt", attempt).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}
	return err
}
