package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/migrations"
)

const (
	postgresMaxOpenConns    = 10
	postgresMaxIdleConns    = 4
	postgresConnMaxLifetime = 30 * time.Minute

	postgresPingAttempts = 3
	postgresPingBackoff  = time.Second
)

// NewConnectPostgres opens a pgx backed pool and waits for the server to
// answer. A server that is still starting is pinged again a few times.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(migrations.DialectPostgres, dsn)
	if err != nil {
		log.Err(err).Msg("opening postgres pool failed")
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)
	conn.SetConnMaxLifetime(postgresConnMaxLifetime)

	classifier := NewPostgresErrorClassifier()
	if err = pingPostgres(ctx, conn, classifier, log); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	log.Info().Msg("connected to postgres")

	return newDB(conn, migrations.DialectPostgres, classifier, log), nil
}

func pingPostgres(ctx context.Context, conn *sql.DB, classifier ErrorClassificator, log *logger.Logger) error {
	var err error
	for attempt := 1; attempt <= postgresPingAttempts; attempt++ {
		if err = conn.PingContext(ctx); err == nil {
			return nil
		}
		if classifier.Classify(err) != Retryable || attempt == postgresPingAttempts {
			break
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("postgres not ready, retrying")
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * postgresPingBackoff):
		}
	}
	log.Err(err).Msg("postgres ping failed")
	return err
}

// postgresError returns the SQLSTATE of err, or "" when err did not come
// from PostgreSQL.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
