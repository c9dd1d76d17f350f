package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/migrations"
)

// sqlitePragmas waits on a locked database instead of failing at once and
// enforces the case_files foreign key.
const sqlitePragmas = "?_busy_timeout=5000&_foreign_keys=on"

// NewConnectSQLite opens the database file at path, creating it and its
// directory when missing.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if err := ensureSQLiteFile(path); err != nil {
		log.Err(err).Str("path", path).Msg("preparing sqlite file failed")
		return nil, err
	}

	conn, err := sql.Open(migrations.DialectSQLite, path+sqlitePragmas)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	// one writer at a time; a single connection avoids SQLITE_BUSY churn
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("path", path).Msg("sqlite ping failed")
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("connected to sqlite")

	return newDB(conn, migrations.DialectSQLite, NewSQLiteErrorClassifier(), log), nil
}

func ensureSQLiteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create sqlite directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return fmt.Errorf("create sqlite file: %w", err)
	}
	return f.Close()
}
