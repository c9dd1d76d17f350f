// Package migrations embeds the SQL schema for both supported database
// dialects and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialect names accepted by Migrate. They match the database/sql driver
// names registered by the store package.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

var (
	ErrNilDB          = errors.New("db is nil")
	ErrUnknownDialect = errors.New("unknown migration dialect")
)

// goose keeps its dialect and base FS in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration for dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dir, err := dirFor(dialect)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dirFor(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", nil
	case DialectSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
}
