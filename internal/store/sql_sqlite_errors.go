package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for the embedded
// SQLite backend.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify treats a busy or locked database as retryable.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}
	return NonRetryable
}

func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

// IsInvalidInput is always false: SQLite stores ids as plain text.
func (c *SQLiteErrorClassifier) IsInvalidInput(error) bool {
	return false
}
