package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassification tells the retry loop in DB whether a failed
// statement may succeed when run again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// SQLSTATE codes carried by *pgconn.PgError.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports connection exceptions (class 08), transaction rollbacks
// such as deadlocks and serialization failures (class 40) and a server
// that is still starting up (57P03) as retryable. Anything else,
// including errors that do not come from PostgreSQL, is not.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresError(err)
	switch {
	case code == "":
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow:
		return Retryable
	}
	return NonRetryable
}

// IsUniqueViolation reports a duplicate username (23505).
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}

// IsInvalidInput reports a parameter PostgreSQL could not parse, such as
// a case id that is not a UUID (22P02).
func (c *PostgresErrorClassifier) IsInvalidInput(err error) bool {
	switch postgresError(err) {
	case pgerrcode.InvalidTextRepresentation, pgerrcode.InvalidParameterValue:
		return true
	}
	return false
}
