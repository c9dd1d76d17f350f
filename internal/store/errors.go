package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because the username is already taken. The check is enforced by
	// the unique constraint on users.username, so concurrent signups with the
	// same name cannot both succeed.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no account matches the username.
	ErrUserNotFound = errors.New("user does not exist")

	// ErrCaseNotFound is returned when a read, update or delete targets a case
	// id that does not exist. Malformed ids are reported the same way.
	ErrCaseNotFound = errors.New("case not found")

	// ErrFileNotFound is returned when no file metadata matches the id.
	ErrFileNotFound = errors.New("file not found")

	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrBlobNotFound is returned by blob storage when the key has no content.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrInvalidBlobKey is returned when a blob key would escape the storage
	// root or is empty.
	ErrInvalidBlobKey = errors.New("invalid blob key")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrUnsupportedDSN is returned when the DSN scheme matches no known
	// driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
