package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the stored row.
//
// Error handling:
//   - unique violation on users.username → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.QueryRowContext(ctx, r.db.rebind(createUser), user.UserID, user.Username, user.PasswordHash, user.CreatedAt).
		Scan(&created.UserID, &created.Username, &created.PasswordHash, &created.CreatedAt)
	if err != nil {
		if r.db.isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("username already taken")
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByUsername retrieves the account with the exact username.
// [ErrUserNotFound] is returned when there is none.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, r.db.rebind(findUserByUsername), username).
			Scan(&found.UserID, &found.Username, &found.PasswordHash, &found.CreatedAt)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}
