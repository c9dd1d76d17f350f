package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/store"
	"github.com/MKhiriev/go-case-tracker/internal/utils"
	"github.com/MKhiriev/go-case-tracker/internal/validators"
	"github.com/MKhiriev/go-case-tracker/models"
)

type idGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// It handles account registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator
	ids       idGenerator
	now       func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewCredentialsValidator(),
		ids:            utils.NewUUIDGenerator(),
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// The username must be a non-empty email and the password non-empty. The
// password is hashed with bcrypt before it reaches the repository.
//
// Returns the persisted user or:
//   - ErrValidation joined with the failing validator rule.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken, see store.ErrUserAlreadyExists).
func (a *authService) Signup(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	err := a.validator.Validate(ctx, creds, validators.FieldUsername, validators.FieldEmail, validators.FieldPassword)
	if err != nil {
		log.Debug().Err(err).Str("username", creds.Username).Msg("invalid signup data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hash, err := utils.HashPassword(creds.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:       a.ids.Generate(),
		Username:     creds.Username,
		PasswordHash: hash,
		CreatedAt:    a.now(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrValidation if username or password is empty.
//   - store.ErrUserNotFound (wrapped) if nobody has the username. A dummy
//     bcrypt comparison still runs so timing matches the wrong password path.
//   - ErrInvalidCredentials if the password does not match.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.DummyPasswordCheck(creds.Password)
		}
		log.Debug().Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, creds.Password) {
		log.Info().
			Str("user_id", foundUser.UserID).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}
