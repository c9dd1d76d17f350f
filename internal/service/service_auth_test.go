package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/mock"
	"github.com/MKhiriev/go-case-tracker/internal/store"
	"github.com/MKhiriev/go-case-tracker/internal/utils"
	"github.com/MKhiriev/go-case-tracker/internal/validators"
	"github.com/MKhiriev/go-case-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fixedIDs hands out ids in order and repeats the last one.
type fixedIDs struct {
	ids []string
	i   int
}

func (f *fixedIDs) Generate() string {
	id := f.ids[f.i]
	if f.i < len(f.ids)-1 {
		f.i++
	}
	return id
}

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, logger.Nop()).(*authService)
	svc.ids = &fixedIDs{ids: []string{"0195a1b2-0000-7000-8000-000000000001"}}
	svc.now = func() time.Time { return fixedNow }

	return svc, repo
}

// ─────────────────────────────────────────────
// Signup
// ─────────────────────────────────────────────

func TestAuthService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "0195a1b2-0000-7000-8000-000000000001", u.UserID)
			assert.Equal(t, "ada@example.com", u.Username)
			assert.Equal(t, fixedNow, u.CreatedAt)
			assert.NotEqual(t, "s3cret", u.PasswordHash)
			assert.True(t, utils.CheckPassword(u.PasswordHash, "s3cret"))
			return u, nil
		})

	user, err := svc.Signup(context.Background(), models.Credentials{Username: "ada@example.com", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Username)
	assert.Equal(t, "0195a1b2-0000-7000-8000-000000000001", user.UserID)
}

func TestAuthService_Signup_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{name: "empty username", creds: models.Credentials{Password: "x"}, wantErr: validators.ErrUsernameRequired},
		{name: "not an email", creds: models.Credentials{Username: "ada", Password: "x"}, wantErr: validators.ErrInvalidEmail},
		{name: "empty password", creds: models.Credentials{Username: "ada@example.com"}, wantErr: validators.ErrPasswordRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestAuthSvc(t, ctrl)

			_, err := svc.Signup(context.Background(), tt.creds)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Signup_UserAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.Signup(context.Background(), models.Credentials{Username: "ada@example.com", Password: "s3cret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
	assert.False(t, errors.Is(err, ErrValidation))
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)
	stored := models.User{UserID: "u-1", Username: "ada@example.com", PasswordHash: hash, CreatedAt: fixedNow}

	repo.EXPECT().FindUserByUsername(gomock.Any(), "ada@example.com").Return(stored, nil)

	user, err := svc.Login(context.Background(), models.Credentials{Username: "ada@example.com", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "ada@example.com").
		Return(models.User{UserID: "u-1", Username: "ada@example.com", PasswordHash: hash}, nil)

	_, err = svc.Login(context.Background(), models.Credentials{Username: "ada@example.com", Password: "guess"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "ghost@example.com", Password: "s3cret"})

	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	dbErr := errors.New("connection reset")
	repo.EXPECT().FindUserByUsername(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "ada@example.com", Password: "s3cret"})

	assert.ErrorIs(t, err, dbErr)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "ada@example.com"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Login(context.Background(), models.Credentials{Password: "s3cret"})
	assert.ErrorIs(t, err, ErrValidation)
}

// Login only checks presence, so a legacy non-email username still reaches
// the repository.
func TestAuthService_Login_DoesNotRequireEmailFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "ada").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "ada", Password: "s3cret"})

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
