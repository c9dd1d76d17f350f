package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-case-tracker/models"
	"github.com/stretchr/testify/assert"
)

func TestCredentialsValidator(t *testing.T) {
	tests := []struct {
		name    string
		creds   models.Credentials
		fields  []string
		wantErr error
	}{
		{
			name:  "login presence only",
			creds: models.Credentials{Username: "not-an-email", Password: "pw"},
		},
		{
			name:    "missing username",
			creds:   models.Credentials{Username: " ", Password: "pw"},
			wantErr: ErrUsernameRequired,
		},
		{
			name:    "missing password",
			creds:   models.Credentials{Username: "a@b.co"},
			wantErr: ErrPasswordRequired,
		},
		{
			name:    "password too long",
			creds:   models.Credentials{Username: "a@b.co", Password: strings.Repeat("p", 73)},
			wantErr: ErrPasswordTooLong,
		},
		{
			name:   "signup valid",
			creds:  models.Credentials{Username: "agent@example.com", Password: "pw"},
			fields: []string{FieldUsername, FieldEmail, FieldPassword},
		},
		{
			name:    "signup invalid email",
			creds:   models.Credentials{Username: "agent", Password: "pw"},
			fields:  []string{FieldUsername, FieldEmail, FieldPassword},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "signup display name form rejected",
			creds:   models.Credentials{Username: "Agent <agent@example.com>", Password: "pw"},
			fields:  []string{FieldEmail},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "unknown field",
			creds:   models.Credentials{Username: "a@b.co", Password: "pw"},
			fields:  []string{"token"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewCredentialsValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.creds, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCredentialsValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewCredentialsValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestIsEmail_TooLong(t *testing.T) {
	long := strings.Repeat("a", 250) + "@b.co"
	assert.False(t, isEmail(long))
}
