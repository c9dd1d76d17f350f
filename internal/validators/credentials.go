package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-case-tracker/models"
)

const (
	// FieldUsername requires a non-blank username.
	FieldUsername = "username"

	// FieldEmail requires the username to be an RFC 5322 address.
	FieldEmail = "email"

	// FieldPassword requires a non-empty password that bcrypt can hash.
	FieldPassword = "password"
)

const (
	maxEmailLength    = 254
	maxPasswordLength = 72
)

// CredentialsValidator validates login and signup bodies. Login checks
// presence only; signup additionally checks the email format.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(creds.Username) == "" {
				return ErrUsernameRequired
			}
		case FieldEmail:
			if !isEmail(creds.Username) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrPasswordRequired
			}
			if len(creds.Password) > maxPasswordLength {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isEmail accepts bare addresses only: "Name <a@b.c>" parses as an address
// but is not a valid username.
func isEmail(s string) bool {
	if s == "" || len(s) > maxEmailLength {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	return addr.Address == s && addr.Name == ""
}
