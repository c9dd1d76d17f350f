package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user.
	UserID string `json:"_id"`

	// Username is the unique login name. It must be an email address.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the password, never plaintext.
	// It is not exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the login and signup request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
