package models

import "time"

// SessionRecord is the server-side state of one browser session.
// Data holds the encoded session values and is opaque to storage.
type SessionRecord struct {
	ID        string
	Data      string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the name of the database table
// associated with the SessionRecord model.
func (s SessionRecord) TableName() string {
	return "sessions"
}

// IsExpired reports whether the record is no longer valid at now.
func (s SessionRecord) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
