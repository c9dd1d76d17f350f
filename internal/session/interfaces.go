package session

import (
	"context"

	"github.com/gorilla/sessions"
)

// Store is a gorilla session store that can also drop a session id so the
// next Save issues a fresh one.
type Store interface {
	sessions.Store
	Rotate(ctx context.Context, session *sessions.Session) error
}
