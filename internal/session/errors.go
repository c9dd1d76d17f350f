package session

import "errors"

// ErrUnauthorized is reported for requests without an authenticated
// session.
var ErrUnauthorized = errors.New("unauthorized")
