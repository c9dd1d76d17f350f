// Package session decides whether a browser is logged in.
//
// An [Authority] pairs the account checks of [service.AuthService] with a
// gorilla [sessions.Store]. The cookie carries only a signed session id;
// the authenticated flag lives server side.
package session
