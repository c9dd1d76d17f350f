package session

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/service"
	"github.com/MKhiriev/go-case-tracker/internal/utils"
	"github.com/MKhiriev/go-case-tracker/models"
)

const (
	// authenticatedKey marks a logged-in session.
	authenticatedKey = "isLoggedInSession"
	userIDKey        = "userId"
)

const unauthorizedMessage = "Unauthorized"

// Authority moves a browser between the anonymous and authenticated states.
type Authority struct {
	store      Store
	auth       service.AuthService
	cookieName string

	logger *logger.Logger
}

func NewAuthority(store Store, auth service.AuthService, cookieName string, logger *logger.Logger) *Authority {
	return &Authority{
		store:      store,
		auth:       auth,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Login verifies creds and, on success, marks the session authenticated
// under a freshly issued id. Account errors from the AuthService are
// returned unchanged.
func (a *Authority) Login(w http.ResponseWriter, r *http.Request, creds models.Credentials) (models.User, error) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	user, err := a.auth.Login(ctx, creds)
	if err != nil {
		return models.User{}, err
	}

	sess := a.session(r)
	if err = a.store.Rotate(ctx, sess); err != nil {
		log.Err(err).Msg("dropping pre-login session failed")
		return models.User{}, fmt.Errorf("error rotating session: %w", err)
	}

	sess.Values[authenticatedKey] = true
	sess.Values[userIDKey] = user.UserID

	if err = sess.Save(r, w); err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("saving session failed")
		return models.User{}, fmt.Errorf("error saving session: %w", err)
	}

	log.Info().Str("user_id", user.UserID).Msg("user logged in")
	return user, nil
}

// Logout destroys the server-side state and expires the cookie. Store
// failures are logged and never reported.
func (a *Authority) Logout(w http.ResponseWriter, r *http.Request) {
	sess := a.session(r)
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("destroying session failed")
	}
}

// IsAuthenticated reports whether r carries an authenticated session.
// Store errors read as anonymous.
func (a *Authority) IsAuthenticated(r *http.Request) bool {
	sess, err := a.store.Get(r, a.cookieName)
	if err != nil || sess == nil {
		return false
	}

	ok, _ := sess.Values[authenticatedKey].(bool)
	return ok
}

// RequireAuthenticated answers 401 before next runs unless the request is
// authenticated.
func (a *Authority) RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.IsAuthenticated(r) {
			logger.FromRequest(r).Debug().Str("uri", r.RequestURI).Msg("rejected anonymous request")
			utils.WriteJSON(w, models.Response{Success: false, Message: unauthorizedMessage}, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// session returns the request's session. A cookie that cannot be verified
// is replaced by a fresh session.
func (a *Authority) session(r *http.Request) *sessions.Session {
	sess, err := a.store.Get(r, a.cookieName)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("discarding unreadable session cookie")
	}
	if sess == nil {
		sess = sessions.NewSession(a.store, a.cookieName)
		sess.IsNew = true
	}
	if sess.Options == nil {
		sess.Options = &sessions.Options{Path: "/"}
	}
	return sess
}
