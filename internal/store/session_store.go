package store

import (
	"context"
	"encoding/base32"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/models"
)

const sessionIDKeyLength = 32

// ErrSessionIDGeneration is returned when the system random source fails.
var ErrSessionIDGeneration = errors.New("failed to generate session id")

// SessionStore is a [sessions.Store] that keeps session values in a
// [SessionRepository]. The cookie only carries the signed session id.
type SessionStore struct {
	Codecs  []securecookie.Codec
	Options *sessions.Options

	repo SessionRepository
	now  func() time.Time
}

// NewSessionStore signs cookies and stored values with keyPairs and expires
// sessions after lifetime.
func NewSessionStore(repo SessionRepository, lifetime time.Duration, secure bool, keyPairs ...[]byte) *SessionStore {
	maxAge := int(lifetime / time.Second)

	s := &SessionStore{
		Codecs: securecookie.CodecsFromPairs(keyPairs...),
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   maxAge,
			Secure:   secure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
	s.MaxAge(maxAge)

	return s
}

// MaxAge sets the lifetime of new sessions and of the signatures checked by
// the codecs.
func (s *SessionStore) MaxAge(age int) {
	s.Options.MaxAge = age
	for _, codec := range s.Codecs {
		if sc, ok := codec.(*securecookie.SecureCookie); ok {
			sc.MaxAge(age)
		}
	}
}

// Get returns the session cached in the request registry, loading it on
// first use.
func (s *SessionStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New returns a session for name. A cookie that fails verification, or that
// points at an unknown or expired row, yields a fresh session.
func (s *SessionStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.Options
	session.Options = &opts
	session.IsNew = true

	c, errCookie := r.Cookie(name)
	if errCookie != nil {
		return session, nil
	}

	if err := securecookie.DecodeMulti(name, c.Value, &session.ID, s.Codecs...); err != nil {
		session.ID = ""
		return session, err
	}

	err := s.load(r.Context(), session)
	if errors.Is(err, ErrSessionNotFound) {
		session.ID = ""
		return session, nil
	}
	if err != nil {
		return session, err
	}

	session.IsNew = false
	return session, nil
}

// Save persists the session and writes its cookie. A negative MaxAge
// deletes the stored row and expires the cookie.
func (s *SessionStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	ctx := r.Context()

	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			if err := s.repo.Delete(ctx, session.ID); err != nil {
				return err
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		id, err := newSessionID()
		if err != nil {
			return err
		}
		session.ID = id
	}

	if err := s.save(ctx, session); err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.Codecs...)
	if err != nil {
		return fmt.Errorf("error encoding session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))

	return nil
}

// Rotate drops the stored row of session and clears its id so the next Save
// issues a new one. Used on login so a pre-login id never gains privileges.
func (s *SessionStore) Rotate(ctx context.Context, session *sessions.Session) error {
	if session.ID == "" {
		return nil
	}
	if err := s.repo.Delete(ctx, session.ID); err != nil {
		return err
	}
	session.ID = ""
	return nil
}

// Cleanup removes expired rows and reports how many were removed.
func (s *SessionStore) Cleanup(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, s.now())
}

func (s *SessionStore) save(ctx context.Context, session *sessions.Session) error {
	encoded, err := securecookie.EncodeMulti(session.Name(), session.Values, s.Codecs...)
	if err != nil {
		return fmt.Errorf("error encoding session values: %w", err)
	}

	now := s.now()
	rec := models.SessionRecord{
		ID:        session.ID,
		Data:      encoded,
		ExpiresAt: now.Add(time.Duration(session.Options.MaxAge) * time.Second),
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.repo.Upsert(ctx, rec)
}

func (s *SessionStore) load(ctx context.Context, session *sessions.Session) error {
	rec, err := s.repo.Get(ctx, session.ID, s.now())
	if err != nil {
		return err
	}

	if err = securecookie.DecodeMulti(session.Name(), rec.Data, &session.Values, s.Codecs...); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("stored session failed verification")
		return ErrSessionNotFound
	}

	return nil
}

func newSessionID() (string, error) {
	key := securecookie.GenerateRandomKey(sessionIDKeyLength)
	if key == nil {
		return "", ErrSessionIDGeneration
	}
	return strings.TrimRight(base32.StdEncoding.EncodeToString(key), "="), nil
}
