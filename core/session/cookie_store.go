package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmitrymomot/formauth/core/cookie"
)

// CookieStore keeps the whole session payload in a signed cookie.
type CookieStore struct {
	cookies *cookie.Manager
	name    string
}

// NewCookieStore creates a cookie-backed store writing the cookie called name.
func NewCookieStore(cookies *cookie.Manager, name string) *CookieStore {
	if name == "" {
		name = DefaultCookieName
	}
	return &CookieStore{
		cookies: cookies,
		name:    name,
	}
}

// Load decodes the session from the signed cookie. It never fails: anything
// that cannot be read or verified produces a fresh session.
func (s *CookieStore) Load(_ context.Context, cookieHeader string) (*Session, error) {
	payload, err := s.cookies.Read(cookieHeader, s.name)
	if err != nil {
		return New("", nil), nil
	}

	var data map[string]string
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return New("", nil), nil
	}

	return New("", data), nil
}

// Commit serializes the session into a signed Set-Cookie header value.
func (s *CookieStore) Commit(_ context.Context, sess *Session, opts CommitOptions) (string, error) {
	if sess == nil {
		return "", ErrNilSession
	}

	payload, err := json.Marshal(sess.data)
	if err != nil {
		return "", errors.Join(ErrSaveSession, err)
	}

	c, err := s.cookies.Cookie(s.name, string(payload), cookie.WithMaxAge(opts.maxAgeSeconds()))
	if err != nil {
		return "", errors.Join(ErrSaveSession, err)
	}

	sess.modified = false
	return c.String(), nil
}

// Destroy clears the in-memory session and returns an expiring cookie.
func (s *CookieStore) Destroy(_ context.Context, sess *Session) (string, error) {
	if sess == nil {
		return "", ErrNilSession
	}
	sess.clear()
	return s.cookies.Expired(s.name).String(), nil
}

var _ Store = (*CookieStore)(nil)
