package auth

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/formauth/core/handler"
	"github.com/dmitrymomot/formauth/core/logger"
	"github.com/dmitrymomot/formauth/core/response"
	"github.com/dmitrymomot/formauth/core/session"
)

// Manager issues, reads and revokes the identity stored in the session cookie.
// It keeps no per-request state and is safe for concurrent use.
type Manager struct {
	store   session.Store
	userKey string
	logger  *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithStore replaces the default cookie store, e.g. with a session.RedisStore.
func WithStore(store session.Store) Option {
	return func(m *Manager) {
		if store != nil {
			m.store = store
		}
	}
}

// WithLogger sets the logger. Defaults to a logger that discards output.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a Manager. Without WithStore the session lives entirely in a
// signed cookie named after cfg.CookieName.
func New(cfg Config, opts ...Option) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	m := &Manager{
		userKey: cfg.UserSessionKey,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		cookies, err := cfg.CookieManager()
		if err != nil {
			return nil, err
		}
		m.store = session.NewCookieStore(cookies, cfg.cookieName())
	}
	m.logger = m.logger.With(logger.Component("auth"))

	return m, nil
}

// SignInParams are the arguments of SignIn.
type SignInParams struct {
	UserID string
	// Expiration becomes the cookie Max-Age. Zero keeps the cookie
	// session-scoped.
	Expiration time.Duration
	RedirectTo string
}

// SignOutParams are the arguments of SignOut.
type SignOutParams struct {
	RedirectTo string
}

// GetSession loads the session referenced by the request's Cookie header.
// A missing or invalid cookie yields an empty session; only store I/O fails.
func (m *Manager) GetSession(r *http.Request) (*session.Session, error) {
	return m.store.Load(r.Context(), r.Header.Get("Cookie"))
}

// SignIn stores userID in the session and returns a 302 redirect that sets
// the committed session cookie. An existing identity is overwritten. The
// session is regenerated first, so an id planted before sign-in never
// becomes authenticated.
func (m *Manager) SignIn(r *http.Request, p SignInParams) (handler.Response, error) {
	if p.UserID == "" {
		return nil, ErrEmptyUserID
	}

	sess, err := m.GetSession(r)
	if err != nil {
		m.logger.ErrorContext(r.Context(), "failed to load session", logger.Action("sign_in"), logger.Error(err))
		return nil, err
	}

	sess.Regenerate()
	sess.Set(m.userKey, p.UserID)

	setCookie, err := m.store.Commit(r.Context(), sess, session.CommitOptions{MaxAge: p.Expiration})
	if err != nil {
		m.logger.ErrorContext(r.Context(), "failed to commit session", logger.Action("sign_in"), logger.Error(err))
		return nil, err
	}

	m.logger.DebugContext(r.Context(), "user signed in",
		logger.UserID(p.UserID),
		logger.SessionID(sess.ID()),
		logger.Duration(p.Expiration),
	)

	return response.WithSetCookie(response.Redirect(p.RedirectTo), setCookie), nil
}

// SignOut destroys the session and returns a 302 redirect that clears the
// cookie. It succeeds when there was no session to begin with.
func (m *Manager) SignOut(r *http.Request, p SignOutParams) (handler.Response, error) {
	sess, err := m.GetSession(r)
	if err != nil {
		m.logger.ErrorContext(r.Context(), "failed to load session", logger.Action("sign_out"), logger.Error(err))
		return nil, err
	}

	userID, _ := sess.Get(m.userKey)

	setCookie, err := m.store.Destroy(r.Context(), sess)
	if err != nil {
		m.logger.ErrorContext(r.Context(), "failed to destroy session", logger.Action("sign_out"), logger.Error(err))
		return nil, err
	}

	m.logger.DebugContext(r.Context(), "user signed out", logger.UserID(userID), logger.SessionID(sess.ID()))

	return response.WithSetCookie(response.Redirect(p.RedirectTo), setCookie), nil
}

// UserID returns the signed-in user's id, or "" when the request is anonymous.
func (m *Manager) UserID(r *http.Request) (string, error) {
	sess, err := m.GetSession(r)
	if err != nil {
		return "", err
	}
	userID, _ := sess.Get(m.userKey)
	return userID, nil
}

// RequireUserID is like UserID but returns ErrUnauthorized for anonymous requests.
func (m *Manager) RequireUserID(r *http.Request) (string, error) {
	userID, err := m.UserID(r)
	if err != nil {
		return "", err
	}
	if userID == "" {
		return "", ErrUnauthorized
	}
	return userID, nil
}
