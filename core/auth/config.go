package auth

import (
	"github.com/dmitrymomot/formauth/core/cookie"
	"github.com/dmitrymomot/formauth/core/session"
)

// Config holds the auth session configuration.
// SessionSecret signs new cookies and is used verbatim, commas included.
// PreviousSecrets only verify, so cookies signed before a rotation keep working.
type Config struct {
	SessionSecret   string   `env:"SESSION_SECRET,required"`
	PreviousSecrets []string `env:"SESSION_PREVIOUS_SECRETS" envSeparator:","`
	UserSessionKey  string   `env:"USER_SESSION_KEY,required"`
	// Secure marks the session cookie Secure. Enable it in production.
	Secure     bool   `env:"SESSION_SECURE" envDefault:"false"`
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"__session"`
}

func (c Config) validate() error {
	if c.SessionSecret == "" {
		return ErrMissingSecret
	}
	if c.UserSessionKey == "" {
		return ErrMissingUserSessionKey
	}
	return nil
}

func (c Config) cookieName() string {
	if c.CookieName == "" {
		return session.DefaultCookieName
	}
	return c.CookieName
}

// CookieManager returns the signing cookie manager described by the config:
// HttpOnly, Path=/, SameSite=Lax, and Secure when configured.
// Use it to build a custom session store that shares the auth cookie settings.
func (c Config) CookieManager() (*cookie.Manager, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	cfg := cookie.DefaultConfig()
	cfg.Secrets = append([]string{c.SessionSecret}, c.PreviousSecrets...)
	cfg.Secure = c.Secure
	return cookie.NewFromConfig(cfg)
}
