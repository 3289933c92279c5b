package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"golang.org/x/crypto/hkdf"
)

const (
	// MaxCookieSize is the maximum size for a cookie (4KB).
	MaxCookieSize = 4096
	// signingKeySize is the length of keys derived from secrets.
	signingKeySize = 32
	// signingKeyInfo binds derived keys to cookie signing.
	signingKeyInfo = "formauth/cookie-signing/v1"
)

// Manager signs, verifies and serializes cookies.
// The first secret signs new values; every secret is accepted on verification,
// which allows rotating secrets without invalidating existing cookies.
type Manager struct {
	keys     [][]byte
	defaults Options
	maxSize  int
}

// ManagerOption configures the Manager itself (not individual cookies).
type ManagerOption func(*Manager)

// WithMaxSize sets the maximum serialized cookie size.
func WithMaxSize(size int) ManagerOption {
	return func(m *Manager) {
		if size > 0 {
			m.maxSize = size
		}
	}
}

// New creates a new cookie manager with the specified secrets and options.
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	keys := make([][]byte, 0, len(secrets))
	for i, secret := range secrets {
		key, err := deriveKey(secret)
		if err != nil {
			return nil, fmt.Errorf("derive key for secret %d: %w", i, err)
		}
		keys = append(keys, key)
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		keys:     keys,
		defaults: defaults.with(opts),
		maxSize:  MaxCookieSize,
	}, nil
}

// NewWithOptions creates a new cookie manager with additional manager options.
func NewWithOptions(secrets []string, cookieOpts []Option, managerOpts ...ManagerOption) (*Manager, error) {
	m, err := New(secrets, cookieOpts...)
	if err != nil {
		return nil, err
	}

	for _, opt := range managerOpts {
		opt(m)
	}

	return m, nil
}

// Defaults returns the attributes applied to every cookie.
func (m *Manager) Defaults() Options {
	return m.defaults
}

// Cookie builds a signed cookie. Options override the manager defaults for
// this cookie only.
func (m *Manager) Cookie(name, value string, opts ...Option) (*http.Cookie, error) {
	options := m.defaults.with(opts)

	c := &http.Cookie{
		Name:     name,
		Value:    m.Sign(value),
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}

	if size := len(c.String()); size > m.maxSize {
		return nil, &SizeError{Name: name, Size: size, Max: m.maxSize}
	}

	return c, nil
}

// Expired returns a cookie that instructs the client to drop name.
func (m *Manager) Expired(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	}
}

// Read finds the named cookie in a raw Cookie header and verifies its signature.
func (m *Manager) Read(cookieHeader, name string) (string, error) {
	if cookieHeader == "" {
		return "", ErrCookieNotFound
	}

	r := &http.Request{Header: http.Header{"Cookie": {cookieHeader}}}
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	if c.Value == "" {
		return "", ErrCookieNotFound
	}

	return m.Verify(c.Value)
}

// Sign creates an HMAC signature for the value and returns "value|signature",
// both parts base64url encoded.
func (m *Manager) Sign(value string) string {
	return base64.URLEncoding.EncodeToString([]byte(value)) + "|" + signature(m.keys[0], []byte(value))
}

// Verify checks the HMAC signature of a signed value against every key.
func (m *Manager) Verify(signed string) (string, error) {
	encodedValue, sig, ok := strings.Cut(signed, "|")
	if !ok {
		return "", ErrInvalidFormat
	}

	value, err := base64.URLEncoding.DecodeString(encodedValue)
	if err != nil {
		return "", ErrInvalidFormat
	}

	valid := slices.ContainsFunc(m.keys, func(key []byte) bool {
		return subtle.ConstantTimeCompare([]byte(sig), []byte(signature(key, value))) == 1
	})
	if !valid {
		return "", ErrInvalidSignature
	}

	return string(value), nil
}

func signature(key, value []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(value)
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}

// deriveKey stretches a secret of any length into a fixed-size signing key.
func deriveKey(secret string) ([]byte, error) {
	key := make([]byte, signingKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(signingKeyInfo)), key); err != nil {
		return nil, err
	}
	return key, nil
}
