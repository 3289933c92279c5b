package session

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/formauth/core/cookie"
)

const (
	// DefaultCookieName is the session cookie name used when none is configured.
	DefaultCookieName = "__session"
	// DefaultRedisPrefix namespaces session keys in Redis.
	DefaultRedisPrefix = "session:"
	// DefaultRedisTTL bounds keys of browser-session cookies, which carry no
	// Max-Age of their own.
	DefaultRedisTTL = 24 * time.Hour
)

// Config holds session store configuration.
type Config struct {
	CookieName  string        `env:"SESSION_COOKIE_NAME" envDefault:"__session"`
	RedisPrefix string        `env:"SESSION_REDIS_PREFIX" envDefault:"session:"`
	RedisTTL    time.Duration `env:"SESSION_REDIS_TTL" envDefault:"24h"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		CookieName:  DefaultCookieName,
		RedisPrefix: DefaultRedisPrefix,
		RedisTTL:    DefaultRedisTTL,
	}
}

// NewCookieStoreFromConfig creates a CookieStore from configuration.
func NewCookieStoreFromConfig(cfg Config, cookies *cookie.Manager) *CookieStore {
	return NewCookieStore(cookies, cfg.CookieName)
}

// NewRedisStoreFromConfig creates a RedisStore from configuration.
func NewRedisStoreFromConfig(cfg Config, client redis.UniversalClient, cookies *cookie.Manager) *RedisStore {
	return NewRedisStore(client, cookies, cfg.CookieName,
		WithRedisPrefix(cfg.RedisPrefix),
		WithRedisTTL(cfg.RedisTTL),
	)
}
