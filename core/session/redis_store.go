package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/formauth/core/cookie"
)

// RedisStore keeps session data in Redis; the cookie carries only the signed
// session ID.
type RedisStore struct {
	client  redis.UniversalClient
	cookies *cookie.Manager
	name    string
	prefix  string
	ttl     time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithRedisPrefix sets the key prefix (default "session:").
func WithRedisPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithRedisTTL sets the key lifetime used when a commit carries no MaxAge
// (default DefaultRedisTTL). Non-positive values are ignored: every key
// expires eventually.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewRedisStore creates a Redis-backed store writing the cookie called name.
func NewRedisStore(client redis.UniversalClient, cookies *cookie.Manager, name string, opts ...RedisOption) *RedisStore {
	if name == "" {
		name = DefaultCookieName
	}
	s := &RedisStore{
		client:  client,
		cookies: cookies,
		name:    name,
		prefix:  DefaultRedisPrefix,
		ttl:     DefaultRedisTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the session referenced by the signed ID cookie. Missing, invalid
// or expired sessions yield a fresh one; Redis failures are returned.
func (s *RedisStore) Load(ctx context.Context, cookieHeader string) (*Session, error) {
	id, err := s.cookies.Read(cookieHeader, s.name)
	if err != nil {
		return New("", nil), nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return New("", nil), nil
	}

	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return New("", nil), nil
		}
		return nil, errors.Join(ErrLoadSession, err)
	}

	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil {
		return New("", nil), nil
	}

	return New(id, data), nil
}

// Commit writes the session data to Redis and returns the ID cookie.
// Sessions without an ID get a new random one; the key of a regenerated
// session's old ID is deleted.
func (s *RedisStore) Commit(ctx context.Context, sess *Session, opts CommitOptions) (string, error) {
	if sess == nil {
		return "", ErrNilSession
	}

	payload, err := json.Marshal(sess.data)
	if err != nil {
		return "", errors.Join(ErrSaveSession, err)
	}

	id := sess.id
	if id == "" {
		id = uuid.NewString()
	}

	ttl := s.ttl
	if opts.MaxAge > 0 {
		ttl = time.Duration(opts.maxAgeSeconds()) * time.Second
	}

	c, err := s.cookies.Cookie(s.name, id, cookie.WithMaxAge(opts.maxAgeSeconds()))
	if err != nil {
		return "", errors.Join(ErrSaveSession, err)
	}

	if err := s.client.Set(ctx, s.key(id), payload, ttl).Err(); err != nil {
		return "", errors.Join(ErrSaveSession, err)
	}

	if sess.previous != "" && sess.previous != id {
		if err := s.client.Del(ctx, s.key(sess.previous)).Err(); err != nil {
			return "", errors.Join(ErrDeleteSession, err)
		}
	}

	sess.id = id
	sess.previous = ""
	sess.modified = false
	return c.String(), nil
}

// Destroy deletes the session key and returns an expiring cookie.
func (s *RedisStore) Destroy(ctx context.Context, sess *Session) (string, error) {
	if sess == nil {
		return "", ErrNilSession
	}

	if sess.id != "" {
		if err := s.client.Del(ctx, s.key(sess.id)).Err(); err != nil {
			return "", errors.Join(ErrDeleteSession, err)
		}
	}

	sess.clear()
	return s.cookies.Expired(s.name).String(), nil
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

var _ Store = (*RedisStore)(nil)
