package session

import (
	"context"
	"time"
)

// Store loads and persists sessions keyed by the request's Cookie header.
// Commit and Destroy return the Set-Cookie header value the caller must send.
type Store interface {
	// Load returns the session referenced by cookieHeader. A missing, invalid
	// or tampered cookie yields a fresh empty session, not an error.
	Load(ctx context.Context, cookieHeader string) (*Session, error)
	// Commit persists the session and returns the Set-Cookie header value.
	Commit(ctx context.Context, sess *Session, opts CommitOptions) (string, error)
	// Destroy erases the session and returns a Set-Cookie header value that
	// clears the cookie on the client.
	Destroy(ctx context.Context, sess *Session) (string, error)
}

// CommitOptions controls a single commit.
type CommitOptions struct {
	// MaxAge sets the cookie Max-Age. Zero leaves the cookie session-scoped.
	MaxAge time.Duration
}

// maxAgeSeconds converts MaxAge to whole seconds, rounding sub-second
// positive durations up so they are not mistaken for "no expiration".
func (o CommitOptions) maxAgeSeconds() int {
	if o.MaxAge <= 0 {
		return 0
	}
	seconds := int(o.MaxAge / time.Second)
	if seconds == 0 {
		return 1
	}
	return seconds
}
