// Package session provides a key-value session tied to a request's Cookie
// header, and the stores that persist it.
//
// A Session is a plain in-memory map. Set, Unset and Flash only change that
// map; nothing reaches the client until the session is committed:
//
//	sess, err := store.Load(ctx, r.Header.Get("Cookie"))
//	if err != nil {
//		return err
//	}
//	sess.Set("userId", "123")
//
//	setCookie, err := store.Commit(ctx, sess, session.CommitOptions{MaxAge: time.Hour})
//	if err != nil {
//		return err
//	}
//	w.Header().Add("Set-Cookie", setCookie)
//
// # Stores
//
// CookieStore keeps the JSON-encoded data inside a signed cookie, so no
// server-side state exists. RedisStore keeps the data in Redis under a random
// UUID and puts only the signed ID in the cookie; Destroy deletes the key.
//
// Both stores treat an absent, malformed or tampered cookie as an empty
// session. Only backend failures (for example Redis being unreachable) are
// returned as errors, wrapped with ErrLoadSession, ErrSaveSession or
// ErrDeleteSession.
//
// # Expiration
//
// CommitOptions.MaxAge sets the cookie Max-Age (and the Redis key TTL). A zero
// MaxAge produces a session cookie that the browser drops when it closes.
package session
