package session_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formauth/core/cookie"
	"github.com/dmitrymomot/formauth/core/session"
)

func newCookieManager(t *testing.T, secrets ...string) *cookie.Manager {
	t.Helper()
	if len(secrets) == 0 {
		secrets = []string{"secret"}
	}
	m, err := cookie.New(secrets)
	require.NoError(t, err)
	return m
}

func TestCookieStore_Load(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := session.NewCookieStore(newCookieManager(t), "")

	tests := []struct {
		name   string
		header string
	}{
		{"empty header", ""},
		{"unrelated cookies", "theme=dark"},
		{"unsigned value", "__session=eyJ1c2VySWQiOiIxMjMifQ=="},
		{"signed by other secret", mustCommit(t, session.NewCookieStore(newCookieManager(t, "other"), ""), "123")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := store.Load(ctx, tt.header)
			require.NoError(t, err)
			assert.Empty(t, sess.Data())
		})
	}
}

func mustCommit(t *testing.T, store session.Store, userID string) string {
	t.Helper()
	sess, err := store.Load(context.Background(), "")
	require.NoError(t, err)
	sess.Set("userId", userID)
	setCookie, err := store.Commit(context.Background(), sess, session.CommitOptions{})
	require.NoError(t, err)
	return setCookie
}

func TestCookieStore_CommitAndLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := session.NewCookieStore(newCookieManager(t), "__session")

	t.Run("round trip without max-age", func(t *testing.T) {
		sess, err := store.Load(ctx, "")
		require.NoError(t, err)
		sess.Set("userId", "123")

		setCookie, err := store.Commit(ctx, sess, session.CommitOptions{})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(setCookie, "__session="))
		assert.NotContains(t, setCookie, "Max-Age")
		assert.False(t, sess.IsModified())

		loaded, err := store.Load(ctx, setCookie)
		require.NoError(t, err)
		v, ok := loaded.Get("userId")
		assert.True(t, ok)
		assert.Equal(t, "123", v)
	})

	t.Run("max-age in seconds", func(t *testing.T) {
		sess := session.New("", nil)
		setCookie, err := store.Commit(ctx, sess, session.CommitOptions{MaxAge: 60 * time.Second})
		require.NoError(t, err)
		assert.Contains(t, setCookie, "Max-Age=60")
	})

	t.Run("sub-second max-age rounds up", func(t *testing.T) {
		setCookie, err := store.Commit(ctx, session.New("", nil), session.CommitOptions{MaxAge: time.Millisecond})
		require.NoError(t, err)
		assert.Contains(t, setCookie, "Max-Age=1")
	})

	t.Run("oversized payload", func(t *testing.T) {
		sess := session.New("", nil)
		sess.Set("blob", strings.Repeat("x", cookie.MaxCookieSize))
		_, err := store.Commit(ctx, sess, session.CommitOptions{})
		assert.ErrorIs(t, err, session.ErrSaveSession)
	})

	t.Run("nil session", func(t *testing.T) {
		_, err := store.Commit(ctx, nil, session.CommitOptions{})
		assert.ErrorIs(t, err, session.ErrNilSession)
		_, err = store.Destroy(ctx, nil)
		assert.ErrorIs(t, err, session.ErrNilSession)
	})
}

func TestCookieStore_Destroy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := session.NewCookieStore(newCookieManager(t), "__session")

	setCookie := mustCommit(t, store, "123")
	sess, err := store.Load(ctx, setCookie)
	require.NoError(t, err)

	cleared, err := store.Destroy(ctx, sess)
	require.NoError(t, err)
	assert.Contains(t, cleared, "Max-Age=0")
	assert.Empty(t, sess.Data())

	loaded, err := store.Load(ctx, cleared)
	require.NoError(t, err)
	assert.False(t, loaded.Has("userId"))
}
