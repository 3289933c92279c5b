package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formauth/core/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestTimingAttrs(t *testing.T) {
	t.Parallel()

	d := 5 * time.Second
	attr := logger.Duration(d)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, d, attr.Value.Duration())

	elapsed := logger.Elapsed(time.Now().Add(-time.Second))
	require.Equal(t, "elapsed", elapsed.Key)
	assert.GreaterOrEqual(t, elapsed.Value.Duration(), time.Second)
}

func TestIdentityAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		attr func(string) slog.Attr
		key  string
	}{
		{"user id", logger.UserID, "user_id"},
		{"session id", logger.SessionID, "session_id"},
		{"request id", logger.RequestID, "request_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			attr := tt.attr("abc")
			assert.Equal(t, tt.key, attr.Key)
			assert.Equal(t, "abc", attr.Value.String())
			assert.True(t, tt.attr("").Equal(slog.Attr{}))
		})
	}
}

func TestMetadataAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Method("POST").Equal(slog.String("method", "POST")))
	assert.True(t, logger.Path("/sign-in").Equal(slog.String("path", "/sign-in")))
	assert.True(t, logger.StatusCode(302).Equal(slog.Int("status_code", 302)))
	assert.True(t, logger.Component("auth").Equal(slog.String("component", "auth")))
	assert.True(t, logger.Event("startup").Equal(slog.String("event", "startup")))
	assert.True(t, logger.Action("sign_in").Equal(slog.String("action", "sign_in")))
	assert.Equal(t, "k", logger.Key("k", 1).Key)
	assert.True(t, logger.Key("k", nil).Equal(slog.Attr{}))
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json with attrs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "api")),
		)
		log.Info("started", logger.Component("server"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "started", record["msg"])
		assert.Equal(t, "api", record["service"])
		assert.Equal(t, "server", record["component"])
	})

	t.Run("level filter", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("hidden")
		log.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("development enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("formauth"), logger.WithOutput(&buf))
		log.Debug("details")

		out := buf.String()
		assert.Contains(t, out, "details")
		assert.Contains(t, out, "env=development")
		assert.Contains(t, out, "service=formauth")
	})
}

type userKey struct{}

func TestNew_ContextExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			id, ok := ctx.Value(userKey{}).(string)
			return logger.UserID(id), ok
		}),
	)

	ctx := context.WithValue(context.Background(), userKey{}, "123")
	log.With(logger.Component("auth")).InfoContext(ctx, "signed in")
	log.InfoContext(context.Background(), "anonymous")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "user_id=123")
	assert.Contains(t, lines[0], "component=auth")
	assert.NotContains(t, lines[1], "user_id")
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewFromConfig(logger.Config{
		Level:   slog.LevelDebug,
		Format:  "JSON",
		Service: "formauth",
	}, logger.WithOutput(&buf))
	log.Debug("ready")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "formauth", record["service"])
}
