package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formauth/middleware"
)

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		level  string
	}{
		{"success", http.StatusOK, "INFO"},
		{"redirect", http.StatusFound, "INFO"},
		{"client error", http.StatusUnprocessableEntity, "WARN"},
		{"server error", http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, nil))

			h := middleware.RequestID()(middleware.LoggingWithLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})))
			req := httptest.NewRequest(http.MethodPost, "/sign-in", strings.NewReader("password=secret"))
			req.Header.Set("Cookie", "__session=abc")
			h.ServeHTTP(httptest.NewRecorder(), req)

			record := decodeRecord(t, &buf)
			assert.Equal(t, tt.level, record["level"])
			assert.Equal(t, "HTTP request completed", record["msg"])
			assert.Equal(t, "POST", record["method"])
			assert.Equal(t, "/sign-in", record["path"])
			assert.EqualValues(t, tt.status, record["status_code"])
			assert.NotEmpty(t, record["request_id"])
			assert.NotContains(t, buf.String(), "secret")
			assert.NotContains(t, buf.String(), "__session")
		})
	}
}

func TestLoggingWithConfig(t *testing.T) {
	t.Parallel()

	t.Run("implicit 200 and slow request", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h := middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger:               slog.New(slog.NewJSONHandler(&buf, nil)),
			SlowRequestThreshold: time.Nanosecond,
			Component:            "web",
		})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Millisecond)
			_, _ = w.Write([]byte("ok"))
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		record := decodeRecord(t, &buf)
		assert.Equal(t, "WARN", record["level"])
		assert.EqualValues(t, http.StatusOK, record["status_code"])
		assert.Equal(t, true, record["slow_request"])
		assert.Equal(t, "web", record["component"])
	})

	t.Run("skip", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h := middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: slog.New(slog.NewJSONHandler(&buf, nil)),
			Skip:   func(r *http.Request) bool { return r.URL.Path == "/health" },
		})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Empty(t, buf.String())
	})
}
