package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formauth/middleware"
)

func TestRequestIDDefaultConfiguration(t *testing.T) {
	t.Parallel()

	r := mux.NewRouter()
	r.Use(mux.MiddlewareFunc(middleware.RequestID()))

	var capturedID string
	r.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.GetRequestID(r.Context())
		assert.True(t, ok, "Request ID should be present in context")
		capturedID = id
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, capturedID, 36, "Default ID should be UUID v4 format")
	assert.Equal(t, capturedID, w.Header().Get("X-Request-ID"))
}

func TestRequestIDWithConfig(t *testing.T) {
	t.Parallel()

	newHandler := func(cfg middleware.RequestIDConfig) (http.Handler, *string) {
		var captured string
		return middleware.RequestIDWithConfig(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured, _ = middleware.GetRequestID(r.Context())
		})), &captured
	}

	t.Run("custom generator and header", func(t *testing.T) {
		t.Parallel()

		h, captured := newHandler(middleware.RequestIDConfig{
			Generator:  func() string { return "req-1" },
			HeaderName: "X-Trace",
		})
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, "req-1", *captured)
		assert.Equal(t, "req-1", w.Header().Get("X-Trace"))
	})

	t.Run("use existing", func(t *testing.T) {
		t.Parallel()

		h, captured := newHandler(middleware.RequestIDConfig{UseExisting: true})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "incoming")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, "incoming", *captured)
		assert.Equal(t, "incoming", w.Header().Get("X-Request-ID"))
	})

	t.Run("ignore existing by default", func(t *testing.T) {
		t.Parallel()

		h, captured := newHandler(middleware.RequestIDConfig{})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "incoming")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.NotEqual(t, "incoming", *captured)
	})

	t.Run("skip", func(t *testing.T) {
		t.Parallel()

		h, captured := newHandler(middleware.RequestIDConfig{
			Skip: func(*http.Request) bool { return true },
		})
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, *captured)
		assert.Empty(t, w.Header().Get("X-Request-ID"))
	})
}
