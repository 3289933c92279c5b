package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formauth/core/handler"
	"github.com/dmitrymomot/formauth/core/response"
)

func render(t *testing.T, resp handler.Response) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	response.Render(w, r, resp)
	return w
}

func TestFixedStatusResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		resp   handler.Response
		status int
	}{
		{"created", response.Created(map[string]string{"message": "created"}), http.StatusCreated},
		{"bad request", response.BadRequest(map[string]string{"message": "bad request"}), http.StatusBadRequest},
		{"unauthorized", response.Unauthorized(map[string]string{"message": "unauthorized"}), http.StatusUnauthorized},
		{"forbidden", response.Forbidden(map[string]string{"message": "forbidden"}), http.StatusForbidden},
		{"not found", response.NotFound(map[string]string{"message": "not found"}), http.StatusNotFound},
		{"unprocessable entity", response.UnprocessableEntity(map[string]string{"message": "unprocessable entity"}), http.StatusUnprocessableEntity},
		{"internal server error", response.InternalServerError(map[string]string{"message": "internal server error"}), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := render(t, tt.resp)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), `"message"`)
		})
	}
}

func TestJSONWithStatus(t *testing.T) {
	t.Parallel()

	t.Run("string body is encoded as JSON string", func(t *testing.T) {
		w := render(t, response.Unauthorized("Unauthorized"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `"Unauthorized"`, w.Body.String())
	})

	t.Run("zero status with nil body is no content", func(t *testing.T) {
		w := render(t, response.JSONWithStatus(nil, 0))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("302 with location", func(t *testing.T) {
		w := render(t, response.Redirect("/dashboard"))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	})

	t.Run("invalid status falls back to 302", func(t *testing.T) {
		w := render(t, response.RedirectWithStatus("/x", http.StatusOK))
		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("see other", func(t *testing.T) {
		w := render(t, response.RedirectSeeOther("/x"))
		assert.Equal(t, http.StatusSeeOther, w.Code)
	})

	t.Run("set-cookie decorator is kept on redirect", func(t *testing.T) {
		w := render(t, response.WithSetCookie(response.Redirect("/"), "__session=abc; Path=/"))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "__session=abc; Path=/", w.Header().Get("Set-Cookie"))
	})

	t.Run("empty set-cookie is ignored", func(t *testing.T) {
		w := render(t, response.WithSetCookie(response.Redirect("/"), ""))
		assert.Empty(t, w.Header().Values("Set-Cookie"))
	})

	t.Run("cookie decorator", func(t *testing.T) {
		w := render(t, response.WithCookie(response.NoContent(), &http.Cookie{Name: "a", Value: "b"}))
		assert.Equal(t, "a=b", w.Header().Get("Set-Cookie"))
	})
}

type statusErr struct{ status int }

func (e statusErr) Error() string   { return fmt.Sprintf("status %d", e.status) }
func (e statusErr) StatusCode() int { return e.status }

type payloadErr struct{}

func (payloadErr) Error() string   { return "Forbidden" }
func (payloadErr) StatusCode() int { return http.StatusForbidden }
func (payloadErr) Payload() any    { return "Forbidden" }

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("http error passes through", func(t *testing.T) {
		got := response.AsHTTPError(fmt.Errorf("wrapped: %w", response.ErrNotFound))
		assert.Equal(t, http.StatusNotFound, got.Status)
	})

	t.Run("status code interface", func(t *testing.T) {
		got := response.AsHTTPError(statusErr{status: http.StatusUnprocessableEntity})
		assert.Equal(t, http.StatusUnprocessableEntity, got.Status)
		assert.Equal(t, "status 422", got.Details["cause"])
	})

	t.Run("unknown status becomes 500", func(t *testing.T) {
		got := response.AsHTTPError(statusErr{status: 599})
		assert.Equal(t, http.StatusInternalServerError, got.Status)
	})

	t.Run("any standard status", func(t *testing.T) {
		got := response.AsHTTPError(statusErr{status: http.StatusConflict})
		assert.Equal(t, response.ErrConflict.Code, got.Code)
		assert.Equal(t, "conflict", got.Code)
	})

	t.Run("plain error hides cause", func(t *testing.T) {
		got := response.AsHTTPError(errors.New("db password leaked"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Nil(t, got.Details)
	})

	t.Run("with error does not mutate shared details", func(t *testing.T) {
		base := response.ErrBadRequest.WithDetails(map[string]any{"field": "name"})
		_ = base.WithError(errors.New("boom"))
		_, ok := base.Details["cause"]
		assert.False(t, ok)
	})
}

func TestHTTPError_Is(t *testing.T) {
	t.Parallel()

	unauthorized := response.ErrUnauthorized.WithPayload("Unauthorized")
	wrapped := fmt.Errorf("load profile: %w", unauthorized)

	assert.ErrorIs(t, wrapped, unauthorized)
	assert.ErrorIs(t, wrapped, response.ErrUnauthorized)
	assert.ErrorIs(t, response.ErrNotFound.WithDetails(map[string]any{"id": 1}), response.ErrNotFound)
	assert.NotErrorIs(t, wrapped, response.ErrForbidden)
	assert.NotErrorIs(t, errors.New("Unauthorized"), response.ErrUnauthorized)
}

func TestForStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "request_entity_too_large", response.ForStatus(http.StatusRequestEntityTooLarge).Code)
	assert.Equal(t, "Unprocessable Entity", response.ForStatus(http.StatusUnprocessableEntity).Message)
	assert.Equal(t, response.ErrInternalServerError, response.ForStatus(http.StatusFound))
	assert.Equal(t, response.ErrInternalServerError, response.ForStatus(599))
}

func TestJSONErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("payload replaces body", func(t *testing.T) {
		w := httptest.NewRecorder()
		response.JSONErrorHandler(w, httptest.NewRequest(http.MethodGet, "/", nil), payloadErr{})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `"Forbidden"`, w.Body.String())
	})

	t.Run("http error payload", func(t *testing.T) {
		w := httptest.NewRecorder()
		err := response.ErrUnauthorized.WithPayload("Unauthorized")
		response.JSONErrorHandler(w, httptest.NewRequest(http.MethodGet, "/", nil), err)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `"Unauthorized"`, w.Body.String())
	})

	t.Run("structured body without payload", func(t *testing.T) {
		w := httptest.NewRecorder()
		response.JSONErrorHandler(w, httptest.NewRequest(http.MethodGet, "/", nil), response.ErrNotFound)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"code":"not_found","message":"Not Found"}`, w.Body.String())
	})

	t.Run("plain text handler", func(t *testing.T) {
		w := httptest.NewRecorder()
		response.ErrorHandler(w, httptest.NewRequest(http.MethodGet, "/", nil), response.ErrForbidden)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Forbidden", w.Body.String())
	})

	t.Run("failing response renders 500", func(t *testing.T) {
		w := render(t, response.Error(errors.New("render failed")))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
