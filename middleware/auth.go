package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formauth/core/auth"
	"github.com/dmitrymomot/formauth/core/handler"
	"github.com/dmitrymomot/formauth/core/logger"
	"github.com/dmitrymomot/formauth/core/response"
)

type userIDKey struct{}

// Identity resolves the signed-in user's id for a request. *auth.Manager
// implements it.
type Identity interface {
	UserID(r *http.Request) (string, error)
}

// AuthConfig configures the auth middleware.
type AuthConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Identity resolves the user id (required)
	Identity Identity
	// Logger for structured logging (default: slog with io.Discard)
	Logger *slog.Logger
	// RequireAuth rejects anonymous requests with auth.ErrUnauthorized
	RequireAuth bool
	// RequireGuest rejects signed-in requests with response.ErrForbidden
	RequireGuest bool
	// ErrorHandler renders rejected requests (default: response.JSONErrorHandler)
	ErrorHandler handler.ErrorHandler
}

// Auth resolves the user id and stores it in the request context. Anonymous
// requests pass through; read the id with UserIDFromContext.
func Auth(identity Identity) handler.Middleware {
	return AuthWithConfig(AuthConfig{Identity: identity})
}

// RequireUser rejects anonymous requests. The error handler receives
// auth.ErrUnauthorized, which renders as 401 "Unauthorized" through
// response.JSONErrorHandler. A nil errorHandler uses that default.
//
//	r.Handle("/me", middleware.RequireUser(authManager, nil)(meHandler))
func RequireUser(identity Identity, errorHandler handler.ErrorHandler) handler.Middleware {
	return AuthWithConfig(AuthConfig{
		Identity:     identity,
		RequireAuth:  true,
		ErrorHandler: errorHandler,
	})
}

// RequireGuest rejects signed-in requests, e.g. on sign-in and sign-up pages.
//
//	guest := middleware.RequireGuest(authManager, func(w http.ResponseWriter, r *http.Request, _ error) {
//		response.Render(w, r, response.Redirect("/dashboard"))
//	})
func RequireGuest(identity Identity, errorHandler handler.ErrorHandler) handler.Middleware {
	return AuthWithConfig(AuthConfig{
		Identity:     identity,
		RequireGuest: true,
		ErrorHandler: errorHandler,
	})
}

// AuthWithConfig creates the auth middleware with custom configuration.
//
// When the identity lookup fails, plain Auth logs the error and continues as
// anonymous, so optional identity never breaks public pages. RequireAuth and
// RequireGuest cannot decide without the identity: the error goes to
// ErrorHandler instead (a 500 through response.JSONErrorHandler).
func AuthWithConfig(cfg AuthConfig) handler.Middleware {
	if cfg.Identity == nil {
		panic("auth middleware: identity is required")
	}

	if cfg.RequireAuth && cfg.RequireGuest {
		panic("auth middleware: RequireAuth and RequireGuest cannot both be true")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = response.JSONErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := cfg.Identity.UserID(r)
			if err != nil {
				if ctxErr := r.Context().Err(); ctxErr != nil {
					cfg.ErrorHandler(w, r, ctxErr)
					return
				}
				cfg.Logger.ErrorContext(r.Context(), "auth middleware: failed to resolve user",
					logger.Path(r.URL.Path),
					logger.Error(err),
				)
				if cfg.RequireAuth || cfg.RequireGuest {
					cfg.ErrorHandler(w, r, err)
					return
				}
				userID = ""
			}

			if cfg.RequireAuth && userID == "" {
				cfg.ErrorHandler(w, r, auth.ErrUnauthorized)
				return
			}

			if cfg.RequireGuest && userID != "" {
				cfg.ErrorHandler(w, r, response.ErrForbidden)
				return
			}

			if userID != "" {
				r = r.WithContext(WithUserID(r.Context(), userID))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the user id stored by the auth middleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(userIDKey{}).(string)
	return id, ok && id != ""
}

// MustUserID returns the user id or panics. Use it behind RequireUser.
func MustUserID(ctx context.Context) string {
	id, ok := UserIDFromContext(ctx)
	if !ok {
		panic("user id not found in context")
	}
	return id
}

// UserIDExtractor adds the context user id to log records.
// Pass it to logger.WithContextExtractors.
func UserIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := UserIDFromContext(ctx)
	return logger.UserID(id), ok
}
