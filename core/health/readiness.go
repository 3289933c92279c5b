package health

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formauth/core/logger"
	"github.com/dmitrymomot/formauth/core/response"
)

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

// Readiness verifies all service dependencies are functioning.
// Returns "READY" if all checks pass, 503 Service Unavailable if any fail.
//
// Example:
//
//	r.Handle("/health/ready", health.Readiness(log, func(ctx context.Context) error {
//		return redisClient.Ping(ctx).Err()
//	}))
func Readiness(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Component("health"), logger.Error(err))
				response.JSONErrorHandler(w, r, response.ErrServiceUnavailable)
				return
			}
		}

		response.Render(w, r, response.String("READY"))
	}
}
