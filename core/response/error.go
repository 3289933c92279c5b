package response

import (
	"net/http"

	"github.com/dmitrymomot/formauth/core/handler"
)

// Error returns a handler response that propagates the given error.
// The error surfaces from the response so the caller's error handler can
// decide how to render it.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
