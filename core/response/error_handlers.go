package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/formauth/core/handler"
)

type statusCode interface {
	StatusCode() int
}

// payloader is implemented by errors that carry their own response body.
type payloader interface {
	Payload() any
}

// AsHTTPError converts any error to an HTTPError.
// HTTPError values pass through; an exceeded body limit becomes a 413; errors
// implementing StatusCode() map to ForStatus, with their
// Payload() as the body when they have one; anything else becomes a 500.
func AsHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return ErrRequestEntityTooLarge.WithDetails(map[string]any{"limit": tooLarge.Limit})
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	baseErr := ForStatus(status)

	var p payloader
	if errors.As(err, &p) {
		return baseErr.WithMessage(err.Error()).WithPayload(p.Payload())
	}

	// Internal errors keep their text out of the response body.
	if status == http.StatusInternalServerError {
		return baseErr
	}
	return baseErr.WithError(err)
}

// ErrorResponse renders err as a JSON response with the mapped status code.
func ErrorResponse(err error) handler.Response {
	httpErr := AsHTTPError(err)
	return JSONWithStatus(httpErr.Body(), httpErr.Status)
}

// ErrorHandler is the default error handler that returns plain text errors.
func ErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	httpErr := AsHTTPError(err)
	Render(w, r, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler returns errors as JSON responses.
func JSONErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	Render(w, r, ErrorResponse(err))
}

var (
	_ handler.ErrorHandler = ErrorHandler
	_ handler.ErrorHandler = JSONErrorHandler
)
