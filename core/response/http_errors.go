package response

import (
	"maps"
	"net/http"

	"github.com/dmitrymomot/formauth/core/sanitizer"
)

// HTTPError is an error that knows its status and JSON body.
// Without a Payload it renders as {"code","message","details"}.
type HTTPError struct {
	Status  int            `json:"-"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`

	// Payload, when set, replaces the structured body entirely.
	Payload any `json:"-"`
}

// NewHTTPError returns a 500 with a custom message.
func NewHTTPError(message string) HTTPError {
	return ErrInternalServerError.WithMessage(message)
}

func (e HTTPError) Error() string { return e.Message }

func (e HTTPError) StatusCode() int { return e.Status }

// Is matches another HTTPError with the same status and code, so derived
// copies (WithPayload, WithDetails, ...) still match their base error.
func (e HTTPError) Is(target error) bool {
	t, ok := target.(HTTPError)
	return ok && t.Status == e.Status && t.Code == e.Code
}

// Body returns the value rendered as the JSON response body.
func (e HTTPError) Body() any {
	if e.Payload != nil {
		return e.Payload
	}
	return e
}

// The With* methods return modified copies; predefined errors are never mutated.

func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

func (e HTTPError) WithDetails(details map[string]any) HTTPError {
	e.Details = details
	return e
}

// WithPayload returns a copy of the error whose JSON body is exactly v.
func (e HTTPError) WithPayload(v any) HTTPError {
	e.Payload = v
	return e
}

// WithError records err's text under details.cause.
func (e HTTPError) WithError(err error) HTTPError {
	details := make(map[string]any, len(e.Details)+1)
	maps.Copy(details, e.Details)
	details["cause"] = err.Error()
	e.Details = details
	return e
}

// ForStatus returns the error for an HTTP error status. The code is the
// snake_cased status text, e.g. 413 becomes "request_entity_too_large".
// Statuses below 400 or without a standard text map to ErrInternalServerError.
func ForStatus(status int) HTTPError {
	text := http.StatusText(status)
	if status < http.StatusBadRequest || text == "" {
		status, text = http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
	return HTTPError{
		Status:  status,
		Code:    sanitizer.ToSnakeCase(text),
		Message: text,
	}
}

var (
	ErrBadRequest            = ForStatus(http.StatusBadRequest)
	ErrUnauthorized          = ForStatus(http.StatusUnauthorized)
	ErrForbidden             = ForStatus(http.StatusForbidden)
	ErrNotFound              = ForStatus(http.StatusNotFound)
	ErrMethodNotAllowed      = ForStatus(http.StatusMethodNotAllowed)
	ErrConflict              = ForStatus(http.StatusConflict)
	ErrRequestEntityTooLarge = ForStatus(http.StatusRequestEntityTooLarge)
	ErrUnsupportedMediaType  = ForStatus(http.StatusUnsupportedMediaType)
	ErrUnprocessableEntity   = ForStatus(http.StatusUnprocessableEntity)
	ErrTooManyRequests       = ForStatus(http.StatusTooManyRequests)
	ErrInternalServerError   = ForStatus(http.StatusInternalServerError)
	ErrServiceUnavailable    = ForStatus(http.StatusServiceUnavailable)
)
