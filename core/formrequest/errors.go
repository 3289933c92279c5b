package formrequest

import (
	"net/http"

	"github.com/dmitrymomot/formauth/core/validator"
)

// Kind classifies a request validation failure.
type Kind uint8

const (
	// KindForbidden means the authorizer rejected the request.
	KindForbidden Kind = iota + 1
	// KindUnprocessableEntity means the form body failed schema validation.
	KindUnprocessableEntity
)

// String returns the status text of the kind.
func (k Kind) String() string {
	return http.StatusText(k.StatusCode())
}

// StatusCode maps the kind to an HTTP status code.
func (k Kind) StatusCode() int {
	switch k {
	case KindForbidden:
		return http.StatusForbidden
	case KindUnprocessableEntity:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Error is returned for failures the request validator itself decides on.
// It carries no transport logic of its own: response.AsHTTPError reads
// StatusCode and Payload to render it.
type Error struct {
	Kind Kind
	// Report is set for KindUnprocessableEntity.
	Report *validator.FieldErrors
}

// Sentinel values for errors.Is checks.
var (
	ErrForbidden           = &Error{Kind: KindForbidden}
	ErrUnprocessableEntity = &Error{Kind: KindUnprocessableEntity}
)

func (e *Error) Error() string {
	if e.Kind == KindUnprocessableEntity && !e.Report.IsEmpty() {
		return e.Report.Error()
	}
	return e.Kind.String()
}

// Is matches any Error of the same kind, so a populated validation error
// satisfies errors.Is(err, ErrUnprocessableEntity).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// StatusCode returns the HTTP status for the failure.
func (e *Error) StatusCode() int {
	return e.Kind.StatusCode()
}

// Payload returns the JSON body for the failure: the status text for
// forbidden requests, the field report for invalid ones.
func (e *Error) Payload() any {
	if e.Kind == KindUnprocessableEntity {
		if e.Report == nil {
			return validator.NewFieldErrors()
		}
		return e.Report
	}
	return e.Kind.String()
}
