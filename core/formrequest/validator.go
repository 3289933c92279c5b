package formrequest

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formauth/core/binder"
	"github.com/dmitrymomot/formauth/core/logger"
	"github.com/dmitrymomot/formauth/core/validator"
)

// Validator binds a schema and an authorizer. It is safe for concurrent use;
// build it once and call Request per incoming request.
type Validator[T any] struct {
	schema     validator.Schema[T]
	authorizer Authorizer
	logger     *slog.Logger
}

// Option configures a Validator.
type Option func(*options)

type options struct {
	authorizer Authorizer
	logger     *slog.Logger
}

// WithAuthorizer sets the authorization gate. Defaults to AllowAll.
func WithAuthorizer(a Authorizer) Option {
	return func(o *options) {
		o.authorizer = a
	}
}

// WithLogger sets the logger used to report rejected requests.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates a Validator for schema.
func New[T any](schema validator.Schema[T], opts ...Option) *Validator[T] {
	if schema == nil {
		panic("formrequest: nil schema")
	}

	o := options{
		authorizer: AllowAll(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Validator[T]{
		schema:     schema,
		authorizer: o.authorizer,
		logger:     o.logger.With(logger.Component("formrequest")),
	}
}

// Request returns a gated view of r's form body.
func (v *Validator[T]) Request(r *http.Request) *Request[T] {
	return &Request[T]{v: v, r: r}
}

// Request is a per-request handle. Its methods read the body, so call at
// most one of them.
type Request[T any] struct {
	v *Validator[T]
	r *http.Request
}

// FormData authorizes the request, then validates its form body.
//
// Invalid input is not an error: it comes back as a Result with Success false
// and the field report. Errors are returned only when the request is not
// authorized (ErrForbidden), the authorizer fails, or the body cannot be
// decoded as form data (binder errors, unchanged).
func (req *Request[T]) FormData() (Result[T], error) {
	data, report, err := req.parse()
	if err != nil {
		return Result[T]{}, err
	}
	if report != nil {
		return Result[T]{Errors: report}, nil
	}
	return Result[T]{Success: true, Data: data}, nil
}

// ValidFormData is like FormData but returns the data directly and reports
// invalid input as an *Error of KindUnprocessableEntity carrying the report.
func (req *Request[T]) ValidFormData() (T, error) {
	data, report, err := req.parse()
	if err != nil {
		var zero T
		return zero, err
	}
	if report != nil {
		var zero T
		return zero, &Error{Kind: KindUnprocessableEntity, Report: report}
	}
	return data, nil
}

func (req *Request[T]) parse() (T, *validator.FieldErrors, error) {
	var zero T

	ok, err := req.v.authorizer.Authorize(req.r)
	if err != nil {
		return zero, nil, err
	}
	if !ok {
		req.v.logger.DebugContext(req.r.Context(), "request not authorized",
			logger.Method(req.r.Method),
			logger.Path(req.r.URL.Path),
		)
		return zero, nil, ErrForbidden
	}

	values, err := binder.FormValues(req.r)
	if err != nil {
		return zero, nil, err
	}

	data, report := req.v.schema.Validate(values)
	if !report.IsEmpty() {
		return zero, report, nil
	}
	return data, nil, nil
}
