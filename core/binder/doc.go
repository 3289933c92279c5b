// Package binder decodes form-encoded request bodies.
//
// FormValues accepts application/x-www-form-urlencoded and multipart/form-data
// bodies and returns a flat map of field name to string, where the last value
// of a repeated key wins:
//
//	values, err := binder.FormValues(r)
//	switch {
//	case errors.Is(err, binder.ErrMissingContentType),
//		errors.Is(err, binder.ErrUnsupportedMediaType),
//		errors.Is(err, binder.ErrFailedToParseForm):
//		// the body is not form data at all
//	}
//
// Values are passed through as sent, except that NUL bytes are removed; use
// sanitize tags on the schema to normalize them. Multipart boundaries are validated before parsing and temporary
// files created for large parts are removed before FormValues returns.
package binder
