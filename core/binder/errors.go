package binder

import "errors"

// Error variables define the decoding failures of a request body. They mark
// input that is not form data at all, as opposed to form data that fails
// validation.
var (
	// ErrUnsupportedMediaType indicates the Content-Type header specifies a media type
	// that is not form-encoded.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrFailedToParseForm indicates form data parsing failed due to malformed
	// multipart boundaries or invalid URL-encoded data.
	ErrFailedToParseForm = errors.New("failed to parse form data")

	// ErrMissingContentType indicates the request lacks a Content-Type header.
	ErrMissingContentType = errors.New("missing content type")
)
