package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// FormValues decodes a form-encoded request body into a flat map.
// It accepts application/x-www-form-urlencoded and multipart/form-data.
// When a key appears more than once the last value wins. File parts are ignored.
//
// Query string parameters are not included; only the body is decoded.
func FormValues(r *http.Request) (map[string]string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: missing content-type header, expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed content type %q", ErrFailedToParseForm, contentType)
	}

	var values map[string][]string

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
		}
		values = r.PostForm

	case "multipart/form-data":
		boundary, ok := params["boundary"]
		if !ok || boundary == "" {
			return nil, fmt.Errorf("%w: missing boundary in content type", ErrFailedToParseForm)
		}
		if !validateBoundary(boundary) {
			return nil, fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
		}

		// Larger parts spill to disk; they are removed once the values are copied.
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
		}
		if r.MultipartForm != nil {
			values = r.MultipartForm.Value
			defer func() { _ = r.MultipartForm.RemoveAll() }()
		}

	default:
		return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
	}

	result := make(map[string]string, len(values))
	for key, vs := range values {
		if len(vs) == 0 {
			continue
		}
		result[key] = stripNUL(vs[len(vs)-1])
	}

	return result, nil
}

// NUL bytes are the only characters removed: every other rune, line breaks
// included, reaches the schema as sent. Normalization is opt-in through
// sanitize tags.
func stripNUL(value string) string {
	return strings.ReplaceAll(value, "\x00", "")
}

// validateBoundary rejects malformed or oversized multipart boundaries.
func validateBoundary(boundary string) bool {
	if boundary == "" {
		return false
	}

	for _, r := range boundary {
		if r == '\x00' || r == '\r' || r == '\n' {
			return false
		}
	}

	// RFC 2046 caps boundaries at 70 characters; allow some slack.
	return len(boundary) <= 100
}
