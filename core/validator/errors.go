package validator

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrInvalidSchema indicates the schema type cannot be used for form data.
	ErrInvalidSchema = errors.New("validator: invalid schema")
)

// FieldErrors is a flattened validation report: errors that belong to the form
// as a whole, and errors keyed by field name.
type FieldErrors struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// NewFieldErrors returns an empty report with non-nil collections, so it
// always encodes as {"formErrors":[],"fieldErrors":{}}.
func NewFieldErrors() *FieldErrors {
	return &FieldErrors{
		FormErrors:  []string{},
		FieldErrors: map[string][]string{},
	}
}

// Add appends a message for field.
func (e *FieldErrors) Add(field, message string) {
	e.FieldErrors[field] = append(e.FieldErrors[field], message)
}

// AddForm appends a form-level message.
func (e *FieldErrors) AddForm(message string) {
	e.FormErrors = append(e.FormErrors, message)
}

// Has reports whether field has at least one message.
func (e *FieldErrors) Has(field string) bool {
	return len(e.FieldErrors[field]) > 0
}

// IsEmpty reports whether the report holds no messages.
func (e *FieldErrors) IsEmpty() bool {
	return e == nil || len(e.FormErrors) == 0 && len(e.FieldErrors) == 0
}

// Error implements the error interface with a compact summary.
func (e *FieldErrors) Error() string {
	if e.IsEmpty() {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.FormErrors)+len(e.FieldErrors))
	parts = append(parts, e.FormErrors...)
	for _, field := range slices.Sorted(maps.Keys(e.FieldErrors)) {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.FieldErrors[field], ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
