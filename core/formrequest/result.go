package formrequest

import "github.com/dmitrymomot/formauth/core/validator"

// Result is the outcome of validating a form body. Exactly one of Data and
// Errors is meaningful, selected by Success.
type Result[T any] struct {
	Success bool                   `json:"success"`
	Data    T                      `json:"data,omitzero"`
	Errors  *validator.FieldErrors `json:"errors,omitempty"`
}

// HasErrors reports whether the result carries a validation report, even an
// empty one.
func (r Result[T]) HasErrors() bool {
	return r.Errors != nil
}
