package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MessageFunc renders a human-readable message for a failed rule.
type MessageFunc func(fe validator.FieldError) string

// Required is the message reported for absent fields.
const Required = "Required"

// defaultMessage formats a failed rule as a short, user-facing sentence.
func defaultMessage(fe validator.FieldError) string {
	param := fe.Param()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return Required
	case "min":
		if isString {
			return fmt.Sprintf("String must contain at least %s character(s)", param)
		}
		return fmt.Sprintf("Number must be greater than or equal to %s", param)
	case "max":
		if isString {
			return fmt.Sprintf("String must contain at most %s character(s)", param)
		}
		return fmt.Sprintf("Number must be less than or equal to %s", param)
	case "len":
		if isString {
			return fmt.Sprintf("String must contain exactly %s character(s)", param)
		}
		return fmt.Sprintf("Number must be exactly %s", param)
	case "gt":
		return fmt.Sprintf("Number must be greater than %s", param)
	case "gte":
		return fmt.Sprintf("Number must be greater than or equal to %s", param)
	case "lt":
		return fmt.Sprintf("Number must be less than %s", param)
	case "lte":
		return fmt.Sprintf("Number must be less than or equal to %s", param)
	case "email":
		return "Invalid email"
	case "url", "http_url":
		return "Invalid url"
	case "uuid", "uuid4":
		return "Invalid uuid"
	case "oneof":
		options := strings.Fields(param)
		for i, o := range options {
			options[i] = "'" + o + "'"
		}
		return fmt.Sprintf("Invalid enum value. Expected %s, received '%v'", strings.Join(options, " | "), fe.Value())
	case "eqfield":
		return fmt.Sprintf("Must match %s", param)
	case "startswith":
		return fmt.Sprintf("Invalid input: must start with %q", param)
	case "endswith":
		return fmt.Sprintf("Invalid input: must end with %q", param)
	case "alphanum":
		return "Must contain only letters and digits"
	case "numeric":
		return "Must be numeric"
	default:
		return "Invalid input"
	}
}
