package sanitizer

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// ErrUnknownSanitizer is returned for sanitize tags naming an unregistered function.
var ErrUnknownSanitizer = errors.New("sanitizer: unknown sanitizer")

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":        Trim,
		"lower":       ToLower,
		"upper":       ToUpper,
		"title":       ToTitle,
		"trim_lower":  TrimToLower,
		"trim_upper":  TrimToUpper,
		"kebab":       ToKebabCase,
		"snake":       ToSnakeCase,
		"camel":       ToCamelCase,
		"single_line": SingleLine,
		"no_spaces":   RemoveExtraWhitespace,
		"strip_html":  StripHTML,
		"alphanum":    KeepAlphanumeric,
		"alpha":       KeepAlpha,
		"digits":      KeepDigits,
		"email":       NormalizeEmail,
		"no_null":     RemoveNullBytes,
		"no_control":  RemoveControlChars,

		// Composite sanitizers for common use cases
		"username": func(s string) string {
			return KeepAlphanumeric(ToLower(Trim(s)))
		},
		"slug": func(s string) string {
			return ToKebabCase(Trim(s))
		},
		"text": func(s string) string {
			return RemoveExtraWhitespace(Trim(s))
		},
	}
)

// RegisterSanitizer adds a custom sanitizer function to the registry.
func RegisterSanitizer(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// CheckTag reports whether every sanitizer named in tag is known.
func CheckTag(tag string) error {
	_, err := Apply("", tag)
	return err
}

// Apply runs the comma-separated sanitizers in tag over value, left to right.
// "max:N" truncates to N runes.
func Apply(value, tag string) (string, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := value
	for name := range strings.SplitSeq(tag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if limit, ok := strings.CutPrefix(name, "max:"); ok {
			maxLen, err := strconv.Atoi(limit)
			if err != nil || maxLen <= 0 {
				return "", fmt.Errorf("%w: %q", ErrUnknownSanitizer, name)
			}
			result = MaxLength(result, maxLen)
			continue
		}

		fn, ok := registry[name]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownSanitizer, name)
		}
		result = fn(result)
	}

	return result, nil
}

// SanitizeStruct applies the sanitize tags of a struct's string fields in place.
// Nested structs and pointers to strings or structs are followed.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return errors.New("sanitizer: must pass a pointer to struct")
	}
	return sanitizeStruct(rv.Elem())
}

func sanitizeStruct(rv reflect.Value) error {
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		tag := rt.Field(i).Tag.Get("sanitize")
		if tag == "-" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			if err := sanitizeString(field, tag); err != nil {
				return err
			}

		case reflect.Pointer:
			if field.IsNil() {
				continue
			}
			switch elem := field.Elem(); elem.Kind() {
			case reflect.String:
				if err := sanitizeString(elem, tag); err != nil {
					return err
				}
			case reflect.Struct:
				if err := sanitizeStruct(elem); err != nil {
					return err
				}
			}

		case reflect.Struct:
			if err := sanitizeStruct(field); err != nil {
				return err
			}

		case reflect.Slice:
			if tag == "" || field.Type().Elem().Kind() != reflect.String {
				continue
			}
			for j := range field.Len() {
				if err := sanitizeString(field.Index(j), tag); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func sanitizeString(v reflect.Value, tag string) error {
	if tag == "" {
		return nil
	}
	sanitized, err := Apply(v.String(), tag)
	if err != nil {
		return err
	}
	v.SetString(sanitized)
	return nil
}
