package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/formauth/core/sanitizer"
)

// Schema turns decoded form values into a typed value, or reports why it can't.
type Schema[T any] interface {
	Validate(values map[string]string) (T, *FieldErrors)
}

// SchemaFunc adapts a plain function to the Schema interface.
type SchemaFunc[T any] func(values map[string]string) (T, *FieldErrors)

// Validate calls f.
func (f SchemaFunc[T]) Validate(values map[string]string) (T, *FieldErrors) {
	return f(values)
}

// StructSchema validates form values against the fields of struct type T.
//
// Fields are bound by the `form:"name"` tag (lowercased field name when the tag
// is absent, skipped with `form:"-"`), and checked with go-playground/validator
// rules from the `validate` tag. Non-pointer fields whose rules do not include
// omitempty are required: when their key is absent the field reports "Required"
// and no other rule runs for it. A `sanitize:"..."` tag normalizes the raw
// value before conversion (see package sanitizer).
type StructSchema[T any] struct {
	validate *validator.Validate
	fields   []fieldSpec
	byName   map[string]struct{}
	checks   []func(T) error
	messages map[string]MessageFunc
}

type fieldSpec struct {
	index    int
	name     string
	kind     reflect.Kind
	required bool
	sanitize string
}

// Option configures a StructSchema.
type Option[T any] func(*StructSchema[T]) error

// WithCheck adds a cross-field check that runs after every field is valid.
// A returned error is reported as a form-level message.
func WithCheck[T any](check func(T) error) Option[T] {
	return func(s *StructSchema[T]) error {
		if check == nil {
			return fmt.Errorf("%w: nil check", ErrInvalidSchema)
		}
		s.checks = append(s.checks, check)
		return nil
	}
}

// WithValidation registers a custom rule usable in `validate` tags.
func WithValidation[T any](tag string, fn validator.Func) Option[T] {
	return func(s *StructSchema[T]) error {
		if err := s.validate.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
		return nil
	}
}

// WithMessage overrides the message rendered for a rule tag.
func WithMessage[T any](tag string, fn MessageFunc) Option[T] {
	return func(s *StructSchema[T]) error {
		s.messages[tag] = fn
		return nil
	}
}

// Struct builds a schema for struct type T.
func Struct[T any](opts ...Option[T]) (*StructSchema[T], error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrInvalidSchema, rt)
	}

	s := &StructSchema[T]{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		byName:   make(map[string]struct{}),
		messages: make(map[string]MessageFunc),
	}
	s.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, skip := formName(f)
		if skip {
			return "-"
		}
		return name
	})

	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name, skip := formName(f)
		if skip {
			continue
		}

		ft := f.Type
		isPointer := ft.Kind() == reflect.Pointer
		if isPointer {
			ft = ft.Elem()
		}
		if !supportedKind(ft.Kind()) {
			return nil, fmt.Errorf("%w: field %s has unsupported type %s", ErrInvalidSchema, f.Name, f.Type)
		}
		sanitize := f.Tag.Get("sanitize")
		if err := sanitizer.CheckTag(sanitize); err != nil {
			return nil, fmt.Errorf("%w: field %s: %w", ErrInvalidSchema, f.Name, err)
		}
		if _, dup := s.byName[name]; dup {
			return nil, fmt.Errorf("%w: duplicate form field %q", ErrInvalidSchema, name)
		}

		s.fields = append(s.fields, fieldSpec{
			index:    i,
			name:     name,
			kind:     ft.Kind(),
			required: !isPointer && !hasRule(f.Tag.Get("validate"), "omitempty"),
			sanitize: sanitize,
		})
		s.byName[name] = struct{}{}
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// MustStruct is like Struct but panics on error. Use it for package-level schemas.
func MustStruct[T any](opts ...Option[T]) *StructSchema[T] {
	s, err := Struct(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate decodes values into T and checks it.
// On failure the zero T is returned with a non-empty report.
func (s *StructSchema[T]) Validate(values map[string]string) (T, *FieldErrors) {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	report := NewFieldErrors()
	settled := make(map[string]bool, len(s.fields))

	for _, f := range s.fields {
		raw, ok := values[f.name]
		if !ok {
			if f.required {
				report.Add(f.name, Required)
			}
			// Absent fields keep their zero value and skip rule checks.
			settled[f.name] = true
			continue
		}
		if f.sanitize != "" {
			clean, err := sanitizer.Apply(raw, f.sanitize)
			if err != nil {
				report.Add(f.name, err.Error())
				settled[f.name] = true
				continue
			}
			raw = clean
		}
		if err := setValue(rv.Field(f.index), raw); err != nil {
			report.Add(f.name, fmt.Sprintf("Expected %s, received string", expectedType(f.kind)))
			settled[f.name] = true
		}
	}

	if err := s.validate.Struct(&out); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			report.AddForm(err.Error())
		}
		for _, fe := range verrs {
			name := fe.Field()
			if _, known := s.byName[name]; !known || settled[name] {
				continue
			}
			report.Add(name, s.message(fe))
		}
	}

	if report.IsEmpty() {
		for _, check := range s.checks {
			if err := check(out); err != nil {
				report.AddForm(err.Error())
			}
		}
	}

	if !report.IsEmpty() {
		var zero T
		return zero, report
	}
	return out, nil
}

func (s *StructSchema[T]) message(fe validator.FieldError) string {
	if fn, ok := s.messages[fe.Tag()]; ok {
		return fn(fe)
	}
	return defaultMessage(fe)
}

// formName returns the form key for a struct field.
func formName(f reflect.StructField) (name string, skip bool) {
	tag := f.Tag.Get("form")
	if tag == "-" {
		return "", true
	}
	name, _, _ = strings.Cut(tag, ",")
	if name == "" {
		name = strings.ToLower(f.Name)
	}
	return name, false
}

// hasRule reports whether a validate tag lists rule at the top level.
func hasRule(tag, rule string) bool {
	for part := range strings.SplitSeq(tag, ",") {
		if strings.TrimSpace(part) == rule {
			return true
		}
	}
	return false
}

var _ Schema[struct{}] = (*StructSchema[struct{}])(nil)
