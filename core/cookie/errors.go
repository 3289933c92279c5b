package cookie

import (
	"errors"
	"fmt"
)

var (
	ErrNoSecret         = errors.New("cookie: at least one secret is required")
	ErrInvalidSignature = errors.New("cookie: invalid signature")
	ErrCookieNotFound   = errors.New("cookie: not found")
	ErrInvalidFormat    = errors.New("cookie: invalid signed value")
	ErrCookieTooLarge   = errors.New("cookie: too large")
)

// SizeError reports a serialized cookie over the manager's size limit.
// It matches ErrCookieTooLarge with errors.Is.
type SizeError struct {
	Name string
	Size int
	Max  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("cookie: %q is %d bytes, limit %d", e.Name, e.Size, e.Max)
}

func (e *SizeError) Is(target error) bool {
	return target == ErrCookieTooLarge
}
