package formrequest

import "net/http"

// Authorizer decides whether a request may be processed at all, before its
// body is read. Build one with AllowAll or Predicate.
type Authorizer struct {
	check func(*http.Request) (bool, error)
}

// AllowAll returns an Authorizer that accepts every request.
func AllowAll() Authorizer {
	return Authorizer{}
}

// Predicate returns an Authorizer backed by fn. A nil fn allows every request.
// fn may block (for example on a permission lookup); errors it returns are
// passed through to the caller unchanged.
func Predicate(fn func(*http.Request) (bool, error)) Authorizer {
	return Authorizer{check: fn}
}

// PredicateFunc adapts a predicate that cannot fail.
func PredicateFunc(fn func(*http.Request) bool) Authorizer {
	if fn == nil {
		return AllowAll()
	}
	return Predicate(func(r *http.Request) (bool, error) {
		return fn(r), nil
	})
}

// Authorize evaluates the authorizer for r.
func (a Authorizer) Authorize(r *http.Request) (bool, error) {
	if a.check == nil {
		return true, nil
	}
	return a.check(r)
}
