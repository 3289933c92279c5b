// Package handler defines the small set of function types shared by the
// response, auth and middleware packages.
//
// A Response is a deferred rendering step: it is built by a component (for
// example the redirect returned from auth sign-in) and executed later by the
// HTTP handler that owns the ResponseWriter.
//
//	import "github.com/dmitrymomot/formauth/core/handler"
//
//	type Response func(w http.ResponseWriter, r *http.Request) error
//	type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
//	type Middleware func(next http.Handler) http.Handler
//
// Keeping responses as values lets callers inspect or wrap them before
// anything is written to the client.
package handler
