// Package middleware provides net/http middleware for the auth flow: identity
// resolution and guards, request IDs, request logging and body limits.
//
// All middleware follow the same pattern: a default constructor, a WithConfig
// constructor taking a config struct with an optional Skip func, and context
// helpers to read stored values.
//
//	r := mux.NewRouter()
//	r.Use(
//		mux.MiddlewareFunc(middleware.RequestID()),
//		mux.MiddlewareFunc(middleware.LoggingWithLogger(log)),
//		mux.MiddlewareFunc(middleware.BodyLimitWithSize(64*middleware.KB)),
//	)
//
//	private := r.PathPrefix("/account").Subrouter()
//	private.Use(mux.MiddlewareFunc(middleware.RequireUser(authManager, nil)))
//
//	func account(w http.ResponseWriter, r *http.Request) {
//		userID := middleware.MustUserID(r.Context())
//		...
//	}
//
// RequireUser answers anonymous requests through the error handler with
// auth.ErrUnauthorized (401, body "Unauthorized" with the default JSON error
// handler). RequireGuest does the reverse with response.ErrForbidden.
package middleware
