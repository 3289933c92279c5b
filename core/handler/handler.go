package handler

import "net/http"

// Response is a function that renders HTTP responses.
// It sets headers, status code, and writes the response body.
// Rendering errors are returned to the caller's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler handles errors during request processing.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Middleware wraps handlers to add cross-cutting functionality.
type Middleware func(next http.Handler) http.Handler
