package response

import (
	"net/http"

	"github.com/dmitrymomot/formauth/core/handler"
)

// WithHeaders wraps a response with custom HTTP headers.
// Headers are added before the wrapped response is rendered, so repeated
// keys such as Set-Cookie are preserved.
func WithHeaders(response handler.Response, headers http.Header) handler.Response {
	if response == nil {
		return nil
	}
	if len(headers) == 0 {
		return response
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		for k, values := range headers {
			for _, v := range values {
				w.Header().Add(k, v)
			}
		}
		return response(w, r)
	}
}

// WithSetCookie wraps a response with a raw Set-Cookie header value.
// Empty values leave the response untouched.
func WithSetCookie(response handler.Response, setCookie string) handler.Response {
	if setCookie == "" {
		return response
	}
	return WithHeaders(response, http.Header{"Set-Cookie": {setCookie}})
}

// WithCookie wraps a response with an HTTP cookie.
func WithCookie(response handler.Response, cookie *http.Cookie) handler.Response {
	if response == nil || cookie == nil {
		return response
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		http.SetCookie(w, cookie)
		return response(w, r)
	}
}
