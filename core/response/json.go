package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/formauth/core/handler"
)

// JSON creates an application/json response with 200 OK status.
func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with custom status code.
// JSON encoding is performed directly to the response writer.
func JSONWithStatus(v any, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if status == 0 {
			if v == nil {
				status = http.StatusNoContent
			} else {
				status = http.StatusOK
			}
		}

		w.WriteHeader(status)

		switch status {
		case http.StatusNoContent, http.StatusNotModified:
			return nil
		}

		return json.NewEncoder(w).Encode(v)
	}
}

// Created creates a JSON response with the status code 201.
func Created(data any) handler.Response {
	return JSONWithStatus(data, http.StatusCreated)
}

// BadRequest creates a JSON response with the status code 400.
func BadRequest(data any) handler.Response {
	return JSONWithStatus(data, http.StatusBadRequest)
}

// Unauthorized creates a JSON response with the status code 401.
func Unauthorized(data any) handler.Response {
	return JSONWithStatus(data, http.StatusUnauthorized)
}

// Forbidden creates a JSON response with the status code 403.
func Forbidden(data any) handler.Response {
	return JSONWithStatus(data, http.StatusForbidden)
}

// NotFound creates a JSON response with the status code 404.
func NotFound(data any) handler.Response {
	return JSONWithStatus(data, http.StatusNotFound)
}

// UnprocessableEntity creates a JSON response with the status code 422.
func UnprocessableEntity(data any) handler.Response {
	return JSONWithStatus(data, http.StatusUnprocessableEntity)
}

// InternalServerError creates a JSON response with the status code 500.
func InternalServerError(data any) handler.Response {
	return JSONWithStatus(data, http.StatusInternalServerError)
}
