package health

import (
	"net/http"

	"github.com/dmitrymomot/formauth/core/response"
)

// Liveness indicates if the service process is running.
// Always returns "ALIVE" with 200 OK. No dependency checks.
//
// Example:
//
//	r.HandleFunc("/health/live", health.Liveness)
func Liveness(w http.ResponseWriter, r *http.Request) {
	response.Render(w, r, response.String("ALIVE"))
}

// NoContent returns HTTP 204 without body. Ideal for high-frequency checks.
func NoContent(w http.ResponseWriter, r *http.Request) {
	response.Render(w, r, response.NoContent())
}
