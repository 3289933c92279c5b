// Package response builds HTTP responses as deferred handler.Response values:
// JSON bodies with fixed status codes, redirects, and error rendering.
//
// # Fixed-status JSON
//
//	response.Created(user)                  // 201
//	response.BadRequest(msg)                // 400
//	response.Unauthorized("Unauthorized")   // 401
//	response.Forbidden("Forbidden")         // 403
//	response.NotFound(msg)                  // 404
//	response.UnprocessableEntity(report)    // 422
//	response.InternalServerError(msg)       // 500
//
// # Errors
//
// Any error can be rendered with ErrorResponse or JSONErrorHandler. HTTPError
// values pass through unchanged. Other errors are mapped through an optional
// StatusCode() int method, and an optional Payload() any method supplies the
// exact JSON body:
//
//	func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
//		userID, err := h.auth.RequireUserID(r)
//		if err != nil {
//			response.JSONErrorHandler(w, r, err) // 401 "Unauthorized"
//			return
//		}
//		response.Render(w, r, response.JSON(map[string]string{"id": userID}))
//	}
//
// # Redirects and decorators
//
//	resp := response.WithSetCookie(response.Redirect("/dashboard"), setCookie)
package response
