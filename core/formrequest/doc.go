// Package formrequest gates a request behind an authorization check and then
// validates its form body against a schema.
//
// The authorizer always runs first, so a rejected caller never has its body
// read:
//
//	var createPost = formrequest.New(
//		validator.MustStruct[PostInput](),
//		formrequest.WithAuthorizer(formrequest.PredicateFunc(func(r *http.Request) bool {
//			return !strings.Contains(r.URL.Path, "admin")
//		})),
//	)
//
//	func handleCreate(w http.ResponseWriter, r *http.Request) {
//		result, err := createPost.Request(r).FormData()
//		if err != nil {
//			response.JSONErrorHandler(w, r, err) // 403, or the decode error
//			return
//		}
//		if !result.Success {
//			response.Render(w, r, response.JSON(result)) // per-field messages
//			return
//		}
//		// use result.Data
//	}
//
// ValidFormData returns the data directly and turns invalid input into an
// *Error that renders as 422 with the {formErrors, fieldErrors} report.
package formrequest
