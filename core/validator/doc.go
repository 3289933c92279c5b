// Package validator turns submitted form values into typed structs and reports
// validation failures as a flattened field report.
//
// Rules are declared with go-playground/validator tags, form keys with the
// form tag:
//
//	type SignIn struct {
//		Email    string `form:"email" validate:"email"`
//		Password string `form:"password" validate:"min=8"`
//		Remember bool   `form:"remember" validate:"omitempty"`
//	}
//
//	var signInSchema = validator.MustStruct[SignIn]()
//
//	data, report := signInSchema.Validate(values)
//	if report != nil {
//		// report.FieldErrors["email"] == []string{"Invalid email"}
//	}
//
// A non-pointer field is required unless its rules include omitempty. An absent
// required field reports "Required" and its remaining rules are skipped.
//
// The report encodes as
//
//	{"formErrors":[],"fieldErrors":{"email":["Required"]}}
//
// Cross-field checks run only once every field is valid; their errors land in
// formErrors:
//
//	schema := validator.MustStruct(validator.WithCheck(func(in SignUp) error {
//		if in.Password != in.Confirm {
//			return errors.New("Passwords don't match")
//		}
//		return nil
//	}))
package validator
