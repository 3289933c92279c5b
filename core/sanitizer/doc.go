// Package sanitizer normalizes user input before it is validated.
//
// Sanitizers are plain func(string) string values, composed with a struct tag:
//
//	type SignIn struct {
//		Email string `form:"email" sanitize:"email"`
//		Name  string `form:"name" sanitize:"text,max:64"`
//	}
//
//	err := sanitizer.SanitizeStruct(&in)
//
// Tags run left to right. "max:N" truncates to N runes. Unknown names fail
// with ErrUnknownSanitizer. Register custom sanitizers at startup with
// RegisterSanitizer.
package sanitizer
