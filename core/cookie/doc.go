// Package cookie signs and serializes HTTP cookies.
//
// Values are signed with HMAC-SHA256 using keys derived from the configured
// secrets with HKDF, so secrets of any length are accepted. The first secret
// signs; all secrets verify, which allows rotation:
//
//	m, err := cookie.New([]string{newSecret, oldSecret},
//		cookie.WithSecure(true),
//	)
//
//	c, err := m.Cookie("__session", payload, cookie.WithMaxAge(3600))
//	if err != nil {
//		return err // matches ErrCookieTooLarge when the serialized cookie exceeds 4KB
//	}
//	w.Header().Add("Set-Cookie", c.String())
//
//	value, err := m.Read(r.Header.Get("Cookie"), "__session")
//	switch {
//	case errors.Is(err, cookie.ErrCookieNotFound):
//	case errors.Is(err, cookie.ErrInvalidSignature):
//	}
//
// Defaults are Path=/, HttpOnly and SameSite=Lax. Expired(name) returns the
// cookie that clears name on the client.
package cookie
