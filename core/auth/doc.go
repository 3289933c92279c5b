// Package auth keeps the signed-in user's id in a signed session cookie.
//
//	authManager, err := auth.New(auth.Config{
//		SessionSecret:  os.Getenv("SESSION_SECRET"),
//		UserSessionKey: "userId",
//		Secure:         true,
//	})
//
//	// after checking credentials
//	resp, err := authManager.SignIn(r, auth.SignInParams{
//		UserID:     user.ID,
//		Expiration: 30 * 24 * time.Hour,
//		RedirectTo: "/dashboard",
//	})
//	if err != nil {
//		response.JSONErrorHandler(w, r, err)
//		return
//	}
//	response.Render(w, r, resp)
//
// RequireUserID returns ErrUnauthorized for anonymous requests; rendered with
// response.JSONErrorHandler it becomes a 401 with the body "Unauthorized".
// The session lives in the cookie by default; pass WithStore with a
// session.RedisStore to keep only a signed id client-side.
package auth
