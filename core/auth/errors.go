package auth

import (
	"errors"

	"github.com/dmitrymomot/formauth/core/response"
)

var (
	ErrMissingSecret         = errors.New("auth: session secret is required")
	ErrMissingUserSessionKey = errors.New("auth: user session key is required")
	ErrEmptyUserID           = errors.New("auth: user id is empty")

	// ErrUnauthorized is returned by RequireUserID when the request carries no
	// identity. It renders as 401 with the JSON body "Unauthorized".
	ErrUnauthorized = response.ErrUnauthorized.WithPayload("Unauthorized")
)
