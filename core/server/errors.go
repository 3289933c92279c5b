package server

import "errors"

var (
	ErrServerAlreadyRunning = errors.New("server: already listening")
	ErrMissingAddress       = errors.New("server: address is required")
	ErrFailedLoadCert       = errors.New("server: failed to load certificate")
)
