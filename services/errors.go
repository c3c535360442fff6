package services

import "errors"

// Sentinel errors for the business layer. Handlers translate these to HTTP
// status codes with errors.Is; anything unwrapped surfaces as a 500.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
)
