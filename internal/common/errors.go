package common

import "errors"

// Sentinel errors shared between client and server layers.
// Callers should match them with errors.Is.
var (
	// Repository / resource errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")

	// Identity token errors (malformed or undecodable token).
	ErrInvalidToken = errors.New("invalid token")
)
