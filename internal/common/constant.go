// Package common contains shared constants and sentinel errors used across
// filmoteka components.
package common

const (
	// AuthorizationHeaderName is the gRPC metadata key carrying the bearer
	// identity token on outbound requests. Omitted for anonymous callers.
	AuthorizationHeaderName = "authorization"

	// APIKeyHeaderName is the gRPC metadata key carrying the static API key.
	// It is attached to every request regardless of authentication state.
	APIKeyHeaderName = "x-api-key"

	// BearerPrefix prefixes the token value in the authorization header.
	BearerPrefix = "Bearer "
)
