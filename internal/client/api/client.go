// Package api is the client's single outbound call pipeline. Every remote
// call goes through one Client; a unary interceptor decorates each request
// with the stored bearer token (when present) and the static API key
// (always). The pipeline is a thin pass-through otherwise: no retries, no
// caching, errors are mapped to sentinels and returned unchanged.
package api

import (
	"context"

	"filmoteka/internal/client/models"
)

// TokenSource yields the currently stored bearer token, or "" when the
// caller is anonymous. It is consulted on every request, so a login or
// logout takes effect on the very next call.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is the typed surface of the catalog service.
//
// Error contract: a missing user or movie is common.ErrNotFound, rejected
// credentials are common.ErrUnauthorized, transport failures are
// common.ErrUnavailable; anything else is returned wrapped. Match with
// errors.Is.
type Client interface {
	Close() error

	GetUser(ctx context.Context, email string) (*models.User, error)
	AddFavorite(ctx context.Context, email, movieID string) error
	RemoveFavorite(ctx context.Context, email, movieID string) error

	ListMovies(ctx context.Context, cursor string) ([]models.Movie, string, error)
	GetMovieWithComments(ctx context.Context, id string) (*models.MovieWithComments, error)
}
