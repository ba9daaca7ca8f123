// Package models defines the database-facing types shared by the server
// repositories and services.
package models

// User is a catalog account keyed by email. The row is created lazily on
// the first favorite write; until then reads return ErrNotFound.
type User struct {
	Email            string
	Name             string
	FavoriteMovieIDs []string
}
