// Package models holds the client-side view of catalog data. Values are
// converted from wire messages at the transport boundary so the rest of the
// client never touches wire types directly.
package models

import "slices"

// User is the client's copy of the server-authoritative user record.
// The favorites set is only trusted right after a fresh fetch; nothing on
// the client mutates it in place.
type User struct {
	Email            string
	Name             string
	FavoriteMovieIDs []string
}

// HasFavorite reports whether movieID is in the user's favorites set.
func (u *User) HasFavorite(movieID string) bool {
	return slices.Contains(u.FavoriteMovieIDs, movieID)
}

// Clone returns a deep copy, so a session snapshot handed to a caller can
// not alias the session's own state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.FavoriteMovieIDs = slices.Clone(u.FavoriteMovieIDs)
	return &c
}
