package models

import "time"

// Movie is a catalog row. CreatedAt participates in the collection sort
// order together with ID, so pages stay stable while rows are appended.
type Movie struct {
	ID        string
	Title     string
	Plot      string
	Poster    string
	Runtime   int32
	Released  time.Time
	CreatedAt time.Time
}

// Comment belongs to exactly one movie and is read-only for clients.
type Comment struct {
	ID      string
	MovieID string
	Name    string
	Text    string
	Date    time.Time
}

// MovieWithComments is the detail-view shape: the movie plus its comments
// ordered oldest first.
type MovieWithComments struct {
	Movie
	Comments []*Comment
}
