package models

import "time"

// Movie is a read-only catalog entry.
type Movie struct {
	ID       string
	Title    string
	Plot     string
	Poster   string
	Runtime  int32
	Released time.Time
}

// Comment belongs to a movie's detail view. Not synchronized further.
type Comment struct {
	ID   string
	Name string
	Text string
	Date time.Time
}

// MovieWithComments is the single-movie detail result.
type MovieWithComments struct {
	Movie
	Comments []Comment
}
