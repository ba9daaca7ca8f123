package catalog

import "time"

// User is the server-authoritative user record, keyed by email.
type User struct {
	Email            string   `json:"email"`
	Name             string   `json:"name,omitempty"`
	FavoriteMovieIDs []string `json:"favorite_movie_ids,omitempty"`
}

// Movie is a catalog entry as listed in collection pages.
type Movie struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Plot     string    `json:"plot,omitempty"`
	Poster   string    `json:"poster,omitempty"`
	Runtime  int32     `json:"runtime,omitempty"`
	Released time.Time `json:"released,omitempty"`
}

// Comment is a read-only comment attached to a movie in the detail view.
type Comment struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

// MovieWithComments is a movie plus its ordered comment thread.
type MovieWithComments struct {
	Movie
	Comments []*Comment `json:"comments,omitempty"`
}

type GetUserRequest struct {
	Email string `json:"email"`
}

type AddFavoriteMovieRequest struct {
	Email   string `json:"email"`
	MovieID string `json:"movie_id"`
}

type AddFavoriteMovieResponse struct{}

type DeleteFavoriteMovieRequest struct {
	Email   string `json:"email"`
	MovieID string `json:"movie_id"`
}

type DeleteFavoriteMovieResponse struct{}

// ListMoviesRequest asks for one collection page. An empty cursor means
// "from the start"; any other value must be a NextCursor returned verbatim
// by a previous page.
type ListMoviesRequest struct {
	Cursor string `json:"cursor,omitempty"`
}

// ListMoviesResponse carries one page. An empty NextCursor means the
// collection is exhausted.
type ListMoviesResponse struct {
	Data       []*Movie `json:"data"`
	NextCursor string   `json:"next_cursor,omitempty"`
}

type GetMovieWithCommentsRequest struct {
	ID string `json:"id"`
}

// GetMovieWithCommentsResponse wraps the single result in a one-element
// data slice, matching the upstream shape.
type GetMovieWithCommentsResponse struct {
	Data []*MovieWithComments `json:"data"`
}
