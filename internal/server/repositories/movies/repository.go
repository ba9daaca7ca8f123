// Package movies reads the movie collection: paged listing and the
// detail view with comments.
package movies

import (
	"context"
	"errors"

	"filmoteka/internal/server/models"
)

// ErrInvalidCursor reports a cursor that was not minted by ListPage.
var ErrInvalidCursor = errors.New("invalid cursor")

type Repository interface {
	// ListPage returns up to limit movies starting after the position the
	// cursor encodes. An empty cursor means the start of the collection.
	// The returned cursor is empty when the collection is exhausted;
	// otherwise it must be passed back verbatim to get the next page.
	ListPage(ctx context.Context, cursor string, limit int) ([]*models.Movie, string, error)
	// GetWithComments returns one movie and its comments ordered oldest
	// first, or common.ErrNotFound.
	GetWithComments(ctx context.Context, id string) (*models.MovieWithComments, error)
}
