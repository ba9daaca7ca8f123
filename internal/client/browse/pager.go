// Package browse fetches the movie collection page by page and accumulates
// the results in server order. Cursors are opaque: they are stored and
// forwarded verbatim, and only ever compared to the empty string.
package browse

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"filmoteka/internal/client/api"
	"filmoteka/internal/client/models"
)

// ErrNoMorePages is returned by LoadMore when the collection is exhausted
// or no first page has been loaded yet. The pager never issues a request
// with an empty cursor on its own.
var ErrNoMorePages = errors.New("no more pages")

// Pager accumulates collection pages. A successful LoadFirst replaces the
// accumulator; every successful LoadMore appends. A failed load changes
// nothing, so the same cursor can be retried.
//
// Overlapping loads on one Pager are not deduplicated here; callers are
// expected to disable their trigger while a request is outstanding.
type Pager struct {
	client api.Client

	mu     sync.Mutex
	movies []models.Movie
	cursor string
	loaded bool
}

func NewPager(client api.Client) *Pager {
	return &Pager{client: client}
}

// LoadFirst fetches the collection from the start and replaces the
// accumulator with the result.
func (p *Pager) LoadFirst(ctx context.Context) error {
	movies, next, err := p.client.ListMovies(ctx, "")
	if err != nil {
		return fmt.Errorf("load first page: %w", err)
	}

	p.mu.Lock()
	p.movies = movies
	p.cursor = next
	p.loaded = true
	p.mu.Unlock()
	return nil
}

// LoadMore fetches the page after the most recent one and appends its items.
// Returns ErrNoMorePages when the collection is exhausted (or before any
// LoadFirst), without touching the network.
func (p *Pager) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	cursor := p.cursor
	loaded := p.loaded
	p.mu.Unlock()

	if !loaded || cursor == "" {
		return ErrNoMorePages
	}

	movies, next, err := p.client.ListMovies(ctx, cursor)
	if err != nil {
		return fmt.Errorf("load next page: %w", err)
	}

	p.mu.Lock()
	p.movies = append(p.movies, movies...)
	p.cursor = next
	p.mu.Unlock()
	return nil
}

// Movies returns a copy of the accumulated items in fetch order.
func (p *Pager) Movies() []models.Movie {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.movies)
}

// HasMore reports whether a further page can be requested.
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded && p.cursor != ""
}
