package cli

import (
	"context"
	"errors"
	"fmt"

	"filmoteka/internal/client/browse"
	"filmoteka/internal/client/models"
)

// List fetches the first collection page, replacing anything loaded so far.
func (a *App) List(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.pager.LoadFirst(ctx); err != nil {
		printlnFn("Could not load movies:", err)
		return err
	}

	a.printMovies()
	return nil
}

// More appends the next page to the listing.
func (a *App) More(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.pager.LoadMore(ctx); err != nil {
		if errors.Is(err, browse.ErrNoMorePages) {
			printlnFn("No more movies.")
			return nil
		}
		printlnFn("Could not load more movies:", err)
		return err
	}

	a.printMovies()
	return nil
}

func (a *App) printMovies() {
	movies := a.pager.Movies()
	user, _ := a.session.Current()

	for _, m := range movies {
		printlnFn(formatMovieLine(m, user))
	}
	if a.pager.HasMore() {
		printlnFn("(type 'more' to load more)")
	}
}

func formatMovieLine(m models.Movie, user *models.User) string {
	mark := " "
	if user != nil && user.HasFavorite(m.ID) {
		mark = "*"
	}
	return fmt.Sprintf("%s %-26s %s", mark, m.ID, m.Title)
}
