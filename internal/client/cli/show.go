package cli

import (
	"context"
	"errors"
	"fmt"

	"filmoteka/internal/common"
)

// Show prints one movie's details and its comment thread.
func (a *App) Show(ctx context.Context, id string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	movie, err := a.client.GetMovieWithComments(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Movie not found:", id)
			return nil
		}
		printlnFn("Could not load movie:", err)
		return err
	}

	printlnFn(movie.Title)
	if movie.Plot != "" {
		printlnFn(movie.Plot)
	}
	if movie.Runtime > 0 {
		printlnFn(fmt.Sprintf("Runtime: %d minutes", movie.Runtime))
	}
	if !movie.Released.IsZero() {
		printlnFn("Released:", movie.Released.Format("2 January 2006"))
	}

	if len(movie.Comments) > 0 {
		printlnFn("Comments:")
		for _, c := range movie.Comments {
			printlnFn(fmt.Sprintf("  %s (%s): %s", c.Name, c.Date.Format("2006-01-02"), c.Text))
		}
	}
	return nil
}
