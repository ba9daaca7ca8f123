package cli

import "context"

// Favorites lists the user's favorite movies, resolving each id through
// the detail call.
func (a *App) Favorites(ctx context.Context) error {
	user, ok := a.session.Current()
	if !ok {
		printlnFn("Log in first to see favorites.")
		return nil
	}
	if len(user.FavoriteMovieIDs) == 0 {
		printlnFn("No favorites yet.")
		return nil
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	for _, id := range user.FavoriteMovieIDs {
		movie, err := a.client.GetMovieWithComments(ctx, id)
		if err != nil {
			printlnFn("  " + id + " (unavailable)")
			continue
		}
		printlnFn("* " + movie.ID + "  " + movie.Title)
	}
	return nil
}
