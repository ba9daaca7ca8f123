package cli

import (
	"context"
	"errors"

	"filmoteka/internal/client/favorites"
)

// Fav toggles the movie's membership in the user's favorites set. The
// result shown is whatever the server confirmed, not the local guess.
func (a *App) Fav(ctx context.Context, id string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.favs.Toggle(ctx, id); err != nil {
		switch {
		case errors.Is(err, favorites.ErrNotAuthenticated):
			printlnFn("Log in first to manage favorites.")
		case errors.Is(err, favorites.ErrToggleInFlight):
			printlnFn("Still applying the previous change for that movie.")
		default:
			printlnFn("Could not update favorite:", err)
		}
		return err
	}

	user, _ := a.session.Current()
	if user.HasFavorite(id) {
		printlnFn("Added to favorites.")
	} else {
		printlnFn("Removed from favorites.")
	}
	return nil
}
