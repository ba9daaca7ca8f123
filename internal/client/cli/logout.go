package cli

import "context"

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	user, ok := a.session.Current()
	if !ok {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn("Logged in as", user.Email, "with", len(user.FavoriteMovieIDs), "favorite(s)")
	return nil
}
