package cli

import (
	"context"
	"errors"

	"filmoteka/internal/common"
)

// Login asks for an identity token (issued by the external identity
// provider) and runs the session login transition.
func (a *App) Login(ctx context.Context) error {
	token, err := GetSecret(a.reader, "-Paste identity token")
	if err != nil {
		printlnFn("error reading token:", err)
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.session.Login(ctx, token); err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidToken):
			printlnFn("That does not look like a valid identity token.")
		case errors.Is(err, common.ErrUnavailable):
			printlnFn("Server unavailable, try again later.")
		default:
			printlnFn("Login failed:", err)
		}
		return err
	}

	user, _ := a.session.Current()
	printlnFn("Logged in as", user.Email)
	return nil
}
