// Package cli is the interactive front end: a small REPL over the session
// manager, the collection pager and the favorites syncer.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"filmoteka/internal/client/api"
	"filmoteka/internal/client/browse"
	"filmoteka/internal/client/config"
	"filmoteka/internal/client/credstore"
	"filmoteka/internal/client/favorites"
	"filmoteka/internal/client/session"
	"filmoteka/internal/logging"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	creds   *credstore.Store
	client  api.Client
	session *session.Manager
	pager   *browse.Pager
	favs    *favorites.Syncer
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	creds, err := credstore.Open(ctx, cfg.CredentialsDSN)
	if err != nil {
		return nil, fmt.Errorf("credential store: %w", err)
	}

	client, err := api.NewGRPCClient(cfg.ServerEndpointAddr, cfg.APIKey, creds)
	if err != nil {
		_ = creds.Close()
		return nil, fmt.Errorf("api client: %w", err)
	}

	sess := session.NewManager(creds, client, logger)

	return &App{
		config:  cfg,
		logger:  logger.With("module", "cli"),
		creds:   creds,
		client:  client,
		session: sess,
		pager:   browse.NewPager(client),
		favs:    favorites.NewSyncer(client, sess, logger),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores a persisted session if any, then hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	restoreCtx, cancel := a.withTimeout(ctx)
	err := a.session.Restore(restoreCtx)
	cancel()
	if err != nil {
		// anonymous for this run; stored credentials stay for the next one
		printlnFn("Could not restore session:", err)
	}

	printlnFn("Welcome to filmoteka (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) close() {
	if err := a.client.Close(); err != nil {
		a.logger.Error(context.Background(), "closing api client", "error", err)
	}
	if err := a.creds.Close(); err != nil {
		a.logger.Error(context.Background(), "closing credential store", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if user, ok := a.session.Current(); ok {
		return "(" + user.Email + ")"
	}
	return "(anonymous)"
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
