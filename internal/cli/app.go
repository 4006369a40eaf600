// Package cli implements the terminal front-end of the portal: a command
// loop over the dispatch facade. It only renders results; every mutation
// goes through the facade so the cached state stays consistent.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/neximprove/portal/internal/app"
	"github.com/neximprove/portal/internal/config"
	"github.com/neximprove/portal/internal/kvstore"
	"github.com/neximprove/portal/internal/logging"
	"github.com/neximprove/portal/internal/portal"

	_ "modernc.org/sqlite"
)

type App struct {
	cfg    *config.Config
	facade *app.App
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
	db     *sql.DB
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, db, err := kvstore.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	svc := portal.NewService(store, log)
	svc.SetStrictShipmentIDs(cfg.StrictShipmentIDs)

	return &App{
		cfg:    cfg,
		facade: app.New(ctx, svc, log),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		db:     db,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.facade.State().IsAuthenticated
}

// status renders the prompt suffix, e.g. "(jane@example.com)".
func (a *App) status() string {
	if st := a.facade.State(); st.User != nil {
		return "(" + st.User.Email + ")"
	}
	return ""
}

// Run starts the command loop and blocks until the user exits or stdin is
// closed.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	scanner := bufio.NewScanner(os.Stdin)
	printlnFn("Welcome to the Neximprove shipment portal (type 'help' for commands)")
	runREPL(ctx, a, a.status, scanner)
}
