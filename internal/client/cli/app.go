// Package cli is the terminal front-end of the moonui client. It wires the
// storage, auth, session, router, and host-facade components together and
// drives them from a small REPL.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/moonui/moonui/internal/client/auth"
	"github.com/moonui/moonui/internal/client/config"
	"github.com/moonui/moonui/internal/client/httpx"
	"github.com/moonui/moonui/internal/client/router"
	"github.com/moonui/moonui/internal/client/session"
	"github.com/moonui/moonui/internal/client/storage"
	"github.com/moonui/moonui/internal/client/sys"
	"github.com/moonui/moonui/internal/logging"
)

type App struct {
	config  *config.Config
	session *session.Session
	router  *router.Router
	api     *httpx.Client

	dialog    sys.Dialog
	clipboard sys.Clipboard
	window    sys.Window
	opener    sys.Opener

	reader *bufio.Reader
	log    logging.Logger
}

// NewApp builds the whole client: database, store, auth service, session,
// router with the navigation guard, HTTP client, and local host facades.
// This is the single construction point for session state.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := storage.NewStore(db, log)
	authService := auth.NewService(store, log)
	sess := session.New(authService, store, log)

	r := router.New(router.NewGuard(sess))
	for _, route := range defaultRoutes() {
		r.Handle(route)
	}

	dialog := sys.NewConsoleDialog(os.Stdin, os.Stdout)
	api := httpx.New(cfg.APIBaseURL, sess, dialog, log)

	return &App{
		config:    cfg,
		session:   sess,
		router:    r,
		api:       api,
		dialog:    dialog,
		clipboard: sys.NewMemoryClipboard(),
		window:    sys.NewNullWindow(),
		opener:    sys.NewExecOpener(),
		reader:    bufio.NewReader(os.Stdin),
		log:       log,
	}, nil
}

func defaultRoutes() []router.Route {
	return []router.Route{
		{Path: router.PathHome},
		{Path: router.PathLogin, Meta: router.Meta{Public: true, Layout: "blank"}},
		{Path: router.PathRegister, Meta: router.Meta{Public: true, Layout: "blank"}},
		{Path: "/dashboard"},
		{Path: "/settings"},
		{Path: "/about", Meta: router.Meta{Public: true}},
	}
}

// Run restores any remembered session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	a.session.CheckAuth(ctx)
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if user := a.session.CurrentUser(); user != nil {
		return "(" + user.Username + ")"
	}
	return ""
}
