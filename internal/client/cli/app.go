package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/mygaadi/mygaadi/internal/client/assist"
	"github.com/mygaadi/mygaadi/internal/client/config"
	"github.com/mygaadi/mygaadi/internal/client/files"
	"github.com/mygaadi/mygaadi/internal/client/session"
	"github.com/mygaadi/mygaadi/internal/logging"
)

type App struct {
	config  *config.Config
	session *session.Manager
	assist  *assist.Client
	files   files.Storage
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config, sm *session.Manager, ac *assist.Client, fs files.Storage, log logging.Logger) *App {
	return &App{
		config:  cfg,
		session: sm,
		assist:  ac,
		files:   fs,
		log:     log.With("component", "cli"),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to myGaadi (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)

	if a.isLoggedIn() {
		_ = a.Logout(ctx)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return "(" + a.session.Store().Profile().Name + ")"
}
