// Package app assembles the store, prompts and output into a runnable session
package app

import (
	"context"
	"os"

	"github.com/thenoetrevino/roster/internal/config/colors"
	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/menu"
	"github.com/thenoetrevino/roster/internal/prompt"
	"github.com/thenoetrevino/roster/internal/render"
)

// App holds the session's collaborators and provides dependency injection.
type App struct {
	store database.DataStore
	menu  *menu.Menu
}

// New creates an App over store. Without options it prompts through huh and
// writes to stdout.
func New(store database.DataStore, scheme colors.ColorScheme, opts ...Option) *App {
	cfg := &appConfig{out: os.Stdout}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.prompter == nil {
		cfg.prompter = prompt.NewHuhPrompter(prompt.Theme(scheme), cfg.accessible)
	}

	return &App{
		store: store,
		menu:  menu.New(store, cfg.prompter, render.New(cfg.out, scheme)),
	}
}

// Run runs the menu loop. The store is closed on every clean exit; on error
// the caller decides, usually by calling Close and terminating.
func (a *App) Run(ctx context.Context) error {
	return a.menu.Run(ctx)
}

// Close releases the store connection
func (a *App) Close() error {
	return a.store.Close()
}
