package app

import (
	"log/slog"

	"safe/internal/domain"
	"safe/internal/logger"
	"safe/internal/search"
)

// App bundles the store, engine and output channels for the CLI.
type App struct {
	Store     domain.Store
	Search    *search.Engine
	Clipboard domain.Clipboard
	Console   *logger.Console
	Log       *slog.Logger
}

// EnsureStore creates the safe on first use and tells the user about it.
func (a *App) EnsureStore() error {
	exists, err := a.Store.Exists()
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	a.Console.Info("Initializing your first safe.")
	if _, err := a.Store.Initialize(); err != nil {
		return err
	}
	a.Console.Success("Your safe has been initialized successfully!")
	return nil
}
