package app

import (
	"os"

	"github.com/fatih/color"

	"safe/internal/clipboard"
	"safe/internal/logger"
	"safe/internal/search"
	"safe/internal/store"
)

// New constructs the dependency graph from cfg.
func New(cfg Config) (*App, error) {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.Err, level, cfg.LogFormat)
	console := logger.NewConsole(cfg.Out)

	clip := cfg.ClipboardOverride
	if clip == nil {
		clip = clipboard.New(cfg.Clipboard)
	}

	fs := store.NewFileStore(cfg.StorePath, log)
	engine := search.New(cfg.In, console, clip, log)

	return &App{
		Store:     fs,
		Search:    engine,
		Clipboard: clip,
		Console:   console,
		Log:       log,
	}, nil
}
