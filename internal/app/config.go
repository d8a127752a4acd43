package app

import (
	"io"

	"safe/internal/domain"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	StorePath string // safe file, e.g. ./.safe/.main.safe
	LogLevel  string // debug, info, warn or error
	LogFormat string // text or json
	Clipboard bool   // copy resolved passwords to the OS clipboard
	NoColor   bool

	In  io.Reader // prompt answers; defaults to os.Stdin
	Out io.Writer // user-facing output; defaults to os.Stdout
	Err io.Writer // diagnostics; defaults to os.Stderr

	// ClipboardOverride replaces the OS clipboard when non-nil.
	ClipboardOverride domain.Clipboard
}
