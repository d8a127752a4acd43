// Package clipboard hands resolved passwords to the operating system
// clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"safe/internal/domain"
)

// ErrUnsupported is returned when no clipboard is available.
var ErrUnsupported = errors.New("clipboard unavailable")

// System writes to the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the
// Windows clipboard API).
type System struct{}

func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Disabled rejects every copy. It stands in for System when the clipboard is
// turned off in the config.
type Disabled struct{}

func (Disabled) Copy(string) error {
	return fmt.Errorf("%w: disabled in config", ErrUnsupported)
}

// New returns System when enabled, otherwise Disabled.
func New(enabled bool) domain.Clipboard {
	if enabled {
		return System{}
	}
	return Disabled{}
}

var (
	_ domain.Clipboard = System{}
	_ domain.Clipboard = Disabled{}
)
