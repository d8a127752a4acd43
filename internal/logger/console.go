package logger

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Console prints user-facing messages in the tool's palette: info in the
// default color, warnings yellow, errors red, successes green. The *Inline
// variants omit the trailing newline and are used for prompts.
type Console struct {
	w       io.Writer
	warn    *color.Color
	err     *color.Color
	success *color.Color
	accent  *color.Color
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{
		w:       w,
		warn:    color.New(color.FgYellow),
		err:     color.New(color.FgRed),
		success: color.New(color.FgGreen),
		accent:  color.New(color.FgCyan),
	}
}

func (c *Console) Info(format string, args ...any) {
	fmt.Fprintf(c.w, format+"\n", args...)
}

func (c *Console) InfoInline(format string, args ...any) {
	fmt.Fprintf(c.w, format, args...)
}

func (c *Console) Warn(format string, args ...any) {
	c.warn.Fprintf(c.w, format+"\n", args...)
}

func (c *Console) Error(format string, args ...any) {
	c.err.Fprintf(c.w, format+"\n", args...)
}

func (c *Console) Success(format string, args ...any) {
	c.success.Fprintf(c.w, format+"\n", args...)
}

// List prints each item on its own bulleted line.
func (c *Console) List(items []string) {
	for _, it := range items {
		fmt.Fprint(c.w, "  - ")
		c.accent.Fprintln(c.w, it)
	}
}
