package search

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"safe/internal/domain"
	"safe/internal/logger"
)

// Result describes a completed retrieval.
type Result struct {
	Key string
	// Copied is false when the clipboard rejected the password.
	Copied bool
	// CopyErr holds the clipboard failure, if any.
	CopyErr error
}

// Engine runs the interactive search against a prompt reader and a console.
type Engine struct {
	in   *bufio.Reader
	ui   *logger.Console
	clip domain.Clipboard
	log  *slog.Logger
}

// New returns an Engine reading answers from in and printing to ui.
func New(in io.Reader, ui *logger.Console, clip domain.Clipboard, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{in: bufio.NewReader(in), ui: ui, clip: clip, log: log}
}

// Resolve narrows pattern to exactly one entry, prompting for new patterns as
// needed. Every prompt is matched against the full set of entries.
func (e *Engine) Resolve(entries domain.Entries, pattern string) (domain.Entry, error) {
	if entries.Len() == 0 {
		return domain.Entry{}, ErrEmptyStore
	}

	e.ui.Info("Looking for password of pattern: %s", pattern)

	state := AwaitingPattern
	var key string
	for state == AwaitingPattern {
		step, err := Classify(entries, pattern)
		if err != nil {
			return domain.Entry{}, err
		}
		e.log.Debug("search step", "pattern", pattern, "state", step.State, "matches", len(step.Matches))

		if step.State == Resolved {
			key, state = step.Key, Resolved
			continue
		}

		if len(step.Matches) == 0 {
			e.ui.Warn("No matching keys found.")
			e.ui.Info("Available keys:")
			e.ui.List(entries.Keys())
			e.ui.InfoInline("Enter a new pattern: ")
		} else {
			e.ui.Info("Multiple matching keys found:")
			e.ui.List(step.Matches)
			e.ui.InfoInline("Please provide a more specific pattern to narrow down the search: ")
		}

		next, err := e.readLine()
		if errors.Is(err, io.EOF) {
			state = Cancelled
			continue
		}
		if err != nil {
			return domain.Entry{}, err
		}
		pattern = next
	}

	if state == Cancelled {
		e.ui.Info("")
		return domain.Entry{}, ErrCancelled
	}
	entry, _ := entries.Lookup(key)
	return entry, nil
}

// Confirm asks whether the password for entry should be retrieved.
func (e *Engine) Confirm(entry domain.Entry) (bool, error) {
	e.ui.Info("Found one matching key: '%s'", entry.Key)
	e.ui.InfoInline("Do you want to retrieve the password? (y/N): ")

	answer, err := e.readLine()
	if errors.Is(err, io.EOF) {
		e.ui.Info("")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Retrieve resolves pattern, confirms with the user and copies the password
// to the clipboard. A declined retrieval returns ErrCancelled without touching
// the clipboard. A clipboard failure is reported but not returned.
func (e *Engine) Retrieve(entries domain.Entries, pattern string) (Result, error) {
	entry, err := e.Resolve(entries, pattern)
	if err != nil {
		return Result{}, err
	}

	ok, err := e.Confirm(entry)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		e.ui.Info("Password retrieval cancelled.")
		return Result{}, ErrCancelled
	}

	res := Result{Key: entry.Key}
	if err := e.clip.Copy(entry.Password); err != nil {
		e.log.Warn("clipboard copy failed", "key", entry.Key, "err", err)
		e.ui.Warn("Could not copy the password for '%s' to the clipboard: %v", entry.Key, err)
		res.CopyErr = err
		return res, nil
	}

	res.Copied = true
	e.ui.Success("Password for '%s' has been copied to clipboard", entry.Key)
	return res, nil
}

// readLine returns the next trimmed line of input. A final line without a
// newline is returned normally; io.EOF is returned only when nothing was read.
func (e *Engine) readLine() (string, error) {
	line, err := e.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
