package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"safe/internal/domain"
)

const (
	keySep    = "="
	entryTerm = ";"
)

var (
	// ErrEmptyKey is returned when an entry has no key.
	ErrEmptyKey = errors.New("key is empty")
	// ErrEmptyPassword is returned when an entry has no password.
	ErrEmptyPassword = errors.New("password is empty")
	// ErrInvalidEntry is returned when an entry cannot be written as a
	// single key=password; line.
	ErrInvalidEntry = errors.New("invalid entry")
)

// ValidateEntry reports whether key and password can be stored.
func ValidateEntry(key, password string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	if password == "" {
		return ErrEmptyPassword
	}
	if strings.TrimSpace(key) != key {
		return fmt.Errorf("%w: key %q has leading or trailing whitespace", ErrInvalidEntry, key)
	}
	if strings.Contains(key, keySep) {
		return fmt.Errorf("%w: key %q contains %q", ErrInvalidEntry, key, keySep)
	}
	if strings.ContainsAny(key, "\r\n") {
		return fmt.Errorf("%w: key contains a line break", ErrInvalidEntry)
	}
	if strings.ContainsAny(password, "\r\n") {
		return fmt.Errorf("%w: password contains a line break", ErrInvalidEntry)
	}
	return nil
}

// EncodeLine formats one entry as it is written to the store.
func EncodeLine(key, password string) string {
	return key + keySep + password + entryTerm + "\n"
}

// Decode parses store lines from r. Lines without "=" are passed to
// onMalformed (when non-nil) with their 1-based line number and skipped.
// Lines have no length limit.
func Decode(r io.Reader, onMalformed func(line int, text string)) (domain.Entries, error) {
	entries := make(domain.Entries)
	br := bufio.NewReader(r)

	for n := 1; ; n++ {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode safe: %w", err)
		}

		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			key, value, ok := strings.Cut(line, keySep)
			switch {
			case !ok && onMalformed != nil:
				onMalformed(n, line)
			case ok:
				entries.Put(strings.TrimSpace(key), strings.TrimSuffix(value, entryTerm))
			}
		}

		if err != nil {
			return entries, nil
		}
	}
}
