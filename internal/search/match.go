package search

import (
	"errors"
	"fmt"
	"regexp"
	"slices"

	"safe/internal/domain"
)

var (
	// ErrInvalidPattern is returned when a pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrCancelled is returned when the user declines or input ends.
	ErrCancelled = errors.New("retrieval cancelled")
	// ErrEmptyStore is returned when there are no entries to search.
	ErrEmptyStore = errors.New("safe is empty")
)

// State is a position in the narrowing loop.
type State int

const (
	AwaitingPattern State = iota
	Resolved
	Cancelled
)

func (s State) String() string {
	switch s {
	case AwaitingPattern:
		return "awaiting-pattern"
	case Resolved:
		return "resolved"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Step is the outcome of matching one pattern.
type Step struct {
	State State
	// Key is set when State is Resolved.
	Key string
	// Matches holds the keys the pattern matched, sorted.
	Matches []string
	// Exact reports that an ambiguous result was resolved because one key
	// equals the pattern.
	Exact bool
}

// Match returns the sorted keys of entries that pattern matches.
func Match(entries domain.Entries, pattern string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}

	var keys []string
	for _, k := range entries.Keys() {
		if re.MatchString(k) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Classify matches pattern against entries and decides the next state.
func Classify(entries domain.Entries, pattern string) (Step, error) {
	matches, err := Match(entries, pattern)
	if err != nil {
		return Step{}, err
	}

	switch {
	case len(matches) == 1:
		return Step{State: Resolved, Key: matches[0], Matches: matches}, nil
	case len(matches) > 1 && slices.Contains(matches, pattern):
		return Step{State: Resolved, Key: pattern, Matches: matches, Exact: true}, nil
	default:
		return Step{State: AwaitingPattern, Matches: matches}, nil
	}
}
