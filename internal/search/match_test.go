package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safe/internal/domain"
	"safe/internal/search"
)

func TestMatch_SubstringAnywhere(t *testing.T) {
	entries := domain.Entries{"github": "a", "gitlab": "b", "mail": "c"}

	keys, err := search.Match(entries, "git")
	require.NoError(t, err)
	assert.Equal(t, []string{"github", "gitlab"}, keys)

	keys, err = search.Match(entries, "ab$")
	require.NoError(t, err)
	assert.Equal(t, []string{"gitlab"}, keys)
}

func TestMatch_EmptyPatternMatchesAll(t *testing.T) {
	keys, err := search.Match(domain.Entries{"b": "1", "a": "2"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestMatch_InvalidPattern(t *testing.T) {
	_, err := search.Match(domain.Entries{"a": "1"}, "[")
	require.Error(t, err)
	assert.ErrorIs(t, err, search.ErrInvalidPattern)
	assert.Contains(t, err.Error(), `"["`)
}

func TestClassify(t *testing.T) {
	entries := domain.Entries{"git": "a", "github": "b", "alpha": "x", "beta": "y"}

	tests := []struct {
		name    string
		pattern string
		state   search.State
		key     string
		exact   bool
		matches []string
	}{
		{name: "zero matches", pattern: "zzz", state: search.AwaitingPattern},
		{name: "single match", pattern: "alp", state: search.Resolved, key: "alpha", matches: []string{"alpha"}},
		{name: "exact short-circuit", pattern: "git", state: search.Resolved, key: "git", exact: true, matches: []string{"git", "github"}},
		{name: "ambiguous", pattern: "a", state: search.AwaitingPattern, matches: []string{"alpha", "beta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step, err := search.Classify(entries, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.state, step.State)
			assert.Equal(t, tt.key, step.Key)
			assert.Equal(t, tt.exact, step.Exact)
			assert.Equal(t, tt.matches, step.Matches)
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "awaiting-pattern", search.AwaitingPattern.String())
	assert.Equal(t, "resolved", search.Resolved.String())
	assert.Equal(t, "cancelled", search.Cancelled.String())
	assert.Equal(t, "State(9)", search.State(9).String())
}
