package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"safe/internal/domain"
)

func TestEntries_PutLookupKeys(t *testing.T) {
	e := make(domain.Entries)
	e.Put("beta", "1")
	e.Put("alpha", "2")
	e.Put("beta", "3")

	got, ok := e.Lookup("beta")
	assert.True(t, ok)
	assert.Equal(t, domain.Entry{Key: "beta", Password: "3"}, got)

	_, ok = e.Lookup("gamma")
	assert.False(t, ok)

	assert.Equal(t, []string{"alpha", "beta"}, e.Keys())
	assert.Equal(t, 2, e.Len())
}
