package domain

import "sort"

// Entry is one key/password pair recorded in the store.
type Entry struct {
	Key      string
	Password string
}

// Entries maps keys to passwords. Iteration order is unspecified.
type Entries map[string]string

// Put records password under key, replacing any earlier value.
func (e Entries) Put(key, password string) { e[key] = password }

// Lookup returns the entry for key and whether it exists.
func (e Entries) Lookup(key string) (Entry, bool) {
	pw, ok := e[key]
	if !ok {
		return Entry{}, false
	}
	return Entry{Key: key, Password: pw}, true
}

// Keys returns all keys in lexicographic order.
func (e Entries) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of entries.
func (e Entries) Len() int { return len(e) }
