// Package store provides the file-based persistence for safe.
//
// A store is a flat UTF-8 text file with one entry per line:
//
//	key=password;
//
// Blank lines are ignored and lines without "=" are skipped with a warning.
// Entries are only ever appended; the in-memory mapping is rebuilt from the
// file on every load, and a later line for the same key wins. Values are not
// encrypted.
package store
