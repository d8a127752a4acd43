package store_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safe/internal/domain"
	"safe/internal/store"
)

func newStore(t *testing.T) *store.FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".safe", ".main.safe")
	return store.NewFileStore(path, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
}

func TestFileStore_AppendLoad_RoundTrip(t *testing.T) {
	s := newStore(t)
	_, err := s.Initialize()
	require.NoError(t, err)

	require.NoError(t, s.Append("site", "pw123"))

	entries, err := s.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, domain.Entries{"site": "pw123"}, entries)

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "site=pw123;\n", string(raw))
}

func TestFileStore_Initialize_CreatesParentDirs(t *testing.T) {
	s := newStore(t)

	ok, err := s.Exists()
	require.NoError(t, err)
	require.False(t, ok)

	created, err := s.Initialize()
	require.NoError(t, err)
	assert.True(t, created)

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Zero(t, info.Size())
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := s.LoadAll()
	require.NoError(t, err)
	assert.Zero(t, entries.Len())
}

func TestFileStore_Initialize_Idempotent(t *testing.T) {
	s := newStore(t)
	_, err := s.Initialize()
	require.NoError(t, err)
	require.NoError(t, s.Append("site", "pw123"))

	created, err := s.Initialize()
	require.NoError(t, err)
	assert.False(t, created)

	entries, err := s.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, "pw123", entries["site"])
}

func TestFileStore_Initialize_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	s := store.NewFileStore(filepath.Join(dir, "sub", "main.safe"), nil)
	_, err := s.Initialize()
	assert.Error(t, err)
}

func TestFileStore_LoadAll_MalformedLineSkipped(t *testing.T) {
	var logs bytes.Buffer
	path := filepath.Join(t.TempDir(), "main.safe")
	require.NoError(t, os.WriteFile(path, []byte("good=pw;\nno separator here\n"), 0o600))

	s := store.NewFileStore(path, slog.New(slog.NewTextHandler(&logs, nil)))
	entries, err := s.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, domain.Entries{"good": "pw"}, entries)
	assert.Contains(t, logs.String(), "invalid line format")
	assert.Contains(t, logs.String(), "line=2")
	assert.NotContains(t, logs.String(), "no separator here")
}

func TestFileStore_LoadAll_MissingFile(t *testing.T) {
	s := newStore(t)

	_, err := s.LoadAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileStore_DuplicateKey_LastWriteWins(t *testing.T) {
	s := newStore(t)
	_, err := s.Initialize()
	require.NoError(t, err)

	require.NoError(t, s.Append("mail", "old"))
	require.NoError(t, s.Append("mail", "new"))

	entries, err := s.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, "new", entries["mail"])

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(raw), "mail="))
}

func TestFileStore_Append_RejectsInvalid(t *testing.T) {
	s := newStore(t)
	_, err := s.Initialize()
	require.NoError(t, err)

	assert.ErrorIs(t, s.Append("", "pw"), store.ErrEmptyKey)
	assert.ErrorIs(t, s.Append("site", ""), store.ErrEmptyPassword)
	assert.ErrorIs(t, s.Append("a=b", "pw"), store.ErrInvalidEntry)

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestFileStore_Fingerprint_ChangesOnAppend(t *testing.T) {
	s := newStore(t)
	_, err := s.Initialize()
	require.NoError(t, err)

	before, err := s.Fingerprint()
	require.NoError(t, err)
	require.NoError(t, s.Append("site", "pw123"))
	after, err := s.Fingerprint()
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestFileStore_LoadAll_OverlongLineSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.safe")
	content := "good=pw;\n" + strings.Repeat("z", 2<<20) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s := store.NewFileStore(path, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	entries, err := s.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, domain.Entries{"good": "pw"}, entries)
}
