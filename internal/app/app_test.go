package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safe/internal/app"
	"safe/internal/clipboard"
	"safe/internal/domain"
	"safe/internal/store"
)

func TestNew_EnsureStoreCreatesOnce(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), ".safe", ".main.safe")

	a, err := app.New(app.Config{
		StorePath: path,
		LogLevel:  "warn",
		NoColor:   true,
		In:        strings.NewReader(""),
		Out:       &out,
		Err:       &bytes.Buffer{},
	})
	require.NoError(t, err)

	require.NoError(t, a.EnsureStore())
	assert.Contains(t, out.String(), "Initializing your first safe.")
	_, err = os.Stat(path)
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, a.EnsureStore())
	assert.Empty(t, out.String())
}

func TestNew_ClipboardFromConfig(t *testing.T) {
	a, err := app.New(app.Config{StorePath: "x", Clipboard: false, Out: &bytes.Buffer{}, Err: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.IsType(t, clipboard.Disabled{}, a.Clipboard)
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := app.New(app.Config{StorePath: "x", LogLevel: "loud"})
	assert.Error(t, err)
}

type memStore struct {
	exists      bool
	initialized int
}

func (m *memStore) Path() string                     { return "mem" }
func (m *memStore) Exists() (bool, error)            { return m.exists, nil }
func (m *memStore) LoadAll() (domain.Entries, error) { return domain.Entries{}, nil }
func (m *memStore) Append(string, string) error      { return nil }
func (m *memStore) Fingerprint() (string, error)     { return "", nil }
func (m *memStore) Initialize() (bool, error) {
	m.initialized++
	m.exists = true
	return true, nil
}

func TestEnsureStore_UsesStoreContract(t *testing.T) {
	var out bytes.Buffer
	a, err := app.New(app.Config{StorePath: "x", NoColor: true, Out: &out, Err: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.IsType(t, &store.FileStore{}, a.Store)

	mem := &memStore{}
	a.Store = mem

	require.NoError(t, a.EnsureStore())
	require.NoError(t, a.EnsureStore())
	assert.Equal(t, 1, mem.initialized)
	assert.Equal(t, 1, strings.Count(out.String(), "Initializing your first safe."))
}
