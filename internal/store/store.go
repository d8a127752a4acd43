package store

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"safe/internal/crypto"
	"safe/internal/domain"
)

const (
	dirMode  os.FileMode = 0o700
	fileMode os.FileMode = 0o600
)

// FileStore persists entries in a single flat file.
type FileStore struct {
	path string
	log  *slog.Logger
	mu   sync.Mutex
}

// NewFileStore returns a FileStore backed by the file at path.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{path: path, log: logger.With("safe", path)}
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string { return s.path }

// Exists reports whether the backing file is present.
func (s *FileStore) Exists() (bool, error) {
	_, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat safe %s: %w", s.path, err)
	}
	return true, nil
}

// Initialize creates the parent directory and an empty store file when they
// are missing. Calling it on an existing store leaves its contents intact.
func (s *FileStore) Initialize() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := createFile(s.path, dirMode, fileMode)
	if err != nil {
		return false, err
	}
	if created {
		s.log.Debug("created safe")
	}
	return created, nil
}

// LoadAll reads and decodes every entry in the store.
func (s *FileStore) LoadAll() (domain.Entries, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := readFile(s.path)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(raw)

	entries, err := Decode(bytes.NewReader(raw), func(line int, _ string) {
		s.log.Warn("invalid line format, skipping", "line", line)
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("loaded safe", "entries", entries.Len())
	return entries, nil
}

// Append writes a new entry at the end of the store. It does not look for an
// existing entry with the same key; the later line wins on load.
func (s *FileStore) Append(key, password string) error {
	if err := ValidateEntry(key, password); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	line := []byte(EncodeLine(key, password))
	defer crypto.Wipe(line)

	if err := appendFile(s.path, line, fileMode); err != nil {
		return err
	}
	s.log.Debug("appended entry", "key", key)
	return nil
}

// Fingerprint returns a short digest of the store contents.
func (s *FileStore) Fingerprint() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := readFile(s.path)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(raw)
	return crypto.Fingerprint(raw), nil
}

// Compile-time assertion that FileStore implements domain.Store.
var _ domain.Store = (*FileStore)(nil)
