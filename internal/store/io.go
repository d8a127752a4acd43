package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// readFile reads the file at path into b; a missing file is reported as
// os.ErrNotExist so callers can tell it apart from an empty store.
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read safe %s: %w", path, err)
	}
	return b, nil
}

// appendFile appends b to path, creating the file when missing, and flushes
// it to disk before closing.
func appendFile(path string, b []byte, mode os.FileMode) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		return fmt.Errorf("open safe %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close safe %s: %w", path, cerr)
		}
	}()

	if _, err := f.Write(b); err != nil {
		return fmt.Errorf("write safe %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync safe %s: %w", path, err)
	}
	return nil
}

// createFile ensures the parent directory of path exists and creates an empty
// file when none is present. An existing file is left untouched.
func createFile(path string, dirMode, mode os.FileMode) (bool, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return false, fmt.Errorf("create safe directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, mode)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create safe %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("create safe %s: %w", path, err)
	}
	return true, nil
}
