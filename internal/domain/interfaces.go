package domain

// Store persists entries in the flat safe file.
type Store interface {
	// Path returns the location of the backing file.
	Path() string
	Exists() (bool, error)
	// Initialize creates the store and its parent directory when missing.
	Initialize() (created bool, err error)
	LoadAll() (Entries, error)
	Append(key, password string) error
	// Fingerprint returns a short digest of the stored bytes.
	Fingerprint() (string, error)
}

// Clipboard hands a value to the operating system clipboard.
type Clipboard interface {
	Copy(text string) error
}
