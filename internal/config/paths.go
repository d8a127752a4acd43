package config

import (
	"os"
	"path/filepath"
)

// DefaultStorePath is where the safe file lives when nothing overrides it.
const DefaultStorePath = "./.safe/.main.safe"

// Dir returns the configuration directory path (~/.config/safe).
// It can be overridden with the SAFE_CONFIG_DIR environment variable.
func Dir() string {
	if d := os.Getenv("SAFE_CONFIG_DIR"); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "safe")
	}
	return filepath.Join(home, ".config", "safe")
}

// ConfigFile returns the path to the config.yaml file.
func ConfigFile() string {
	return filepath.Join(Dir(), "config.yaml")
}
