// Package config loads safe's YAML configuration and resolves where the
// store and the config file live.
//
// Values are layered: built-in defaults, then the config file, then the
// SAFE_* environment variables. Command-line flags are applied on top by the
// CLI.
package config
