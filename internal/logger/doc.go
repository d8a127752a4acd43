// Package logger builds the slog loggers and the colored console printer
// used by the safe CLI.
//
// Diagnostics (malformed store lines, debug traces) go through *slog.Logger
// to stderr. Messages addressed to the user (prompts, listings, results) go
// through Console, which keeps the info/warn/error/success palette.
package logger
