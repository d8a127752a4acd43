// Package app wires application dependencies for the CLI.
//
// It builds the logger, the console, the file store, the clipboard and the
// search engine from Config, exposing them via App for commands to use.
package app
