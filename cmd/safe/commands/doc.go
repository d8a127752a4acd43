// Package commands defines the safe CLI and wires dependencies for subcommands.
//
// Commands
//
//   - search [pattern]      Find a key by regular expression and copy its password
//   - add <key> <password>  Append a new entry
//   - list                  Print the stored keys
//   - init                  Create the safe file if it is missing
//   - fingerprint           Print a short digest of the safe file
//   - version               Print the version
//
// Running safe with no command, or with a bare pattern, searches.
//
// # Implementation
//
// The root command loads the config file, applies environment and flag
// overrides, and builds the app context before any subcommand runs. Unless
// a command opts out, the safe file is created on first use at that point.
// Every failure makes the process exit with status 1; a cancelled retrieval
// does so without printing an error.
package commands
