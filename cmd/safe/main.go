// Command safe stores key/password pairs in a local file and copies a
// password to the clipboard after an interactive key search.
package main

import (
	"os"

	"safe/cmd/safe/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
