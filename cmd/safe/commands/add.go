package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"safe/internal/crypto"
	"safe/internal/store"
)

const addUsage = "safe add <key> <password>"

// add <key> <password>: append a new entry to the safe.
func addCmd() *cobra.Command {
	var prompt bool

	cmd := &cobra.Command{
		Use:   "add <key> [password]",
		Short: "Append a key/password pair",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key, password string
			if len(args) > 0 {
				key = strings.TrimSpace(args[0])
			}
			if len(args) > 1 {
				password = args[1]
			}

			if prompt && password == "" && key != "" {
				var err error
				if password, err = readPassword(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			if err := store.ValidateEntry(key, password); err != nil {
				return fmt.Errorf("%w (usage: %s)", err, addUsage)
			}

			entries, err := appCtx.Store.LoadAll()
			if err != nil {
				return err
			}
			if _, exists := entries.Lookup(key); exists {
				appCtx.Console.Warn("Key '%s' already exists; the new password takes precedence.", key)
			}

			appCtx.Console.Info("Adding key: %s", key)
			if err := appCtx.Store.Append(key, password); err != nil {
				return err
			}
			appCtx.Console.Success("Key '%s' has been added to your safe.", key)
			return nil
		},
	}
	cmd.Flags().BoolVar(&prompt, "prompt", false, "read the password from the terminal without echo")
	return cmd
}

// readPassword reads one password line, without echo when in is a terminal.
func readPassword(in io.Reader) (string, error) {
	appCtx.Console.InfoInline("Password: ")

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		appCtx.Console.Info("")
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		defer crypto.Wipe(b)
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
