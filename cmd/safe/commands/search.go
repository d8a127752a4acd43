package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"safe/internal/search"
)

// search [pattern]: resolve a key and copy its password to the clipboard.
func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [pattern]",
		Short: "Search keys by regular expression and copy the password",
		Long: "Search keys by regular expression. When several keys match, you are asked\n" +
			"for a more specific pattern; a key equal to the pattern wins outright.\n" +
			"Without a pattern every key matches.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args)
		},
	}
}

func runSearch(args []string) error {
	var pattern string
	if len(args) > 0 {
		pattern = args[0]
	}

	entries, err := appCtx.Store.LoadAll()
	if err != nil {
		return err
	}

	_, err = appCtx.Search.Retrieve(entries, pattern)
	if errors.Is(err, search.ErrEmptyStore) {
		return fmt.Errorf("%w; add an entry with: safe add <key> <password>", err)
	}
	return err
}
