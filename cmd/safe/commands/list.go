package commands

import (
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := appCtx.Store.LoadAll()
			if err != nil {
				return err
			}
			if entries.Len() == 0 {
				appCtx.Console.Warn("Your safe is empty.")
				return nil
			}
			appCtx.Console.Info("Available keys:")
			appCtx.Console.List(entries.Keys())
			return nil
		},
	}
}
