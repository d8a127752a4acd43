package commands

import (
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "init",
		Short:       "Create the safe file if it does not exist",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipEnsure: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := appCtx.Store.Initialize()
			if err != nil {
				return err
			}
			if !created {
				appCtx.Console.Info("Safe already exists at %s", appCtx.Store.Path())
				return nil
			}
			appCtx.Console.Success("Your safe has been initialized at %s", appCtx.Store.Path())
			return nil
		},
	}
}
