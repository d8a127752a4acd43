package commands

import (
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X safe/cmd/safe/commands.version=...".
var version = "dev"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipEnsure: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Console.Info("safe %s", version)
			return nil
		},
	}
}
