package commands

import (
	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print a short digest of the safe file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := appCtx.Store.Fingerprint()
			if err != nil {
				return err
			}
			appCtx.Console.Info("Fingerprint: %s", fp)
			return nil
		},
	}
	return cmd
}
