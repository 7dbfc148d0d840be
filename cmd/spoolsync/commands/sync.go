package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch the inventory once and write the filament configs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := options(cmd)
			opts.DeleteAll, _ = cmd.Flags().GetBool("delete-all")
			return c.app.SyncOnce(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolP("delete-all", "D", false, "Delete all filament configs before adding existing ones")
	return cmd
}
