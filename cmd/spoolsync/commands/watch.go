package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep running and update filament configs when Spoolman changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := options(cmd)
			opts.DeleteAll, _ = cmd.Flags().GetBool("delete-all")
			return c.app.Watch(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolP("delete-all", "D", false, "Delete all filament configs before adding existing ones")
	return cmd
}
