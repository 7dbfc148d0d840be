package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install the starter templates for the configured slicer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Seed(cmd.Context(), options(cmd))
		},
	}
}
