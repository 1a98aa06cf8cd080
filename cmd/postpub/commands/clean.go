package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/postpub/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove compiled bundles and their records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			return c.app.Clean(cmd.Context(), app.CleanOptions{All: all})
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Also remove the .postpub state directory")

	return cmd
}
