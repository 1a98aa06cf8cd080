package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/postpub/internal/app"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [slugs...]",
		Short: "Render posts to www/index.html",
		Long: "Render writes the page of each named post, or of every post when none is named,\n" +
			"to its www/index.html with scripts and stylesheets compiled into timestamped bundles.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _ := cmd.Flags().GetString("target")
			absolute, _ := cmd.Flags().GetBool("absolute")
			dev, _ := cmd.Flags().GetBool("dev")

			return c.app.Render(cmd.Context(), args, app.RenderOptions{
				Target:   target,
				Absolute: absolute,
				Dev:      dev,
			})
		},
	}
	cmd.Flags().StringP("target", "t", "", "Deployment target: development, staging, or production")
	cmd.Flags().BoolP("absolute", "a", false, "Reference assets by their CDN URL")
	cmd.Flags().Bool("dev", false, "Reference source files instead of compiled bundles")
	return cmd
}
