package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/postpub/internal/app"
)

// DefaultAddr is where the preview server listens without --addr.
const DefaultAddr = "localhost:8000"

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the preview server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			target, _ := cmd.Flags().GetString("target")
			compile, _ := cmd.Flags().GetBool("compile")
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Serve(cmd.Context(), app.ServeOptions{
				Addr:    addr,
				Target:  target,
				Compile: compile,
				Watch:   watch,
			})
		},
	}
	cmd.Flags().String("addr", DefaultAddr, "Address to listen on")
	cmd.Flags().StringP("target", "t", "", "Deployment target: development, staging, or production")
	cmd.Flags().Bool("compile", false, "Serve compiled bundles instead of source files")
	cmd.Flags().BoolP("watch", "w", false, "Recompile bundles when sources change")
	return cmd
}
