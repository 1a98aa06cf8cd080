// Package commands implements the CLI commands for postpub.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/postpub/internal/adapters/detector"
	"go.trai.ch/postpub/internal/app"
	"go.trai.ch/postpub/internal/build"
	"go.trai.ch/postpub/internal/core/ports"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for postpub.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Render(ctx context.Context, slugs []string, opts app.RenderOptions) error
	Serve(ctx context.Context, opts app.ServeOptions) error
	List(ctx context.Context) ([]app.PostSummary, error)
	Clean(ctx context.Context, opts app.CleanOptions) error
}

type jsonSetter interface {
	SetJSON(enable bool)
}

type verboseSetter interface {
	SetVerbose(enable bool)
}

// New creates a new CLI instance with the given app. The logger, when it supports it, is
// switched to JSON or verbose output by the global flags.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "postpub",
		Short:         "Build and preview embeddable news posts",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("dir", "C", "", "Run as if started in this project directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every compiled bundle and request")
	rootCmd.PersistentFlags().String("log-format", "auto", "Log format: auto, pretty, or json")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRunE = c.setup

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		if err := os.Chdir(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "cannot enter project directory"), "dir", dir)
		}
	}

	format, _ := cmd.Flags().GetString("log-format")
	if l, ok := c.logger.(jsonSetter); ok {
		resolved := detector.ResolveFormat(detector.DetectEnvironment(), format)
		l.SetJSON(resolved == detector.FormatJSON)
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	if l, ok := c.logger.(verboseSetter); ok {
		l.SetVerbose(verbose)
	}
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
