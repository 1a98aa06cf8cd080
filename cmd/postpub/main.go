// Package main is the entry point for postpub.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/postpub/cmd/postpub/commands"
	"go.trai.ch/postpub/internal/app"
	"go.trai.ch/postpub/internal/core/domain"
	_ "go.trai.ch/postpub/internal/wiring"
	"go.uber.org/automaxprocs/maxprocs"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	// Set only fails on an invalid GOMAXPROCS, which the runtime then ignores as well.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))

	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Logger)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// Each failed post was logged as it failed.
		if errors.Is(err, domain.ErrRenderFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
