// Package main is the entry point for pkgsweep.
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
	"go.trai.ch/pkgsweep/cmd/pkgsweep/commands"
	"go.trai.ch/pkgsweep/internal/app"
	"go.trai.ch/pkgsweep/internal/core/domain"
	_ "go.trai.ch/pkgsweep/internal/wiring"
)

// Exit codes.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitInvalidConfig = 2
	ExitNotADirectory = 3
	ExitIOFailure     = 4
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
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
		return ExitFailure
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitFailure
		}
		components.Logger.Error(err)
		return exitCode(err)
	}
	return ExitOK
}

// exitCode maps an error to the exit status of its class.
func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidConfig):
		return ExitInvalidConfig
	case errors.Is(err, domain.ErrNotADirectory):
		return ExitNotADirectory
	case errors.Is(err, domain.ErrScanFailed), errors.Is(err, domain.ErrRemovalFailed):
		return ExitIOFailure
	default:
		return ExitFailure
	}
}
