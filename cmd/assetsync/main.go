// Package main is the entry point for the assetsync tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetsync/cmd/assetsync/commands"
	"go.trai.ch/assetsync/internal/app"
	"go.trai.ch/assetsync/internal/core/domain"
	_ "go.trai.ch/assetsync/internal/wiring"
)

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = components.Telemetry.Close() }()

	// Apply options
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	if lg, ok := components.Logger.(jsonLogger); ok {
		cli.SetLogFormatHook(lg.SetJSON)
	}

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// The compiler already printed its diagnostics.
		if errors.Is(err, domain.ErrCompilerFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
