package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/suiwatch/internal/checkpointtail"

	"github.com/urfave/cli/v3"
)

// tailAction returns the default action, which runs the tail until it finishes
// or the process receives SIGINT or SIGTERM.
//
// Usage example:
//
//	suiwatch
func tailAction(ts checkpointtail.Service) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		return ts.Run(ctx)
	}
}
