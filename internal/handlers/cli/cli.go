package cli

import (
	"context"
	"os"

	"github.com/gabapcia/suiwatch/internal/checkpointtail"
	"github.com/gabapcia/suiwatch/internal/trackedaddr"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the suiwatch CLI application.
//
// Running the binary without a command tails the chain. The remaining commands are:
//
//   - `track`: Adds an address to the tracked set.
//   - `untrack`: Removes an address from the tracked set.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - ts: The checkpointtail service run by the default action.
//   - ta: The trackedaddr service used by the address commands.
//   - network: Network used when the address commands are given no --network flag.
func Run(ctx context.Context, ts checkpointtail.Service, ta trackedaddr.Service, network string) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "suiwatch",
		Description:           "Tails recent Sui checkpoints and prints every balance change.",
		Usage:                 "suiwatch [command] [flags]",
		Action:                tailAction(ts),
		Commands: []*cli.Command{
			startTrackingAddressCommand(ta, network),
			stopTrackingAddressCommand(ta, network),
		},
	}

	return app.Run(ctx, os.Args)
}
