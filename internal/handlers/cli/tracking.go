package cli

import (
	"context"

	"github.com/gabapcia/suiwatch/internal/trackedaddr"

	"github.com/urfave/cli/v3"
)

// startTrackingAddressCommand returns a CLI command that adds an address to the
// tracked set of a network.
//
// Usage example:
//
//	suiwatch track --network mainnet --address 0xABC123...
func startTrackingAddressCommand(ta trackedaddr.Service, network string) *cli.Command {
	return &cli.Command{
		Name:        "track",
		Description: "Add an address to the set whose balance changes are reported.",
		Usage:       "Starts tracking an address. Must provide an address.",
		Flags:       addressFlags(network, "Address to start tracking"),
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				network = c.String("network")
				address = c.String("address")
			)

			return ta.StartTracking(ctx, network, address)
		},
	}
}

// stopTrackingAddressCommand returns a CLI command that removes an address from
// the tracked set of a network.
//
// Usage example:
//
//	suiwatch untrack --network mainnet --address 0xABC123...
func stopTrackingAddressCommand(ta trackedaddr.Service, network string) *cli.Command {
	return &cli.Command{
		Name:        "untrack",
		Description: "Remove an address from the set whose balance changes are reported.",
		Usage:       "Stops tracking an address. Must provide an address.",
		Flags:       addressFlags(network, "Address to stop tracking"),
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				network = c.String("network")
				address = c.String("address")
			)

			return ta.StopTracking(ctx, network, address)
		},
	}
}

func addressFlags(network, addressUsage string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "network",
			Usage: "Sui network name (mainnet or testnet)",
			Value: network,
		},
		&cli.StringFlag{
			Name:     "address",
			Usage:    addressUsage,
			Required: true,
		},
	}
}
