// Package sui provides an implementation of the checkpointtail.CheckpointSource
// interface backed by the Sui GraphQL service.
package sui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/suiwatch/internal/checkpointtail"
	"github.com/gabapcia/suiwatch/internal/pkg/transport/graphql"
)

const (
	// MainnetEndpoint is the public Sui GraphQL endpoint for mainnet.
	MainnetEndpoint = "https://sui-mainnet.mystenlabs.com/graphql"

	// TestnetEndpoint is the public Sui GraphQL endpoint for testnet.
	TestnetEndpoint = "https://sui-testnet.mystenlabs.com/graphql"

	// ShowUsageHeader asks the service to report query cost in the response extensions.
	ShowUsageHeader = "x-sui-rpc-show-usage"

	defaultPageSize    = 1
	defaultAnchorDepth = 10
)

// ErrUnknownNetwork is returned by Endpoint for networks without a public endpoint.
var ErrUnknownNetwork = errors.New("unknown sui network")

// Endpoint returns the public GraphQL endpoint of the given network.
func Endpoint(network string) (string, error) {
	switch network {
	case "mainnet":
		return MainnetEndpoint, nil
	case "testnet":
		return TestnetEndpoint, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownNetwork, network)
	}
}

// client implements the checkpointtail.CheckpointSource interface for Sui.
// It talks to a GraphQL endpoint through conn.
type client struct {
	conn graphql.Client // underlying GraphQL connection

	discoveryQuery string // query locating the start of the recent checkpoint window
	pageQuery      string // query reading the checkpoints after a cursor
}

// Ensure client implements the checkpointtail.CheckpointSource interface at compile time.
var _ checkpointtail.CheckpointSource = (*client)(nil)

// query runs q and maps rejected requests to checkpointtail.ErrRequestRejected.
func (c *client) query(ctx context.Context, q string, variables map[string]any) (json.RawMessage, error) {
	data, err := c.conn.Query(ctx, q, variables)
	if err != nil {
		if errors.Is(err, graphql.ErrRequestRejected) {
			return nil, fmt.Errorf("%w: %w", checkpointtail.ErrRequestRejected, err)
		}

		return nil, err
	}

	return data, nil
}

type config struct {
	pageSize    int
	anchorDepth int
}

// Option configures the Sui client.
type Option func(*config)

// NewClient creates a Sui checkpoint source using the provided GraphQL connection.
//
// By default each page holds one checkpoint and discovery anchors ten
// checkpoints behind the tip.
func NewClient(conn graphql.Client, opts ...Option) *client {
	cfg := config{
		pageSize:    defaultPageSize,
		anchorDepth: defaultAnchorDepth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn:           conn,
		discoveryQuery: discoveryQuery(cfg.anchorDepth),
		pageQuery:      pageQuery(cfg.pageSize),
	}
}

// WithPageSize sets how many checkpoints each forward page asks for.
func WithPageSize(n int) Option {
	return func(c *config) {
		c.pageSize = n
	}
}

// WithAnchorDepth sets how many checkpoints behind the tip discovery starts.
func WithAnchorDepth(n int) Option {
	return func(c *config) {
		c.anchorDepth = n
	}
}
