package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/suiwatch/internal/balancesink"
	"github.com/gabapcia/suiwatch/internal/trackedaddr"

	"github.com/redis/go-redis/v9"
)

// trackedAddrPrefix is the key namespace of tracked address sets.
const trackedAddrPrefix = "trackedaddr"

// trackedAddrKey returns the key of the tracked set of a network.
//
// Format: "trackedaddr:storage:{network}"
func trackedAddrKey(network string) string {
	return fmt.Sprintf("%s:storage:%s", trackedAddrPrefix, network)
}

// RegisterAddress implements the trackedaddr.AddressStorage interface with SADD.
func (c *client) RegisterAddress(ctx context.Context, id trackedaddr.TrackedAddress) error {
	return c.conn.SAdd(ctx, trackedAddrKey(id.Network), id.Address).Err()
}

// UnregisterAddress implements the trackedaddr.AddressStorage interface with SREM.
func (c *client) UnregisterAddress(ctx context.Context, id trackedaddr.TrackedAddress) error {
	return c.conn.SRem(ctx, trackedAddrKey(id.Network), id.Address).Err()
}

// FilterTracked implements the balancesink.AddressFilter interface.
//
// The set size and the membership of every address are read in one pipelined
// round trip. An empty set tracks everything, so addresses are returned as is.
func (c *client) FilterTracked(ctx context.Context, network string, addresses []string) ([]string, error) {
	if len(addresses) == 0 {
		return addresses, nil
	}

	key := trackedAddrKey(network)

	// SMIsMember takes members as []any; stored addresses are canonical
	members := make([]any, len(addresses))
	for i, addr := range addresses {
		members[i] = trackedaddr.NormalizeAddress(addr)
	}

	var (
		card     *redis.IntCmd
		isMember *redis.BoolSliceCmd
	)
	_, err := c.conn.Pipelined(ctx, func(p redis.Pipeliner) error {
		card = p.SCard(ctx, key)
		isMember = p.SMIsMember(ctx, key, members...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if card.Val() == 0 {
		return addresses, nil
	}

	matched := make([]string, 0, len(addresses))
	for i, ok := range isMember.Val() {
		if ok {
			matched = append(matched, addresses[i])
		}
	}

	return matched, nil
}

var (
	_ trackedaddr.AddressStorage = (*client)(nil)
	_ balancesink.AddressFilter  = (*client)(nil)
)
