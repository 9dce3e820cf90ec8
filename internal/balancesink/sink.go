// Package balancesink prints balance changes, optionally keeping only those of
// tracked addresses.
package balancesink

import (
	"context"
	"fmt"
	"io"

	"github.com/gabapcia/suiwatch/internal/checkpointtail"
	"github.com/gabapcia/suiwatch/internal/pkg/logger"
	"github.com/gabapcia/suiwatch/internal/pkg/types"
	"github.com/gabapcia/suiwatch/internal/trackedaddr"
)

// AddressFilter decides which addresses are tracked on a network.
type AddressFilter interface {
	// FilterTracked returns the subset of addresses that are tracked on network.
	// An implementation with nothing tracked returns every address unchanged.
	FilterTracked(ctx context.Context, network string, addresses []string) ([]string, error)
}

// staticFilter is an AddressFilter backed by a fixed set of addresses.
type staticFilter struct {
	tracked types.Set[string]
}

var _ AddressFilter = (*staticFilter)(nil)

// NewStaticFilter returns a filter tracking exactly addrs on every network.
// With no addresses it tracks everything. Addresses are compared in the
// canonical form of trackedaddr.NormalizeAddress.
func NewStaticFilter(addrs ...string) *staticFilter {
	tracked := types.NewSet[string]()
	for _, addr := range addrs {
		tracked.Add(trackedaddr.NormalizeAddress(addr))
	}

	return &staticFilter{tracked: tracked}
}

// FilterTracked implements the AddressFilter interface.
func (f *staticFilter) FilterTracked(_ context.Context, _ string, addresses []string) ([]string, error) {
	if len(f.tracked) == 0 {
		return addresses, nil
	}

	matched := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if f.tracked.Has(trackedaddr.NormalizeAddress(addr)) {
			matched = append(matched, addr)
		}
	}

	return matched, nil
}

// sink writes one line per balance change.
type sink struct {
	out     io.Writer
	network string
	filter  AddressFilter
}

var _ checkpointtail.Sink = (*sink)(nil)

// keepTracked drops the changes of untracked addresses, preserving order.
// When the filter cannot answer the batch is kept whole.
func (s *sink) keepTracked(ctx context.Context, batch []checkpointtail.BalanceChange) []checkpointtail.BalanceChange {
	if s.filter == nil || len(batch) == 0 {
		return batch
	}

	addresses := types.NewSet[string]()
	for _, bc := range batch {
		addresses.Add(bc.Address)
	}

	tracked, err := s.filter.FilterTracked(ctx, s.network, addresses.ToSlice())
	if err != nil {
		logger.Warn(ctx, "tracked address lookup failed, delivering batch unfiltered",
			"sink.network", s.network,
			"batch.size", len(batch),
			"error", err,
		)
		return batch
	}

	keep := types.NewSet(tracked...)
	filtered := make([]checkpointtail.BalanceChange, 0, len(batch))
	for _, bc := range batch {
		if keep.Has(bc.Address) {
			filtered = append(filtered, bc)
		}
	}

	return filtered
}

// Accept implements the checkpointtail.Sink interface.
func (s *sink) Accept(ctx context.Context, batch []checkpointtail.BalanceChange) {
	for _, bc := range s.keepTracked(ctx, batch) {
		if _, err := fmt.Fprintf(s.out, "transaction: address=%s, amount=%d\n", bc.Address, bc.Amount); err != nil {
			logger.Error(ctx, "failed to write balance change", "balance.address", bc.Address, "error", err)
			return
		}
	}
}

type config struct {
	network string
	filter  AddressFilter
}

// Option configures the sink.
type Option func(*config)

// New creates a sink writing to w. Without options every change is written.
func New(w io.Writer, opts ...Option) *sink {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &sink{
		out:     w,
		network: cfg.network,
		filter:  cfg.filter,
	}
}

// WithAddressFilter keeps only the changes whose address f reports as tracked on network.
func WithAddressFilter(network string, f AddressFilter) Option {
	return func(c *config) {
		c.network = network
		c.filter = f
	}
}
