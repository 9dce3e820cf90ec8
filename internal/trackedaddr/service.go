// Package trackedaddr manages the set of addresses whose balance changes are
// reported when the tail runs with an address filter.
package trackedaddr

import (
	"context"
	"errors"
)

// ErrStorageNotConfigured is returned when no storage backend was provided.
var ErrStorageNotConfigured = errors.New("tracked address storage not configured")

// Service registers and unregisters tracked addresses.
//
// Implementations validate input and delegate persistence to the configured
// AddressStorage.
type Service interface {
	// StartTracking adds address to the tracked set of network.
	StartTracking(ctx context.Context, network, address string) error

	// StopTracking removes address from the tracked set of network.
	StopTracking(ctx context.Context, network, address string) error
}

// service is the concrete implementation of the Service interface.
type service struct {
	addressStorage AddressStorage
}

var _ Service = (*service)(nil)

// New creates a new instance of the trackedaddr service using the provided
// AddressStorage. A nil storage yields a service whose every call fails with
// ErrStorageNotConfigured.
func New(as AddressStorage) *service {
	return &service{
		addressStorage: as,
	}
}
