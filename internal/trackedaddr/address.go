package trackedaddr

import (
	"context"
	"strings"

	"github.com/gabapcia/suiwatch/internal/pkg/validator"
)

// TrackedAddress identifies an address tracked on one network.
type TrackedAddress struct {
	Network string `validate:"required,oneof=mainnet testnet"` // Sui network
	Address string `validate:"required,suiaddress"`            // 0x-prefixed hex address
}

// AddressStorage persists tracked addresses.
type AddressStorage interface {
	// RegisterAddress adds id to the tracked set. Registering twice is not an error.
	RegisterAddress(ctx context.Context, id TrackedAddress) error

	// UnregisterAddress removes id from the tracked set. Removing an unknown
	// address is not an error.
	UnregisterAddress(ctx context.Context, id TrackedAddress) error
}

// addressDigits is the number of hex digits of a canonical address.
const addressDigits = 64

// NormalizeAddress returns address in the form the endpoint reports owners in:
// lower case, 0x prefixed and left-padded with zeros to 64 hex digits, so that
// "0x2" and "0x00...02" name the same account. Values that are not hex
// addresses are only lowercased.
func NormalizeAddress(address string) string {
	address = strings.ToLower(address)

	digits, ok := strings.CutPrefix(address, "0x")
	if !ok || digits == "" || len(digits) > addressDigits || strings.Trim(digits, "0123456789abcdef") != "" {
		return address
	}

	return "0x" + strings.Repeat("0", addressDigits-len(digits)) + digits
}

// buildTrackedAddress validates network and address and stores the address in
// its canonical form.
func buildTrackedAddress(network, address string) (TrackedAddress, error) {
	id := TrackedAddress{
		Network: network,
		Address: NormalizeAddress(address),
	}

	return id, validator.Validate(id)
}

// StartTracking implements the Service interface.
func (s *service) StartTracking(ctx context.Context, network, address string) error {
	if s.addressStorage == nil {
		return ErrStorageNotConfigured
	}

	id, err := buildTrackedAddress(network, address)
	if err != nil {
		return err
	}

	return s.addressStorage.RegisterAddress(ctx, id)
}

// StopTracking implements the Service interface.
func (s *service) StopTracking(ctx context.Context, network, address string) error {
	if s.addressStorage == nil {
		return ErrStorageNotConfigured
	}

	id, err := buildTrackedAddress(network, address)
	if err != nil {
		return err
	}

	return s.addressStorage.UnregisterAddress(ctx, id)
}
