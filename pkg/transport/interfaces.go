package transport

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Transport errors.
var (
	// ErrUnsupportedPlatform indicates no BLE stack is available on this OS.
	ErrUnsupportedPlatform = errors.New("BLE not supported on this platform")

	// ErrUnknownHandle indicates the peripheral has no characteristic for a handle.
	ErrUnknownHandle = errors.New("unknown characteristic handle")

	// ErrSessionClosed indicates the session was already disconnected.
	ErrSessionClosed = errors.New("session closed")
)

// Handle identifies a GATT characteristic. It holds the characteristic UUID.
type Handle string

// AddressType is the BLE device address type used when connecting.
type AddressType uint8

const (
	// AddressPublic is an IEEE-assigned public address.
	AddressPublic AddressType = iota

	// AddressRandom is a random (static or private) address.
	AddressRandom
)

// String returns the address type name.
func (t AddressType) String() string {
	switch t {
	case AddressPublic:
		return "public"
	case AddressRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParseAddressType parses "public" or "random".
func ParseAddressType(s string) (AddressType, error) {
	switch strings.ToLower(s) {
	case "public":
		return AddressPublic, nil
	case "random":
		return AddressRandom, nil
	default:
		return 0, fmt.Errorf("invalid address type %q (want public or random)", s)
	}
}

// ScanResult is a peripheral seen during a scan.
type ScanResult struct {
	// Name is the advertised local name (may be empty).
	Name string

	// Address is the device address in upper-case colon notation.
	Address string

	// RSSI is the last received signal strength.
	RSSI int

	// Connectable reports whether any advertisement was connectable.
	Connectable bool
}

// Adapter discovers peripherals and opens sessions to them.
type Adapter interface {
	// Scan reports the peripherals seen until ctx is done. A deadline
	// ending the scan is not an error.
	Scan(ctx context.Context) ([]ScanResult, error)

	// Connect opens a GATT session to the peripheral at address.
	Connect(ctx context.Context, address string, addrType AddressType) (Session, error)
}

// Session is an open GATT link to one peripheral.
// Implementations need not be safe for concurrent use.
type Session interface {
	// ReadCharacteristic returns the current value of a characteristic.
	ReadCharacteristic(h Handle) ([]byte, error)

	// WriteCharacteristic writes a characteristic value and waits for the
	// write response.
	WriteCharacteristic(h Handle, data []byte) error

	// Disconnect closes the link.
	Disconnect() error

	// IsConnected reports whether the link is still up.
	IsConnected() bool
}
