package device

import (
	"errors"
	"fmt"

	"github.com/hatch-rest/restctl/pkg/protocol"
)

// Session errors.
var (
	// ErrInvalidArgument indicates bad caller input.
	ErrInvalidArgument = protocol.ErrInvalidArgument

	// ErrDeviceNotFound indicates no scanned peripheral matched the requested name.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrNotConnected indicates the operation requires a connected session.
	ErrNotConnected = errors.New("not connected")

	// ErrAlreadyConnected indicates Connect was called on a session that is
	// connecting or connected.
	ErrAlreadyConnected = errors.New("already connected")

	// ErrProtocol indicates a malformed status packet.
	ErrProtocol = protocol.ErrProtocol

	// ErrTransport indicates a failure reported by the BLE transport.
	ErrTransport = errors.New("transport error")
)

// TransportError wraps a failure from the transport boundary.
type TransportError struct {
	// Op is the operation that failed (scan, connect, read, write, disconnect).
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
