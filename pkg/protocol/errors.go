package protocol

import (
	"errors"
	"fmt"
)

// Protocol errors.
var (
	// ErrInvalidArgument indicates a caller supplied a value the wire format
	// cannot carry.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrProtocol indicates a status packet or command that does not match
	// the expected layout.
	ErrProtocol = errors.New("protocol error")
)

// ArgumentError reports a command argument outside the single-byte range.
type ArgumentError struct {
	Name  string
	Value int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %s out of range: %d (want 0-255)", e.Name, e.Value)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// DecodeError reports why a status packet was rejected.
// Either Length is set (packet too short) or Marker names the section marker
// that did not match.
type DecodeError struct {
	// Length is the received packet length when the packet is too short.
	Length int

	// Marker is the section whose marker byte mismatched ("color", "audio", "power").
	Marker string

	// Offset of the marker byte.
	Offset int

	// Want is the expected marker value, Got the received one.
	Want byte
	Got  byte
}

func (e *DecodeError) Error() string {
	if e.Marker == "" {
		return fmt.Sprintf("status packet too short: %d bytes (want at least %d)", e.Length, StatusPacketSize)
	}
	return fmt.Sprintf("status packet %s marker mismatch at offset %d: got 0x%02x, want 0x%02x",
		e.Marker, e.Offset, e.Got, e.Want)
}

// Is reports whether target is ErrProtocol.
func (e *DecodeError) Is(target error) bool {
	return target == ErrProtocol
}
