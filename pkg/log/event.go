package log

import "time"

// Event is a protocol log event. CBOR encoding uses integer keys.
type Event struct {
	// Timestamp when the event occurred.
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies one connect..disconnect span (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates data flow relative to this host.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Address is the device address.
	Address string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Command     *CommandEvent     `cbor:"10,keyasint,omitempty"`
	Status      *StatusEvent      `cbor:"11,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"13,keyasint,omitempty"`
}

// Direction indicates the direction of data flow.
type Direction uint8

const (
	// DirectionIn indicates data read from the device.
	DirectionIn Direction = 0
	// DirectionOut indicates data written to the device.
	DirectionOut Direction = 1
	// DirectionNone is used for local events such as state changes.
	DirectionNone Direction = 2
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	case DirectionNone:
		return "-"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which layer captured the event.
type Layer uint8

const (
	// LayerTransport is raw characteristic I/O.
	LayerTransport Layer = 0
	// LayerProtocol is decoded status packets.
	LayerProtocol Layer = 1
	// LayerSession is the device session state machine.
	LayerSession Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerProtocol:
		return "PROTOCOL"
	case LayerSession:
		return "SESSION"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryCommand indicates a command written to TX.
	CategoryCommand Category = 0
	// CategoryStatus indicates a FEEDBACK read.
	CategoryStatus Category = 1
	// CategoryState indicates a state change.
	CategoryState Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCommand:
		return "COMMAND"
	case CategoryStatus:
		return "STATUS"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// CommandEvent captures a command written to the TX characteristic.
type CommandEvent struct {
	// Handle is the characteristic written.
	Handle string `cbor:"1,keyasint"`

	// Opcode is the two-letter command prefix.
	Opcode string `cbor:"2,keyasint"`

	// Command is the full ASCII command.
	Command string `cbor:"3,keyasint"`
}

// StatusEvent captures a FEEDBACK read and its decoded fields.
type StatusEvent struct {
	// Handle is the characteristic read.
	Handle string `cbor:"1,keyasint"`

	// Raw is the packet as received.
	Raw []byte `cbor:"2,keyasint"`

	// Decoded fields; absent when the packet was rejected.
	Decoded *DecodedStatus `cbor:"3,keyasint,omitempty"`
}

// DecodedStatus mirrors protocol.Status for capture files.
type DecodedStatus struct {
	Red        uint8  `cbor:"1,keyasint"`
	Green      uint8  `cbor:"2,keyasint"`
	Blue       uint8  `cbor:"3,keyasint"`
	Brightness uint8  `cbor:"4,keyasint"`
	Sound      uint8  `cbor:"5,keyasint"`
	SoundName  string `cbor:"6,keyasint,omitempty"`
	Volume     uint8  `cbor:"7,keyasint"`
	Power      bool   `cbor:"8,keyasint"`
}

// StateChangeEvent captures session lifecycle transitions.
type StateChangeEvent struct {
	// OldState is the previous state.
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
