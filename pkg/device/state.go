package device

// State is the session lifecycle state.
type State uint8

const (
	// StateDisconnected indicates no link is open.
	StateDisconnected State = iota

	// StateConnecting indicates Connect is resolving or opening the link.
	StateConnecting

	// StateConnected indicates an open link. Connect enters it before the
	// initial status read and leaves it again if that read fails.
	StateConnected
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "DISCONNECTED"
	case StateConnecting:
		return "CONNECTING"
	case StateConnected:
		return "CONNECTED"
	default:
		return "UNKNOWN"
	}
}
