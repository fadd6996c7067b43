package protocol

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Opcode is the two-letter command prefix.
type Opcode string

// Command opcodes.
const (
	// OpPower switches the device on (01) or off (00).
	OpPower Opcode = "SI"
	// OpSound selects the sound mode.
	OpSound Opcode = "SN"
	// OpVolume sets the volume.
	OpVolume Opcode = "SV"
	// OpColor sets red, green, blue and brightness.
	OpColor Opcode = "SC"
)

// argCount is the number of single-byte arguments each opcode takes.
var argCount = map[Opcode]int{
	OpPower:  1,
	OpSound:  1,
	OpVolume: 1,
	OpColor:  4,
}

// String returns a readable opcode name.
func (o Opcode) String() string {
	switch o {
	case OpPower:
		return "POWER"
	case OpSound:
		return "SOUND"
	case OpVolume:
		return "VOLUME"
	case OpColor:
		return "COLOR"
	default:
		return "UNKNOWN(" + string(o) + ")"
	}
}

// Command is an ASCII command string written to the TX characteristic.
type Command string

// Bytes returns the command as written on the wire.
func (c Command) Bytes() []byte {
	return []byte(c)
}

// Opcode returns the command's two-letter prefix, or "" if it is too short.
func (c Command) Opcode() Opcode {
	if len(c) < 2 {
		return ""
	}
	return Opcode(c[:2])
}

type arg struct {
	name  string
	value int
}

func encode(op Opcode, args ...arg) (Command, error) {
	var b strings.Builder
	b.Grow(2 + 2*len(args))
	b.WriteString(string(op))
	for _, a := range args {
		if a.value < 0 || a.value > 0xFF {
			return "", &ArgumentError{Name: a.name, Value: a.value}
		}
		fmt.Fprintf(&b, "%02x", a.value)
	}
	return Command(b.String()), nil
}

// PowerCommand returns SI01 for on and SI00 for off.
func PowerCommand(on bool) Command {
	v := 0
	if on {
		v = 1
	}
	cmd, _ := encode(OpPower, arg{"power", v})
	return cmd
}

// SoundCommand returns the SN command for a sound code.
func SoundCommand(code int) (Command, error) {
	return encode(OpSound, arg{"sound", code})
}

// VolumeCommand returns the SV command for a volume level.
// The full byte range is accepted; the device clamps as it sees fit.
func VolumeCommand(level int) (Command, error) {
	return encode(OpVolume, arg{"volume", level})
}

// ColorCommand returns the SC command. Brightness is part of the color
// command, so callers changing only one of them must pass the current value
// of the other.
func ColorCommand(red, green, blue, brightness int) (Command, error) {
	return encode(OpColor,
		arg{"red", red},
		arg{"green", green},
		arg{"blue", blue},
		arg{"brightness", brightness},
	)
}

// ParseCommand splits a command into its opcode and argument bytes.
// It rejects unknown opcodes, non-hex arguments and wrong argument counts.
func ParseCommand(c Command) (Opcode, []byte, error) {
	op := c.Opcode()
	n, ok := argCount[op]
	if !ok {
		return "", nil, fmt.Errorf("%w: unknown opcode %q", ErrProtocol, string(c))
	}

	raw := string(c[2:])
	if len(raw) != 2*n {
		return "", nil, fmt.Errorf("%w: %s takes %d argument bytes, got %q", ErrProtocol, op, n, raw)
	}
	args, err := hex.DecodeString(raw)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s arguments: %v", ErrProtocol, op, err)
	}
	return op, args, nil
}
