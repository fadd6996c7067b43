package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hatch-rest/restctl/pkg/log"
	"github.com/hatch-rest/restctl/pkg/protocol"
)

// ViewOptions selects which capture events to print.
type ViewOptions struct {
	Filter log.Filter
}

// ParseDirection parses in, out or none.
func ParseDirection(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	case "none", "-":
		return log.DirectionNone, nil
	default:
		return 0, fmt.Errorf("invalid direction %q (use: in, out, none)", s)
	}
}

// ParseLayer parses transport, protocol or session.
func ParseLayer(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "transport":
		return log.LayerTransport, nil
	case "protocol":
		return log.LayerProtocol, nil
	case "session":
		return log.LayerSession, nil
	default:
		return 0, fmt.Errorf("invalid layer %q (use: transport, protocol, session)", s)
	}
}

// ParseCategory parses command, status, state or error.
func ParseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "command":
		return log.CategoryCommand, nil
	case "status":
		return log.CategoryStatus, nil
	case "state":
		return log.CategoryState, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category %q (use: command, status, state, error)", s)
	}
}

// View prints every matching event in the capture file at path.
// It returns the number of events printed.
func View(w io.Writer, path string, opts ViewOptions) (int, error) {
	r, err := log.NewFilteredReader(path, opts.Filter)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	n := 0
	for {
		event, err := r.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("read event %d: %w", n+1, err)
		}
		FormatEvent(w, event)
		n++
	}
}

// FormatEvent writes a human-readable representation of event to w.
func FormatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")

	var label string
	switch {
	case event.Command != nil:
		label = protocol.Opcode(event.Command.Opcode).String()
	case event.Status != nil:
		label = "Status"
	case event.StateChange != nil:
		label = "State"
	case event.Error != nil:
		label = "Error"
	default:
		label = "Unknown"
	}

	fmt.Fprintf(w, "%s [session:%s] %-3s %s %s\n", ts, shortenSessionID(event.SessionID),
		event.Direction, event.Layer, label)
	if event.Address != "" {
		fmt.Fprintf(w, "  Address: %s\n", event.Address)
	}

	switch {
	case event.Command != nil:
		fmt.Fprintf(w, "  Handle: %s\n", event.Command.Handle)
		fmt.Fprintf(w, "  Command: %s\n", event.Command.Command)
		if _, args, err := protocol.ParseCommand(protocol.Command(event.Command.Command)); err == nil {
			fmt.Fprintf(w, "  Args: %v\n", args)
		}
	case event.Status != nil:
		fmt.Fprintf(w, "  Handle: %s\n", event.Status.Handle)
		fmt.Fprintf(w, "  Raw: %s\n", hex.EncodeToString(event.Status.Raw))
		if d := event.Status.Decoded; d != nil {
			power := "off"
			if d.Power {
				power = "on"
			}
			sound := d.SoundName
			if sound == "" {
				sound = protocol.SoundMode(d.Sound).String()
			}
			fmt.Fprintf(w, "  Decoded: power=%s color=#%02x%02x%02x brightness=%d sound=%s volume=%d\n",
				power, d.Red, d.Green, d.Blue, d.Brightness, sound, d.Volume)
		} else {
			fmt.Fprintln(w, "  Decoded: (rejected)")
		}
	case event.StateChange != nil:
		sc := event.StateChange
		fmt.Fprintf(w, "  %s -> %s", sc.OldState, sc.NewState)
		if sc.Reason != "" {
			fmt.Fprintf(w, " (%s)", sc.Reason)
		}
		fmt.Fprintln(w)
	case event.Error != nil:
		fmt.Fprintf(w, "  Layer: %s\n", event.Error.Layer)
		fmt.Fprintf(w, "  Message: %s\n", event.Error.Message)
		if event.Error.Context != "" {
			fmt.Fprintf(w, "  Context: %s\n", event.Error.Context)
		}
	}

	fmt.Fprintln(w)
}

// ParseTime accepts RFC 3339 timestamps.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (use RFC 3339): %w", s, err)
	}
	return t, nil
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
