// Package commands implements the restctl device and log commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hatch-rest/restctl/pkg/device"
	"github.com/hatch-rest/restctl/pkg/protocol"
)

// ErrUsage indicates a command was called with wrong arguments.
var ErrUsage = errors.New("usage")

// ErrUnknownCommand indicates the command name is not a device command.
var ErrUnknownCommand = errors.New("unknown command")

// Controller is the device surface the commands drive. *device.Session
// implements it.
type Controller interface {
	Refresh() (protocol.Status, error)
	PowerOn() (protocol.Status, error)
	PowerOff() (protocol.Status, error)
	SetSound(mode protocol.SoundMode) (protocol.Status, error)
	SetVolume(level int) (protocol.Status, error)
	SetColor(red, green, blue int) (protocol.Status, error)
	SetBrightness(brightness int) (protocol.Status, error)
}

var _ Controller = (*device.Session)(nil)

// Usage lists the device commands.
const Usage = `    status                  Read and show the device status
    on                      Switch the device on
    off                     Switch the device off
    sound <name|code>       Select a sound ("sound list" shows names)
    volume <0-255>          Set the volume
    color <r> <g> <b>       Set the color, keeping brightness
    brightness <0-255>      Set the brightness, keeping color`

// Execute runs one device command and prints the resulting status to w.
func Execute(c Controller, w io.Writer, name string, args []string) error {
	var (
		status protocol.Status
		err    error
	)

	switch strings.ToLower(name) {
	case "status":
		if err := wantArgs(name, args, 0, ""); err != nil {
			return err
		}
		status, err = c.Refresh()

	case "on":
		if err := wantArgs(name, args, 0, ""); err != nil {
			return err
		}
		status, err = c.PowerOn()

	case "off":
		if err := wantArgs(name, args, 0, ""); err != nil {
			return err
		}
		status, err = c.PowerOff()

	case "sound":
		if err := wantArgs(name, args, 1, "<name|code>"); err != nil {
			return err
		}
		if strings.EqualFold(args[0], "list") {
			printSoundModes(w)
			return nil
		}
		mode, perr := protocol.ParseSoundMode(args[0])
		if perr != nil {
			return perr
		}
		status, err = c.SetSound(mode)

	case "volume":
		if err := wantArgs(name, args, 1, "<0-255>"); err != nil {
			return err
		}
		level, perr := parseByte("volume", args[0])
		if perr != nil {
			return perr
		}
		status, err = c.SetVolume(level)

	case "color":
		if err := wantArgs(name, args, 3, "<r> <g> <b>"); err != nil {
			return err
		}
		var rgb [3]int
		for i, label := range []string{"red", "green", "blue"} {
			v, perr := parseByte(label, args[i])
			if perr != nil {
				return perr
			}
			rgb[i] = v
		}
		status, err = c.SetColor(rgb[0], rgb[1], rgb[2])

	case "brightness":
		if err := wantArgs(name, args, 1, "<0-255>"); err != nil {
			return err
		}
		level, perr := parseByte("brightness", args[0])
		if perr != nil {
			return perr
		}
		status, err = c.SetBrightness(level)

	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	if err != nil {
		return err
	}
	PrintStatus(w, status)
	return nil
}

// PrintStatus writes a multi-line status block.
func PrintStatus(w io.Writer, s protocol.Status) {
	power := "off"
	if s.Power {
		power = "on"
	}
	fmt.Fprintf(w, "Power:      %s\n", power)
	fmt.Fprintf(w, "Color:      %s\n", s.Color)
	fmt.Fprintf(w, "Brightness: %d\n", s.Brightness)
	fmt.Fprintf(w, "Sound:      %s\n", s.Sound)
	fmt.Fprintf(w, "Volume:     %d\n", s.Volume)
}

func printSoundModes(w io.Writer) {
	for _, m := range protocol.SoundModes() {
		fmt.Fprintf(w, "  %-9s %d\n", m, m.Code())
	}
}

func wantArgs(name string, args []string, n int, synopsis string) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s %s", ErrUsage, name, synopsis)
	}
	return nil
}

// parseByte parses a decimal or 0x-prefixed hex value. Range checks are left
// to the protocol encoders.
func parseByte(label, s string) (int, error) {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrUsage, label, s)
	}
	return int(v), nil
}
