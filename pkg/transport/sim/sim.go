// Package sim provides an in-memory Hatch Rest that speaks the device
// protocol over the transport interfaces. It is used by restctl -simulate
// and by tests that need a device with real state.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/hatch-rest/restctl/pkg/protocol"
	"github.com/hatch-rest/restctl/pkg/transport"
)

// Config describes the simulated device.
type Config struct {
	// Name is the advertised local name.
	Name string

	// Address is the device address.
	Address string

	// TX and Feedback are the characteristic handles the device serves.
	TX       transport.Handle
	Feedback transport.Handle

	// Initial is the status at power-up.
	Initial protocol.Status

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// Device is a simulated peripheral. It implements transport.Adapter; each
// Connect returns a new link to the same device state.
type Device struct {
	mu sync.Mutex

	cfg    Config
	status protocol.Status
	link   *Link

	writes []protocol.Command
	reads  int
}

// New creates a simulated device.
func New(cfg Config) *Device {
	return &Device{cfg: cfg, status: cfg.Initial}
}

// Scan reports the simulated device.
func (d *Device) Scan(ctx context.Context) ([]transport.ScanResult, error) {
	return []transport.ScanResult{{
		Name:        d.cfg.Name,
		Address:     strings.ToUpper(d.cfg.Address),
		RSSI:        -50,
		Connectable: true,
	}}, nil
}

// Connect opens a link if address matches the device. The device only
// accepts random address type, like the real hardware.
func (d *Device) Connect(ctx context.Context, address string, addrType transport.AddressType) (transport.Session, error) {
	if !strings.EqualFold(address, d.cfg.Address) {
		return nil, fmt.Errorf("no peripheral at %s", address)
	}
	if addrType != transport.AddressRandom {
		return nil, fmt.Errorf("peripheral %s rejected %s address type", address, addrType)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.link != nil && d.link.connected {
		return nil, fmt.Errorf("peripheral %s already connected", address)
	}
	d.link = &Link{dev: d, connected: true}
	if d.cfg.Logger != nil {
		d.cfg.Logger.Debug("[SIM] link up", "address", address)
	}
	return d.link, nil
}

// Status returns the current simulated state.
func (d *Device) Status() protocol.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// SetStatus replaces the simulated state, as if changed by the device's own
// buttons or another client.
func (d *Device) SetStatus(s protocol.Status) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = s
}

// Writes returns every command received so far.
func (d *Device) Writes() []protocol.Command {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]protocol.Command(nil), d.writes...)
}

// Reads returns the number of FEEDBACK reads served.
func (d *Device) Reads() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reads
}

// Drop tears down the current link as if the device went out of range.
func (d *Device) Drop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.link != nil {
		d.link.connected = false
	}
}

// apply executes a command against the state. Called with d.mu held.
func (d *Device) apply(cmd protocol.Command) error {
	op, args, err := protocol.ParseCommand(cmd)
	if err != nil {
		return err
	}

	switch op {
	case protocol.OpPower:
		d.status.Power = args[0] != 0
	case protocol.OpSound:
		d.status.Sound = protocol.SoundMode(args[0])
	case protocol.OpVolume:
		d.status.Volume = args[0]
	case protocol.OpColor:
		d.status.Color = protocol.Color{Red: args[0], Green: args[1], Blue: args[2]}
		d.status.Brightness = args[3]
	}

	if d.cfg.Logger != nil {
		d.cfg.Logger.Debug("[SIM] applied", "command", string(cmd), "status", d.status.String())
	}
	return nil
}

// Link is an open session to a simulated Device.
type Link struct {
	dev       *Device
	connected bool
}

// ReadCharacteristic serves the FEEDBACK packet.
func (l *Link) ReadCharacteristic(h transport.Handle) ([]byte, error) {
	d := l.dev
	d.mu.Lock()
	defer d.mu.Unlock()

	if !l.connected {
		return nil, transport.ErrSessionClosed
	}
	if h != d.cfg.Feedback {
		return nil, fmt.Errorf("%w: %s is not readable", transport.ErrUnknownHandle, h)
	}
	d.reads++
	return protocol.EncodeStatus(d.status), nil
}

// WriteCharacteristic accepts commands on TX.
func (l *Link) WriteCharacteristic(h transport.Handle, data []byte) error {
	d := l.dev
	d.mu.Lock()
	defer d.mu.Unlock()

	if !l.connected {
		return transport.ErrSessionClosed
	}
	if h != d.cfg.TX {
		return fmt.Errorf("%w: %s is not writable", transport.ErrUnknownHandle, h)
	}

	cmd := protocol.Command(data)
	d.writes = append(d.writes, cmd)
	// The real device silently ignores malformed commands.
	_ = d.apply(cmd)
	return nil
}

// Disconnect closes the link.
func (l *Link) Disconnect() error {
	d := l.dev
	d.mu.Lock()
	defer d.mu.Unlock()

	if !l.connected {
		return transport.ErrSessionClosed
	}
	l.connected = false
	return nil
}

// IsConnected reports whether the link is up.
func (l *Link) IsConnected() bool {
	l.dev.mu.Lock()
	defer l.dev.mu.Unlock()
	return l.connected
}

// Compile-time interface satisfaction checks.
var (
	_ transport.Adapter = (*Device)(nil)
	_ transport.Session = (*Link)(nil)
)
