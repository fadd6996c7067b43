package device

import (
	"log/slog"
	"time"

	"github.com/hatch-rest/restctl/pkg/log"
	"github.com/hatch-rest/restctl/pkg/transport"
)

// Device defaults.
const (
	// DefaultTXHandle is the characteristic commands are written to.
	DefaultTXHandle transport.Handle = "02240002-5efd-47eb-9c1a-de53f7a2b232"

	// DefaultFeedbackHandle is the characteristic status packets are read from.
	DefaultFeedbackHandle transport.Handle = "02260002-5efd-47eb-9c1a-de53f7a2b232"

	// DefaultSettleDelay is how long the device needs before FEEDBACK
	// reflects a command.
	DefaultSettleDelay = 250 * time.Millisecond

	// DefaultScanTimeout bounds name resolution scans.
	DefaultScanTimeout = 5 * time.Second

	// DefaultAddressPrefix is the address prefix Hatch Rest units advertise with.
	DefaultAddressPrefix = "F3:53:11"
)

// Config configures a Session.
type Config struct {
	// TX is the command characteristic.
	TX transport.Handle

	// Feedback is the status characteristic.
	Feedback transport.Handle

	// AddressType is used when opening the link. The Hatch Rest only accepts
	// random.
	AddressType transport.AddressType

	// SettleDelay is the wait between a command write and the confirming read.
	SettleDelay time.Duration

	// ScanTimeout bounds the scan used to resolve a name. Zero means the
	// caller's context alone bounds it.
	ScanTimeout time.Duration

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// ProtocolLogger receives protocol capture events. If nil, capture is disabled.
	ProtocolLogger log.Logger
}

// DefaultConfig returns a Config for the Hatch Rest.
func DefaultConfig() Config {
	return Config{
		TX:          DefaultTXHandle,
		Feedback:    DefaultFeedbackHandle,
		AddressType: transport.AddressRandom,
		SettleDelay: DefaultSettleDelay,
		ScanTimeout: DefaultScanTimeout,
	}
}
