// Command restctl controls a Hatch Rest sound machine over Bluetooth LE.
//
// Usage:
//
//	restctl [flags] <command> [args]
//
// Flags:
//
//	-config string        Configuration file path (YAML)
//	-address string       Device address (skips the scan)
//	-name string          Advertised device name to scan for
//	-log-level string     Log level: debug, info, warn, error
//	-protocol-log string  Write a CBOR protocol capture to this file
//	-simulate             Use an in-memory simulated device
//	-attempts int         Connect attempts before giving up (default 3)
//
// Commands:
//
//	scan                  List nearby peripherals
//	status                Show the device status
//	on | off              Switch the device on or off
//	sound <name|code>     Select a sound
//	volume <0-255>        Set the volume
//	color <r> <g> <b>     Set the color, keeping brightness
//	brightness <0-255>    Set the brightness, keeping color
//	interactive           Open a command prompt on one connection
//	log [flags] <file>    View a protocol capture
//
// Without -address or -name (or their config equivalents) restctl connects
// to the first peripheral whose address starts with device.address_prefix.
//
// Examples:
//
//	# Find the device
//	restctl scan
//
//	# Turn on ocean sounds at half volume
//	restctl -name "Hatch Rest" on
//	restctl -name "Hatch Rest" sound ocean
//	restctl -name "Hatch Rest" volume 128
//
//	# Try the commands without hardware and capture the traffic
//	restctl -simulate -protocol-log rest.hlog interactive
//	restctl log -category command rest.hlog
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/hatch-rest/restctl/cmd/restctl/commands"
	"github.com/hatch-rest/restctl/cmd/restctl/interactive"
	"github.com/hatch-rest/restctl/pkg/config"
	"github.com/hatch-rest/restctl/pkg/connection"
	"github.com/hatch-rest/restctl/pkg/device"
	"github.com/hatch-rest/restctl/pkg/log"
	"github.com/hatch-rest/restctl/pkg/protocol"
	"github.com/hatch-rest/restctl/pkg/transport"
	"github.com/hatch-rest/restctl/pkg/transport/sim"
)

// Options holds the command-line flags.
type Options struct {
	ConfigFile  string
	Address     string
	Name        string
	LogLevel    string
	ProtocolLog string
	Simulate    bool
	Attempts    int
}

const usage = `restctl - Hatch Rest control

Usage:
  restctl [flags] <command> [args]

Commands:
    scan                    List nearby peripherals
%s
    interactive             Open a command prompt on one connection
    log [flags] <file>      View a protocol capture

Flags:
`

// Simulated device identity used by -simulate.
const (
	simName    = "Hatch Rest"
	simAddress = "F3:53:11:5A:1D:00"
)

var opts Options

func init() {
	flag.StringVar(&opts.ConfigFile, "config", "", "Configuration file path (YAML)")
	flag.StringVar(&opts.Address, "address", "", "Device address (skips the scan)")
	flag.StringVar(&opts.Name, "name", "", "Advertised device name to scan for")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&opts.ProtocolLog, "protocol-log", "", "Write a CBOR protocol capture to this file")
	flag.BoolVar(&opts.Simulate, "simulate", false, "Use an in-memory simulated device")
	flag.IntVar(&opts.Attempts, "attempts", 3, "Connect attempts before giving up")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, usage, commands.Usage)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cmd := strings.ToLower(flag.Arg(0))
	args := flag.Args()[1:]

	if cmd == "log" {
		if err := runLog(os.Stdout, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cmd, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, commands.ErrUsage) || errors.Is(err, commands.ErrUnknownCommand) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cmd string, args []string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	level, _ := config.ParseLevel(cfg.Logging.Level)
	logOut := &switchWriter{w: os.Stderr}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	protocolLogger, closeCapture, err := openCapture(cfg, logger, level)
	if err != nil {
		return err
	}
	defer closeCapture()

	adapter, closeAdapter, err := openAdapter(cfg, logger, opts.Simulate)
	if err != nil {
		return err
	}
	defer closeAdapter()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cmd == "scan" {
		return runScan(ctx, os.Stdout, adapter, cfg)
	}

	target, err := resolveTarget(ctx, adapter, cfg, logger)
	if err != nil {
		return err
	}

	session := device.NewSession(adapter, cfg.SessionConfig(logger, protocolLogger))
	connect := func(ctx context.Context) error {
		return connectWithRetry(ctx, session, target, opts.Attempts, logger)
	}
	if err := connect(ctx); err != nil {
		return err
	}
	defer func() {
		if session.State() == device.StateConnected {
			if err := session.Disconnect(); err != nil {
				logger.Warn("disconnect failed", "error", err)
			}
		}
	}()
	logger.Info("connected", "address", session.Address(), "session_id", session.SessionID())

	if cmd == "interactive" {
		return runInteractive(ctx, session, connect, logOut)
	}
	return commands.Execute(session, os.Stdout, cmd, args)
}

func loadConfig(o Options) (config.Config, error) {
	cfg := config.Default()
	if o.ConfigFile != "" {
		loaded, err := config.Load(o.ConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	// A device flag replaces the configured device selection entirely.
	if o.Address != "" || o.Name != "" {
		cfg.Device.Address = o.Address
		cfg.Device.Name = o.Name
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	if o.ProtocolLog != "" {
		cfg.Logging.ProtocolLog = o.ProtocolLog
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openCapture builds the protocol logger: a capture file if configured, and
// slog output at debug level.
func openCapture(cfg config.Config, logger *slog.Logger, level slog.Level) (log.Logger, func(), error) {
	var (
		fileLogger *log.FileLogger
		slogSink   log.Logger
	)

	if cfg.Logging.ProtocolLog != "" {
		fl, err := log.NewFileLogger(cfg.Logging.ProtocolLog)
		if err != nil {
			return nil, nil, fmt.Errorf("open protocol log: %w", err)
		}
		fileLogger = fl
		logger.Info("protocol capture enabled", "path", fl.Path())
	}
	if level <= slog.LevelDebug {
		slogSink = log.NewSlogAdapter(logger)
	}

	closeFn := func() {
		if fileLogger != nil {
			if err := fileLogger.Close(); err != nil {
				logger.Warn("closing protocol log", "error", err)
			}
		}
	}

	switch {
	case fileLogger != nil && slogSink != nil:
		return log.NewMultiLogger(fileLogger, slogSink), closeFn, nil
	case fileLogger != nil:
		return fileLogger, closeFn, nil
	case slogSink != nil:
		return slogSink, closeFn, nil
	default:
		return nil, closeFn, nil
	}
}

func openAdapter(cfg config.Config, logger *slog.Logger, simulate bool) (transport.Adapter, func(), error) {
	if simulate {
		sc := cfg.SessionConfig(nil, nil)
		dev := sim.New(sim.Config{
			Name:     simName,
			Address:  simAddress,
			TX:       sc.TX,
			Feedback: sc.Feedback,
			Initial: protocol.Status{
				Color:      protocol.Color{Red: 0xFF, Green: 0x80, Blue: 0x20},
				Brightness: 0x40,
				Sound:      protocol.SoundOcean,
				Volume:     0x30,
			},
			Logger: logger,
		})
		logger.Info("using simulated device", "name", simName, "address", simAddress)
		return dev, func() {}, nil
	}

	a, err := transport.NewBLEAdapter(logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open BLE adapter: %w", err)
	}
	return a, func() {
		if err := a.Close(); err != nil {
			logger.Warn("closing BLE adapter", "error", err)
		}
	}, nil
}

func runScan(ctx context.Context, w io.Writer, adapter transport.Adapter, cfg config.Config) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.BLE.ScanTimeout)
	defer cancel()

	results, err := adapter.Scan(ctx)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "No peripherals found")
		return nil
	}

	prefix := strings.ToUpper(cfg.Device.AddressPrefix)
	fmt.Fprintf(w, "Found %d peripheral(s):\n", len(results))
	for _, r := range results {
		mark := " "
		if prefix != "" && strings.HasPrefix(strings.ToUpper(r.Address), prefix) {
			mark = "*"
		}
		name := r.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(w, " %s %s  %4d dBm  %s\n", mark, r.Address, r.RSSI, name)
	}
	return nil
}

// resolveTarget returns the configured target, or scans for the vendor
// address prefix when none is configured.
func resolveTarget(ctx context.Context, adapter transport.Adapter, cfg config.Config, logger *slog.Logger) (device.Target, error) {
	if t, ok := cfg.Target(); ok {
		return t, nil
	}
	if cfg.Device.AddressPrefix == "" {
		return device.Target{}, errors.New("no device selected (set -address, -name or device.address_prefix)")
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.BLE.ScanTimeout)
	defer cancel()

	results, err := adapter.Scan(ctx)
	if err != nil {
		return device.Target{}, fmt.Errorf("scan: %w", err)
	}
	r, ok := device.FindByAddressPrefix(results, cfg.Device.AddressPrefix)
	if !ok {
		return device.Target{}, fmt.Errorf("%w: no peripheral with address prefix %s", device.ErrDeviceNotFound, cfg.Device.AddressPrefix)
	}
	logger.Info("found device by address prefix", "address", r.Address, "name", r.Name)
	return device.Target{Address: r.Address}, nil
}

func connectWithRetry(ctx context.Context, session *device.Session, target device.Target, attempts int, logger *slog.Logger) error {
	return connection.Retry(ctx, attempts, connection.NewBackoff(),
		func(ctx context.Context) error {
			return session.Connect(ctx, target)
		},
		func(attempt int, delay time.Duration, err error) {
			logger.Warn("connect failed, retrying", "target", target.String(),
				"attempt", attempt, "delay", delay, "error", err)
		})
}

func runInteractive(ctx context.Context, session *device.Session, reconnect interactive.ReconnectFunc, logOut *switchWriter) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sh, err := interactive.New(session, reconnect)
	if err != nil {
		return err
	}
	// Route log output through readline to avoid interfering with input.
	logOut.Set(sh.Stderr())
	defer logOut.Set(os.Stderr)

	sh.Run(ctx, cancel)
	return nil
}

func runLog(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("log", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `restctl log - View a protocol capture

Usage:
  restctl log [flags] <file>

Flags:
`)
		fs.PrintDefaults()
	}

	session := fs.String("session", "", "Filter by session ID")
	address := fs.String("address", "", "Filter by device address")
	direction := fs.String("direction", "", "Filter by direction (in, out, none)")
	layer := fs.String("layer", "", "Filter by layer (transport, protocol, session)")
	category := fs.String("category", "", "Filter by category (command, status, state, error)")
	since := fs.String("since", "", "Only events at or after this RFC 3339 time")
	until := fs.String("until", "", "Only events before this RFC 3339 time")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("%w: log [flags] <file>", commands.ErrUsage)
	}

	filter := log.Filter{SessionID: *session, Address: *address}
	if *direction != "" {
		d, err := commands.ParseDirection(*direction)
		if err != nil {
			return err
		}
		filter.Direction = &d
	}
	if *layer != "" {
		l, err := commands.ParseLayer(*layer)
		if err != nil {
			return err
		}
		filter.Layer = &l
	}
	if *category != "" {
		c, err := commands.ParseCategory(*category)
		if err != nil {
			return err
		}
		filter.Category = &c
	}
	if *since != "" {
		t, err := commands.ParseTime(*since)
		if err != nil {
			return err
		}
		filter.TimeStart = &t
	}
	if *until != "" {
		t, err := commands.ParseTime(*until)
		if err != nil {
			return err
		}
		filter.TimeEnd = &t
	}

	n, err := commands.View(w, fs.Arg(0), commands.ViewOptions{Filter: filter})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d event(s)\n", n)
	return nil
}

// switchWriter lets log output move to the readline prompt once it exists.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *switchWriter) Set(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}
