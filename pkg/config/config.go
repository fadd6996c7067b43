// Package config loads restctl configuration files.
//
// A configuration file is YAML with three sections:
//
//	device:
//	  address: "F3:53:11:AA:BB:CC"
//	  name: ""
//	  address_prefix: "F3:53:11"
//	ble:
//	  tx_characteristic: "02240002-5efd-47eb-9c1a-de53f7a2b232"
//	  feedback_characteristic: "02260002-5efd-47eb-9c1a-de53f7a2b232"
//	  address_type: random
//	  scan_timeout: 5s
//	  settle_delay: 250ms
//	logging:
//	  level: info
//	  protocol_log: ""
//
// Missing keys keep their defaults. Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hatch-rest/restctl/pkg/device"
	"github.com/hatch-rest/restctl/pkg/log"
	"github.com/hatch-rest/restctl/pkg/transport"
)

// ErrInvalidConfig indicates a configuration value failed validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the restctl configuration.
type Config struct {
	Device  DeviceConfig  `yaml:"device"`
	BLE     BLEConfig     `yaml:"ble"`
	Logging LoggingConfig `yaml:"logging"`
}

// DeviceConfig selects the device. At most one of Address and Name may be
// set; with neither, the first peripheral matching AddressPrefix is used.
type DeviceConfig struct {
	Address       string `yaml:"address"`
	Name          string `yaml:"name"`
	AddressPrefix string `yaml:"address_prefix"`
}

// BLEConfig holds transport parameters.
type BLEConfig struct {
	TXCharacteristic       string        `yaml:"tx_characteristic"`
	FeedbackCharacteristic string        `yaml:"feedback_characteristic"`
	AddressType            string        `yaml:"address_type"`
	ScanTimeout            time.Duration `yaml:"scan_timeout"`
	SettleDelay            time.Duration `yaml:"settle_delay"`
}

// LoggingConfig holds logging parameters.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// ProtocolLog is a path for the CBOR protocol capture. Empty disables it.
	ProtocolLog string `yaml:"protocol_log"`
}

// Default returns the configuration for a Hatch Rest with no device selected.
func Default() Config {
	return Config{
		Device: DeviceConfig{
			AddressPrefix: device.DefaultAddressPrefix,
		},
		BLE: BLEConfig{
			TXCharacteristic:       string(device.DefaultTXHandle),
			FeedbackCharacteristic: string(device.DefaultFeedbackHandle),
			AddressType:            transport.AddressRandom.String(),
			ScanTimeout:            device.DefaultScanTimeout,
			SettleDelay:            device.DefaultSettleDelay,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	var errs []error

	if c.Device.Address != "" && c.Device.Name != "" {
		errs = append(errs, errors.New("device.address and device.name are mutually exclusive"))
	}
	if _, err := uuid.Parse(c.BLE.TXCharacteristic); err != nil {
		errs = append(errs, fmt.Errorf("ble.tx_characteristic %q: %v", c.BLE.TXCharacteristic, err))
	}
	if _, err := uuid.Parse(c.BLE.FeedbackCharacteristic); err != nil {
		errs = append(errs, fmt.Errorf("ble.feedback_characteristic %q: %v", c.BLE.FeedbackCharacteristic, err))
	}
	if _, err := transport.ParseAddressType(c.BLE.AddressType); err != nil {
		errs = append(errs, fmt.Errorf("ble.address_type: %v", err))
	}
	if c.BLE.ScanTimeout <= 0 {
		errs = append(errs, fmt.Errorf("ble.scan_timeout %s must be positive", c.BLE.ScanTimeout))
	}
	if c.BLE.SettleDelay < 0 {
		errs = append(errs, fmt.Errorf("ble.settle_delay %s is negative", c.BLE.SettleDelay))
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %v", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Target returns the explicitly configured device, if any.
func (c Config) Target() (device.Target, bool) {
	t := device.Target{Address: c.Device.Address, Name: c.Device.Name}
	return t, t.Address != "" || t.Name != ""
}

// SessionConfig builds the device session configuration. Call Validate first.
func (c Config) SessionConfig(logger *slog.Logger, protocolLogger log.Logger) device.Config {
	addrType, _ := transport.ParseAddressType(c.BLE.AddressType)
	return device.Config{
		TX:             transport.Handle(strings.ToLower(c.BLE.TXCharacteristic)),
		Feedback:       transport.Handle(strings.ToLower(c.BLE.FeedbackCharacteristic)),
		AddressType:    addrType,
		SettleDelay:    c.BLE.SettleDelay,
		ScanTimeout:    c.BLE.ScanTimeout,
		Logger:         logger,
		ProtocolLogger: protocolLogger,
	}
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown level %q", s)
	}
}
