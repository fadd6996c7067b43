//go:build linux

package transport

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/go-ble/ble"
	"github.com/go-ble/ble/linux"
	"github.com/go-ble/ble/linux/hci"
)

// BLEAdapter is an Adapter backed by the host HCI device.
type BLEAdapter struct {
	dev    ble.Device
	logger *slog.Logger
}

// NewBLEAdapter opens the default HCI device.
// If logger is nil, logging is disabled.
func NewBLEAdapter(logger *slog.Logger) (*BLEAdapter, error) {
	dev, err := linux.NewDevice()
	if err != nil {
		return nil, fmt.Errorf("open HCI device: %w", err)
	}
	return &BLEAdapter{dev: dev, logger: logger}, nil
}

// Close releases the HCI device.
func (a *BLEAdapter) Close() error {
	return a.dev.Stop()
}

// Scan collects advertisements until ctx is done.
func (a *BLEAdapter) Scan(ctx context.Context) ([]ScanResult, error) {
	var mu sync.Mutex
	seen := make(map[string]ScanResult)

	err := a.dev.Scan(ctx, false, func(adv ble.Advertisement) {
		addr := strings.ToUpper(adv.Addr().String())

		mu.Lock()
		defer mu.Unlock()

		r := seen[addr]
		r.Address = addr
		if name := adv.LocalName(); name != "" {
			r.Name = name
		}
		r.RSSI = adv.RSSI()
		r.Connectable = r.Connectable || adv.Connectable()
		seen[addr] = r
	})
	// The scan only returns once ctx is done; a deadline is the normal end.
	if err != nil && ctx.Err() != context.DeadlineExceeded {
		return nil, fmt.Errorf("scan: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	results := make([]ScanResult, 0, len(seen))
	for _, r := range seen {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Address < results[j].Address })

	if a.logger != nil {
		a.logger.Debug("scan complete", "peripherals", len(results))
	}
	return results, nil
}

// Connect dials the peripheral and discovers its GATT profile so that
// characteristics can be addressed by UUID.
func (a *BLEAdapter) Connect(ctx context.Context, address string, addrType AddressType) (Session, error) {
	addr := ble.NewAddr(address)
	if addrType == AddressRandom {
		addr = hci.RandomAddress{Addr: addr}
	}

	client, err := a.dev.Dial(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", address, err)
	}

	profile, err := client.DiscoverProfile(true)
	if err != nil {
		_ = client.CancelConnection()
		return nil, fmt.Errorf("discover profile of %s: %w", address, err)
	}

	if a.logger != nil {
		a.logger.Debug("connected", "address", address, "addressType", addrType.String(),
			"services", len(profile.Services))
	}
	return &bleSession{client: client, profile: profile}, nil
}

type bleSession struct {
	client  ble.Client
	profile *ble.Profile
}

func (s *bleSession) characteristic(h Handle) (*ble.Characteristic, error) {
	u, err := ble.Parse(string(h))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnknownHandle, h, err)
	}
	c := s.profile.FindCharacteristic(ble.NewCharacteristic(u))
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}
	return c, nil
}

func (s *bleSession) ReadCharacteristic(h Handle) ([]byte, error) {
	c, err := s.characteristic(h)
	if err != nil {
		return nil, err
	}
	return s.client.ReadCharacteristic(c)
}

func (s *bleSession) WriteCharacteristic(h Handle, data []byte) error {
	c, err := s.characteristic(h)
	if err != nil {
		return err
	}
	return s.client.WriteCharacteristic(c, data, false)
}

func (s *bleSession) Disconnect() error {
	return s.client.CancelConnection()
}

func (s *bleSession) IsConnected() bool {
	select {
	case <-s.client.Disconnected():
		return false
	default:
		return true
	}
}

// Compile-time interface satisfaction checks.
var (
	_ Adapter = (*BLEAdapter)(nil)
	_ Session = (*bleSession)(nil)
)
