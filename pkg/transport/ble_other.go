//go:build !linux

package transport

import (
	"context"
	"log/slog"
)

// BLEAdapter is unavailable on this platform; every operation fails with
// ErrUnsupportedPlatform.
type BLEAdapter struct{}

// NewBLEAdapter returns ErrUnsupportedPlatform.
func NewBLEAdapter(logger *slog.Logger) (*BLEAdapter, error) {
	return nil, ErrUnsupportedPlatform
}

// Close is a no-op.
func (a *BLEAdapter) Close() error { return nil }

// Scan returns ErrUnsupportedPlatform.
func (a *BLEAdapter) Scan(ctx context.Context) ([]ScanResult, error) {
	return nil, ErrUnsupportedPlatform
}

// Connect returns ErrUnsupportedPlatform.
func (a *BLEAdapter) Connect(ctx context.Context, address string, addrType AddressType) (Session, error) {
	return nil, ErrUnsupportedPlatform
}

var _ Adapter = (*BLEAdapter)(nil)
