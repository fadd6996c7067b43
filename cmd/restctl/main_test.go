package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hatch-rest/restctl/pkg/config"
	"github.com/hatch-rest/restctl/pkg/device"
	"github.com/hatch-rest/restctl/pkg/log"
	"github.com/hatch-rest/restctl/pkg/transport"
	"github.com/hatch-rest/restctl/pkg/transport/mocks"
)

var discard = slog.New(slog.DiscardHandler)

func TestLoadConfigFlagOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("device:\n  name: Nursery\nlogging:\n  level: warn\n"), 0o600))

	cfg, err := loadConfig(Options{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "Nursery", cfg.Device.Name)
	assert.Equal(t, "warn", cfg.Logging.Level)

	cfg, err = loadConfig(Options{ConfigFile: path, Address: "F3:53:11:00:00:01", LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "F3:53:11:00:00:01", cfg.Device.Address)
	assert.Empty(t, cfg.Device.Name, "address flag replaces configured name")
	assert.Equal(t, "debug", cfg.Logging.Level)

	_, err = loadConfig(Options{Address: "F3:53:11:00:00:01", Name: "Nursery"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestResolveTarget(t *testing.T) {
	ctx := context.Background()

	t.Run("configured", func(t *testing.T) {
		adapter := mocks.NewMockAdapter(t)
		cfg := config.Default()
		cfg.Device.Name = "Nursery"

		target, err := resolveTarget(ctx, adapter, cfg, discard)
		require.NoError(t, err)
		assert.Equal(t, device.Target{Name: "Nursery"}, target)
	})

	t.Run("address prefix", func(t *testing.T) {
		adapter := mocks.NewMockAdapter(t)
		adapter.EXPECT().Scan(mock.Anything).Return([]transport.ScanResult{
			{Address: "11:22:33:44:55:66"},
			{Address: "F3:53:11:01:02:03", Name: "Hatch Rest"},
		}, nil)

		target, err := resolveTarget(ctx, adapter, config.Default(), discard)
		require.NoError(t, err)
		assert.Equal(t, device.Target{Address: "F3:53:11:01:02:03"}, target)
	})

	t.Run("no match", func(t *testing.T) {
		adapter := mocks.NewMockAdapter(t)
		adapter.EXPECT().Scan(mock.Anything).Return(nil, nil)

		_, err := resolveTarget(ctx, adapter, config.Default(), discard)
		assert.ErrorIs(t, err, device.ErrDeviceNotFound)
	})

	t.Run("no prefix", func(t *testing.T) {
		adapter := mocks.NewMockAdapter(t)
		cfg := config.Default()
		cfg.Device.AddressPrefix = ""

		_, err := resolveTarget(ctx, adapter, cfg, discard)
		assert.Error(t, err)
	})
}

func TestRunScan(t *testing.T) {
	adapter := mocks.NewMockAdapter(t)
	adapter.EXPECT().Scan(mock.Anything).Return([]transport.ScanResult{
		{Address: "F3:53:11:01:02:03", Name: "Hatch Rest", RSSI: -61},
		{Address: "11:22:33:44:55:66", RSSI: -80},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, runScan(context.Background(), &buf, adapter, config.Default()))

	out := buf.String()
	assert.Contains(t, out, "Found 2 peripheral(s)")
	assert.Contains(t, out, "* F3:53:11:01:02:03   -61 dBm  Hatch Rest")
	assert.Contains(t, out, "  11:22:33:44:55:66   -80 dBm  (unnamed)")
}

func TestConnectWithRetry(t *testing.T) {
	adapter := mocks.NewMockAdapter(t)
	adapter.EXPECT().Connect(mock.Anything, "F3:53:11:01:02:03", transport.AddressRandom).
		Return(nil, errors.New("no response")).Times(2)

	s := device.NewSession(adapter, device.DefaultConfig())
	err := connectWithRetry(context.Background(), s, device.Target{Address: "F3:53:11:01:02:03"}, 2, discard)
	assert.ErrorIs(t, err, device.ErrTransport)
}

func TestSimulatedSessionWithCapture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rest.hlog")
	cfg := config.Default()
	cfg.Logging.ProtocolLog = path
	cfg.BLE.SettleDelay = 0

	plog, closeCapture, err := openCapture(cfg, discard, slog.LevelInfo)
	require.NoError(t, err)

	adapter, closeAdapter, err := openAdapter(cfg, discard, true)
	require.NoError(t, err)
	defer closeAdapter()

	target, err := resolveTarget(context.Background(), adapter, cfg, discard)
	require.NoError(t, err)
	assert.Equal(t, simAddress, target.Address)

	s := device.NewSession(adapter, cfg.SessionConfig(discard, plog))
	require.NoError(t, connectWithRetry(context.Background(), s, target, 1, discard))
	_, err = s.PowerOn()
	require.NoError(t, err)
	require.NoError(t, s.Disconnect())
	closeCapture()

	var buf bytes.Buffer
	require.NoError(t, runLog(&buf, []string{"-category", "command", path}))
	assert.Contains(t, buf.String(), "Command: SI01")
	assert.Contains(t, buf.String(), "1 event(s)")

	buf.Reset()
	require.NoError(t, runLog(&buf, []string{"-layer", "session", "-until", time.Now().Add(time.Hour).Format(time.RFC3339), path}))
	assert.Equal(t, 3, strings.Count(buf.String(), "SESSION State"))

	_, err = s.Refresh()
	assert.ErrorIs(t, err, device.ErrNotConnected)
}

func TestOpenCaptureSinks(t *testing.T) {
	cfg := config.Default()

	plog, closeFn, err := openCapture(cfg, discard, slog.LevelInfo)
	require.NoError(t, err)
	assert.Nil(t, plog)
	closeFn()

	plog, closeFn, err = openCapture(cfg, discard, slog.LevelDebug)
	require.NoError(t, err)
	assert.IsType(t, &log.SlogAdapter{}, plog)
	closeFn()

	cfg.Logging.ProtocolLog = filepath.Join(t.TempDir(), "x.hlog")
	plog, closeFn, err = openCapture(cfg, discard, slog.LevelDebug)
	require.NoError(t, err)
	assert.IsType(t, &log.MultiLogger{}, plog)
	closeFn()
}

func TestRunLogUsage(t *testing.T) {
	var buf bytes.Buffer
	err := runLog(&buf, nil)
	assert.Error(t, err)

	err = runLog(&buf, []string{"-direction", "sideways", "x.hlog"})
	assert.Error(t, err)
}
