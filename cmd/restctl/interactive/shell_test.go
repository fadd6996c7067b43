package interactive

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hatch-rest/restctl/pkg/device"
	"github.com/hatch-rest/restctl/pkg/protocol"
	"github.com/hatch-rest/restctl/pkg/transport/sim"
)

const simAddress = "F3:53:11:00:00:01"

func newTestShell(t *testing.T) (*Shell, *sim.Device, *bytes.Buffer) {
	t.Helper()
	dev := sim.New(sim.Config{
		Name:     "Hatch Rest",
		Address:  simAddress,
		TX:       device.DefaultTXHandle,
		Feedback: device.DefaultFeedbackHandle,
		Initial:  protocol.Status{Brightness: 50, Power: true},
	})

	cfg := device.DefaultConfig()
	cfg.SettleDelay = 0
	session := device.NewSession(dev, cfg)
	target := device.Target{Address: simAddress}
	if err := session.Connect(context.Background(), target); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	var out bytes.Buffer
	sh := &Shell{
		session: session,
		reconnect: func(ctx context.Context) error {
			return session.Connect(ctx, target)
		},
		out: &out,
	}
	return sh, dev, &out
}

func TestShellDispatch(t *testing.T) {
	sh, dev, out := newTestShell(t)
	ctx := context.Background()

	if sh.handle(ctx, "  ") {
		t.Fatal("blank line quit the shell")
	}
	if sh.handle(ctx, "volume 40") {
		t.Fatal("volume quit the shell")
	}
	if got := dev.Writes(); len(got) != 1 || got[0] != "SV28" {
		t.Errorf("writes = %v", got)
	}
	if !strings.Contains(out.String(), "Volume:     40") {
		t.Errorf("unexpected output: %s", out.String())
	}

	out.Reset()
	sh.handle(ctx, "jump")
	if !strings.Contains(out.String(), "Unknown command: jump") {
		t.Errorf("unexpected output: %s", out.String())
	}

	out.Reset()
	sh.handle(ctx, "volume 999")
	if !strings.Contains(out.String(), "Error:") {
		t.Errorf("unexpected output: %s", out.String())
	}

	for _, q := range []string{"quit", "EXIT", "q"} {
		if !sh.handle(ctx, q) {
			t.Errorf("%s did not quit", q)
		}
	}
}

func TestShellInfoAndReconnect(t *testing.T) {
	sh, dev, out := newTestShell(t)
	ctx := context.Background()

	sh.handle(ctx, "info")
	if !strings.Contains(out.String(), "State:   CONNECTED") || !strings.Contains(out.String(), simAddress) {
		t.Errorf("unexpected info: %s", out.String())
	}

	out.Reset()
	sh.handle(ctx, "reconnect")
	if !strings.Contains(out.String(), "Already connected") {
		t.Errorf("unexpected output: %s", out.String())
	}

	dev.Drop()
	out.Reset()
	sh.handle(ctx, "status")
	if sh.session.State() != device.StateDisconnected {
		t.Fatalf("state = %s after link drop", sh.session.State())
	}

	out.Reset()
	sh.handle(ctx, "on")
	if !strings.Contains(out.String(), "Not connected") {
		t.Errorf("unexpected output: %s", out.String())
	}

	out.Reset()
	sh.handle(ctx, "reconnect")
	if !strings.Contains(out.String(), "Connected to "+simAddress) {
		t.Errorf("unexpected output: %s", out.String())
	}
	if !sh.session.Connected() {
		t.Error("session not connected after reconnect")
	}
}

func TestShellReconnectFailure(t *testing.T) {
	sh, _, out := newTestShell(t)
	ctx := context.Background()

	if err := sh.session.Disconnect(); err != nil {
		t.Fatalf("Disconnect() error = %v", err)
	}
	sh.reconnect = func(context.Context) error { return errors.New("out of range") }

	sh.handle(ctx, "reconnect")
	if !strings.Contains(out.String(), "Reconnect failed: out of range") {
		t.Errorf("unexpected output: %s", out.String())
	}

	out.Reset()
	sh.reconnect = nil
	sh.handle(ctx, "reconnect")
	if !strings.Contains(out.String(), "Reconnect not available") {
		t.Errorf("unexpected output: %s", out.String())
	}
}
