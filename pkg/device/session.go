package device

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hatch-rest/restctl/pkg/log"
	"github.com/hatch-rest/restctl/pkg/protocol"
	"github.com/hatch-rest/restctl/pkg/transport"
)

// Session is a control session for one device.
type Session struct {
	// opMu serializes operations. It is held across transport I/O and the
	// settle delay.
	opMu sync.Mutex

	// mu guards the fields below so queries do not wait behind opMu.
	mu        sync.RWMutex
	state     State
	conn      transport.Session
	address   string
	sessionID string
	status    *protocol.Status

	adapter        transport.Adapter
	cfg            Config
	logger         *slog.Logger
	protocolLogger log.Logger
	onStateChange  func(oldState, newState State)

	// pending holds transitions recorded under opMu, guarded by mu. They are
	// delivered to onStateChange after opMu is released.
	pending []transition

	sleep func(time.Duration)
}

// NewSession creates a disconnected session that opens links through adapter.
func NewSession(adapter transport.Adapter, cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var protocolLogger log.Logger = log.NoopLogger{}
	if cfg.ProtocolLogger != nil {
		protocolLogger = cfg.ProtocolLogger
	}

	return &Session{
		state:          StateDisconnected,
		adapter:        adapter,
		cfg:            cfg,
		logger:         logger,
		protocolLogger: protocolLogger,
		sleep:          time.Sleep,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Address returns the address of the connected (or last connected) device.
func (s *Session) Address() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.address
}

// SessionID returns the protocol capture ID of the current connection.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// Status returns the cached snapshot from the last successful read.
// The bool is false if no read has succeeded since Connect.
func (s *Session) Status() (protocol.Status, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.status == nil {
		return protocol.Status{}, false
	}
	return *s.status, true
}

// Connected reports whether the session is connected and the transport
// still reports an active link.
func (s *Session) Connected() bool {
	s.mu.RLock()
	state, conn := s.state, s.conn
	s.mu.RUnlock()
	return state == StateConnected && conn != nil && conn.IsConnected()
}

// OnStateChange sets a callback for state transitions. The callback runs
// after the operation that caused the transition has finished, so it may
// call Session methods, including Connect.
func (s *Session) OnStateChange(fn func(oldState, newState State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onStateChange = fn
}

// Connect opens a link to target and reads the initial status.
// Exactly one of target.Address and target.Name must be set.
func (s *Session) Connect(ctx context.Context, target Target) error {
	if (target.Address == "") == (target.Name == "") {
		return fmt.Errorf("%w: exactly one of address or name is required", ErrInvalidArgument)
	}

	defer s.lockOp()()

	s.mu.Lock()
	if s.state != StateDisconnected {
		s.mu.Unlock()
		return ErrAlreadyConnected
	}
	s.sessionID = uuid.NewString()
	s.status = nil
	s.mu.Unlock()

	s.setState(StateConnecting, "connect "+target.String())

	address := target.Address
	if address == "" {
		resolved, err := s.resolve(ctx, target.Name)
		if err != nil {
			s.logError(log.LayerSession, err, "resolve")
			s.setState(StateDisconnected, "resolve failed")
			return err
		}
		address = resolved
	}

	s.mu.Lock()
	s.address = address
	s.mu.Unlock()

	conn, err := s.adapter.Connect(ctx, address, s.cfg.AddressType)
	if err != nil {
		terr := &TransportError{Op: "connect", Err: err}
		s.logError(log.LayerTransport, terr, "connect")
		s.setState(StateDisconnected, "connect failed")
		return terr
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	s.setState(StateConnected, "link up")

	if _, err := s.refreshLocked("connect"); err != nil {
		s.release("initial refresh failed")
		return fmt.Errorf("initial refresh: %w", err)
	}
	return nil
}

// resolve scans for a peripheral advertising exactly name.
func (s *Session) resolve(ctx context.Context, name string) (string, error) {
	if s.cfg.ScanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ScanTimeout)
		defer cancel()
	}

	results, err := s.adapter.Scan(ctx)
	if err != nil {
		return "", &TransportError{Op: "scan", Err: err}
	}

	match, ok := FindByName(results, name)
	if !ok {
		return "", fmt.Errorf("%w: no peripheral named %q among %d scanned", ErrDeviceNotFound, name, len(results))
	}
	matches := 0
	for _, r := range results {
		if r.Name == name {
			matches++
		}
	}
	if matches > 1 {
		s.logger.Warn("several peripherals share the name, using the first", "name", name, "matches", matches)
	}
	s.logger.Debug("resolved device name", "name", name, "address", match.Address, "rssi", match.RSSI)
	return match.Address, nil
}

// Disconnect releases the link. It returns ErrNotConnected if the session
// is not connected. The session is disconnected even if the transport
// reports an error.
func (s *Session) Disconnect() error {
	defer s.lockOp()()

	s.mu.RLock()
	state, conn := s.state, s.conn
	s.mu.RUnlock()
	if state != StateConnected {
		return ErrNotConnected
	}

	err := conn.Disconnect()

	s.mu.Lock()
	s.conn = nil
	s.mu.Unlock()
	s.setState(StateDisconnected, "disconnect requested")

	if err != nil {
		return &TransportError{Op: "disconnect", Err: err}
	}
	return nil
}

// Refresh reads and decodes the status, replacing the cached snapshot.
// On failure the previous snapshot is kept.
func (s *Session) Refresh() (protocol.Status, error) {
	defer s.lockOp()()
	return s.refreshLocked("refresh")
}

// SendCommand writes cmd, waits the settle delay and refreshes.
// A failed write returns at once without waiting or refreshing.
func (s *Session) SendCommand(cmd protocol.Command) (protocol.Status, error) {
	if _, _, err := protocol.ParseCommand(cmd); err != nil {
		return protocol.Status{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	defer s.lockOp()()
	return s.sendLocked(cmd)
}

// current returns the link if connected. Called with opMu held.
func (s *Session) current() (transport.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateConnected || s.conn == nil {
		return nil, ErrNotConnected
	}
	return s.conn, nil
}

func (s *Session) refreshLocked(trigger string) (protocol.Status, error) {
	conn, err := s.current()
	if err != nil {
		return protocol.Status{}, err
	}

	packet, err := conn.ReadCharacteristic(s.cfg.Feedback)
	if err != nil {
		return protocol.Status{}, s.transportFailure(conn, "read", err)
	}

	status, err := protocol.DecodeStatus(packet)
	s.logStatus(packet, status, err)
	if err != nil {
		s.logger.Warn("rejected status packet", "trigger", trigger, "packet", fmt.Sprintf("%x", packet), "error", err)
		return protocol.Status{}, err
	}

	s.mu.Lock()
	s.status = &status
	s.mu.Unlock()

	s.logger.Debug("status", "trigger", trigger, "status", status.String())
	return status, nil
}

func (s *Session) sendLocked(cmd protocol.Command) (protocol.Status, error) {
	conn, err := s.current()
	if err != nil {
		return protocol.Status{}, err
	}

	s.logCommand(cmd)
	if err := conn.WriteCharacteristic(s.cfg.TX, cmd.Bytes()); err != nil {
		return protocol.Status{}, s.transportFailure(conn, "write", err)
	}

	s.sleep(s.cfg.SettleDelay)
	return s.refreshLocked("confirm " + cmd.Opcode().String())
}

// transportFailure wraps err and releases the link if the transport
// reports it is gone. Called with opMu held.
func (s *Session) transportFailure(conn transport.Session, op string, err error) error {
	terr := &TransportError{Op: op, Err: err}
	s.logError(log.LayerTransport, terr, op)

	if !conn.IsConnected() {
		s.release("link lost during " + op)
	}
	return terr
}

// release drops the link after a fatal error. Called with opMu held.
func (s *Session) release(reason string) {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.mu.Unlock()

	if conn != nil {
		if err := conn.Disconnect(); err != nil {
			s.logger.Debug("release: disconnect failed", "error", err)
		}
	}
	s.setState(StateDisconnected, reason)
}

type transition struct {
	from, to State
}

// lockOp acquires opMu. The returned func releases it and then delivers
// queued state changes.
func (s *Session) lockOp() func() {
	s.opMu.Lock()
	return func() {
		s.opMu.Unlock()
		s.flushStateChanges()
	}
}

func (s *Session) flushStateChanges() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	fn := s.onStateChange
	s.mu.Unlock()

	if fn == nil {
		return
	}
	for _, t := range pending {
		fn(t.from, t.to)
	}
}

// setState records a transition. Called with opMu held.
func (s *Session) setState(newState State, reason string) {
	s.mu.Lock()
	oldState := s.state
	s.state = newState
	address := s.address
	if oldState != newState {
		s.pending = append(s.pending, transition{from: oldState, to: newState})
	}
	s.mu.Unlock()

	if oldState == newState {
		return
	}

	s.logger.Info("session state changed", "from", oldState.String(), "to", newState.String(),
		"address", address, "reason", reason)
	s.emit(log.Event{
		Direction: log.DirectionNone,
		Layer:     log.LayerSession,
		Category:  log.CategoryState,
		StateChange: &log.StateChangeEvent{
			OldState: oldState.String(),
			NewState: newState.String(),
			Reason:   reason,
		},
	})
}
