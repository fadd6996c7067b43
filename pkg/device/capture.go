package device

import (
	"time"

	"github.com/hatch-rest/restctl/pkg/log"
	"github.com/hatch-rest/restctl/pkg/protocol"
)

func (s *Session) emit(event log.Event) {
	s.mu.RLock()
	event.SessionID = s.sessionID
	event.Address = s.address
	s.mu.RUnlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	s.protocolLogger.Log(event)
}

func (s *Session) logCommand(cmd protocol.Command) {
	s.emit(log.Event{
		Direction: log.DirectionOut,
		Layer:     log.LayerTransport,
		Category:  log.CategoryCommand,
		Command: &log.CommandEvent{
			Handle:  string(s.cfg.TX),
			Opcode:  string(cmd.Opcode()),
			Command: string(cmd),
		},
	})
}

func (s *Session) logStatus(packet []byte, status protocol.Status, decodeErr error) {
	event := &log.StatusEvent{
		Handle: string(s.cfg.Feedback),
		Raw:    append([]byte(nil), packet...),
	}
	if decodeErr == nil {
		event.Decoded = &log.DecodedStatus{
			Red:        status.Color.Red,
			Green:      status.Color.Green,
			Blue:       status.Color.Blue,
			Brightness: status.Brightness,
			Sound:      status.Sound.Code(),
			Volume:     status.Volume,
			Power:      status.Power,
		}
		if status.Sound.Known() {
			event.Decoded.SoundName = status.Sound.String()
		}
	}

	s.emit(log.Event{
		Direction: log.DirectionIn,
		Layer:     log.LayerProtocol,
		Category:  log.CategoryStatus,
		Status:    event,
	})
	if decodeErr != nil {
		s.logError(log.LayerProtocol, decodeErr, "decode status")
	}
}

func (s *Session) logError(layer log.Layer, err error, context string) {
	s.emit(log.Event{
		Direction: log.DirectionNone,
		Layer:     layer,
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Layer:   layer,
			Message: err.Error(),
			Context: context,
		},
	})
}
