package log

import (
	"testing"
	"time"
)

// recordingLogger records events for testing.
type recordingLogger struct {
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.events = append(r.events, event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	r1, r2 := &recordingLogger{}, &recordingLogger{}
	multi := NewMultiLogger(r1, nil, r2, NoopLogger{})

	multi.Log(Event{Timestamp: time.Now(), SessionID: "s-1", Category: CategoryCommand})

	for i, r := range []*recordingLogger{r1, r2} {
		if len(r.events) != 1 || r.events[0].SessionID != "s-1" {
			t.Errorf("logger %d: events = %+v", i, r.events)
		}
	}
}

func TestMultiLoggerEmptyList(t *testing.T) {
	NewMultiLogger().Log(Event{SessionID: "s-1"})
}
