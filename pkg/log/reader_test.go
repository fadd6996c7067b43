package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.hlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	if logger.Path() != path {
		t.Errorf("Path() = %q, want %q", logger.Path(), path)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return path
}

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var events []Event
	for {
		event, err := r.Next()
		if err == io.EOF {
			return events
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		events = append(events, event)
	}
}

func TestReaderIteratesEvents(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), SessionID: "s1", Direction: DirectionOut, Layer: LayerTransport, Category: CategoryCommand},
		{Timestamp: time.Now(), SessionID: "s1", Direction: DirectionIn, Layer: LayerProtocol, Category: CategoryStatus},
		{Timestamp: time.Now(), SessionID: "s2", Direction: DirectionNone, Layer: LayerSession, Category: CategoryState},
	}
	path := createTestLogFile(t, events)

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	defer r.Close()

	got := readAll(t, r)
	if len(got) != len(events) {
		t.Fatalf("read %d events, want %d", len(got), len(events))
	}
	for i := range events {
		if got[i].Category != events[i].Category || got[i].SessionID != events[i].SessionID {
			t.Errorf("event %d = %+v", i, got[i])
		}
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := createTestLogFile(t, []Event{{SessionID: "first"}})

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	logger.Log(Event{SessionID: "second"})
	logger.Close()
	logger.Log(Event{SessionID: "after-close"})
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	defer r.Close()

	got := readAll(t, r)
	if len(got) != 2 || got[0].SessionID != "first" || got[1].SessionID != "second" {
		t.Errorf("events = %+v", got)
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []Event{
		{Timestamp: base, SessionID: "a", Address: "F3:53:11:00:00:01", Direction: DirectionOut, Layer: LayerTransport, Category: CategoryCommand},
		{Timestamp: base.Add(time.Second), SessionID: "a", Address: "F3:53:11:00:00:01", Direction: DirectionIn, Layer: LayerProtocol, Category: CategoryStatus},
		{Timestamp: base.Add(2 * time.Second), SessionID: "b", Address: "F3:53:11:00:00:02", Direction: DirectionNone, Layer: LayerSession, Category: CategoryState},
		{Timestamp: base.Add(3 * time.Second), SessionID: "b", Address: "F3:53:11:00:00:02", Direction: DirectionIn, Layer: LayerProtocol, Category: CategoryError},
	}
	path := createTestLogFile(t, events)

	in := DirectionIn
	protocolLayer := LayerProtocol
	state := CategoryState
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"session", Filter{SessionID: "a"}, 2},
		{"address case-insensitive", Filter{Address: "f3:53:11:00:00:02"}, 2},
		{"direction", Filter{Direction: &in}, 2},
		{"layer", Filter{Layer: &protocolLayer}, 2},
		{"category", Filter{Category: &state}, 1},
		{"time range", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"combined", Filter{SessionID: "b", Direction: &in}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader() error = %v", err)
			}
			defer r.Close()

			if got := readAll(t, r); len(got) != tt.want {
				t.Errorf("read %d events, want %d", len(got), tt.want)
			}
		})
	}
}

func TestNewReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.hlog")); err == nil {
		t.Error("NewReader() on missing file succeeded")
	}
}
