package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func logToJSON(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	NewSlogAdapter(logger).Log(event)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output %q: %v", buf.String(), err)
	}
	return entry
}

func TestSlogAdapterLogsCommandEvent(t *testing.T) {
	entry := logToJSON(t, Event{
		Timestamp: time.Now(),
		SessionID: "s-1",
		Direction: DirectionOut,
		Layer:     LayerTransport,
		Category:  CategoryCommand,
		Address:   "F3:53:11:00:00:01",
		Command:   &CommandEvent{Handle: "tx", Opcode: "SV", Command: "SV64"},
	})

	want := map[string]any{
		"msg":        "protocol",
		"level":      "DEBUG",
		"session_id": "s-1",
		"direction":  "OUT",
		"layer":      "TRANSPORT",
		"category":   "COMMAND",
		"address":    "F3:53:11:00:00:01",
		"opcode":     "SV",
		"command":    "SV64",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s: got %v, want %v", k, entry[k], v)
		}
	}
}

func TestSlogAdapterLogsStatusEvent(t *testing.T) {
	entry := logToJSON(t, Event{
		Direction: DirectionIn,
		Layer:     LayerProtocol,
		Category:  CategoryStatus,
		Status: &StatusEvent{
			Handle:  "feedback",
			Raw:     []byte{0xab, 0xcd},
			Decoded: &DecodedStatus{Red: 1, Green: 2, Blue: 3, Brightness: 4, Volume: 5, Power: true},
		},
	})

	if entry["raw"] != "abcd" {
		t.Errorf("raw = %v", entry["raw"])
	}
	if entry["color"] != "#010203" {
		t.Errorf("color = %v", entry["color"])
	}
	if entry["power"] != true || entry["volume"] != float64(5) {
		t.Errorf("power/volume = %v/%v", entry["power"], entry["volume"])
	}
	if _, ok := entry["address"]; ok {
		t.Error("empty address should be omitted")
	}
}

func TestSlogAdapterLogsStateAndError(t *testing.T) {
	entry := logToJSON(t, Event{
		Category:    CategoryState,
		Layer:       LayerSession,
		StateChange: &StateChangeEvent{OldState: "CONNECTED", NewState: "DISCONNECTED", Reason: "link lost"},
	})
	if entry["new_state"] != "DISCONNECTED" || entry["reason"] != "link lost" {
		t.Errorf("state entry = %v", entry)
	}

	entry = logToJSON(t, Event{
		Category: CategoryError,
		Error:    &ErrorEventData{Layer: LayerProtocol, Message: "bad marker", Context: "refresh"},
	})
	if entry["error_layer"] != "PROTOCOL" || entry["error_msg"] != "bad marker" || entry["error_context"] != "refresh" {
		t.Errorf("error entry = %v", entry)
	}
}
