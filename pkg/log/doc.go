// Package log provides structured protocol capture for restctl.
//
// This package defines the Logger interface and Event types for recording
// every command written to the device, every status packet read back and
// every session state change. It is separate from operational logging
// (slog): protocol capture is a complete machine-readable trace of what
// crossed the BLE link.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// For field debugging: write to a capture file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/tmp/nursery.hlog")
//
//	// Both
//	cfg.ProtocolLogger = log.NewMultiLogger(adapter, fileLogger)
//
// # Event Types
//
// Events are captured at three layers:
//   - Transport: commands as written to TX (CommandEvent)
//   - Protocol: FEEDBACK packets with raw bytes and decoded fields (StatusEvent)
//   - Session: connect/disconnect transitions (StateChangeEvent)
//
// Failures at any layer are recorded as ErrorEventData.
//
// # File Format
//
// Capture files are a stream of CBOR-encoded events with the .hlog
// extension. "restctl log <file>" prints them.
package log
