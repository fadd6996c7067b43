package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogAdapter writes protocol events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter that writes to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}
	if event.Address != "" {
		attrs = append(attrs, slog.String("address", event.Address))
	}

	switch {
	case event.Command != nil:
		attrs = append(attrs,
			slog.String("handle", event.Command.Handle),
			slog.String("opcode", event.Command.Opcode),
			slog.String("command", event.Command.Command),
		)
	case event.Status != nil:
		attrs = append(attrs,
			slog.String("handle", event.Status.Handle),
			slog.String("raw", fmt.Sprintf("%x", event.Status.Raw)),
		)
		if d := event.Status.Decoded; d != nil {
			attrs = append(attrs,
				slog.Bool("power", d.Power),
				slog.String("color", fmt.Sprintf("#%02x%02x%02x", d.Red, d.Green, d.Blue)),
				slog.Int("brightness", int(d.Brightness)),
				slog.Int("sound", int(d.Sound)),
				slog.Int("volume", int(d.Volume)),
			)
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "protocol", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
