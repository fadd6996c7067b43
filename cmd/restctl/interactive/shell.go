// Package interactive provides the interactive command-line interface
// for restctl.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/hatch-rest/restctl/cmd/restctl/commands"
	"github.com/hatch-rest/restctl/pkg/device"
)

// ReconnectFunc opens the session again after the link was lost.
type ReconnectFunc func(ctx context.Context) error

// Shell is a readline prompt driving one device session.
type Shell struct {
	session   *device.Session
	reconnect ReconnectFunc
	rl        *readline.Instance
	out       io.Writer
}

// New creates a shell for session. reconnect may be nil.
func New(session *device.Session, reconnect ReconnectFunc) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "rest> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Shell{
		session:   session,
		reconnect: reconnect,
		rl:        rl,
		out:       rl.Stdout(),
	}, nil
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("status"),
		readline.PcItem("on"),
		readline.PcItem("off"),
		readline.PcItem("sound",
			readline.PcItem("list"),
			readline.PcItem("none"), readline.PcItem("stream"), readline.PcItem("noise"),
			readline.PcItem("dryer"), readline.PcItem("ocean"), readline.PcItem("wind"),
			readline.PcItem("rain"), readline.PcItem("bird"), readline.PcItem("crickets"),
			readline.PcItem("brahms"), readline.PcItem("twinkle"), readline.PcItem("rockabye"),
		),
		readline.PcItem("volume"),
		readline.PcItem("color"),
		readline.PcItem("brightness"),
		readline.PcItem("info"),
		readline.PcItem("reconnect"),
		readline.PcItem("disconnect"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Stderr returns a writer that properly coordinates with the readline input.
func (s *Shell) Stderr() io.Writer {
	return s.rl.Stderr()
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if quit := s.handle(ctx, line); quit {
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}
	}
}

// handle runs one input line and reports whether the shell should exit.
func (s *Shell) handle(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "info":
		s.cmdInfo()

	case "reconnect":
		s.cmdReconnect(ctx)

	case "disconnect":
		if err := s.session.Disconnect(); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}

	case "quit", "exit", "q":
		return true

	default:
		err := commands.Execute(s.session, s.out, cmd, args)
		switch {
		case err == nil:
		case errors.Is(err, commands.ErrUnknownCommand):
			fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
		case errors.Is(err, device.ErrNotConnected):
			fmt.Fprintln(s.out, "Not connected (use 'reconnect')")
		default:
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
	return false
}

func (s *Shell) cmdInfo() {
	fmt.Fprintf(s.out, "State:   %s\n", s.session.State())
	fmt.Fprintf(s.out, "Address: %s\n", s.session.Address())
	if id := s.session.SessionID(); id != "" {
		fmt.Fprintf(s.out, "Session: %s\n", id)
	}
	if status, ok := s.session.Status(); ok {
		fmt.Fprintf(s.out, "Last:    %s\n", status)
	} else {
		fmt.Fprintln(s.out, "Last:    (no status read)")
	}
}

func (s *Shell) cmdReconnect(ctx context.Context) {
	if s.reconnect == nil {
		fmt.Fprintln(s.out, "Reconnect not available")
		return
	}
	if s.session.State() == device.StateConnected {
		fmt.Fprintln(s.out, "Already connected")
		return
	}
	if err := s.reconnect(ctx); err != nil {
		fmt.Fprintf(s.out, "Reconnect failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Connected to %s\n", s.session.Address())
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Hatch Rest Commands:
  Control:
`+commands.Usage+`

  Session:
    info                    Show session state and last status
    reconnect               Connect again after the link was lost
    disconnect              Close the link

  General:
    help                    Show this help
    quit                    Exit`)
}
