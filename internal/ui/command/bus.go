package command

import (
	"github.com/atomicstack/keyword-editor/internal/logging/events"
	"github.com/atomicstack/keyword-editor/internal/parse"
	tea "github.com/charmbracelet/bubbletea"
)

// ParsedMsg carries the candidates produced for a request.
type ParsedMsg struct {
	ID       string
	Mode     parse.Mode
	Keywords []string
}

// Runner executes a parse request.
type Runner func(parse.Request) []string

// Bus coordinates the execution of parse requests.
type Bus struct {
	run Runner
}

// New initialises a command bus backed by run.
func New(run Runner) *Bus {
	return &Bus{run: run}
}

// Execute wraps a parse request into a Bubble Tea command while emitting
// trace logs. The command runs off the update loop; its ParsedMsg is applied
// back on it.
func (b *Bus) Execute(req parse.Request) tea.Cmd {
	events.Command.Queue(req.ID, string(req.Mode))
	return func() tea.Msg {
		if b == nil || b.run == nil {
			events.Command.Skip(req.ID, "no runner")
			return nil
		}
		out := b.run(req)
		events.Command.Result(req.ID, len(out))
		return ParsedMsg{ID: req.ID, Mode: req.Mode, Keywords: out}
	}
}
