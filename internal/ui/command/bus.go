package command

import (
	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/logging/events"
	"github.com/atomicstack/tabtray-control/internal/redux"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates one action the console wants dispatched.
type Request struct {
	ID     string
	Label  string
	Action action.Action
}

// DispatchedMsg reports that a request reached the store.
type DispatchedMsg struct {
	ID   string
	Type action.Type
}

// Bus hands console requests to the store.
type Bus struct {
	store redux.Dispatcher[action.Action]
}

// New initialises a command bus dispatching into store.
func New(store redux.Dispatcher[action.Action]) *Bus {
	return &Bus{store: store}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if b == nil || b.store == nil || req.Action == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		b.store.Dispatch(req.Action)
		events.Command.Result(req.ID, req.Label, string(req.Action.Type()))
		return DispatchedMsg{ID: req.ID, Type: req.Action.Type()}
	}
}
