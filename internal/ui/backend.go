package ui

import (
	"github.com/atomicstack/tabtray-control/internal/backend"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

func waitForStateChange(updates <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

// stateChangedMsg wakes the model after the store processed an action,
// including actions dispatched by background tasks.
type stateChangedMsg struct{}

func (m *Model) handleStateChangedMsg(tea.Msg) tea.Cmd {
	m.refresh()
	if m.updates != nil && !m.dismissed {
		return waitForStateChange(m.updates)
	}
	return nil
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		return nil
	}
	m.backendLastErr = ""
	if m.dispatcher == nil {
		return nil
	}
	res := m.dispatcher.Handle(evt)
	if res.Dispatched > 0 {
		m.refresh()
	}
	return nil
}
