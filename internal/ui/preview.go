package ui

import (
	"fmt"

	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

const peekScreen = action.ScreenTabPeek

type peekData struct {
	title   string
	loading bool
	actions []string
}

func peekOpen(st state.AppState, window uuid.UUID, id string, panel state.TabsPanelState) bool {
	if _, err := st.ScreenState(peekScreen, window); err != nil {
		return false
	}
	for _, tab := range panel.Tabs {
		if tab.TabUUID == id {
			return true
		}
	}
	for _, tab := range panel.InactiveTabs {
		if tab.TabUUID == id {
			return true
		}
	}
	return false
}

func (m *Model) openPeek() tea.Cmd {
	item, ok := m.level.CursorItem()
	if !ok {
		return nil
	}
	ctx := m.ctx()
	m.peekTab = item.ID
	return tea.Batch(
		m.execute("peek", action.ShowScreen{Context: ctx, Screen: peekScreen}),
		m.execute(item.Label, action.DidLoadTabPeek{Context: ctx, TabUUID: item.ID}),
	)
}

func (m *Model) closePeek() tea.Cmd {
	m.peekTab = ""
	return m.execute("close peek", action.CloseScreen{Context: m.ctx(), Screen: peekScreen})
}

// followPeek reloads the peek for the row under the cursor.
func (m *Model) followPeek() tea.Cmd {
	if m.peekTab == "" {
		return nil
	}
	item, ok := m.level.CursorItem()
	if !ok || item.ID == m.peekTab {
		return nil
	}
	m.peekTab = item.ID
	return m.execute(item.Label, action.DidLoadTabPeek{Context: m.ctx(), TabUUID: item.ID})
}

func (m *Model) handlePeekKey(key string) (bool, tea.Cmd) {
	ctx := m.ctx()
	id := m.peekTab
	switch key {
	case "o":
		return true, m.closePeek()
	case "b":
		return true, m.execute("bookmark", action.AddToBookmarks{Context: ctx, TabUUID: id})
	case "y":
		return true, m.execute("copy url", action.CopyURL{Context: ctx, TabUUID: id})
	case "s":
		return true, m.execute("send to device", action.SendToDevice{Context: ctx, TabUUID: id})
	case "x":
		m.peekTab = ""
		return true, tea.Batch(
			m.execute("close peek", action.CloseScreen{Context: ctx, Screen: peekScreen}),
			m.execute("close tab", action.PeekCloseTab{Context: ctx, TabUUID: id}),
		)
	}
	return false, nil
}

// activePeek describes the peek panel, or nil when none is open.
func (m *Model) activePeek() *peekData {
	if m.peekTab == "" || m.store == nil {
		return nil
	}
	peek, ok := m.store.State().TabPeek(m.window)
	if !ok {
		return nil
	}
	data := &peekData{title: peek.PreviewAccessibilityLabel}
	if data.title == "" {
		data.loading = true
		if item, ok := m.level.CursorItem(); ok && item.ID == m.peekTab {
			data.title = item.Label
		}
		return data
	}
	if peek.ShowAddToBookmarks {
		data.actions = append(data.actions, "b bookmark")
	}
	if peek.ShowSendToDevice {
		data.actions = append(data.actions, "s send to device")
	}
	if peek.ShowCopyURL {
		data.actions = append(data.actions, "y copy url")
	}
	if peek.ShowCloseTab {
		data.actions = append(data.actions, "x close tab")
	}
	if len(peek.Screenshot) > 0 {
		data.actions = append(data.actions, fmt.Sprintf("screenshot %d bytes", len(peek.Screenshot)))
	}
	return data
}

func peekDisplayLines(data *peekData) []string {
	if data == nil {
		return nil
	}
	if data.loading {
		return []string{"Loading preview…"}
	}
	if len(data.actions) == 0 {
		return []string{"(no actions)"}
	}
	return data.actions
}
