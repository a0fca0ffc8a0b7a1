package ui

import (
	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/ui/command"
	uistate "github.com/atomicstack/tabtray-control/internal/ui/state"
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleDispatchedMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(command.DispatchedMsg); !ok {
		return nil
	}
	m.refresh()
	return nil
}

func (m *Model) selectTab(item uistate.Item) tea.Cmd {
	return m.execute(item.Label, action.SelectTab{Context: m.ctx(), TabUUID: item.ID})
}

func (m *Model) newTab() tea.Cmd {
	m.clearInfo()
	return m.execute("new tab", action.AddNewTab{Context: m.ctx(), IsPrivate: m.private})
}

// closeSelection closes the marked rows, or the row under the cursor when
// nothing is marked.
func (m *Model) closeSelection() tea.Cmd {
	items := m.level.MarkedItems()
	if len(items) == 0 {
		item, ok := m.level.CursorItem()
		if !ok {
			return nil
		}
		items = []uistate.Item{item}
	}
	m.level.ClearMarks()
	cmds := make([]tea.Cmd, 0, len(items))
	for _, item := range items {
		cmds = append(cmds, m.execute(item.Label, closeAction(m.ctx(), item)))
	}
	return tea.Batch(cmds...)
}

func closeAction(ctx action.Context, item uistate.Item) action.Action {
	if item.Section == uistate.SectionInactive {
		return action.CloseInactiveTab{Context: ctx, TabUUID: item.ID}
	}
	return action.CloseTab{Context: ctx, TabUUID: item.ID}
}

func (m *Model) closeAllTabs() tea.Cmd {
	return m.execute("close all tabs", action.CloseAllTabs{Context: m.ctx()})
}

func (m *Model) closeAllInactive() tea.Cmd {
	if !m.hasInactiveTabs() {
		m.setInfo("No inactive tabs")
		return nil
	}
	return m.execute("close inactive tabs", action.CloseAllInactiveTabs{Context: m.ctx()})
}

func (m *Model) toggleInactive() tea.Cmd {
	if m.private {
		return nil
	}
	return m.execute("toggle inactive tabs", action.ToggleInactiveTabs{Context: m.ctx()})
}

// undo reverts whatever the current toast reports.
func (m *Model) undo() tea.Cmd {
	toast := m.toast()
	if toast == nil || !toast.Undoable() {
		m.setInfo("Nothing to undo")
		return nil
	}
	var act action.Action
	ctx := m.ctx()
	switch toast.Kind {
	case viewmodel.ToastSingleTab:
		act = action.UndoClose{Context: ctx}
	case viewmodel.ToastAllTabs:
		act = action.UndoCloseAllTabs{Context: ctx}
	case viewmodel.ToastSingleInactiveTabs:
		act = action.UndoCloseInactiveTab{Context: ctx}
	case viewmodel.ToastAllInactiveTabs:
		act = action.UndoCloseAllInactiveTabs{Context: ctx}
	default:
		return nil
	}
	return tea.Batch(
		m.execute("hide toast", action.HideToast{Context: ctx}),
		m.execute(toast.Message(), act),
	)
}

func (m *Model) undoCloseAll() tea.Cmd {
	return m.execute("undo close all", action.UndoCloseAllTabs{Context: m.ctx()})
}

func (m *Model) togglePrivate() tea.Cmd {
	panel := viewmodel.PanelPrivateTabs
	if m.private {
		panel = viewmodel.PanelTabs
	}
	m.level.ClearMarks()
	m.peekTab = ""
	return m.execute(string(panel), action.ChangePanel{Context: m.ctx(), Panel: panel})
}

// moveTab shifts the tab under the cursor by delta within its mode.
func (m *Model) moveTab(delta int) tea.Cmd {
	if m.level.Filter != "" {
		m.setInfo("Clear the filter to reorder tabs")
		return nil
	}
	item, ok := m.level.CursorItem()
	if !ok || item.Section != uistate.SectionTabs {
		return nil
	}
	from := m.level.FullIndexOf(item.ID, uistate.SectionTabs)
	to := from + delta
	if from < 0 || to < 0 || to >= m.tabCount() {
		return nil
	}
	return m.execute(item.Label, action.MoveTab{Context: m.ctx(), From: from, To: to})
}

func (m *Model) tabCount() int {
	n := 0
	for _, item := range m.level.Full {
		if item.Section == uistate.SectionTabs {
			n++
		}
	}
	return n
}

func (m *Model) toast() *viewmodel.Toast {
	if m.store == nil {
		return nil
	}
	panel, ok := m.store.State().TabsPanel(m.window)
	if !ok {
		return nil
	}
	return panel.Toast
}

func (m *Model) hasInactiveTabs() bool {
	if m.store == nil {
		return false
	}
	panel, ok := m.store.State().TabsPanel(m.window)
	return ok && len(panel.InactiveTabs) > 0
}
