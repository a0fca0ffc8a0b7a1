package ui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/atomicstack/tabtray-control/internal/logging/events"
	"github.com/atomicstack/tabtray-control/internal/state"
	"github.com/atomicstack/tabtray-control/internal/theme"
	uistate "github.com/atomicstack/tabtray-control/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// refresh rebuilds the rows from the store.
func (m *Model) refresh() {
	if m.store == nil {
		return
	}
	st := m.store.State()
	if settings, ok := st.ThemeSettings(m.window); ok {
		m.setStyles(theme.ForSettings(settings.ThemeSettings))
	}
	if tray, ok := st.TabsTray(m.window); ok {
		m.private = tray.IsPrivateMode
		if tray.ShouldDismiss {
			m.dismissed = true
		}
	}
	panel, ok := st.TabsPanel(m.window)
	if !ok {
		m.level.UpdateItems(nil)
		m.syncViewport(m.level)
		return
	}
	m.private = panel.IsPrivateMode
	m.level.Title = normalTitle
	if panel.IsPrivateMode {
		m.level.Title = privateTitle
	}
	m.level.UpdateItems(panelItems(panel))
	m.followScroll(panel)
	if m.peekTab != "" && !peekOpen(st, m.window, m.peekTab, panel) {
		m.peekTab = ""
	}
	m.syncViewport(m.level)
}

// followScroll moves the cursor to the tab the panel asked to scroll to.
// Each request is honoured once so later refreshes keep the user's cursor.
func (m *Model) followScroll(panel state.TabsPanelState) {
	if panel.ScrollToIndex < 0 || panel.ScrollToIndex >= len(panel.Tabs) {
		m.scrollKey = ""
		return
	}
	key := fmt.Sprintf("%t:%s", panel.IsPrivateMode, panel.Tabs[panel.ScrollToIndex].TabUUID)
	if key == m.scrollKey {
		return
	}
	m.scrollKey = key
	if m.level.Filter == "" {
		m.level.MoveCursorTo(panel.Tabs[panel.ScrollToIndex].TabUUID)
	}
}

func (m *Model) setStyles(s *theme.Styles) {
	if s == nil || s == m.styles {
		return
	}
	m.styles = s
	applyFilterStyles(&m.filterInput, s)
}

func panelItems(panel state.TabsPanelState) []uistate.Item {
	items := make([]uistate.Item, 0, len(panel.Tabs)+len(panel.InactiveTabs))
	for _, tab := range panel.Tabs {
		items = append(items, uistate.Item{
			ID:       tab.TabUUID,
			Label:    tab.TabTitle,
			Detail:   hostOf(tab.URL, tab.IsFxHomeTab),
			Section:  uistate.SectionTabs,
			Current:  tab.IsSelected,
			Private:  tab.IsPrivate,
			HomePage: tab.IsFxHomeTab,
		})
	}
	if !panel.IsInactiveTabsExpanded {
		return items
	}
	for _, tab := range panel.InactiveTabs {
		items = append(items, uistate.Item{
			ID:      tab.TabUUID,
			Label:   tab.Title,
			Detail:  hostOf(tab.URL, false),
			Section: uistate.SectionInactive,
		})
	}
	return items
}

func hostOf(raw string, home bool) string {
	if home {
		return "home"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.TrimPrefix(u.Host, "www.")
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	key := keyMsg.String()
	events.UI.Key(m.windowName(), key, m.level.Cursor)
	if m.filtering {
		if handled, cmd := m.handleFilterKey(keyMsg); handled {
			return cmd
		}
	}
	if m.peekTab != "" {
		if handled, cmd := m.handlePeekKey(key); handled {
			return cmd
		}
	}
	switch key {
	case "ctrl+c", "q":
		return m.quit()
	case "esc":
		return m.handleEscapeKey()
	case "up", "k":
		m.moveCursorUp()
		return m.followPeek()
	case "down", "j":
		m.moveCursorDown()
		return m.followPeek()
	case "pgup", "ctrl+b":
		m.moveCursorPageUp()
		return m.followPeek()
	case "pgdown", "ctrl+f":
		m.moveCursorPageDown()
		return m.followPeek()
	case "home", "g":
		m.moveCursorHome()
		return m.followPeek()
	case "end", "G":
		m.moveCursorEnd()
		return m.followPeek()
	case "enter":
		return m.handleEnterKey()
	case "tab", " ":
		m.toggleMark()
	case "/":
		return m.openFilter()
	case "n":
		return m.newTab()
	case "x":
		return m.closeSelection()
	case "X":
		return m.closeAllTabs()
	case "u":
		return m.undo()
	case "U":
		return m.undoCloseAll()
	case "i":
		return m.toggleInactive()
	case "c":
		return m.closeAllInactive()
	case "p":
		return m.togglePrivate()
	case "J":
		return m.moveTab(1)
	case "K":
		return m.moveTab(-1)
	case "o":
		return m.openPeek()
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	events.UI.Dismiss(m.windowName())
	return tea.Quit
}

func (m *Model) handleEscapeKey() tea.Cmd {
	if m.peekTab != "" {
		return m.closePeek()
	}
	if m.level.Filter != "" {
		m.filterInput.Reset()
		m.applyFilter("")
		return nil
	}
	return m.quit()
}

func (m *Model) handleEnterKey() tea.Cmd {
	item, ok := m.level.CursorItem()
	if !ok {
		return nil
	}
	events.UI.Enter(m.windowName(), item.ID, m.level.Filter)
	return m.selectTab(item)
}

func (m *Model) toggleMark() {
	item, marked := m.level.ToggleMark()
	if item.ID == "" {
		return
	}
	events.UI.Mark(m.windowName(), item.ID, marked)
	m.moveCursorDown()
}

func (m *Model) moveCursorUp() {
	if m.level.MoveCursorUp() {
		m.syncViewport(m.level)
	}
}

func (m *Model) moveCursorDown() {
	if m.level.MoveCursorDown() {
		m.syncViewport(m.level)
	}
}

func (m *Model) moveCursorPageUp() {
	if m.level.MoveCursorPageUp(m.maxVisibleItems()) {
		m.syncViewport(m.level)
	}
}

func (m *Model) moveCursorPageDown() {
	if m.level.MoveCursorPageDown(m.maxVisibleItems()) {
		m.syncViewport(m.level)
	}
}

func (m *Model) moveCursorHome() {
	if m.level.MoveCursorHome() {
		m.syncViewport(m.level)
	}
}

func (m *Model) moveCursorEnd() {
	if m.level.MoveCursorEnd() {
		m.syncViewport(m.level)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}
