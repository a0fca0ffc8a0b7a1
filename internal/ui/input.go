package ui

import (
	"github.com/atomicstack/tabtray-control/internal/logging/events"
	"github.com/atomicstack/tabtray-control/internal/theme"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	filterPromptText  = "» "
	filterPlaceholder = "type to filter"
)

func newFilterInput(s *theme.Styles) textinput.Model {
	ti := textinput.New()
	ti.Prompt = filterPromptText
	ti.Placeholder = filterPlaceholder
	ti.Cursor.SetMode(cursor.CursorStatic)
	applyFilterStyles(&ti, s)
	return ti
}

func applyFilterStyles(ti *textinput.Model, s *theme.Styles) {
	if s == nil {
		return
	}
	if s.FilterPrompt != nil {
		ti.PromptStyle = *s.FilterPrompt
	}
	if s.Filter != nil {
		ti.TextStyle = *s.Filter
	}
	if s.FilterPlaceholder != nil {
		ti.PlaceholderStyle = *s.FilterPlaceholder
	}
}

func (m *Model) openFilter() tea.Cmd {
	m.filtering = true
	m.filterInput.SetValue(m.level.Filter)
	m.filterInput.CursorEnd()
	events.Filter.Open(m.windowName())
	return m.filterInput.Focus()
}

func (m *Model) closeFilter(clear bool) {
	m.filtering = false
	m.filterInput.Blur()
	if clear {
		m.filterInput.Reset()
		m.applyFilter("")
	}
}

// handleFilterKey feeds keys to the filter input while it has focus.
// Navigation keys fall through to the list.
func (m *Model) handleFilterKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeFilter(true)
		return true, nil
	case "enter":
		m.closeFilter(false)
		return true, m.handleEnterKey()
	case "up", "down", "pgup", "pgdown", "ctrl+c":
		return false, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter(m.filterInput.Value())
	return true, cmd
}

func (m *Model) applyFilter(query string) {
	if query == m.level.Filter {
		return
	}
	m.level.SetFilter(query)
	m.clearInfo()
	m.errMsg = ""
	if query == "" {
		events.Filter.Cleared(m.windowName())
	} else {
		events.Filter.Changed(m.windowName(), query, len(m.level.Items))
	}
	m.syncViewport(m.level)
}

func (m *Model) filterPrompt() string {
	if m.filtering {
		return m.filterInput.View()
	}
	prompt := filterPromptText
	if m.styles.FilterPrompt != nil {
		prompt = m.styles.FilterPrompt.Render(prompt)
	}
	if m.level.Filter == "" {
		hint := "/ to filter"
		if m.styles.FilterPlaceholder != nil {
			hint = m.styles.FilterPlaceholder.Render(hint)
		}
		return prompt + hint
	}
	text := m.level.Filter
	if m.styles.Filter != nil {
		text = m.styles.Filter.Render(text)
	}
	return prompt + text
}
