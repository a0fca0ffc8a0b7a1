package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/tabtray-control/internal/format/table"
	uistate "github.com/atomicstack/tabtray-control/internal/ui/state"
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	rowIndicator   = "▌"
	markGlyph      = "✓"
	currentGlyph   = "●"
	inactiveGlyph  = "◌"
	footerText     = "↑/↓ move  enter open  tab mark  x close  u undo  n new  p private  i inactive  o peek  / filter  q quit"
	bottomBarLines = 2
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text already carries ANSI styling
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	if header := m.header(); header != "" {
		lines = append(lines, styledLine{text: header, style: m.styles.Header})
	}
	lines = append(lines, m.rowLines()...)
	lines = append(lines, m.statusLines()...)
	lines = limitHeight(lines, m.height-bottomBarLines, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: m.styles.Error}
	}
	bottom := applyWidth([]styledLine{statusLine, {text: m.filterPrompt(), raw: true}}, m.width)
	lines = append(lines, bottom...)
	return renderLines(lines)
}

func (m *Model) header() string {
	if m.store == nil {
		return m.level.Title
	}
	st := m.store.State()
	count := ""
	if m.private {
		if panel, ok := st.TabsPanel(m.window); ok {
			count = viewmodel.CountText(len(panel.Tabs))
		}
	} else if tray, ok := st.TabsTray(m.window); ok {
		count = tray.NormalTabsCount
	}
	if count == "" {
		return m.level.Title
	}
	return fmt.Sprintf("%s (%s)", m.level.Title, count)
}

func (m *Model) rowLines() []styledLine {
	current := m.level
	if len(current.Items) == 0 {
		msg := "(no tabs)"
		if current.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", current.Filter)
		}
		return []styledLine{{text: msg, style: m.styles.Info}}
	}
	m.syncViewport(current)
	start := 0
	displayItems := current.Items
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
		start = current.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(displayItems) {
			start = len(displayItems) - maxItems
			if start < 0 {
				start = 0
			}
			current.ViewportOffset = start
		}
		displayItems = displayItems[start : start+maxItems]
	}
	rows := make([][]string, len(displayItems))
	for i, item := range displayItems {
		rows[i] = []string{m.markCell(item), item.Label, item.Detail}
	}
	formatted := table.FormatWidth(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft}, m.columnLimits())
	lines := make([]styledLine, len(displayItems))
	for i, item := range displayItems {
		lines[i] = m.buildItemLine(item, formatted[i], start+i)
	}
	return lines
}

func (m *Model) markCell(item uistate.Item) string {
	mark := " "
	if m.level.IsMarked(item.ID) {
		mark = markGlyph
	}
	status := " "
	switch {
	case item.Section == uistate.SectionInactive:
		status = inactiveGlyph
	case item.Current:
		status = currentGlyph
	}
	return mark + status
}

func (m *Model) columnLimits() []int {
	if m.width <= 0 {
		return nil
	}
	avail := m.width - ansi.StringWidth(rowIndicator+" ") - 2 - 4
	if avail < 4 {
		return nil
	}
	return []int{0, avail * 2 / 3, avail / 3}
}

func (m *Model) buildItemLine(item uistate.Item, text string, idx int) styledLine {
	lineStyle := m.styles.Item
	switch {
	case item.Section == uistate.SectionInactive:
		lineStyle = m.styles.InactiveItem
	case item.Current:
		lineStyle = m.styles.CurrentTab
	case item.Private:
		lineStyle = m.styles.PrivateTab
	}
	indicatorStyle := m.styles.ItemIndicator
	if idx == m.level.Cursor {
		indicatorStyle = m.styles.SelectedItemIndicator
		lineStyle = m.styles.SelectedItem
	}
	fullText := rowIndicator + " " + text
	if m.width > 0 {
		if pad := m.width - ansi.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

// statusLines renders everything between the rows and the bottom bar.
func (m *Model) statusLines() []styledLine {
	lines := make([]styledLine, 0, 8)
	if summary := m.inactiveSummary(); summary != "" {
		lines = append(lines, styledLine{text: summary, style: m.styles.InactiveHeader})
	}
	if peek := m.activePeek(); peek != nil {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: peek.title, style: m.styles.PeekTitle})
		for _, line := range peekDisplayLines(peek) {
			lines = append(lines, styledLine{text: "  " + line, style: m.styles.PeekBody})
		}
	}
	if toast := m.toast(); toast != nil {
		text := toast.Message()
		if toast.Undoable() {
			text += "  (u undo)"
		}
		lines = append(lines, styledLine{text: text, style: m.styles.Toast})
	}
	if share := m.shareURL(); share != "" {
		lines = append(lines, styledLine{text: "Share: " + share, style: m.styles.Info})
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{text: info, style: m.styles.Info})
	}
	if m.backendLastErr != "" {
		lines = append(lines, styledLine{text: "Watcher: " + m.backendLastErr, style: m.styles.Error})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerText, style: m.styles.Footer})
	}
	return lines
}

func (m *Model) inactiveSummary() string {
	if m.private || m.store == nil {
		return ""
	}
	panel, ok := m.store.State().TabsPanel(m.window)
	if !ok || len(panel.InactiveTabs) == 0 {
		return ""
	}
	hint := "i expand"
	if panel.IsInactiveTabsExpanded {
		hint = "i collapse"
	}
	return fmt.Sprintf("Inactive tabs (%s)  %s  c close all", viewmodel.CountText(len(panel.InactiveTabs)), hint)
}

func (m *Model) shareURL() string {
	if m.store == nil {
		return ""
	}
	tray, ok := m.store.State().TabsTray(m.window)
	if !ok {
		return ""
	}
	return tray.ShareURL
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.filterInput.Width = max(m.width-ansi.StringWidth(filterPromptText)-1, 0)
	m.syncViewport(m.level)
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := bottomBarLines + len(m.statusLines())
	if m.header() != "" {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: table.Truncate("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: table.Truncate("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = table.Truncate(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}
