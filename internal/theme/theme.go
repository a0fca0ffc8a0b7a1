package theme

import (
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header                *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	CurrentTab            *lipgloss.Style
	PrivateTab            *lipgloss.Style
	InactiveHeader        *lipgloss.Style
	InactiveItem          *lipgloss.Style
	Mark                  *lipgloss.Style
	Detail                *lipgloss.Style
	Toast                 *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	PeekTitle             *lipgloss.Style
	PeekBody              *lipgloss.Style
}

type palette struct {
	accent, text, muted, faint, cursorBg, cursorFg, private, warn, ok, err string
}

var (
	dark = palette{
		accent: "33", text: "249", muted: "245", faint: "238",
		cursorBg: "238", cursorFg: "255", private: "135", warn: "214", ok: "34", err: "196",
	}
	light = palette{
		accent: "25", text: "236", muted: "242", faint: "252",
		cursorBg: "254", cursorFg: "232", private: "91", warn: "130", ok: "28", err: "160",
	}
)

var (
	darkStyles  = build(dark)
	lightStyles = build(light)
)

func build(p palette) Styles {
	c := func(v string) lipgloss.Color { return lipgloss.Color(v) }
	return Styles{
		Header:                ptr(lipgloss.NewStyle().Foreground(c(p.muted)).Bold(true)),
		Item:                  ptr(lipgloss.NewStyle().Foreground(c(p.text))),
		ItemIndicator:         ptr(lipgloss.NewStyle().Foreground(c(p.faint))),
		SelectedItemIndicator: ptr(lipgloss.NewStyle().Foreground(c(p.accent)).Background(c(p.cursorBg))),
		SelectedItem:          ptr(lipgloss.NewStyle().Foreground(c(p.cursorFg)).Background(c(p.cursorBg)).Bold(true)),
		CurrentTab:            ptr(lipgloss.NewStyle().Foreground(c(p.accent)).Bold(true)),
		PrivateTab:            ptr(lipgloss.NewStyle().Foreground(c(p.private))),
		InactiveHeader:        ptr(lipgloss.NewStyle().Foreground(c(p.warn)).Bold(true)),
		InactiveItem:          ptr(lipgloss.NewStyle().Foreground(c(p.muted)).Italic(true)),
		Mark:                  ptr(lipgloss.NewStyle().Foreground(c(p.warn)).Bold(true)),
		Detail:                ptr(lipgloss.NewStyle().Foreground(c(p.muted))),
		Toast:                 ptr(lipgloss.NewStyle().Foreground(c(p.ok)).Bold(true)),
		Error:                 ptr(lipgloss.NewStyle().Foreground(c(p.err)).Bold(true)),
		Info:                  ptr(lipgloss.NewStyle().Foreground(c(p.text))),
		Footer:                ptr(lipgloss.NewStyle().Foreground(c(p.text))),
		Filter:                ptr(lipgloss.NewStyle().Foreground(c(p.text))),
		FilterPrompt:          ptr(lipgloss.NewStyle().Foreground(c(p.ok)).Bold(true)),
		FilterPlaceholder:     ptr(lipgloss.NewStyle().Foreground(c(p.muted))),
		PeekTitle:             ptr(lipgloss.NewStyle().Foreground(c(p.muted)).Bold(true)),
		PeekBody:              ptr(lipgloss.NewStyle().Foreground(c(p.text))),
	}
}

// Default exposes the dark style set.
func Default() *Styles {
	return &darkStyles
}

// ForSettings picks the style set for the manually selected theme.
func ForSettings(settings viewmodel.ThemeSettings) *Styles {
	if settings.ManualThemeSelected == viewmodel.ThemeLight {
		return &lightStyles
	}
	return &darkStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
