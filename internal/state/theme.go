package state

import (
	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	"github.com/google/uuid"
)

// ThemeSettingsState mirrors the theme manager for the settings screen.
type ThemeSettingsState struct {
	WindowUUID uuid.UUID `json:"window"`
	viewmodel.ThemeSettings
}

func NewThemeSettingsState(window uuid.UUID) ThemeSettingsState {
	return ThemeSettingsState{
		WindowUUID:    window,
		ThemeSettings: viewmodel.ThemeSettings{ManualThemeSelected: viewmodel.ThemeLight},
	}
}

func (s ThemeSettingsState) Screen() action.ScreenType { return action.ScreenThemeSettings }
func (s ThemeSettingsState) Window() uuid.UUID         { return s.WindowUUID }

func (s ThemeSettingsState) reduce(a action.Action) ScreenState {
	if a.Window() != s.WindowUUID {
		return s
	}
	switch a := a.(type) {
	case action.ReceivedThemeManagerValues:
		s.ThemeSettings = a.Settings
	case action.SystemThemeChanged:
		s.UseSystemAppearance = a.Enabled
	case action.AutomaticBrightnessChanged:
		s.IsAutomaticBrightnessEnabled = a.Enabled
	case action.ManualThemeChanged:
		s.ManualThemeSelected = a.Theme
	case action.UserBrightnessChanged:
		s.UserBrightnessThreshold = a.Value
	case action.SystemBrightnessChanged:
		s.SystemBrightness = a.Value
	}
	return s
}
