package action

import "github.com/atomicstack/tabtray-control/internal/viewmodel"

const (
	TypeThemeSettingsDidLoad       Type = "theme.settingsDidLoad"
	TypeReceivedThemeManagerValues Type = "theme.receivedThemeManagerValues"
	TypeToggleUseSystemAppearance  Type = "theme.toggleUseSystemAppearance"
	TypeSystemThemeChanged         Type = "theme.systemThemeChanged"
	TypeEnableAutomaticBrightness  Type = "theme.enableAutomaticBrightness"
	TypeAutomaticBrightnessChanged Type = "theme.automaticBrightnessChanged"
	TypeSwitchManualTheme          Type = "theme.switchManualTheme"
	TypeManualThemeChanged         Type = "theme.manualThemeChanged"
	TypeUpdateUserBrightness       Type = "theme.updateUserBrightness"
	TypeUserBrightnessChanged      Type = "theme.userBrightnessChanged"
	TypeSystemBrightnessChanged    Type = "theme.systemBrightnessChanged"
)

type ThemeSettingsDidLoad struct {
	Context
}

type ReceivedThemeManagerValues struct {
	Context
	Settings viewmodel.ThemeSettings `json:"settings"`
}

type ToggleUseSystemAppearance struct {
	Context
	Enabled bool `json:"enabled"`
}

type SystemThemeChanged struct {
	Context
	Enabled bool `json:"enabled"`
}

type EnableAutomaticBrightness struct {
	Context
	Enabled bool `json:"enabled"`
}

type AutomaticBrightnessChanged struct {
	Context
	Enabled bool `json:"enabled"`
}

type SwitchManualTheme struct {
	Context
	Theme viewmodel.ThemeName `json:"theme"`
}

type ManualThemeChanged struct {
	Context
	Theme viewmodel.ThemeName `json:"theme"`
}

type UpdateUserBrightness struct {
	Context
	Value float64 `json:"value"`
}

type UserBrightnessChanged struct {
	Context
	Value float64 `json:"value"`
}

// SystemBrightnessChanged reports the screen brightness, between 0 and 1.
type SystemBrightnessChanged struct {
	Context
	Value float64 `json:"value"`
}

func (ThemeSettingsDidLoad) Type() Type       { return TypeThemeSettingsDidLoad }
func (ReceivedThemeManagerValues) Type() Type { return TypeReceivedThemeManagerValues }
func (ToggleUseSystemAppearance) Type() Type  { return TypeToggleUseSystemAppearance }
func (SystemThemeChanged) Type() Type         { return TypeSystemThemeChanged }
func (EnableAutomaticBrightness) Type() Type  { return TypeEnableAutomaticBrightness }
func (AutomaticBrightnessChanged) Type() Type { return TypeAutomaticBrightnessChanged }
func (SwitchManualTheme) Type() Type          { return TypeSwitchManualTheme }
func (ManualThemeChanged) Type() Type         { return TypeManualThemeChanged }
func (UpdateUserBrightness) Type() Type       { return TypeUpdateUserBrightness }
func (UserBrightnessChanged) Type() Type      { return TypeUserBrightnessChanged }
func (SystemBrightnessChanged) Type() Type    { return TypeSystemBrightnessChanged }
