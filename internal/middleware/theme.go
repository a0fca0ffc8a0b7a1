package middleware

import (
	"fmt"

	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/logging"
	"github.com/atomicstack/tabtray-control/internal/logging/events"
	"github.com/atomicstack/tabtray-control/internal/state"
)

// Theme applies theme settings changes and echoes the applied values.
type Theme struct {
	manager ThemeManager
}

func NewTheme(manager ThemeManager) *Theme {
	return &Theme{manager: manager}
}

func (t *Theme) Middleware() Middleware {
	return t.handle
}

func (t *Theme) handle(d Dispatcher, _ state.AppState, a action.Action) {
	if t.manager == nil {
		return
	}
	ctx := action.In(a.Window())
	name := a.Window().String()
	switch a := a.(type) {
	case action.ThemeSettingsDidLoad:
		d.Dispatch(action.ReceivedThemeManagerValues{Context: ctx, Settings: t.manager.Settings()})
	case action.ToggleUseSystemAppearance:
		events.Theme.Set(name, "useSystemAppearance", a.Enabled)
		if t.apply("system theme", t.manager.SetSystemTheme(a.Enabled)) {
			d.Dispatch(action.SystemThemeChanged{Context: ctx, Enabled: a.Enabled})
		}
	case action.EnableAutomaticBrightness:
		events.Theme.Set(name, "automaticBrightness", a.Enabled)
		if t.apply("automatic brightness", t.manager.SetAutomaticBrightness(a.Enabled)) {
			d.Dispatch(action.AutomaticBrightnessChanged{Context: ctx, Enabled: a.Enabled})
		}
	case action.SwitchManualTheme:
		events.Theme.Set(name, "manualTheme", string(a.Theme))
		if t.apply("manual theme", t.manager.SetManualTheme(a.Theme)) {
			d.Dispatch(action.ManualThemeChanged{Context: ctx, Theme: a.Theme})
		}
	case action.UpdateUserBrightness:
		events.Theme.Set(name, "userBrightness", a.Value)
		if t.apply("user brightness", t.manager.SetUserBrightness(a.Value)) {
			d.Dispatch(action.UserBrightnessChanged{Context: ctx, Value: a.Value})
		}
	}
}

func (t *Theme) apply(setting string, err error) bool {
	if err != nil {
		logging.Error(fmt.Errorf("setting %s: %w", setting, err))
		return false
	}
	return true
}
