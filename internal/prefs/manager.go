package prefs

import (
	"fmt"
	"sync"

	"github.com/atomicstack/tabtray-control/internal/viewmodel"
)

// Manager owns a preferences file and applies theme changes to it.
type Manager struct {
	mu    sync.Mutex
	path  string
	prefs Prefs
}

// NewManager loads path. A malformed file is reported but the manager still
// starts from the defaults.
func NewManager(path string) (*Manager, error) {
	p, err := Load(path)
	return &Manager{path: path, prefs: p}, err
}

func (m *Manager) Path() string { return m.path }

func (m *Manager) Prefs() Prefs {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs
}

// Reload rereads the file; on error the current preferences are kept.
func (m *Manager) Reload() (Prefs, error) {
	p, err := Load(m.path)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		return m.prefs, err
	}
	m.prefs = p
	return p, nil
}

func (m *Manager) update(fn func(*Prefs)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.prefs
	fn(&next)
	if err := Save(m.path, next); err != nil {
		return err
	}
	next.normalize()
	m.prefs = next
	return nil
}

// Settings reports the theme values the theme settings screen shows.
func (m *Manager) Settings() viewmodel.ThemeSettings {
	return ThemeSettings(m.Prefs())
}

// ThemeSettings converts the theme section into its view model.
func ThemeSettings(p Prefs) viewmodel.ThemeSettings {
	return viewmodel.ThemeSettings{
		UseSystemAppearance:          p.Theme.UseSystemAppearance,
		IsAutomaticBrightnessEnabled: p.Theme.AutomaticBrightness,
		ManualThemeSelected:          viewmodel.ThemeName(p.Theme.Manual),
		UserBrightnessThreshold:      p.Theme.UserBrightnessThreshold,
		SystemBrightness:             p.Theme.SystemBrightness,
	}
}

func (m *Manager) SetSystemTheme(enabled bool) error {
	return m.update(func(p *Prefs) { p.Theme.UseSystemAppearance = enabled })
}

func (m *Manager) SetAutomaticBrightness(enabled bool) error {
	return m.update(func(p *Prefs) { p.Theme.AutomaticBrightness = enabled })
}

func (m *Manager) SetManualTheme(name viewmodel.ThemeName) error {
	if name != viewmodel.ThemeLight && name != viewmodel.ThemeDark {
		return fmt.Errorf("unknown theme %q", name)
	}
	return m.update(func(p *Prefs) { p.Theme.Manual = string(name) })
}

func (m *Manager) SetUserBrightness(value float64) error {
	if value < 0 || value > 1 {
		return fmt.Errorf("brightness must be between 0 and 1 (got %v)", value)
	}
	return m.update(func(p *Prefs) { p.Theme.UserBrightnessThreshold = value })
}
