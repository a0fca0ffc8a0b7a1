// Package prefs handles user preferences persistence. Preferences are stored
// as TOML, by default in ~/.config/tabtray-control/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultPrefsPath      = "~/.config/tabtray-control/prefs.toml"
	defaultInactiveDays   = 14
	defaultUserBrightness = 0.4
	defaultSysBrightness  = 0.5
)

// Strength is a content blocking level.
type Strength string

const (
	StrengthBasic  Strength = "basic"
	StrengthStrict Strength = "strict"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme           Theme           `toml:"theme"`
	InactiveTabs    InactiveTabs    `toml:"inactive_tabs"`
	ContentBlocking ContentBlocking `toml:"content_blocking"`
}

type Theme struct {
	UseSystemAppearance     bool    `toml:"use_system_appearance"`
	AutomaticBrightness     bool    `toml:"automatic_brightness"`
	Manual                  string  `toml:"manual"`
	UserBrightnessThreshold float64 `toml:"user_brightness_threshold"`
	SystemBrightness        float64 `toml:"system_brightness"`
}

type InactiveTabs struct {
	Enabled   bool `toml:"enabled"`
	AfterDays int  `toml:"after_days"`
}

type ContentBlocking struct {
	Enabled  bool     `toml:"enabled"`
	Strength Strength `toml:"strength"`
}

// Default returns the preferences used when no file exists.
func Default() Prefs {
	return Prefs{
		Theme: Theme{
			UseSystemAppearance:     true,
			Manual:                  "light",
			UserBrightnessThreshold: defaultUserBrightness,
			SystemBrightness:        defaultSysBrightness,
		},
		InactiveTabs:    InactiveTabs{Enabled: true, AfterDays: defaultInactiveDays},
		ContentBlocking: ContentBlocking{Enabled: true, Strength: StrengthBasic},
	}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// InactiveAfter is the inactivity threshold, zero when disabled.
func (p Prefs) InactiveAfter() time.Duration {
	if !p.InactiveTabs.Enabled || p.InactiveTabs.AfterDays <= 0 {
		return 0
	}
	return time.Duration(p.InactiveTabs.AfterDays) * 24 * time.Hour
}

func (p *Prefs) normalize() {
	switch strings.ToLower(strings.TrimSpace(p.Theme.Manual)) {
	case "dark":
		p.Theme.Manual = "dark"
	default:
		p.Theme.Manual = "light"
	}
	p.Theme.UserBrightnessThreshold = clamp(p.Theme.UserBrightnessThreshold)
	p.Theme.SystemBrightness = clamp(p.Theme.SystemBrightness)
	if p.ContentBlocking.Strength != StrengthStrict {
		p.ContentBlocking.Strength = StrengthBasic
	}
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Load reads preferences from path. A missing file yields the defaults; a
// malformed one yields the defaults and the parse error.
func Load(path string) (Prefs, error) {
	prefs := Default()
	resolved, err := ResolvePath(path)
	if err != nil {
		return prefs, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("read prefs: %w", err)
	}
	if err := toml.Unmarshal(data, &prefs); err != nil {
		return Default(), fmt.Errorf("parse prefs %s: %w", resolved, err)
	}
	prefs.normalize()
	return prefs, nil
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := ResolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	p.normalize()
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	tmp := resolved + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp, resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

// ResolvePath expands ~ and makes path absolute; empty means the default.
func ResolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultPrefsPath
	}
	expanded, err := homedir.Expand(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Abs(expanded)
}
