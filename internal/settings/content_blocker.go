// Package settings derives the status lines of the settings screens.
package settings

import "github.com/atomicstack/tabtray-control/internal/prefs"

const (
	StatusOff      = "Off"
	StatusStandard = "Standard"
	StatusStrict   = "Strict"
)

// ContentBlocker is the enhanced tracking protection setting.
type ContentBlocker struct {
	Enabled  bool
	Strength prefs.Strength
}

// NewContentBlocker reads the setting from p. An unknown strength counts as
// basic.
func NewContentBlocker(p prefs.Prefs) ContentBlocker {
	strength := p.ContentBlocking.Strength
	if strength != prefs.StrengthStrict {
		strength = prefs.StrengthBasic
	}
	return ContentBlocker{Enabled: p.ContentBlocking.Enabled, Strength: strength}
}

// Status is the value shown next to the setting's title.
func (c ContentBlocker) Status() string {
	if !c.Enabled {
		return StatusOff
	}
	if c.Strength == prefs.StrengthStrict {
		return StatusStrict
	}
	return StatusStandard
}
