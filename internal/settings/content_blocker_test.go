package settings

import (
	"testing"

	"github.com/atomicstack/tabtray-control/internal/prefs"
)

func TestContentBlockerStatus(t *testing.T) {
	cases := []struct {
		name     string
		enabled  bool
		strength prefs.Strength
		want     string
	}{
		{"off", false, prefs.StrengthStrict, StatusOff},
		{"basic", true, prefs.StrengthBasic, StatusStandard},
		{"strict", true, prefs.StrengthStrict, StatusStrict},
		{"unknown strength", true, prefs.Strength("paranoid"), StatusStandard},
	}
	for _, tc := range cases {
		p := prefs.Default()
		p.ContentBlocking.Enabled = tc.enabled
		p.ContentBlocking.Strength = tc.strength
		if got := NewContentBlocker(p).Status(); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestContentBlockerDefaultsOn(t *testing.T) {
	if got := NewContentBlocker(prefs.Default()).Status(); got != StatusStandard {
		t.Fatalf("expected %q, got %q", StatusStandard, got)
	}
}
