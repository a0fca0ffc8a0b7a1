package prefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())

	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
	assert.Equal(t, 14*24*time.Hour, p.InactiveAfter())
}

func TestLoadMergesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	data := "[theme]\nmanual = \"DARK\"\nuser_brightness_threshold = 3.0\n\n[inactive_tabs]\nenabled = false\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", p.Theme.Manual)
	assert.Equal(t, 1.0, p.Theme.UserBrightnessThreshold)
	assert.True(t, p.Theme.UseSystemAppearance)
	assert.Zero(t, p.InactiveAfter())
	assert.Equal(t, StrengthBasic, p.ContentBlocking.Strength)
}

func TestLoadMalformedFileReportsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = [broken"), 0o644))

	p, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")
	want := Default()
	want.ContentBlocking.Strength = StrengthStrict
	want.InactiveTabs.AfterDays = 7
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 7*24*time.Hour, got.InactiveAfter())
}

func TestManagerAppliesThemeChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m, err := NewManager(path)
	require.NoError(t, err)

	require.NoError(t, m.SetSystemTheme(false))
	require.NoError(t, m.SetAutomaticBrightness(true))
	require.NoError(t, m.SetManualTheme(viewmodel.ThemeDark))
	require.NoError(t, m.SetUserBrightness(0.7))
	assert.Error(t, m.SetManualTheme("sepia"))
	assert.Error(t, m.SetUserBrightness(1.5))

	settings := m.Settings()
	assert.False(t, settings.UseSystemAppearance)
	assert.True(t, settings.IsAutomaticBrightnessEnabled)
	assert.Equal(t, viewmodel.ThemeDark, settings.ManualThemeSelected)
	assert.Equal(t, 0.7, settings.UserBrightnessThreshold)

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, m.Prefs(), reloaded)
}

func TestManagerReloadKeepsPrefsOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, m.SetManualTheme(viewmodel.ThemeDark))

	require.NoError(t, os.WriteFile(path, []byte("not = [toml"), 0o644))
	p, err := m.Reload()
	require.Error(t, err)
	assert.Equal(t, "dark", p.Theme.Manual)
}

func TestWatchSignalsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, Save(path, Default()))
	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change signal")
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-changes:
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}
