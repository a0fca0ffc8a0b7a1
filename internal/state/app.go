package state

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/google/uuid"
)

var (
	// ErrWindowRequired is returned for lookups with the nil window UUID.
	ErrWindowRequired = errors.New("state: window UUID required")
	// ErrScreenNotFound is returned when no state exists for the screen.
	ErrScreenNotFound = errors.New("state: screen not found")
)

// ScreenState is the state of one screen in one window.
type ScreenState interface {
	Screen() action.ScreenType
	Window() uuid.UUID
	reduce(a action.Action) ScreenState
}

// AppState is the root of the state tree.
type AppState struct {
	ActiveScreens ActiveScreensState
}

// ActiveScreensState lists the screens currently shown.
type ActiveScreensState struct {
	Screens []ScreenState
}

// Reduce is the root reducer.
func Reduce(s AppState, a action.Action) AppState {
	return AppState{ActiveScreens: reduceActiveScreens(s.ActiveScreens, a)}
}

func reduceActiveScreens(s ActiveScreensState, a action.Action) ActiveScreensState {
	screens := s.Screens
	switch a := a.(type) {
	case action.ShowScreen:
		if a.Window() != uuid.Nil && indexOf(screens, a.Screen, a.Window()) < 0 {
			if fresh, ok := newScreenState(a.Screen, a.Window()); ok {
				screens = append(append([]ScreenState(nil), screens...), fresh)
			}
		}
	case action.CloseScreen:
		if idx := indexOf(screens, a.Screen, a.Window()); idx >= 0 {
			screens = append(append([]ScreenState(nil), screens[:idx]...), screens[idx+1:]...)
		}
	}

	out := make([]ScreenState, len(screens))
	for i, screen := range screens {
		out[i] = screen.reduce(a)
	}
	return ActiveScreensState{Screens: out}
}

func newScreenState(screen action.ScreenType, window uuid.UUID) (ScreenState, bool) {
	switch screen {
	case action.ScreenTabsTray:
		return NewTabsTrayState(window), true
	case action.ScreenTabsPanel:
		return NewTabsPanelState(window, false), true
	case action.ScreenRemoteTabsPanel:
		return NewRemoteTabsPanelState(window), true
	case action.ScreenTabPeek:
		return NewTabPeekState(window), true
	case action.ScreenThemeSettings:
		return NewThemeSettingsState(window), true
	case action.ScreenBrowserViewController:
		return NewBrowserViewControllerState(window), true
	}
	return nil, false
}

func indexOf(screens []ScreenState, screen action.ScreenType, window uuid.UUID) int {
	for i, s := range screens {
		if s.Screen() == screen && s.Window() == window {
			return i
		}
	}
	return -1
}

// ScreenState returns the state for screen in window.
func (s AppState) ScreenState(screen action.ScreenType, window uuid.UUID) (ScreenState, error) {
	if window == uuid.Nil {
		return nil, ErrWindowRequired
	}
	if idx := indexOf(s.ActiveScreens.Screens, screen, window); idx >= 0 {
		return s.ActiveScreens.Screens[idx], nil
	}
	return nil, fmt.Errorf("%w: %s in window %s", ErrScreenNotFound, screen, window)
}

func lookup[T ScreenState](s AppState, screen action.ScreenType, window uuid.UUID) (T, bool) {
	var zero T
	found, err := s.ScreenState(screen, window)
	if err != nil {
		return zero, false
	}
	typed, ok := found.(T)
	return typed, ok
}

// TabsTray returns the tray state for window.
func (s AppState) TabsTray(window uuid.UUID) (TabsTrayState, bool) {
	return lookup[TabsTrayState](s, action.ScreenTabsTray, window)
}

// TabsPanel returns the tabs panel state for window.
func (s AppState) TabsPanel(window uuid.UUID) (TabsPanelState, bool) {
	return lookup[TabsPanelState](s, action.ScreenTabsPanel, window)
}

// RemoteTabsPanel returns the synced tabs panel state for window.
func (s AppState) RemoteTabsPanel(window uuid.UUID) (RemoteTabsPanelState, bool) {
	return lookup[RemoteTabsPanelState](s, action.ScreenRemoteTabsPanel, window)
}

// TabPeek returns the tab peek state for window.
func (s AppState) TabPeek(window uuid.UUID) (TabPeekState, bool) {
	return lookup[TabPeekState](s, action.ScreenTabPeek, window)
}

// ThemeSettings returns the theme settings state for window.
func (s AppState) ThemeSettings(window uuid.UUID) (ThemeSettingsState, bool) {
	return lookup[ThemeSettingsState](s, action.ScreenThemeSettings, window)
}

// BrowserViewController returns the browser state for window.
func (s AppState) BrowserViewController(window uuid.UUID) (BrowserViewControllerState, bool) {
	return lookup[BrowserViewControllerState](s, action.ScreenBrowserViewController, window)
}

// MarshalJSON tags every screen with its type.
func (s AppState) MarshalJSON() ([]byte, error) {
	type entry struct {
		Screen action.ScreenType `json:"screen"`
		Window uuid.UUID         `json:"window"`
		State  ScreenState       `json:"state"`
	}
	entries := make([]entry, 0, len(s.ActiveScreens.Screens))
	for _, screen := range s.ActiveScreens.Screens {
		entries = append(entries, entry{Screen: screen.Screen(), Window: screen.Window(), State: screen})
	}
	return json.Marshal(struct {
		ActiveScreens []entry `json:"activeScreens"`
	}{ActiveScreens: entries})
}
