// Package middleware holds the side-effecting stages of the store pipeline.
// Each middleware sees every action after the reducer ran and may dispatch
// follow-up actions; the store queues those behind the current one.
package middleware

import (
	"context"
	"errors"

	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/redux"
	"github.com/atomicstack/tabtray-control/internal/state"
	"github.com/atomicstack/tabtray-control/internal/tabs"
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	"github.com/atotto/clipboard"
	"github.com/google/uuid"
)

// Middleware is a pipeline stage over the application state tree.
type Middleware = redux.Middleware[state.AppState, action.Action]

// Dispatcher feeds actions back into the store.
type Dispatcher = redux.Dispatcher[action.Action]

// Managers resolves the tab manager owning a window.
type Managers interface {
	Manager(window uuid.UUID) (tabs.Manager, bool)
}

// Profile answers bookmark and sync questions for the tab peek.
type Profile interface {
	IsBookmarked(ctx context.Context, url string) (bool, error)
	CreateBookmark(ctx context.Context, url, title string) error
	ClientGUIDs(ctx context.Context) ([]string, error)
	HasSyncableAccount() bool
}

// Clipboard receives copied URLs.
type Clipboard interface {
	WriteAll(text string) error
}

// ThemeManager applies theme changes and reports the current values.
type ThemeManager interface {
	Settings() viewmodel.ThemeSettings
	SetSystemTheme(enabled bool) error
	SetAutomaticBrightness(enabled bool) error
	SetManualTheme(name viewmodel.ThemeName) error
	SetUserBrightness(value float64) error
}

// RemoteTabsProvider lists tabs open on other devices.
type RemoteTabsProvider interface {
	ClientTabs(ctx context.Context) ([]viewmodel.RemoteClient, error)
}

// ErrNotLoggedIn is returned by a RemoteTabsProvider without an account.
var ErrNotLoggedIn = errors.New("notLoggedIn")

// NopProfile has no bookmarks and no sync account.
type NopProfile struct{}

func (NopProfile) IsBookmarked(context.Context, string) (bool, error) { return false, nil }
func (NopProfile) CreateBookmark(context.Context, string, string) error {
	return errors.New("bookmarks unavailable")
}
func (NopProfile) ClientGUIDs(context.Context) ([]string, error) { return nil, nil }
func (NopProfile) HasSyncableAccount() bool                      { return false }

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
