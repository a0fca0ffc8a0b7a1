// Package app wires the tab tray: persistence, tab managers, the store and
// its middlewares, the background watcher and the console.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/backend"
	"github.com/atomicstack/tabtray-control/internal/data/dispatcher"
	"github.com/atomicstack/tabtray-control/internal/engine"
	"github.com/atomicstack/tabtray-control/internal/logging"
	"github.com/atomicstack/tabtray-control/internal/logging/events"
	"github.com/atomicstack/tabtray-control/internal/middleware"
	"github.com/atomicstack/tabtray-control/internal/prefs"
	"github.com/atomicstack/tabtray-control/internal/redux"
	"github.com/atomicstack/tabtray-control/internal/screenshot"
	"github.com/atomicstack/tabtray-control/internal/state"
	"github.com/atomicstack/tabtray-control/internal/tabs"
	"github.com/atomicstack/tabtray-control/internal/tabstore"
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	"github.com/google/uuid"
)

// Config describes user-provided application options.
type Config struct {
	DataDir       string
	PrefsFile     string
	Width         int
	Height        int
	ShowFooter    bool
	Private       bool
	// InactiveAfter overrides the preferences file when positive.
	InactiveAfter time.Duration
	SweepInterval time.Duration
}

// Option adjusts how New builds the application.
type Option func(*options)

type options struct {
	clock     func() time.Time
	clipboard middleware.Clipboard
}

// WithClock replaces time.Now for every tab manager.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.clock = now }
}

// WithClipboard replaces the system clipboard.
func WithClipboard(c middleware.Clipboard) Option {
	return func(o *options) { o.clipboard = c }
}

type Store = redux.Store[state.AppState, action.Action]

// App owns every long lived component of a tab tray process.
type App struct {
	cfg  Config
	opts options

	db       *tabstore.Store
	prefs    *prefs.Manager
	registry *tabs.Registry
	tasks    *backend.Tasks
	store    *Store
	tabMW    *middleware.TabManager
	privacy  *middleware.Privacy
	events   *dispatcher.Dispatcher

	mu       sync.Mutex
	locals   map[uuid.UUID]*tabs.Local
	sessions map[string]*engine.TabSession
}

// New opens the data directory and builds the store.
func New(ctx context.Context, cfg Config, opts ...Option) (*App, error) {
	o := options{clock: time.Now, clipboard: middleware.SystemClipboard{}}
	for _, opt := range opts {
		opt(&o)
	}
	db, err := tabstore.Open(filepath.Join(cfg.DataDir, tabstore.FileName))
	if err != nil {
		return nil, err
	}
	pm, err := prefs.NewManager(cfg.PrefsFile)
	if err != nil {
		logging.Error(fmt.Errorf("loading preferences: %w", err))
	}

	a := &App{
		cfg:      cfg,
		opts:     o,
		db:       db,
		prefs:    pm,
		registry: tabs.NewRegistry(),
		tasks:    backend.NewTasks(ctx),
		locals:   make(map[uuid.UUID]*tabs.Local),
		sessions: make(map[string]*engine.TabSession),
	}
	a.tabMW = middleware.NewTabManager(a.registry, a.tasks,
		middleware.WithProfile(db),
		middleware.WithClipboard(o.clipboard),
	)
	a.privacy = middleware.NewPrivacy()
	a.store = redux.New(state.AppState{}, state.Reduce,
		a.tabMW.Middleware(),
		a.privacy.Middleware(),
		middleware.NewTheme(pm).Middleware(),
		middleware.NewRemoteTabs(remoteTabs{db}, a.tasks).Middleware(),
	)
	a.events = dispatcher.New(a.store, a.registry, a.applyPrefs)
	return a, nil
}

func (a *App) Store() *Store                      { return a.store }
func (a *App) Tasks() *backend.Tasks              { return a.tasks }
func (a *App) Dispatcher() *dispatcher.Dispatcher { return a.events }
func (a *App) Prefs() *prefs.Manager              { return a.prefs }
func (a *App) TabManager() *middleware.TabManager { return a.tabMW }
func (a *App) Privacy() *middleware.Privacy       { return a.privacy }
func (a *App) Windows() []uuid.UUID               { return a.registry.Windows() }

// Dispatch opens the action's window on first use and hands the action to
// the store.
func (a *App) Dispatch(act action.Action) error {
	if _, err := a.OpenWindow(context.Background(), act.Window()); err != nil {
		return err
	}
	a.store.Dispatch(act)
	return nil
}

// DefaultWindow returns the first persisted window, or a new one when the
// database holds no session yet.
func (a *App) DefaultWindow(ctx context.Context) (uuid.UUID, error) {
	windows, err := a.db.Windows(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if len(windows) > 0 {
		return windows[0], nil
	}
	return uuid.New(), nil
}

// OpenWindow returns the tab manager for window, restoring its persisted
// session the first time.
func (a *App) OpenWindow(ctx context.Context, window uuid.UUID) (*tabs.Local, error) {
	if window == uuid.Nil {
		return nil, state.ErrWindowRequired
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if local, ok := a.locals[window]; ok {
		return local, nil
	}
	list, selected, err := a.db.LoadSession(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("restoring window %s: %w", window, err)
	}
	shots := screenshot.Open(filepath.Join(a.cfg.DataDir, "screenshots", window.String()))
	local := tabs.NewLocal(window,
		tabs.WithClock(a.opts.clock),
		tabs.WithInactiveAfter(a.inactiveAfter(a.prefs.Prefs())),
		tabs.WithScreenshots(shots),
		tabs.WithPersister(a.db),
	)
	local.Restore(list, selected)
	a.locals[window] = local
	a.registry.Register(window, local)
	events.App.Restore(window.String(), len(list))
	return local, nil
}

// Manager returns the open tab manager for window.
func (a *App) Manager(window uuid.UUID) (*tabs.Local, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	local, ok := a.locals[window]
	return local, ok
}

// Session returns the engine session of a tab. Title and URL changes are
// reported to the store as TabUpdated.
func (a *App) Session(window uuid.UUID, tabID string) (*engine.TabSession, error) {
	local, ok := a.Manager(window)
	if !ok {
		return nil, fmt.Errorf("window %s is not open", window)
	}
	if _, ok := local.Tab(tabID); !ok {
		return nil, fmt.Errorf("%w: %s", tabs.ErrTabNotFound, tabID)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if s, ok := a.sessions[tabID]; ok {
		return s, nil
	}
	s := engine.NewTabSession(tabID, local, func(id string) {
		a.store.Dispatch(action.TabUpdated{Context: action.In(window), TabUUID: id})
	})
	a.sessions[tabID] = s
	return s, nil
}

// Watcher returns a watcher over the inactive set of every open window and,
// when prefsChanges is not nil, the preferences file.
func (a *App) Watcher(prefsChanges <-chan struct{}) *backend.Watcher {
	var sources []backend.Source
	for _, window := range a.registry.Windows() {
		if local, ok := a.Manager(window); ok {
			sources = append(sources, backend.InactiveTabsSource(window, local))
		}
	}
	if prefsChanges != nil {
		sources = append(sources, backend.PrefsSource(a.prefs, prefsChanges))
	}
	return backend.NewWatcher(a.cfg.SweepInterval, sources...)
}

func (a *App) inactiveAfter(p prefs.Prefs) time.Duration {
	if a.cfg.InactiveAfter > 0 {
		return a.cfg.InactiveAfter
	}
	return p.InactiveAfter()
}

func (a *App) applyPrefs(p prefs.Prefs) {
	events.Theme.Reload(a.prefs.Path())
	after := a.inactiveAfter(p)
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, local := range a.locals {
		local.SetInactiveAfter(after)
	}
}

// Close waits for in-flight middleware work and closes the database.
func (a *App) Close() error {
	a.tasks.Wait()
	a.tasks.Stop()
	events.App.Stop()
	return a.db.Close()
}

// remoteTabs reports a missing sync account the way the remote tabs
// middleware expects.
type remoteTabs struct {
	db *tabstore.Store
}

func (r remoteTabs) ClientTabs(ctx context.Context) ([]viewmodel.RemoteClient, error) {
	clients, err := r.db.ClientTabs(ctx)
	if errors.Is(err, tabstore.ErrNoAccount) {
		return nil, middleware.ErrNotLoggedIn
	}
	return clients, err
}
