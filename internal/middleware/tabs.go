package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/backend"
	"github.com/atomicstack/tabtray-control/internal/logging"
	"github.com/atomicstack/tabtray-control/internal/logging/events"
	"github.com/atomicstack/tabtray-control/internal/state"
	"github.com/atomicstack/tabtray-control/internal/tabs"
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	"github.com/google/uuid"
)

// TabManager translates tab tray actions into tab manager calls and
// dispatches the refreshed models. Removals run as tasks so the dispatch
// queue never waits on persistence; everything else runs inline.
//
// Actions naming a tab or screen state that does not exist are dropped.
type TabManager struct {
	managers  Managers
	tasks     *backend.Tasks
	profile   Profile
	clipboard Clipboard

	mu            sync.Mutex
	selectedPanel map[uuid.UUID]viewmodel.Panel
}

// TabManagerOption configures a TabManager.
type TabManagerOption func(*TabManager)

// WithProfile sets the bookmark and sync account source. Nil keeps
// NopProfile.
func WithProfile(p Profile) TabManagerOption {
	return func(m *TabManager) {
		if p != nil {
			m.profile = p
		}
	}
}

// WithClipboard replaces the system clipboard used by copy URL.
func WithClipboard(c Clipboard) TabManagerOption {
	return func(m *TabManager) {
		if c != nil {
			m.clipboard = c
		}
	}
}

// NewTabManager returns the coordinator for the windows in managers.
func NewTabManager(managers Managers, tasks *backend.Tasks, opts ...TabManagerOption) *TabManager {
	m := &TabManager{
		managers:      managers,
		tasks:         tasks,
		profile:       NopProfile{},
		clipboard:     SystemClipboard{},
		selectedPanel: make(map[uuid.UUID]viewmodel.Panel),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Middleware returns the pipeline stage.
func (m *TabManager) Middleware() Middleware {
	return m.handle
}

// SelectedPanel returns the last panel the window's tray showed.
func (m *TabManager) SelectedPanel(window uuid.UUID) viewmodel.Panel {
	m.mu.Lock()
	defer m.mu.Unlock()
	if panel, ok := m.selectedPanel[window]; ok {
		return panel
	}
	return viewmodel.PanelTabs
}

func (m *TabManager) setPanel(window uuid.UUID, panel viewmodel.Panel) {
	m.mu.Lock()
	m.selectedPanel[window] = panel
	m.mu.Unlock()
}

func (m *TabManager) handle(d Dispatcher, st state.AppState, a action.Action) {
	mgr, ok := m.managers.Manager(a.Window())
	if !ok {
		if handledByTabManager(a) {
			events.Tab.Skip(a.Window().String(), string(a.Type()), events.ReasonNoManager)
		}
		return
	}
	w := window{id: a.Window(), mgr: mgr, d: d}

	switch a := a.(type) {
	case action.TabTrayDidLoad:
		m.tabTrayDidLoad(w, a.Panel)
	case action.ChangePanel:
		m.changePanel(w, a.Panel)
	case action.TabPanelDidLoad:
		events.Tab.LoadPanel(w.name(), a.IsPrivate)
		w.d.Dispatch(action.DidLoadTabPanel{Context: w.ctx(), Model: viewmodel.Display(mgr.Snapshot(), a.IsPrivate, true)})
	case action.AddNewTab:
		m.addNewTab(w, a.Request, a.IsPrivate)
	case action.MoveTab:
		m.moveTab(w, st, a.From, a.To)
	case action.CloseTab:
		m.closeTab(w, a.TabUUID)
	case action.UndoClose:
		m.undoClose(w, st)
	case action.CloseAllTabs:
		m.closeAllTabs(w, st)
	case action.UndoCloseAllTabs:
		events.Tab.UndoCloseAll(w.name())
		if err := mgr.UndoCloseAllTabs(); err != nil {
			w.fail("undoCloseAllTabs", err)
		}
	case action.SelectTab:
		m.selectTab(w, a.TabUUID)
	case action.CloseAllInactiveTabs:
		m.closeAllInactiveTabs(w, st)
	case action.UndoCloseAllInactiveTabs:
		events.Tab.UndoCloseAllInactive(w.name())
		if err := mgr.UndoCloseInactiveTabs(); err != nil {
			w.fail("undoCloseAllInactiveTabs", err)
			return
		}
		w.refreshInactive(false)
	case action.CloseInactiveTab:
		m.closeInactiveTab(w, st, a.TabUUID)
	case action.UndoCloseInactiveTab:
		m.undoCloseInactiveTab(w)
	case action.LearnMorePrivateMode:
		m.addNewTab(w, a.Request, true)
		w.d.Dispatch(action.RefreshTab{Context: w.ctx(), Model: viewmodel.Display(mgr.Snapshot(), true, false)})
		w.d.Dispatch(action.DismissTabTray{Context: w.ctx()})
	case action.OpenSelectedURL:
		m.addNewTab(w, &tabs.Request{URL: a.URL}, false)
		w.d.Dispatch(action.DismissTabTray{Context: w.ctx()})
	case action.TabUpdated:
		if panel, ok := st.TabsPanel(w.id); ok {
			w.refreshTabs(panel.IsPrivateMode, false)
		}
	case action.InactiveTabsChanged:
		if panel, ok := st.TabsPanel(w.id); ok {
			w.refreshTabs(panel.IsPrivateMode, false)
			w.refreshInactive(panel.IsPrivateMode)
		}
	case action.DidLoadTabPeek:
		m.loadTabPeek(w, a.TabUUID)
	case action.AddToBookmarks:
		m.addToBookmarks(w, a.TabUUID)
	case action.SendToDevice:
		tab, ok := w.tab(a, a.TabUUID)
		if !ok || tab.URL == "" {
			return
		}
		events.Peek.Share(w.name(), tab.URL)
		w.d.Dispatch(action.ShowShareSheet{Context: w.ctx(), URL: tab.URL})
	case action.CopyURL:
		tab, ok := w.tab(a, a.TabUUID)
		if !ok {
			return
		}
		events.Peek.Copy(w.name(), tab.URL)
		if err := m.clipboard.WriteAll(tab.URL); err != nil {
			w.fail("copyURL", err)
			return
		}
		w.d.Dispatch(action.TabPanelShowToast{Context: w.ctx(), Toast: viewmodel.Toast{Kind: viewmodel.ToastCopyURL}})
	case action.PeekCloseTab:
		m.closeTab(w, a.TabUUID)
		w.d.Dispatch(action.TabPanelShowToast{Context: w.ctx(), Toast: viewmodel.Toast{Kind: viewmodel.ToastSingleTab}})
	}
}

func (m *TabManager) tabTrayDidLoad(w window, panel viewmodel.Panel) {
	m.setPanel(w.id, panel)
	events.Tab.LoadTray(w.name(), string(panel))
	model := viewmodel.Tray(w.mgr.Snapshot(), panel, m.profile.HasSyncableAccount())
	w.d.Dispatch(action.DidLoadTabTray{Context: w.ctx(), Model: model})
}

func (m *TabManager) changePanel(w window, panel viewmodel.Panel) {
	m.setPanel(w.id, panel)
	events.Tab.ChangePanel(w.name(), string(panel))
	if panel == viewmodel.PanelSyncedTabs {
		return
	}
	model := viewmodel.Display(w.mgr.Snapshot(), panel.IsPrivate(), false)
	w.d.Dispatch(action.DidLoadTabPanel{Context: w.ctx(), Model: model})
}

func (m *TabManager) addNewTab(w window, req *tabs.Request, isPrivate bool) {
	tab, err := w.mgr.AddTab(req, isPrivate)
	if err != nil {
		w.fail("addTab", err)
		return
	}
	events.Tab.Add(w.name(), tab.UUID, isPrivate)
	if err := w.mgr.SelectTab(tab.UUID); err != nil {
		w.fail("selectTab", err)
	}
	w.refreshTabs(isPrivate, true)
	w.d.Dispatch(action.DismissTabTray{Context: w.ctx()})
}

func (m *TabManager) moveTab(w window, st state.AppState, from, to int) {
	panel, ok := w.panel(st, action.TypeMoveTab)
	if !ok {
		return
	}
	events.Tab.Move(w.name(), from, to)
	if err := w.mgr.MoveTab(panel.IsPrivateMode, from, to); err != nil {
		w.fail("moveTab", err)
		return
	}
	w.refreshTabs(panel.IsPrivateMode, false)
}

// closeTab removes a tab in the background. Closing the only normal tab
// dismisses the tray and hands the toast to the browser. Every close replaces
// the active backup, including closes of inactive tabs.
func (m *TabManager) closeTab(w window, id string) *backend.Task {
	return m.tasks.Go(string(action.TypeCloseTab), func(ctx context.Context) error {
		snap := w.mgr.Snapshot()
		position := -1
		for i, tab := range snap.Tabs {
			if tab.UUID == id {
				position = i
				break
			}
		}
		if position < 0 {
			events.Tab.Skip(w.name(), string(action.TypeCloseTab), events.ReasonMissingTab)
			return nil
		}
		tab := snap.Tabs[position]
		wasInactive := containsTab(snap.Inactive, id)
		isLast := len(snap.Normal) == 1
		events.Tab.Close(w.name(), id, isLast)
		if err := w.mgr.RemoveTab(ctx, id); err != nil {
			if errors.Is(err, tabs.ErrTabNotFound) {
				return nil
			}
			return fmt.Errorf("removing tab %s: %w", id, err)
		}
		if wasInactive {
			w.mgr.SetBackup(tabs.Backup{Kind: tabs.BackupActive, Tab: tab, Position: position})
		}
		w.refreshSelectedMode()
		toast := viewmodel.Toast{Kind: viewmodel.ToastSingleTab}
		if isLast {
			w.d.Dispatch(action.DismissTabTray{Context: w.ctx()})
			w.d.Dispatch(action.BrowserShowToast{Context: w.ctx(), Toast: toast})
			return nil
		}
		w.d.Dispatch(action.TabPanelShowToast{Context: w.ctx(), Toast: toast})
		return nil
	})
}

func (m *TabManager) undoClose(w window, st state.AppState) {
	panel, ok := w.panel(st, action.TypeUndoClose)
	if !ok {
		return
	}
	backup, ok := w.mgr.Backup(tabs.BackupActive)
	if !ok {
		events.Tab.Skip(w.name(), string(action.TypeUndoClose), events.ReasonNoBackup)
		return
	}
	events.Tab.UndoClose(w.name(), backup.Tab.UUID)
	if err := w.mgr.UndoCloseTab(backup); err != nil {
		w.fail("undoCloseTab", err)
		return
	}
	w.refreshTabs(panel.IsPrivateMode, false)
}

func (m *TabManager) closeAllTabs(w window, st state.AppState) *backend.Task {
	panel, ok := w.panel(st, action.TypeCloseAllTabs)
	if !ok {
		return nil
	}
	isPrivate := panel.IsPrivateMode
	return m.tasks.Go(string(action.TypeCloseAllTabs), func(ctx context.Context) error {
		count := len(modeTabs(w.mgr, isPrivate))
		events.Tab.CloseAll(w.name(), count, isPrivate)
		if err := w.mgr.RemoveAllTabs(ctx, isPrivate); err != nil {
			return fmt.Errorf("removing all tabs: %w", err)
		}
		w.refreshTabs(isPrivate, false)
		w.d.Dispatch(action.DismissTabTray{Context: w.ctx()})
		w.d.Dispatch(action.BrowserShowToast{Context: w.ctx(), Toast: viewmodel.Toast{Kind: viewmodel.ToastAllTabs, Count: count}})
		return nil
	})
}

func (m *TabManager) selectTab(w window, id string) {
	if _, ok := w.mgr.Tab(id); !ok {
		events.Tab.Skip(w.name(), string(action.TypeSelectTab), events.ReasonMissingTab)
		return
	}
	events.Tab.Select(w.name(), id)
	if err := w.mgr.SelectTab(id); err != nil {
		w.fail("selectTab", err)
		return
	}
	w.d.Dispatch(action.DismissTabTray{Context: w.ctx()})
}

func (m *TabManager) closeAllInactiveTabs(w window, st state.AppState) *backend.Task {
	panel, ok := w.panel(st, action.TypeCloseAllInactiveTabs)
	if !ok {
		return nil
	}
	count := len(panel.InactiveTabs)
	return m.tasks.Go(string(action.TypeCloseAllInactiveTabs), func(ctx context.Context) error {
		events.Tab.CloseAllInactive(w.name(), count)
		if err := w.mgr.RemoveAllInactiveTabs(ctx); err != nil {
			return fmt.Errorf("removing inactive tabs: %w", err)
		}
		w.d.Dispatch(action.RefreshInactiveTabs{Context: w.ctx(), Tabs: []viewmodel.InactiveTabsModel{}})
		w.d.Dispatch(action.TabPanelShowToast{Context: w.ctx(), Toast: viewmodel.Toast{Kind: viewmodel.ToastAllInactiveTabs, Count: count}})
		return nil
	})
}

// closeInactiveTab records the inactive backup before removing the tab so
// undo can put it back at the same place in the inactive list.
func (m *TabManager) closeInactiveTab(w window, st state.AppState, id string) *backend.Task {
	panel, ok := w.panel(st, action.TypeCloseInactiveTab)
	if !ok {
		return nil
	}
	position := -1
	for i, row := range panel.InactiveTabs {
		if row.TabUUID == id {
			position = i
			break
		}
	}
	return m.tasks.Go(string(action.TypeCloseInactiveTab), func(ctx context.Context) error {
		tab, ok := w.mgr.Tab(id)
		if !ok {
			events.Tab.Skip(w.name(), string(action.TypeCloseInactiveTab), events.ReasonMissingTab)
			return nil
		}
		events.Tab.CloseInactive(w.name(), id, position)
		w.mgr.SetBackup(tabs.Backup{Kind: tabs.BackupInactive, Tab: tab, Position: position})
		if err := w.mgr.RemoveTab(ctx, id); err != nil {
			w.mgr.ClearBackup(tabs.BackupInactive)
			if errors.Is(err, tabs.ErrTabNotFound) {
				return nil
			}
			return fmt.Errorf("removing inactive tab %s: %w", id, err)
		}
		w.refreshInactive(false)
		w.d.Dispatch(action.TabPanelShowToast{Context: w.ctx(), Toast: viewmodel.Toast{Kind: viewmodel.ToastSingleInactiveTabs}})
		return nil
	})
}

func (m *TabManager) undoCloseInactiveTab(w window) {
	backup, ok := w.mgr.Backup(tabs.BackupInactive)
	if !ok {
		events.Tab.Skip(w.name(), string(action.TypeUndoCloseInactiveTab), events.ReasonNoBackup)
		return
	}
	events.Tab.UndoCloseInactive(w.name(), backup.Tab.UUID)
	if err := w.mgr.UndoCloseTab(backup); err != nil {
		w.fail("undoCloseInactiveTab", err)
		return
	}
	w.refreshInactive(false)
}

func (m *TabManager) loadTabPeek(w window, id string) *backend.Task {
	tab, ok := w.tab(action.DidLoadTabPeek{}, id)
	if !ok {
		return nil
	}
	return m.tasks.Go(string(action.TypeDidLoadTabPeek), func(ctx context.Context) error {
		bookmarked, err := m.profile.IsBookmarked(ctx, tab.URL)
		if err != nil {
			logging.Error(fmt.Errorf("checking bookmark for %s: %w", tab.URL, err))
			bookmarked = false
		}
		clients, err := m.profile.ClientGUIDs(ctx)
		if err != nil {
			logging.Error(fmt.Errorf("listing sync clients: %w", err))
		}
		model := viewmodel.Peek(tab, bookmarked, len(clients) > 0)
		events.Peek.Load(w.name(), id, model.CanTabBeSaved)
		w.d.Dispatch(action.LoadTabPeek{Context: w.ctx(), Model: model})
		return nil
	})
}

func (m *TabManager) addToBookmarks(w window, id string) *backend.Task {
	tab, ok := w.tab(action.AddToBookmarks{}, id)
	if !ok || tab.URL == "" {
		return nil
	}
	title := strings.TrimSpace(tab.Title)
	if title == "" {
		title = tab.URL
	}
	return m.tasks.Go(string(action.TypeAddToBookmarks), func(ctx context.Context) error {
		events.Peek.Bookmark(w.name(), tab.URL)
		if err := m.profile.CreateBookmark(ctx, tab.URL, title); err != nil {
			return fmt.Errorf("bookmarking %s: %w", tab.URL, err)
		}
		w.d.Dispatch(action.TabPanelShowToast{Context: w.ctx(), Toast: viewmodel.Toast{Kind: viewmodel.ToastAddBookmark}})
		return nil
	})
}

func handledByTabManager(a action.Action) bool {
	switch a.(type) {
	case action.TabTrayDidLoad, action.ChangePanel, action.TabPanelDidLoad,
		action.AddNewTab, action.MoveTab, action.CloseTab, action.UndoClose,
		action.CloseAllTabs, action.UndoCloseAllTabs, action.SelectTab,
		action.CloseAllInactiveTabs, action.UndoCloseAllInactiveTabs,
		action.CloseInactiveTab, action.UndoCloseInactiveTab,
		action.LearnMorePrivateMode, action.OpenSelectedURL,
		action.DidLoadTabPeek, action.AddToBookmarks, action.SendToDevice,
		action.CopyURL, action.PeekCloseTab:
		return true
	}
	return false
}

func containsTab(list []tabs.Tab, id string) bool {
	for _, tab := range list {
		if tab.UUID == id {
			return true
		}
	}
	return false
}

func modeTabs(mgr tabs.Reader, isPrivate bool) []tabs.Tab {
	if isPrivate {
		return mgr.PrivateTabs()
	}
	return mgr.NormalTabs()
}

// window bundles what one action's handler needs.
type window struct {
	id  uuid.UUID
	mgr tabs.Manager
	d   Dispatcher
}

func (w window) ctx() action.Context { return action.In(w.id) }
func (w window) name() string        { return w.id.String() }

func (w window) fail(op string, err error) {
	events.Tab.Error(w.name(), op, err)
	logging.Error(fmt.Errorf("window %s: %s: %w", w.name(), op, err))
}

func (w window) panel(st state.AppState, t action.Type) (state.TabsPanelState, bool) {
	panel, ok := st.TabsPanel(w.id)
	if !ok {
		events.Tab.Skip(w.name(), string(t), events.ReasonMissingState)
	}
	return panel, ok
}

func (w window) tab(a action.Action, id string) (tabs.Tab, bool) {
	tab, ok := w.mgr.Tab(id)
	if !ok {
		events.Tab.Skip(w.name(), string(a.Type()), events.ReasonMissingTab)
	}
	return tab, ok
}

func (w window) refreshTabs(isPrivate, scroll bool) {
	model := viewmodel.Display(w.mgr.Snapshot(), isPrivate, scroll)
	w.d.Dispatch(action.RefreshTab{Context: w.ctx(), Model: model})
}

// refreshSelectedMode rebuilds the panel in the mode of the tab that is
// selected after a close.
func (w window) refreshSelectedMode() {
	isPrivate := false
	if tab, ok := w.mgr.SelectedTab(); ok {
		isPrivate = tab.IsPrivate
	}
	w.refreshTabs(isPrivate, false)
}

func (w window) refreshInactive(isPrivate bool) {
	rows := viewmodel.InactiveTabs(w.mgr.InactiveTabs(), isPrivate)
	w.d.Dispatch(action.RefreshInactiveTabs{Context: w.ctx(), Tabs: rows})
}
