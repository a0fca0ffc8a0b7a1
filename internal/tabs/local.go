package tabs

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/atomicstack/tabtray-control/internal/logging"
	"github.com/google/uuid"
)

// DefaultInactiveAfter is how long an unselected normal tab stays active.
const DefaultInactiveAfter = 14 * 24 * time.Hour

// Persister saves the normal tabs of a window.
type Persister interface {
	SaveSession(ctx context.Context, window uuid.UUID, tabs []Tab, selected string) error
}

// ScreenshotStore keeps tab screenshots outside the process.
type ScreenshotStore interface {
	Save(id string, data []byte) error
	Load(id string) ([]byte, error)
	Prune(ctx context.Context, live []string) (int, error)
}

// Option configures a Local manager.
type Option func(*Local)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Local) { l.now = now }
}

// WithInactiveAfter sets the inactivity threshold. Zero disables inactive
// tabs.
func WithInactiveAfter(d time.Duration) Option {
	return func(l *Local) { l.inactiveAfter = d }
}

// WithPersister saves normal tabs after every mutation.
func WithPersister(p Persister) Option {
	return func(l *Local) { l.persister = p }
}

// WithScreenshots stores normal tab screenshots in s.
func WithScreenshots(s ScreenshotStore) Option {
	return func(l *Local) { l.screenshots = s }
}

// WithIDs replaces the tab UUID generator.
func WithIDs(next func() string) Option {
	return func(l *Local) { l.newID = next }
}

// Local is an in-process Manager for a single window.
type Local struct {
	window uuid.UUID

	mu             sync.Mutex
	tabs           []Tab
	selected       string
	backups        map[BackupKind]Backup
	closedAll      []Backup
	closedInactive []Backup

	saveMu        sync.Mutex
	now           func() time.Time
	inactiveAfter time.Duration
	persister     Persister
	screenshots   ScreenshotStore
	newID         func() string
}

var _ Manager = (*Local)(nil)

// NewLocal returns an empty manager for window.
func NewLocal(window uuid.UUID, opts ...Option) *Local {
	l := &Local{
		window:        window,
		backups:       make(map[BackupKind]Backup),
		now:           time.Now,
		inactiveAfter: DefaultInactiveAfter,
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Window returns the window the manager belongs to.
func (l *Local) Window() uuid.UUID {
	return l.window
}

// Restore replaces the tab list, typically with a persisted session.
// Screenshots are loaded from the screenshot store when one is configured.
func (l *Local) Restore(list []Tab, selected string) {
	restored := cloneTabs(list)
	if l.screenshots != nil {
		for i := range restored {
			if data, err := l.screenshots.Load(restored[i].UUID); err == nil {
				restored[i].Screenshot = data
			}
		}
	}
	l.mu.Lock()
	l.tabs = restored
	l.selected = ""
	if l.indexLocked(selected) >= 0 {
		l.selected = selected
	}
	l.mu.Unlock()
}

// SetInactiveAfter changes the inactivity threshold; zero disables it.
func (l *Local) SetInactiveAfter(d time.Duration) {
	l.mu.Lock()
	l.inactiveAfter = d
	l.mu.Unlock()
}

// SetScreenshot attaches a screenshot to a tab.
func (l *Local) SetScreenshot(id string, data []byte) error {
	l.mu.Lock()
	idx := l.indexLocked(id)
	if idx < 0 {
		l.mu.Unlock()
		return ErrTabNotFound
	}
	l.tabs[idx].Screenshot = append([]byte(nil), data...)
	private := l.tabs[idx].IsPrivate
	l.mu.Unlock()
	if private || l.screenshots == nil {
		return nil
	}
	if err := l.screenshots.Save(id, data); err != nil {
		return fmt.Errorf("saving screenshot: %w", err)
	}
	return nil
}

func (l *Local) Tabs() []Tab {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneTabs(l.tabs)
}

func (l *Local) NormalTabs() []Tab {
	return l.Snapshot().Normal
}

func (l *Local) NormalActiveTabs() []Tab {
	return l.Snapshot().NormalActive
}

func (l *Local) PrivateTabs() []Tab {
	return l.Snapshot().Private
}

func (l *Local) InactiveTabs() []Tab {
	return l.Snapshot().Inactive
}

func (l *Local) SelectedTab() (Tab, bool) {
	return l.Snapshot().SelectedTab()
}

func (l *Local) Tab(id string) (Tab, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := l.indexLocked(id)
	if idx < 0 {
		return Tab{}, false
	}
	return l.tabs[idx].clone(), true
}

// Snapshot reads every collection under one lock.
func (l *Local) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	snap := Snapshot{
		Tabs:         cloneTabs(l.tabs),
		Normal:       []Tab{},
		NormalActive: []Tab{},
		Private:      []Tab{},
		Inactive:     []Tab{},
		Selected:     l.selected,
	}
	for _, tab := range snap.Tabs {
		switch {
		case tab.IsPrivate:
			snap.Private = append(snap.Private, tab)
		case l.inactiveLocked(tab):
			snap.Normal = append(snap.Normal, tab)
			snap.Inactive = append(snap.Inactive, tab)
		default:
			snap.Normal = append(snap.Normal, tab)
			snap.NormalActive = append(snap.NormalActive, tab)
		}
	}
	return snap
}

func (l *Local) AddTab(req *Request, isPrivate bool) (Tab, error) {
	tab := Tab{
		UUID:         l.newID(),
		URL:          HomeURL,
		IsPrivate:    isPrivate,
		LastExecuted: l.now(),
	}
	if req != nil && req.URL != "" {
		tab.URL = req.URL
	}
	l.mu.Lock()
	l.tabs = append(l.tabs, tab)
	l.mu.Unlock()
	l.persist()
	return tab.clone(), nil
}

func (l *Local) SelectTab(id string) error {
	l.mu.Lock()
	if !l.selectLocked(id) {
		l.mu.Unlock()
		return ErrTabNotFound
	}
	l.mu.Unlock()
	l.persist()
	return nil
}

// MoveTab indexes the rows the panel shows: the private tabs, or the active
// normal tabs. Inactive tabs keep their place in the full list.
func (l *Local) MoveTab(isPrivate bool, from, to int) error {
	l.mu.Lock()
	positions := l.rowPositionsLocked(isPrivate)
	if from < 0 || from >= len(positions) || to < 0 || to >= len(positions) {
		l.mu.Unlock()
		return fmt.Errorf("move %d -> %d of %d: %w", from, to, len(positions), ErrIndexOutOfRange)
	}
	if from == to {
		l.mu.Unlock()
		return nil
	}
	src := positions[from]
	tab := l.tabs[src]
	l.tabs = append(l.tabs[:src:src], l.tabs[src+1:]...)

	remaining := l.rowPositionsLocked(isPrivate)
	dest := len(l.tabs)
	if to < len(remaining) {
		dest = remaining[to]
	} else if len(remaining) > 0 {
		dest = remaining[len(remaining)-1] + 1
	}
	l.insertLocked(dest, tab)
	l.mu.Unlock()
	l.persist()
	return nil
}

func (l *Local) RemoveTab(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	idx := l.indexLocked(id)
	if idx < 0 {
		l.mu.Unlock()
		return ErrTabNotFound
	}
	tab := l.tabs[idx]
	wasSelected := l.selected == id
	if !l.inactiveLocked(tab) {
		l.backups[BackupActive] = Backup{Kind: BackupActive, Tab: tab, Position: idx, IsSelected: wasSelected}
	}
	l.tabs = append(l.tabs[:idx:idx], l.tabs[idx+1:]...)
	if wasSelected {
		l.selectNeighbourLocked(tab.IsPrivate, idx)
	}
	l.mu.Unlock()
	l.persist()
	return nil
}

func (l *Local) RemoveAllTabs(ctx context.Context, isPrivate bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	var closed []Backup
	kept := make([]Tab, 0, len(l.tabs))
	selectionLost := false
	for idx, tab := range l.tabs {
		if tab.IsPrivate != isPrivate {
			kept = append(kept, tab)
			continue
		}
		isSelected := tab.UUID == l.selected
		selectionLost = selectionLost || isSelected
		closed = append(closed, Backup{Kind: BackupActive, Tab: tab, Position: idx, IsSelected: isSelected})
	}
	if len(closed) > 0 {
		l.closedAll = closed
	}
	l.tabs = kept
	if selectionLost {
		l.selected = ""
		if len(l.tabs) > 0 {
			l.selectLocked(l.tabs[len(l.tabs)-1].UUID)
		}
	}
	l.mu.Unlock()
	l.persist()
	return nil
}

func (l *Local) RemoveAllInactiveTabs(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	var closed []Backup
	kept := make([]Tab, 0, len(l.tabs))
	for idx, tab := range l.tabs {
		if l.inactiveLocked(tab) {
			closed = append(closed, Backup{Kind: BackupInactive, Tab: tab, Position: idx})
			continue
		}
		kept = append(kept, tab)
	}
	if len(closed) > 0 {
		l.closedInactive = closed
	}
	l.tabs = kept
	l.mu.Unlock()
	l.persist()
	return nil
}

// UndoCloseTab reinserts backup.Tab and clears the matching backup slot.
// Restoring a tab that is already present is a no-op.
func (l *Local) UndoCloseTab(backup Backup) error {
	l.mu.Lock()
	if current, ok := l.backups[backup.Kind]; ok && current.Tab.UUID == backup.Tab.UUID {
		delete(l.backups, backup.Kind)
	}
	if l.indexLocked(backup.Tab.UUID) >= 0 {
		l.mu.Unlock()
		return nil
	}
	switch backup.Kind {
	case BackupInactive:
		l.insertLocked(l.inactiveInsertIndexLocked(backup.Position), backup.Tab)
	default:
		l.insertLocked(backup.Position, backup.Tab)
	}
	if backup.IsSelected {
		l.selectLocked(backup.Tab.UUID)
	}
	l.mu.Unlock()
	l.persist()
	return nil
}

func (l *Local) UndoCloseAllTabs() error {
	l.mu.Lock()
	closed := l.closedAll
	l.closedAll = nil
	l.restoreBulkLocked(closed)
	l.mu.Unlock()
	if len(closed) > 0 {
		l.persist()
	}
	return nil
}

func (l *Local) UndoCloseInactiveTabs() error {
	l.mu.Lock()
	closed := l.closedInactive
	l.closedInactive = nil
	l.restoreBulkLocked(closed)
	l.mu.Unlock()
	if len(closed) > 0 {
		l.persist()
	}
	return nil
}

func (l *Local) Backup(kind BackupKind) (Backup, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.backups[kind]
	if ok {
		b.Tab = b.Tab.clone()
	}
	return b, ok
}

func (l *Local) SetBackup(backup Backup) {
	l.mu.Lock()
	backup.Tab = backup.Tab.clone()
	l.backups[backup.Kind] = backup
	l.mu.Unlock()
}

func (l *Local) ClearBackup(kind BackupKind) {
	l.mu.Lock()
	delete(l.backups, kind)
	l.mu.Unlock()
}

// UpdateTab applies fn to a copy of the tab and stores the result. Title and
// URL changes are persisted.
func (l *Local) UpdateTab(id string, fn func(*Tab)) error {
	l.mu.Lock()
	idx := l.indexLocked(id)
	if idx < 0 {
		l.mu.Unlock()
		return ErrTabNotFound
	}
	before := l.tabs[idx]
	updated := before.clone()
	fn(&updated)
	updated.UUID = before.UUID
	l.tabs[idx] = updated
	changed := before.URL != updated.URL || before.Title != updated.Title
	l.mu.Unlock()
	if changed {
		l.persist()
	}
	return nil
}

func (l *Local) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i, tab := range l.tabs {
		if tab.UUID == id {
			return i
		}
	}
	return -1
}

func (l *Local) inactiveLocked(tab Tab) bool {
	if l.inactiveAfter <= 0 || tab.IsPrivate || tab.UUID == l.selected {
		return false
	}
	return l.now().Sub(tab.LastExecuted) >= l.inactiveAfter
}

// rowPositionsLocked returns the full-list index of every panel row.
func (l *Local) rowPositionsLocked(isPrivate bool) []int {
	var positions []int
	for i, tab := range l.tabs {
		if tab.IsPrivate != isPrivate {
			continue
		}
		if !isPrivate && l.inactiveLocked(tab) {
			continue
		}
		positions = append(positions, i)
	}
	return positions
}

func (l *Local) insertLocked(pos int, tab Tab) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(l.tabs) {
		pos = len(l.tabs)
	}
	l.tabs = append(l.tabs, Tab{})
	copy(l.tabs[pos+1:], l.tabs[pos:])
	l.tabs[pos] = tab
}

// inactiveInsertIndexLocked maps a position in the inactive list to an index
// in the full list.
func (l *Local) inactiveInsertIndexLocked(position int) int {
	var inactive []int
	for i, tab := range l.tabs {
		if l.inactiveLocked(tab) {
			inactive = append(inactive, i)
		}
	}
	switch {
	case position >= 0 && position < len(inactive):
		return inactive[position]
	case len(inactive) > 0:
		return inactive[len(inactive)-1] + 1
	default:
		return len(l.tabs)
	}
}

func (l *Local) selectLocked(id string) bool {
	idx := l.indexLocked(id)
	if idx < 0 {
		return false
	}
	l.selected = id
	l.tabs[idx].LastExecuted = l.now()
	return true
}

func (l *Local) selectNeighbourLocked(isPrivate bool, removed int) {
	l.selected = ""
	for i := removed; i < len(l.tabs); i++ {
		if l.tabs[i].IsPrivate == isPrivate {
			l.selectLocked(l.tabs[i].UUID)
			return
		}
	}
	for i := removed - 1; i >= 0; i-- {
		if l.tabs[i].IsPrivate == isPrivate {
			l.selectLocked(l.tabs[i].UUID)
			return
		}
	}
}

func (l *Local) restoreBulkLocked(closed []Backup) {
	sorted := append([]Backup(nil), closed...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })
	for _, b := range sorted {
		if l.indexLocked(b.Tab.UUID) >= 0 {
			continue
		}
		l.insertLocked(b.Position, b.Tab)
	}
	for _, b := range sorted {
		if b.IsSelected {
			l.selectLocked(b.Tab.UUID)
		}
	}
}

// persist saves the normal tabs and prunes screenshots no tab or backup
// refers to. Failures are logged; the in-memory state stays authoritative.
func (l *Local) persist() {
	if l.persister == nil && l.screenshots == nil {
		return
	}
	l.saveMu.Lock()
	defer l.saveMu.Unlock()

	l.mu.Lock()
	normal := make([]Tab, 0, len(l.tabs))
	live := make([]string, 0, len(l.tabs))
	for _, tab := range l.tabs {
		if tab.IsPrivate {
			continue
		}
		normal = append(normal, tab.clone())
		live = append(live, tab.UUID)
	}
	selected := ""
	if idx := l.indexLocked(l.selected); idx >= 0 && !l.tabs[idx].IsPrivate {
		selected = l.selected
	}
	for _, b := range l.backups {
		live = append(live, b.Tab.UUID)
	}
	for _, b := range append(append([]Backup(nil), l.closedAll...), l.closedInactive...) {
		live = append(live, b.Tab.UUID)
	}
	l.mu.Unlock()

	ctx := context.Background()
	if l.persister != nil {
		if err := l.persister.SaveSession(ctx, l.window, normal, selected); err != nil {
			logging.Error(fmt.Errorf("saving session %s: %w", l.window, err))
		}
	}
	if l.screenshots != nil {
		if _, err := l.screenshots.Prune(ctx, live); err != nil {
			logging.Error(fmt.Errorf("pruning screenshots: %w", err))
		}
	}
}
