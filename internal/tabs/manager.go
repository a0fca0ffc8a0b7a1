package tabs

import (
	"context"
	"errors"
)

var (
	// ErrTabNotFound is returned for an unknown tab UUID.
	ErrTabNotFound = errors.New("tabs: tab not found")
	// ErrIndexOutOfRange is returned by MoveTab for indices outside the list.
	ErrIndexOutOfRange = errors.New("tabs: index out of range")
)

// BackupKind names the close path a backup belongs to.
type BackupKind int

const (
	BackupActive BackupKind = iota
	BackupInactive
)

// Backup pairs a closed tab with where it used to be. For BackupActive the
// position indexes the full tab list, for BackupInactive the inactive list.
type Backup struct {
	Kind       BackupKind
	Tab        Tab
	Position   int
	IsSelected bool
}

// Snapshot is a consistent read of a manager's collections.
type Snapshot struct {
	Tabs         []Tab
	Normal       []Tab
	NormalActive []Tab
	Private      []Tab
	Inactive     []Tab
	Selected     string
}

// SelectedTab returns the selected tab from the snapshot.
func (s Snapshot) SelectedTab() (Tab, bool) {
	if s.Selected == "" {
		return Tab{}, false
	}
	for _, tab := range s.Tabs {
		if tab.UUID == s.Selected {
			return tab, true
		}
	}
	return Tab{}, false
}

// Reader is the query side of a Manager.
type Reader interface {
	Tabs() []Tab
	NormalTabs() []Tab
	NormalActiveTabs() []Tab
	PrivateTabs() []Tab
	InactiveTabs() []Tab
	SelectedTab() (Tab, bool)
	Tab(id string) (Tab, bool)
	Snapshot() Snapshot
}

// Manager owns the tabs of one window. Queries return copies; mutators that
// take a context may be called from any goroutine.
type Manager interface {
	Reader

	AddTab(req *Request, isPrivate bool) (Tab, error)
	SelectTab(id string) error
	// MoveTab removes the tab at from in the active normal (or private) list
	// and reinserts it at to in the shortened list: [A B C] move(0, 2) is
	// [B C A]. Inactive tabs are not counted.
	MoveTab(isPrivate bool, from, to int) error
	RemoveTab(ctx context.Context, id string) error
	RemoveAllTabs(ctx context.Context, isPrivate bool) error
	RemoveAllInactiveTabs(ctx context.Context) error
	UndoCloseTab(backup Backup) error
	UndoCloseAllTabs() error
	UndoCloseInactiveTabs() error
	Backup(kind BackupKind) (Backup, bool)
	SetBackup(backup Backup)
	ClearBackup(kind BackupKind)
	UpdateTab(id string, fn func(*Tab)) error
}
