package tabs

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestLocal(t *testing.T, opts ...Option) *Local {
	t.Helper()
	n := 0
	base := []Option{
		WithClock(func() time.Time { return testNow }),
		WithIDs(func() string {
			n++
			return fmt.Sprintf("tab-%d", n)
		}),
	}
	return NewLocal(uuid.New(), append(base, opts...)...)
}

func titles(list []Tab) []string {
	out := make([]string, len(list))
	for i, tab := range list {
		out[i] = tab.Title
	}
	return out
}

func seed(l *Local, names ...string) {
	list := make([]Tab, len(names))
	for i, name := range names {
		list[i] = Tab{UUID: name, Title: name, URL: "https://" + name + ".example", LastExecuted: testNow}
	}
	l.Restore(list, "")
}

func TestAddTabDefaultsToHome(t *testing.T) {
	l := newTestLocal(t)
	tab, err := l.AddTab(nil, false)
	if err != nil {
		t.Fatalf("AddTab: %v", err)
	}
	if !tab.IsFxHomeTab() || tab.URL != HomeURL {
		t.Fatalf("expected home tab, got %#v", tab)
	}
	if got := len(l.Tabs()); got != 1 {
		t.Fatalf("expected 1 tab, got %d", got)
	}
}

func TestMoveTabRemovesThenInserts(t *testing.T) {
	cases := []struct {
		from, to int
		want     []string
	}{
		{0, 2, []string{"B", "C", "A"}},
		{2, 0, []string{"C", "A", "B"}},
		{0, 1, []string{"B", "A", "C"}},
		{1, 1, []string{"A", "B", "C"}},
	}
	for _, tc := range cases {
		l := newTestLocal(t)
		seed(l, "A", "B", "C")
		if err := l.MoveTab(false, tc.from, tc.to); err != nil {
			t.Fatalf("MoveTab(%d,%d): %v", tc.from, tc.to, err)
		}
		if got := titles(l.Tabs()); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("MoveTab(%d,%d): expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestMoveTabSkipsOtherMode(t *testing.T) {
	l := newTestLocal(t)
	l.Restore([]Tab{
		{UUID: "A", Title: "A", LastExecuted: testNow},
		{UUID: "P", Title: "P", IsPrivate: true, LastExecuted: testNow},
		{UUID: "B", Title: "B", LastExecuted: testNow},
	}, "")
	if err := l.MoveTab(false, 0, 1); err != nil {
		t.Fatalf("MoveTab: %v", err)
	}
	if got := titles(l.Tabs()); !reflect.DeepEqual(got, []string{"P", "B", "A"}) {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestMoveTabSkipsInactiveTabs(t *testing.T) {
	old := testNow.Add(-30 * 24 * time.Hour)
	cases := []struct {
		list     []string
		from, to int
		want     []string
	}{
		{[]string{"A", "old", "B", "C"}, 1, 2, []string{"A", "old", "C", "B"}},
		{[]string{"old", "A", "B"}, 0, 1, []string{"old", "B", "A"}},
		{[]string{"A", "B", "old"}, 1, 0, []string{"B", "A", "old"}},
	}
	for _, tc := range cases {
		l := newTestLocal(t)
		list := make([]Tab, len(tc.list))
		for i, name := range tc.list {
			list[i] = Tab{UUID: name, Title: name, LastExecuted: testNow}
			if name == "old" {
				list[i].LastExecuted = old
			}
		}
		l.Restore(list, "A")
		if err := l.MoveTab(false, tc.from, tc.to); err != nil {
			t.Fatalf("MoveTab(%d,%d): %v", tc.from, tc.to, err)
		}
		if got := titles(l.Tabs()); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("MoveTab(%d,%d) on %v: expected %v, got %v", tc.from, tc.to, tc.list, tc.want, got)
		}
	}

	l := newTestLocal(t)
	l.Restore([]Tab{{UUID: "old", LastExecuted: old}, {UUID: "A", LastExecuted: testNow}}, "A")
	if err := l.MoveTab(false, 0, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange for a single active row, got %v", err)
	}
}

func TestMoveTabRejectsOutOfRange(t *testing.T) {
	l := newTestLocal(t)
	seed(l, "A", "B")
	if err := l.MoveTab(false, 0, 2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestRemoveTabRecordsBackupAndUndoRestoresPosition(t *testing.T) {
	l := newTestLocal(t)
	seed(l, "A", "B", "C")
	if err := l.SelectTab("B"); err != nil {
		t.Fatalf("SelectTab: %v", err)
	}
	if err := l.RemoveTab(context.Background(), "B"); err != nil {
		t.Fatalf("RemoveTab: %v", err)
	}
	if sel, _ := l.SelectedTab(); sel.UUID != "C" {
		t.Fatalf("expected neighbour C selected, got %q", sel.UUID)
	}
	backup, ok := l.Backup(BackupActive)
	if !ok || backup.Tab.UUID != "B" || backup.Position != 1 || !backup.IsSelected {
		t.Fatalf("unexpected backup %#v ok=%v", backup, ok)
	}
	if err := l.UndoCloseTab(backup); err != nil {
		t.Fatalf("UndoCloseTab: %v", err)
	}
	if got := titles(l.Tabs()); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("expected original order, got %v", got)
	}
	if _, ok := l.Backup(BackupActive); ok {
		t.Fatal("expected backup consumed")
	}
	if sel, _ := l.SelectedTab(); sel.UUID != "B" {
		t.Fatalf("expected restored tab selected, got %q", sel.UUID)
	}
}

func TestRemoveUnknownTab(t *testing.T) {
	l := newTestLocal(t)
	if err := l.RemoveTab(context.Background(), "missing"); !errors.Is(err, ErrTabNotFound) {
		t.Fatalf("expected ErrTabNotFound, got %v", err)
	}
}

func TestInactiveClassification(t *testing.T) {
	old := testNow.Add(-30 * 24 * time.Hour)
	l := newTestLocal(t)
	l.Restore([]Tab{
		{UUID: "old", Title: "old", LastExecuted: old},
		{UUID: "selected-old", Title: "selected-old", LastExecuted: old},
		{UUID: "fresh", Title: "fresh", LastExecuted: testNow},
		{UUID: "private-old", Title: "private-old", IsPrivate: true, LastExecuted: old},
	}, "selected-old")

	snap := l.Snapshot()
	if got := titles(snap.Inactive); !reflect.DeepEqual(got, []string{"old"}) {
		t.Fatalf("unexpected inactive %v", got)
	}
	if got := titles(snap.NormalActive); !reflect.DeepEqual(got, []string{"selected-old", "fresh"}) {
		t.Fatalf("unexpected active %v", got)
	}
	if got := titles(snap.Private); !reflect.DeepEqual(got, []string{"private-old"}) {
		t.Fatalf("unexpected private %v", got)
	}
	if len(snap.Normal) != 3 {
		t.Fatalf("expected 3 normal tabs, got %d", len(snap.Normal))
	}
}

func TestInactiveDisabled(t *testing.T) {
	l := newTestLocal(t, WithInactiveAfter(0))
	l.Restore([]Tab{{UUID: "old", LastExecuted: testNow.Add(-365 * 24 * time.Hour)}}, "")
	if got := len(l.InactiveTabs()); got != 0 {
		t.Fatalf("expected no inactive tabs, got %d", got)
	}
}

func TestInactiveUndoRestoresWithinInactiveList(t *testing.T) {
	old := testNow.Add(-30 * 24 * time.Hour)
	l := newTestLocal(t)
	l.Restore([]Tab{
		{UUID: "i1", Title: "i1", LastExecuted: old},
		{UUID: "a", Title: "a", LastExecuted: testNow},
		{UUID: "i2", Title: "i2", LastExecuted: old},
		{UUID: "i3", Title: "i3", LastExecuted: old},
	}, "a")

	tab, _ := l.Tab("i2")
	l.SetBackup(Backup{Kind: BackupInactive, Tab: tab, Position: 1})
	if err := l.RemoveTab(context.Background(), "i2"); err != nil {
		t.Fatalf("RemoveTab: %v", err)
	}
	if _, ok := l.Backup(BackupActive); ok {
		t.Fatal("closing an inactive tab must not touch the active backup")
	}
	backup, ok := l.Backup(BackupInactive)
	if !ok {
		t.Fatal("expected inactive backup")
	}
	if err := l.UndoCloseTab(backup); err != nil {
		t.Fatalf("UndoCloseTab: %v", err)
	}
	if got := titles(l.InactiveTabs()); !reflect.DeepEqual(got, []string{"i1", "i2", "i3"}) {
		t.Fatalf("unexpected inactive order %v", got)
	}
}

func TestRemoveAllAndUndo(t *testing.T) {
	l := newTestLocal(t)
	l.Restore([]Tab{
		{UUID: "A", Title: "A", LastExecuted: testNow},
		{UUID: "P", Title: "P", IsPrivate: true, LastExecuted: testNow},
		{UUID: "B", Title: "B", LastExecuted: testNow},
	}, "B")

	if err := l.RemoveAllTabs(context.Background(), false); err != nil {
		t.Fatalf("RemoveAllTabs: %v", err)
	}
	if got := titles(l.Tabs()); !reflect.DeepEqual(got, []string{"P"}) {
		t.Fatalf("expected only private tab left, got %v", got)
	}
	if err := l.UndoCloseAllTabs(); err != nil {
		t.Fatalf("UndoCloseAllTabs: %v", err)
	}
	if got := titles(l.Tabs()); !reflect.DeepEqual(got, []string{"A", "P", "B"}) {
		t.Fatalf("expected original order, got %v", got)
	}
	if sel, _ := l.SelectedTab(); sel.UUID != "B" {
		t.Fatalf("expected B selected again, got %q", sel.UUID)
	}
}

func TestRemoveAllInactiveAndUndo(t *testing.T) {
	old := testNow.Add(-30 * 24 * time.Hour)
	l := newTestLocal(t)
	l.Restore([]Tab{
		{UUID: "i1", Title: "i1", LastExecuted: old},
		{UUID: "a", Title: "a", LastExecuted: testNow},
		{UUID: "i2", Title: "i2", LastExecuted: old},
	}, "a")
	if err := l.RemoveAllInactiveTabs(context.Background()); err != nil {
		t.Fatalf("RemoveAllInactiveTabs: %v", err)
	}
	if got := titles(l.Tabs()); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("unexpected tabs %v", got)
	}
	if err := l.UndoCloseInactiveTabs(); err != nil {
		t.Fatalf("UndoCloseInactiveTabs: %v", err)
	}
	if got := titles(l.Tabs()); !reflect.DeepEqual(got, []string{"i1", "a", "i2"}) {
		t.Fatalf("unexpected tabs after undo %v", got)
	}
}

type fakePersister struct {
	tabs     []Tab
	selected string
	calls    int
}

func (f *fakePersister) SaveSession(ctx context.Context, window uuid.UUID, tabs []Tab, selected string) error {
	f.tabs = tabs
	f.selected = selected
	f.calls++
	return nil
}

func TestPersistSkipsPrivateTabs(t *testing.T) {
	p := &fakePersister{}
	l := newTestLocal(t, WithPersister(p))
	normal, _ := l.AddTab(&Request{URL: "https://example.com"}, false)
	private, _ := l.AddTab(nil, true)
	if err := l.SelectTab(private.UUID); err != nil {
		t.Fatalf("SelectTab: %v", err)
	}
	if len(p.tabs) != 1 || p.tabs[0].UUID != normal.UUID {
		t.Fatalf("expected only normal tab persisted, got %#v", p.tabs)
	}
	if p.selected != "" {
		t.Fatalf("private selection must not persist, got %q", p.selected)
	}
}

func TestUpdateTabPersistsTitleChanges(t *testing.T) {
	p := &fakePersister{}
	l := newTestLocal(t, WithPersister(p))
	tab, _ := l.AddTab(nil, false)
	calls := p.calls
	if err := l.UpdateTab(tab.UUID, func(t *Tab) { t.Progress = 0.5 }); err != nil {
		t.Fatalf("UpdateTab: %v", err)
	}
	if p.calls != calls {
		t.Fatal("progress updates must not persist")
	}
	if err := l.UpdateTab(tab.UUID, func(t *Tab) { t.Title = "Example"; t.UUID = "hijack" }); err != nil {
		t.Fatalf("UpdateTab: %v", err)
	}
	if p.calls != calls+1 {
		t.Fatal("expected title change to persist")
	}
	if _, ok := l.Tab(tab.UUID); !ok {
		t.Fatal("UpdateTab must not change the UUID")
	}
}

func TestDisplayTitle(t *testing.T) {
	cases := map[string]Tab{
		"Docs":        {Title: "  Docs "},
		"Homepage":    {URL: HomeURL},
		"example.com": {URL: "https://example.com/path"},
	}
	for want, tab := range cases {
		if got := tab.DisplayTitle(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

func TestRegistryKeepsOrder(t *testing.T) {
	r := NewRegistry()
	a, b := uuid.New(), uuid.New()
	r.Register(a, NewLocal(a))
	r.Register(b, NewLocal(b))
	r.Register(a, NewLocal(a))
	if got := r.Windows(); !reflect.DeepEqual(got, []uuid.UUID{a, b}) {
		t.Fatalf("unexpected windows %v", got)
	}
	r.Remove(a)
	if _, ok := r.Manager(a); ok {
		t.Fatal("expected a removed")
	}
}
