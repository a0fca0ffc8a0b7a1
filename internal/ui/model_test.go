package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/backend"
	"github.com/atomicstack/tabtray-control/internal/middleware"
	"github.com/atomicstack/tabtray-control/internal/redux"
	"github.com/atomicstack/tabtray-control/internal/state"
	"github.com/atomicstack/tabtray-control/internal/tabs"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type recordingClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *recordingClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

func (c *recordingClipboard) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

type fixture struct {
	window   uuid.UUID
	mgr      *tabs.Local
	registry *tabs.Registry
	tasks    *backend.Tasks
	store    *redux.Store[state.AppState, action.Action]
	clip     *recordingClipboard
}

func newFixture(t *testing.T, selected string, list ...tabs.Tab) *fixture {
	t.Helper()
	f := &fixture{
		window:   uuid.New(),
		registry: tabs.NewRegistry(),
		tasks:    backend.NewTasks(context.Background()),
		clip:     &recordingClipboard{},
	}
	next := 0
	f.mgr = tabs.NewLocal(f.window,
		tabs.WithClock(func() time.Time { return testNow }),
		tabs.WithIDs(func() string {
			next++
			return fmt.Sprintf("new%d", next)
		}),
	)
	f.mgr.Restore(list, selected)
	f.registry.Register(f.window, f.mgr)
	coordinator := middleware.NewTabManager(f.registry, f.tasks, middleware.WithClipboard(f.clip))
	f.store = redux.New(state.AppState{}, state.Reduce,
		coordinator.Middleware(),
		middleware.NewPrivacy().Middleware(),
	)
	t.Cleanup(f.tasks.Wait)
	return f
}

func (f *fixture) harness(opts Options) *Harness {
	opts.Store = f.store
	opts.Window = f.window
	if opts.Width == 0 {
		opts.Width = 80
	}
	if opts.Height == 0 {
		opts.Height = 20
	}
	return NewHarness(NewModel(opts))
}

// settle waits for background tab work and lets the model re-read the store.
func (f *fixture) settle(h *Harness) {
	f.tasks.Wait()
	h.Refresh()
}

func activeTab(id, title, url string) tabs.Tab {
	return tabs.Tab{UUID: id, Title: title, URL: url, LastExecuted: testNow}
}

func staleTab(id, title, url string) tabs.Tab {
	return tabs.Tab{UUID: id, Title: title, URL: url, LastExecuted: testNow.Add(-30 * 24 * time.Hour)}
}

func threeTabs() []tabs.Tab {
	return []tabs.Tab{
		activeTab("a", "Hacker News", "https://news.ycombinator.com"),
		activeTab("b", "Go Documentation", "https://go.dev/doc"),
		activeTab("c", "Weather", "https://weather.gov"),
	}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func itemIDs(m *Model) []string {
	out := make([]string, len(m.level.Items))
	for i, item := range m.level.Items {
		out[i] = item.ID
	}
	return out
}

func TestNewModelLoadsTabsAndFocusesSelected(t *testing.T) {
	f := newFixture(t, "b", threeTabs()...)
	h := f.harness(Options{})

	m := h.Model()
	if got := strings.Join(itemIDs(m), ","); got != "a,b,c" {
		t.Fatalf("expected rows a,b,c, got %s", got)
	}
	if m.level.Cursor != 1 {
		t.Fatalf("expected cursor on selected tab, got %d", m.level.Cursor)
	}
	view := h.View()
	if !strings.Contains(view, "Tabs (3)") {
		t.Fatalf("expected header with tab count, got:\n%s", view)
	}
	if !strings.Contains(view, "go.dev") {
		t.Fatalf("expected host column, got:\n%s", view)
	}
}

func TestEnterSelectsTabAndQuits(t *testing.T) {
	f := newFixture(t, "b", threeTabs()...)
	h := f.harness(Options{})

	h.Keys(tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	if !h.Quit() {
		t.Fatalf("expected selecting a tab to dismiss the tray")
	}
	if selected := f.mgr.Snapshot().Selected; selected != "c" {
		t.Fatalf("expected tab c selected, got %q", selected)
	}
}

func TestAddNewTabDismissesTray(t *testing.T) {
	f := newFixture(t, "a", threeTabs()...)
	h := f.harness(Options{})

	h.Send(runeKey("n"))

	if !h.Quit() {
		t.Fatalf("expected new tab to dismiss the tray")
	}
	if got := len(f.mgr.Snapshot().Normal); got != 4 {
		t.Fatalf("expected 4 tabs, got %d", got)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		f := newFixture(t, "a", threeTabs()...)
		h := f.harness(Options{})
		h.Send(key)
		if !h.Quit() {
			t.Fatalf("expected %q to quit", key.String())
		}
	}
}

func TestStateChangeRefreshesRows(t *testing.T) {
	f := newFixture(t, "a", threeTabs()...)
	h := f.harness(Options{})

	f.store.Dispatch(action.CloseTab{Context: action.In(f.window), TabUUID: "b"})
	f.settle(h)

	if got := strings.Join(itemIDs(h.Model()), ","); got != "a,c" {
		t.Fatalf("expected rows a,c after close, got %s", got)
	}
}
