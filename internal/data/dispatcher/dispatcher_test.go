package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/backend"
	"github.com/atomicstack/tabtray-control/internal/prefs"
	"github.com/atomicstack/tabtray-control/internal/redux"
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	"github.com/google/uuid"
)

type windowList []uuid.UUID

func (w windowList) Windows() []uuid.UUID { return w }

func TestInactiveEventDispatchesForWindow(t *testing.T) {
	rec := &redux.Recorder[action.Action]{}
	window := uuid.New()
	d := New(rec, windowList{window}, nil)

	res := d.Handle(backend.Event{Kind: backend.KindInactiveTabs, Window: window, Data: []string{"a"}})
	if !res.InactiveUpdated || res.Dispatched != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	actions := rec.Actions()
	if len(actions) != 1 || actions[0].Type() != action.TypeInactiveTabsChanged || actions[0].Window() != window {
		t.Fatalf("expected inactiveTabsChanged for window, got %v", actions)
	}
}

func TestInactiveEventWithoutWindowIsDropped(t *testing.T) {
	rec := &redux.Recorder[action.Action]{}
	d := New(rec, windowList{uuid.New()}, nil)
	if res := d.Handle(backend.Event{Kind: backend.KindInactiveTabs}); res.Dispatched != 0 {
		t.Fatalf("expected nothing dispatched, got %+v", res)
	}
}

func TestPrefsEventFansOutToWindows(t *testing.T) {
	rec := &redux.Recorder[action.Action]{}
	windows := windowList{uuid.New(), uuid.New()}
	var seen prefs.Prefs
	d := New(rec, windows, func(p prefs.Prefs) { seen = p })

	p := prefs.Default()
	p.Theme.Manual = "dark"
	p.InactiveTabs.AfterDays = 3
	res := d.Handle(backend.Event{Kind: backend.KindPrefs, Data: p})
	if !res.PrefsUpdated || res.Dispatched != 2 {
		t.Fatalf("unexpected result %+v", res)
	}
	if seen.InactiveTabs.AfterDays != 3 {
		t.Fatalf("expected prefs hook to run, got %+v", seen)
	}
	for i, a := range rec.Actions() {
		received, ok := a.(action.ReceivedThemeManagerValues)
		if !ok || received.Window() != windows[i] || received.Settings.ManualThemeSelected != viewmodel.ThemeDark {
			t.Fatalf("unexpected action %d: %#v", i, a)
		}
	}
}

func TestErrorEventsAreLoggedOnly(t *testing.T) {
	rec := &redux.Recorder[action.Action]{}
	d := New(rec, windowList{uuid.New()}, nil)
	res := d.Handle(backend.Event{Kind: backend.KindPrefs, Err: errors.New("boom")})
	if res.PrefsUpdated || len(rec.Actions()) != 0 {
		t.Fatalf("expected error event to be ignored, got %+v", res)
	}
}

func TestRunDrainsUntilClosed(t *testing.T) {
	rec := &redux.Recorder[action.Action]{}
	window := uuid.New()
	d := New(rec, windowList{window}, nil)
	events := make(chan backend.Event, 2)
	events <- backend.Event{Kind: backend.KindInactiveTabs, Window: window}
	events <- backend.Event{Kind: backend.KindInactiveTabs, Window: window}
	close(events)
	d.Run(events)
	if got := len(rec.Actions()); got != 2 {
		t.Fatalf("expected 2 actions, got %d", got)
	}
}
