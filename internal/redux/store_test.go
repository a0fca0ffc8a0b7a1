package redux

import (
	"reflect"
	"sync"
	"testing"
)

type counter struct {
	Total int
	Log   []string
}

type op struct {
	name  string
	delta int
}

func reduceCounter(state counter, action op) counter {
	log := append(append([]string(nil), state.Log...), action.name)
	return counter{Total: state.Total + action.delta, Log: log}
}

func TestDispatchRunsReducerMiddlewaresThenSubscribers(t *testing.T) {
	var order []string
	mwA := func(d Dispatcher[op], state counter, action op) {
		order = append(order, "mwA:"+action.name)
	}
	mwB := func(d Dispatcher[op], state counter, action op) {
		if state.Total != 5 {
			t.Fatalf("expected middleware to see reduced state, got %d", state.Total)
		}
		order = append(order, "mwB:"+action.name)
	}
	store := New(counter{}, reduceCounter, mwA, mwB)
	store.Subscribe(func(state counter) {
		order = append(order, "sub")
	})

	store.Dispatch(op{name: "add", delta: 5})

	want := []string{"mwA:add", "mwB:add", "sub"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	if got := store.State().Total; got != 5 {
		t.Fatalf("expected total 5, got %d", got)
	}
}

func TestReentrantDispatchIsQueued(t *testing.T) {
	var order []string
	mw := func(d Dispatcher[op], state counter, action op) {
		order = append(order, "enter:"+action.name)
		if action.name == "first" {
			d.Dispatch(op{name: "second", delta: 1})
			if len(state.Log) != 1 {
				t.Fatalf("nested dispatch must not run inline, log=%v", state.Log)
			}
		}
		order = append(order, "exit:"+action.name)
	}
	store := New(counter{}, reduceCounter, mw)

	store.Dispatch(op{name: "first", delta: 1})

	want := []string{"enter:first", "exit:first", "enter:second", "exit:second"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	if got := store.State(); got.Total != 2 || !reflect.DeepEqual(got.Log, []string{"first", "second"}) {
		t.Fatalf("unexpected final state %#v", got)
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	store := New(counter{}, reduceCounter)
	calls := 0
	cancel := store.Subscribe(func(counter) { calls++ })
	store.Dispatch(op{name: "a", delta: 1})
	cancel()
	store.Dispatch(op{name: "b", delta: 1})
	if calls != 1 {
		t.Fatalf("expected 1 notification, got %d", calls)
	}
}

func TestConcurrentDispatchAppliesEveryAction(t *testing.T) {
	store := New(counter{}, reduceCounter)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(op{name: "inc", delta: 1})
		}()
	}
	wg.Wait()
	// the last drainer returns only after the queue is empty
	store.Dispatch(op{name: "final"})
	if got := store.State().Total; got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestPanickingMiddlewareReleasesQueue(t *testing.T) {
	mw := func(d Dispatcher[op], state counter, action op) {
		if action.name == "boom" {
			panic("boom")
		}
	}
	store := New(counter{}, reduceCounter, mw)
	func() {
		defer func() { _ = recover() }()
		store.Dispatch(op{name: "boom", delta: 1})
	}()
	store.Dispatch(op{name: "ok", delta: 1})
	if got := store.State().Total; got != 2 {
		t.Fatalf("expected store to keep working, got total %d", got)
	}
}

func TestRecorderKeepsOrder(t *testing.T) {
	var rec Recorder[op]
	rec.Dispatch(op{name: "a"})
	rec.Dispatch(op{name: "b"})
	got := rec.Actions()
	if len(got) != 2 || got[0].name != "a" || got[1].name != "b" {
		t.Fatalf("unexpected actions %#v", got)
	}
	rec.Reset()
	if len(rec.Actions()) != 0 {
		t.Fatal("expected reset to clear actions")
	}
}
