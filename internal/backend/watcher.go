package backend

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind identifies what a watcher event carries.
type Kind int

const (
	// KindInactiveTabs carries the sorted UUIDs of a window's inactive tabs.
	KindInactiveTabs Kind = iota
	// KindPrefs carries freshly loaded preferences.
	KindPrefs
)

func (k Kind) String() string {
	switch k {
	case KindInactiveTabs:
		return "inactive-tabs"
	case KindPrefs:
		return "prefs"
	}
	return "unknown"
}

// Event conveys changed data or a fetch error.
type Event struct {
	Kind   Kind
	Window uuid.UUID
	Data   interface{}
	Err    error
}

// Source is one thing the watcher keeps an eye on. Fetch runs on every tick
// and on every signal from Changes; an event is emitted only when the result
// differs from the previous one. The first fetch sets the baseline.
type Source struct {
	Kind    Kind
	Window  uuid.UUID
	Fetch   func(context.Context) (interface{}, error)
	Changes <-chan struct{}
}

// Watcher re-evaluates sources in the background and publishes changes.
type Watcher struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts one goroutine per source. A non-positive interval
// disables ticking; sources then only react to Changes.
func NewWatcher(interval time.Duration, sources ...Source) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}
	for _, src := range sources {
		w.wg.Add(1)
		go w.watch(src, newThrottle(250*time.Millisecond))
	}
	go func() {
		w.wg.Wait()
		close(w.events)
	}()
	return w
}

// Events returns the channel of changes. It is closed after Stop once every
// source goroutine has exited.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all source goroutines have exited.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) watch(src Source, limit *throttle) {
	defer w.wg.Done()

	last, err := src.Fetch(w.ctx)
	if err != nil {
		last = nil
	}

	var tick <-chan time.Time
	if w.interval > 0 {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		tick = ticker.C
	}
	changes := src.Changes

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-tick:
		case _, ok := <-changes:
			if !ok {
				changes = nil
				if tick == nil {
					return
				}
				continue
			}
		}
		limit.wait()
		data, err := src.Fetch(w.ctx)
		if err != nil {
			if !w.emit(Event{Kind: src.Kind, Window: src.Window, Err: err}) {
				return
			}
			continue
		}
		if reflect.DeepEqual(data, last) {
			continue
		}
		last = data
		if !w.emit(Event{Kind: src.Kind, Window: src.Window, Data: data}) {
			return
		}
	}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
