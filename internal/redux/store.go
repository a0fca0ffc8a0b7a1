// Package redux implements a small state container: a single reducer, an
// ordered middleware chain and subscribers, driven by a serialized dispatch
// queue.
//
// Dispatch may be called from any goroutine, including from inside a
// middleware. Actions are queued and processed one at a time: the reducer
// runs, then every middleware in registration order, then every subscriber.
// A middleware that dispatches while the queue is draining never nests; its
// action runs after the current one completes. The goroutine that finds the
// queue idle becomes the drainer and returns once the queue is empty; every
// other caller returns as soon as its action is queued.
package redux

import (
	"fmt"
	"sync"

	"github.com/atomicstack/tabtray-control/internal/logging/events"
)

// Reducer computes the next state. It must not have side effects.
type Reducer[S, A any] func(state S, action A) S

// Dispatcher submits actions to a store.
type Dispatcher[A any] interface {
	Dispatch(action A)
}

// Middleware observes every action after the reducer produced the new state.
// Work that blocks must be scheduled elsewhere; follow-up actions go back
// through d.
type Middleware[S, A any] func(d Dispatcher[A], state S, action A)

type subscriber[S any] struct {
	id int
	fn func(S)
}

// Store owns the current state.
type Store[S, A any] struct {
	mu          sync.Mutex
	state       S
	reducer     Reducer[S, A]
	middlewares []Middleware[S, A]
	subscribers []subscriber[S]
	nextID      int
	queue       []A
	draining    bool
}

// New builds a store with the initial state and middlewares in the order
// they run.
func New[S, A any](initial S, reducer Reducer[S, A], middlewares ...Middleware[S, A]) *Store[S, A] {
	return &Store[S, A]{
		state:       initial,
		reducer:     reducer,
		middlewares: append([]Middleware[S, A](nil), middlewares...),
	}
}

// State returns the current snapshot.
func (s *Store[S, A]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to receive the state after every processed action.
// The returned function removes the subscription.
func (s *Store[S, A]) Subscribe(fn func(S)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subscribers = append(s.subscribers, subscriber[S]{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Dispatch queues action and drains the queue unless another goroutine is
// already doing so.
func (s *Store[S, A]) Dispatch(action A) {
	s.mu.Lock()
	s.queue = append(s.queue, action)
	if s.draining {
		s.mu.Unlock()
		events.Store.Queue(typeName(action))
		return
	}
	s.draining = true
	s.mu.Unlock()

	finished := false
	defer func() {
		if finished {
			return
		}
		// a middleware or subscriber panicked; release the queue so the
		// store stays usable
		s.mu.Lock()
		s.draining = false
		s.queue = nil
		s.mu.Unlock()
	}()

	for {
		next, ok := s.pop()
		if !ok {
			finished = true
			return
		}
		s.process(next)
	}
}

func (s *Store[S, A]) pop() (A, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero A
	if len(s.queue) == 0 {
		s.draining = false
		s.queue = nil
		return zero, false
	}
	next := s.queue[0]
	s.queue[0] = zero
	s.queue = s.queue[1:]
	return next, true
}

func (s *Store[S, A]) process(action A) {
	s.mu.Lock()
	s.state = s.reducer(s.state, action)
	state := s.state
	middlewares := s.middlewares
	subscribers := append([]subscriber[S](nil), s.subscribers...)
	s.mu.Unlock()

	events.Store.Dispatch(typeName(action))
	for _, mw := range middlewares {
		mw(s, state, action)
	}
	for _, sub := range subscribers {
		sub.fn(state)
	}
}

func typeName(action any) string {
	if s, ok := action.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", action)
}
