package redux

import "sync"

// Recorder is a Dispatcher that keeps every action it receives. Middleware
// tests use it in place of a store.
type Recorder[A any] struct {
	mu      sync.Mutex
	actions []A
}

// Dispatch records action.
func (r *Recorder[A]) Dispatch(action A) {
	r.mu.Lock()
	r.actions = append(r.actions, action)
	r.mu.Unlock()
}

// Actions returns a copy of the recorded actions in dispatch order.
func (r *Recorder[A]) Actions() []A {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]A(nil), r.actions...)
}

// Reset forgets recorded actions.
func (r *Recorder[A]) Reset() {
	r.mu.Lock()
	r.actions = nil
	r.mu.Unlock()
}
