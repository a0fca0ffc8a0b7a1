package tabs

import (
	"sync"

	"github.com/google/uuid"
)

// Registry maps windows to their tab managers.
type Registry struct {
	mu       sync.RWMutex
	managers map[uuid.UUID]Manager
	order    []uuid.UUID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{managers: make(map[uuid.UUID]Manager)}
}

// Register stores m for window, replacing any previous manager.
func (r *Registry) Register(window uuid.UUID, m Manager) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.managers[window]; !ok {
		r.order = append(r.order, window)
	}
	r.managers[window] = m
}

// Manager returns the manager for window.
func (r *Registry) Manager(window uuid.UUID) (Manager, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.managers[window]
	return m, ok
}

// Remove forgets window.
func (r *Registry) Remove(window uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.managers[window]; !ok {
		return
	}
	delete(r.managers, window)
	for i, id := range r.order {
		if id == window {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
}

// Windows lists registered windows in registration order.
func (r *Registry) Windows() []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]uuid.UUID(nil), r.order...)
}
