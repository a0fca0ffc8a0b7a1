package middleware

import (
	"sync"

	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/logging/events"
	"github.com/atomicstack/tabtray-control/internal/state"
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	"github.com/google/uuid"
)

// Privacy tracks the privacy mode of every window and announces changes.
type Privacy struct {
	mu    sync.Mutex
	modes map[uuid.UUID]bool
}

func NewPrivacy() *Privacy {
	return &Privacy{modes: make(map[uuid.UUID]bool)}
}

func (p *Privacy) Middleware() Middleware {
	return p.handle
}

// IsPrivate reports the window's current mode.
func (p *Privacy) IsPrivate(window uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.modes[window]
}

func (p *Privacy) handle(d Dispatcher, _ state.AppState, a action.Action) {
	switch a := a.(type) {
	case action.SetPrivateMode:
		p.update(d, a.Window(), a.IsPrivate)
	case action.ChangePanel:
		if a.Panel != viewmodel.PanelSyncedTabs {
			p.update(d, a.Window(), a.Panel.IsPrivate())
		}
	}
}

func (p *Privacy) update(d Dispatcher, window uuid.UUID, isPrivate bool) {
	p.mu.Lock()
	prev, known := p.modes[window]
	p.modes[window] = isPrivate
	p.mu.Unlock()
	if known && prev == isPrivate {
		return
	}
	events.Privacy.Changed(window.String(), isPrivate)
	d.Dispatch(action.PrivateModeUpdated{Context: action.In(window), IsPrivate: isPrivate})
}
