package middleware

import (
	"context"
	"errors"

	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/backend"
	"github.com/atomicstack/tabtray-control/internal/logging/events"
	"github.com/atomicstack/tabtray-control/internal/state"
)

const (
	ReasonNotLoggedIn  = "notLoggedIn"
	ReasonFailedToSync = "failedToSync"
)

// RemoteTabs loads the synced tabs panel. A nil provider behaves like a
// signed-out profile.
type RemoteTabs struct {
	provider RemoteTabsProvider
	tasks    *backend.Tasks
}

func NewRemoteTabs(provider RemoteTabsProvider, tasks *backend.Tasks) *RemoteTabs {
	return &RemoteTabs{provider: provider, tasks: tasks}
}

func (r *RemoteTabs) Middleware() Middleware {
	return r.handle
}

func (r *RemoteTabs) handle(d Dispatcher, _ state.AppState, a action.Action) {
	switch a.(type) {
	case action.RemoteTabsPanelDidAppear, action.RefreshRemoteTabs:
		r.refresh(d, a)
	}
}

func (r *RemoteTabs) refresh(d Dispatcher, a action.Action) *backend.Task {
	ctx := action.In(a.Window())
	name := a.Window().String()
	events.Remote.Refresh(name)
	if r.provider == nil {
		events.Remote.Result(name, 0, ReasonNotLoggedIn)
		d.Dispatch(action.RemoteTabsRefreshDidFail{Context: ctx, Reason: ReasonNotLoggedIn})
		return nil
	}
	return r.tasks.Go(string(a.Type()), func(c context.Context) error {
		clients, err := r.provider.ClientTabs(c)
		if err != nil {
			reason := ReasonFailedToSync
			if errors.Is(err, ErrNotLoggedIn) {
				reason = ReasonNotLoggedIn
			}
			events.Remote.Result(name, 0, reason)
			d.Dispatch(action.RemoteTabsRefreshDidFail{Context: ctx, Reason: reason})
			return nil
		}
		events.Remote.Result(name, len(clients), "")
		d.Dispatch(action.RemoteTabsRefreshDidSucceed{Context: ctx, Clients: clients})
		return nil
	})
}
