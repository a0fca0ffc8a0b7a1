package state

import (
	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	"github.com/google/uuid"
)

// RefreshState tracks a synced tabs fetch.
type RefreshState string

const (
	RefreshIdle       RefreshState = "idle"
	RefreshRefreshing RefreshState = "refreshing"
)

// RemoteTabsPanelState is the synced tabs panel.
type RemoteTabsPanelState struct {
	WindowUUID    uuid.UUID                `json:"window"`
	RefreshState  RefreshState             `json:"refreshState"`
	FailureReason string                   `json:"failureReason,omitempty"`
	Clients       []viewmodel.RemoteClient `json:"clients"`
}

func NewRemoteTabsPanelState(window uuid.UUID) RemoteTabsPanelState {
	return RemoteTabsPanelState{WindowUUID: window, RefreshState: RefreshIdle, Clients: []viewmodel.RemoteClient{}}
}

func (s RemoteTabsPanelState) Screen() action.ScreenType { return action.ScreenRemoteTabsPanel }
func (s RemoteTabsPanelState) Window() uuid.UUID         { return s.WindowUUID }

func (s RemoteTabsPanelState) reduce(a action.Action) ScreenState {
	if a.Window() != s.WindowUUID {
		return s
	}
	switch a := a.(type) {
	case action.RemoteTabsPanelDidAppear, action.RefreshRemoteTabs:
		s.RefreshState = RefreshRefreshing
	case action.RemoteTabsRefreshDidFail:
		s.RefreshState = RefreshIdle
		s.FailureReason = a.Reason
	case action.RemoteTabsRefreshDidSucceed:
		s.RefreshState = RefreshIdle
		s.FailureReason = ""
		s.Clients = a.Clients
		if s.Clients == nil {
			s.Clients = []viewmodel.RemoteClient{}
		}
	}
	return s
}
