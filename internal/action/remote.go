package action

import "github.com/atomicstack/tabtray-control/internal/viewmodel"

const (
	TypeRemoteTabsPanelDidAppear    Type = "remoteTabs.panelDidAppear"
	TypeRefreshRemoteTabs           Type = "remoteTabs.refreshTabs"
	TypeRemoteTabsRefreshDidFail    Type = "remoteTabs.refreshDidFail"
	TypeRemoteTabsRefreshDidSucceed Type = "remoteTabs.refreshDidSucceed"
	TypeOpenSelectedURL             Type = "remoteTabs.openSelectedURL"
)

type RemoteTabsPanelDidAppear struct {
	Context
}

type RefreshRemoteTabs struct {
	Context
}

// RemoteTabsRefreshDidFail carries why synced tabs are unavailable.
type RemoteTabsRefreshDidFail struct {
	Context
	Reason string `json:"reason"`
}

type RemoteTabsRefreshDidSucceed struct {
	Context
	Clients []viewmodel.RemoteClient `json:"clients"`
}

// OpenSelectedURL opens a synced tab locally.
type OpenSelectedURL struct {
	Context
	URL string `json:"url"`
}

func (RemoteTabsPanelDidAppear) Type() Type    { return TypeRemoteTabsPanelDidAppear }
func (RefreshRemoteTabs) Type() Type           { return TypeRefreshRemoteTabs }
func (RemoteTabsRefreshDidFail) Type() Type    { return TypeRemoteTabsRefreshDidFail }
func (RemoteTabsRefreshDidSucceed) Type() Type { return TypeRemoteTabsRefreshDidSucceed }
func (OpenSelectedURL) Type() Type             { return TypeOpenSelectedURL }
