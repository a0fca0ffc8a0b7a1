package state

import (
	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	"github.com/google/uuid"
)

// TabsTrayState is the tray header and its presentation flags.
type TabsTrayState struct {
	WindowUUID         uuid.UUID       `json:"window"`
	IsPrivateMode      bool            `json:"isPrivateMode"`
	SelectedPanel      viewmodel.Panel `json:"selectedPanel"`
	NormalTabsCount    string          `json:"normalTabsCount"`
	HasSyncableAccount bool            `json:"hasSyncableAccount"`
	ShouldDismiss      bool            `json:"shouldDismiss"`
	ShareURL           string          `json:"shareURL,omitempty"`
}

func NewTabsTrayState(window uuid.UUID) TabsTrayState {
	return TabsTrayState{
		WindowUUID:      window,
		SelectedPanel:   viewmodel.PanelTabs,
		NormalTabsCount: viewmodel.CountText(0),
	}
}

func (s TabsTrayState) Screen() action.ScreenType { return action.ScreenTabsTray }
func (s TabsTrayState) Window() uuid.UUID         { return s.WindowUUID }

func (s TabsTrayState) reduce(a action.Action) ScreenState {
	if a.Window() != s.WindowUUID {
		return s
	}
	switch a := a.(type) {
	case action.TabTrayDidLoad:
		s.ShouldDismiss = false
		s.ShareURL = ""
	case action.DidLoadTabTray:
		s.IsPrivateMode = a.Model.IsPrivateMode
		s.SelectedPanel = a.Model.SelectedPanel
		s.NormalTabsCount = a.Model.NormalTabsCount
		s.HasSyncableAccount = a.Model.HasSyncableAccount
		s.ShouldDismiss = false
	case action.ChangePanel:
		s.SelectedPanel = a.Panel
		s.IsPrivateMode = a.Panel.IsPrivate()
	case action.DismissTabTray:
		s.ShouldDismiss = true
	case action.ShowShareSheet:
		s.ShareURL = a.URL
	}
	return s
}
