package state

import (
	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	"github.com/google/uuid"
)

// TabsPanelState is the content of the normal or private tabs panel.
type TabsPanelState struct {
	WindowUUID             uuid.UUID                     `json:"window"`
	IsPrivateMode          bool                          `json:"isPrivateMode"`
	Tabs                   []viewmodel.TabModel          `json:"tabs"`
	InactiveTabs           []viewmodel.InactiveTabsModel `json:"inactiveTabs"`
	IsInactiveTabsExpanded bool                          `json:"isInactiveTabsExpanded"`
	// ScrollToIndex is the row to reveal, -1 for none.
	ScrollToIndex int              `json:"scrollToIndex"`
	Toast         *viewmodel.Toast `json:"toast,omitempty"`
}

func NewTabsPanelState(window uuid.UUID, isPrivate bool) TabsPanelState {
	return TabsPanelState{
		WindowUUID:    window,
		IsPrivateMode: isPrivate,
		Tabs:          []viewmodel.TabModel{},
		InactiveTabs:  []viewmodel.InactiveTabsModel{},
		ScrollToIndex: -1,
	}
}

func (s TabsPanelState) Screen() action.ScreenType { return action.ScreenTabsPanel }
func (s TabsPanelState) Window() uuid.UUID         { return s.WindowUUID }

// SelectedTab returns the selected row.
func (s TabsPanelState) SelectedTab() (viewmodel.TabModel, bool) {
	for _, tab := range s.Tabs {
		if tab.IsSelected {
			return tab, true
		}
	}
	return viewmodel.TabModel{}, false
}

func (s TabsPanelState) reduce(a action.Action) ScreenState {
	if a.Window() != s.WindowUUID {
		return s
	}
	switch a := a.(type) {
	case action.DidLoadTabPanel:
		s.IsPrivateMode = a.Model.IsPrivateMode
		s.Tabs = a.Model.Tabs
		s.InactiveTabs = a.Model.InactiveTabs
		s.IsInactiveTabsExpanded = a.Model.IsInactiveTabsExpanded
		s.ScrollToIndex = scrollIndex(a.Model)
		s.Toast = nil
	case action.RefreshTab:
		s.IsPrivateMode = a.Model.IsPrivateMode
		s.Tabs = a.Model.Tabs
		s.ScrollToIndex = scrollIndex(a.Model)
	case action.RefreshInactiveTabs:
		s.InactiveTabs = a.Tabs
		if s.InactiveTabs == nil {
			s.InactiveTabs = []viewmodel.InactiveTabsModel{}
		}
	case action.ToggleInactiveTabs:
		s.IsInactiveTabsExpanded = !s.IsInactiveTabsExpanded
	case action.TabPanelShowToast:
		toast := a.Toast
		s.Toast = &toast
	case action.HideToast:
		s.Toast = nil
	}
	return s
}

func scrollIndex(model viewmodel.TabDisplayModel) int {
	if !model.ShouldScrollToTab {
		return -1
	}
	for i, tab := range model.Tabs {
		if tab.IsSelected {
			return i
		}
	}
	return -1
}
