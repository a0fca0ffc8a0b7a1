package action

import (
	"github.com/atomicstack/tabtray-control/internal/tabs"
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
)

const (
	TypeTabPanelDidLoad          Type = "tabPanel.tabPanelDidLoad"
	TypeAddNewTab                Type = "tabPanel.addNewTab"
	TypeMoveTab                  Type = "tabPanel.moveTab"
	TypeCloseTab                 Type = "tabPanel.closeTab"
	TypeUndoClose                Type = "tabPanel.undoClose"
	TypeCloseAllTabs             Type = "tabPanel.closeAllTabs"
	TypeUndoCloseAllTabs         Type = "tabPanel.undoCloseAllTabs"
	TypeSelectTab                Type = "tabPanel.selectTab"
	TypeCloseAllInactiveTabs     Type = "tabPanel.closeAllInactiveTabs"
	TypeUndoCloseAllInactiveTabs Type = "tabPanel.undoCloseAllInactiveTabs"
	TypeCloseInactiveTab         Type = "tabPanel.closeInactiveTab"
	TypeUndoCloseInactiveTab     Type = "tabPanel.undoCloseInactiveTab"
	TypeLearnMorePrivateMode     Type = "tabPanel.learnMorePrivateMode"
	TypeToggleInactiveTabs       Type = "tabPanel.toggleInactiveTabs"
	TypeHideToast                Type = "tabPanel.hideToast"
	TypeTabUpdated               Type = "tabPanel.tabUpdated"
	TypeInactiveTabsChanged      Type = "tabPanel.inactiveTabsChanged"

	TypeDidLoadTabPanel     Type = "tabPanel.didLoadTabPanel"
	TypeRefreshTab          Type = "tabPanel.refreshTab"
	TypeRefreshInactiveTabs Type = "tabPanel.refreshInactiveTabs"
	TypeTabPanelShowToast   Type = "tabPanel.showToast"
	TypeShowShareSheet      Type = "tabPanel.showShareSheet"
)

// TabPanelDidLoad is sent when a tabs panel appears.
type TabPanelDidLoad struct {
	Context
	IsPrivate bool `json:"isPrivate"`
}

// AddNewTab opens a tab. A nil request opens the home page.
type AddNewTab struct {
	Context
	Request   *tabs.Request `json:"request,omitempty"`
	IsPrivate bool          `json:"isPrivate"`
}

// MoveTab reorders normal tabs; see tabs.Manager.MoveTab for the convention.
type MoveTab struct {
	Context
	From int `json:"from"`
	To   int `json:"to"`
}

type CloseTab struct {
	Context
	TabUUID string `json:"tabUUID"`
}

type UndoClose struct {
	Context
}

type CloseAllTabs struct {
	Context
}

type UndoCloseAllTabs struct {
	Context
}

type SelectTab struct {
	Context
	TabUUID string `json:"tabUUID"`
}

type CloseAllInactiveTabs struct {
	Context
}

type UndoCloseAllInactiveTabs struct {
	Context
}

type CloseInactiveTab struct {
	Context
	TabUUID string `json:"tabUUID"`
}

type UndoCloseInactiveTab struct {
	Context
}

// LearnMorePrivateMode opens the private browsing explainer in a private tab.
type LearnMorePrivateMode struct {
	Context
	Request *tabs.Request `json:"request,omitempty"`
}

// ToggleInactiveTabs expands or collapses the inactive section.
type ToggleInactiveTabs struct {
	Context
}

// HideToast clears the panel toast.
type HideToast struct {
	Context
}

// TabUpdated reports that the engine changed a tab's title or URL.
type TabUpdated struct {
	Context
	TabUUID string `json:"tabUUID"`
}

// InactiveTabsChanged reports that the inactive set was re-evaluated.
type InactiveTabsChanged struct {
	Context
}

// DidLoadTabPanel carries the complete panel after it loaded.
type DidLoadTabPanel struct {
	Context
	Model viewmodel.TabDisplayModel `json:"model"`
}

// RefreshTab carries a rebuilt panel after a mutation.
type RefreshTab struct {
	Context
	Model viewmodel.TabDisplayModel `json:"model"`
}

// RefreshInactiveTabs replaces the inactive section.
type RefreshInactiveTabs struct {
	Context
	Tabs []viewmodel.InactiveTabsModel `json:"tabs"`
}

// TabPanelShowToast shows a toast on the tabs panel.
type TabPanelShowToast struct {
	Context
	Toast viewmodel.Toast `json:"toast"`
}

// ShowShareSheet asks the UI to share URL.
type ShowShareSheet struct {
	Context
	URL string `json:"url"`
}

func (TabPanelDidLoad) Type() Type          { return TypeTabPanelDidLoad }
func (AddNewTab) Type() Type                { return TypeAddNewTab }
func (MoveTab) Type() Type                  { return TypeMoveTab }
func (CloseTab) Type() Type                 { return TypeCloseTab }
func (UndoClose) Type() Type                { return TypeUndoClose }
func (CloseAllTabs) Type() Type             { return TypeCloseAllTabs }
func (UndoCloseAllTabs) Type() Type         { return TypeUndoCloseAllTabs }
func (SelectTab) Type() Type                { return TypeSelectTab }
func (CloseAllInactiveTabs) Type() Type     { return TypeCloseAllInactiveTabs }
func (UndoCloseAllInactiveTabs) Type() Type { return TypeUndoCloseAllInactiveTabs }
func (CloseInactiveTab) Type() Type         { return TypeCloseInactiveTab }
func (UndoCloseInactiveTab) Type() Type     { return TypeUndoCloseInactiveTab }
func (LearnMorePrivateMode) Type() Type     { return TypeLearnMorePrivateMode }
func (ToggleInactiveTabs) Type() Type       { return TypeToggleInactiveTabs }
func (HideToast) Type() Type                { return TypeHideToast }
func (TabUpdated) Type() Type               { return TypeTabUpdated }
func (InactiveTabsChanged) Type() Type      { return TypeInactiveTabsChanged }
func (DidLoadTabPanel) Type() Type          { return TypeDidLoadTabPanel }
func (RefreshTab) Type() Type               { return TypeRefreshTab }
func (RefreshInactiveTabs) Type() Type      { return TypeRefreshInactiveTabs }
func (TabPanelShowToast) Type() Type        { return TypeTabPanelShowToast }
func (ShowShareSheet) Type() Type           { return TypeShowShareSheet }
