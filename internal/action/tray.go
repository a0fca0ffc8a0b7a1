package action

import "github.com/atomicstack/tabtray-control/internal/viewmodel"

const (
	TypeTabTrayDidLoad Type = "tabTray.tabTrayDidLoad"
	TypeChangePanel    Type = "tabTray.changePanel"
	TypeDidLoadTabTray Type = "tabTray.didLoadTabTray"
	TypeDismissTabTray Type = "tabTray.dismissTabTray"
)

// TabTrayDidLoad is sent when the tray opens on a panel.
type TabTrayDidLoad struct {
	Context
	Panel viewmodel.Panel `json:"panel"`
}

// ChangePanel switches the tray between normal, private and synced tabs.
type ChangePanel struct {
	Context
	Panel viewmodel.Panel `json:"panel"`
}

// DidLoadTabTray carries the computed tray header.
type DidLoadTabTray struct {
	Context
	Model viewmodel.TabTrayModel `json:"model"`
}

// DismissTabTray closes the tray.
type DismissTabTray struct {
	Context
}

func (TabTrayDidLoad) Type() Type { return TypeTabTrayDidLoad }
func (ChangePanel) Type() Type    { return TypeChangePanel }
func (DidLoadTabTray) Type() Type { return TypeDidLoadTabTray }
func (DismissTabTray) Type() Type { return TypeDismissTabTray }
