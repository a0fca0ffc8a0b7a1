package action

import "github.com/atomicstack/tabtray-control/internal/viewmodel"

const (
	TypeBrowserShowToast   Type = "generalBrowser.showToast"
	TypeSetPrivateMode     Type = "privateMode.setPrivateMode"
	TypePrivateModeUpdated Type = "privateMode.privateModeUpdated"
)

// BrowserShowToast shows a toast on the browser once the tray is gone.
type BrowserShowToast struct {
	Context
	Toast viewmodel.Toast `json:"toast"`
}

// SetPrivateMode requests a privacy mode change for the window.
type SetPrivateMode struct {
	Context
	IsPrivate bool `json:"isPrivate"`
}

// PrivateModeUpdated announces the window's privacy mode changed.
type PrivateModeUpdated struct {
	Context
	IsPrivate bool `json:"isPrivate"`
}

func (BrowserShowToast) Type() Type   { return TypeBrowserShowToast }
func (SetPrivateMode) Type() Type     { return TypeSetPrivateMode }
func (PrivateModeUpdated) Type() Type { return TypePrivateModeUpdated }
