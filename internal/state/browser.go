package state

import (
	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	"github.com/google/uuid"
)

// BrowserViewControllerState is the browser chrome behind the tray.
type BrowserViewControllerState struct {
	WindowUUID    uuid.UUID        `json:"window"`
	IsPrivateMode bool             `json:"isPrivateMode"`
	Toast         *viewmodel.Toast `json:"toast,omitempty"`
}

func NewBrowserViewControllerState(window uuid.UUID) BrowserViewControllerState {
	return BrowserViewControllerState{WindowUUID: window}
}

func (s BrowserViewControllerState) Screen() action.ScreenType {
	return action.ScreenBrowserViewController
}

func (s BrowserViewControllerState) Window() uuid.UUID { return s.WindowUUID }

func (s BrowserViewControllerState) reduce(a action.Action) ScreenState {
	if a.Window() != s.WindowUUID {
		return s
	}
	switch a := a.(type) {
	case action.BrowserShowToast:
		toast := a.Toast
		s.Toast = &toast
	case action.PrivateModeUpdated:
		s.IsPrivateMode = a.IsPrivate
	}
	return s
}
