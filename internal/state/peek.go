package state

import (
	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/google/uuid"
)

// TabPeekState controls which preview actions are offered.
type TabPeekState struct {
	WindowUUID                uuid.UUID `json:"window"`
	ShowAddToBookmarks        bool      `json:"showAddToBookmarks"`
	ShowSendToDevice          bool      `json:"showSendToDevice"`
	ShowCopyURL               bool      `json:"showCopyURL"`
	ShowCloseTab              bool      `json:"showCloseTab"`
	PreviewAccessibilityLabel string    `json:"previewAccessibilityLabel"`
	Screenshot                []byte    `json:"screenshot,omitempty"`
}

func NewTabPeekState(window uuid.UUID) TabPeekState {
	return TabPeekState{WindowUUID: window}
}

func (s TabPeekState) Screen() action.ScreenType { return action.ScreenTabPeek }
func (s TabPeekState) Window() uuid.UUID         { return s.WindowUUID }

func (s TabPeekState) reduce(a action.Action) ScreenState {
	if a.Window() != s.WindowUUID {
		return s
	}
	if load, ok := a.(action.LoadTabPeek); ok {
		s.ShowAddToBookmarks = load.Model.CanTabBeSaved
		s.ShowSendToDevice = load.Model.IsSyncEnabled && load.Model.CanTabBeSaved
		s.ShowCopyURL = true
		s.ShowCloseTab = true
		s.PreviewAccessibilityLabel = load.Model.AccessibilityLabel
		s.Screenshot = load.Model.Screenshot
	}
	return s
}
