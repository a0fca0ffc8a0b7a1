package action

import "github.com/atomicstack/tabtray-control/internal/viewmodel"

const (
	TypeDidLoadTabPeek Type = "tabPeek.didLoadTabPeek"
	TypeLoadTabPeek    Type = "tabPeek.loadTabPeek"
	TypeAddToBookmarks Type = "tabPeek.addToBookmarks"
	TypeSendToDevice   Type = "tabPeek.sendToDevice"
	TypeCopyURL        Type = "tabPeek.copyURL"
	TypePeekCloseTab   Type = "tabPeek.closeTab"
)

type DidLoadTabPeek struct {
	Context
	TabUUID string `json:"tabUUID"`
}

type LoadTabPeek struct {
	Context
	Model viewmodel.TabPeekModel `json:"model"`
}

type AddToBookmarks struct {
	Context
	TabUUID string `json:"tabUUID"`
}

type SendToDevice struct {
	Context
	TabUUID string `json:"tabUUID"`
}

type CopyURL struct {
	Context
	TabUUID string `json:"tabUUID"`
}

type PeekCloseTab struct {
	Context
	TabUUID string `json:"tabUUID"`
}

func (DidLoadTabPeek) Type() Type { return TypeDidLoadTabPeek }
func (LoadTabPeek) Type() Type    { return TypeLoadTabPeek }
func (AddToBookmarks) Type() Type { return TypeAddToBookmarks }
func (SendToDevice) Type() Type   { return TypeSendToDevice }
func (CopyURL) Type() Type        { return TypeCopyURL }
func (PeekCloseTab) Type() Type   { return TypePeekCloseTab }
