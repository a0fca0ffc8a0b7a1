package action

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// ErrUnknownType is returned when decoding an unregistered action type.
var ErrUnknownType = errors.New("action: unknown type")

type envelope struct {
	Type    Type            `json:"type"`
	Window  uuid.UUID       `json:"window"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type decoder func(ctx Context, payload json.RawMessage) (Action, error)

type contextSetter[T any] interface {
	*T
	setContext(Context)
}

func decode[T Action, P contextSetter[T]](ctx Context, payload json.RawMessage) (Action, error) {
	var v T
	if len(payload) > 0 && string(payload) != "null" {
		if err := json.Unmarshal(payload, &v); err != nil {
			return nil, err
		}
	}
	P(&v).setContext(ctx)
	return v, nil
}

var registry = map[Type]decoder{
	TypeShowScreen:  decode[ShowScreen],
	TypeCloseScreen: decode[CloseScreen],

	TypeTabTrayDidLoad: decode[TabTrayDidLoad],
	TypeChangePanel:    decode[ChangePanel],
	TypeDidLoadTabTray: decode[DidLoadTabTray],
	TypeDismissTabTray: decode[DismissTabTray],

	TypeTabPanelDidLoad:          decode[TabPanelDidLoad],
	TypeAddNewTab:                decode[AddNewTab],
	TypeMoveTab:                  decode[MoveTab],
	TypeCloseTab:                 decode[CloseTab],
	TypeUndoClose:                decode[UndoClose],
	TypeCloseAllTabs:             decode[CloseAllTabs],
	TypeUndoCloseAllTabs:         decode[UndoCloseAllTabs],
	TypeSelectTab:                decode[SelectTab],
	TypeCloseAllInactiveTabs:     decode[CloseAllInactiveTabs],
	TypeUndoCloseAllInactiveTabs: decode[UndoCloseAllInactiveTabs],
	TypeCloseInactiveTab:         decode[CloseInactiveTab],
	TypeUndoCloseInactiveTab:     decode[UndoCloseInactiveTab],
	TypeLearnMorePrivateMode:     decode[LearnMorePrivateMode],
	TypeToggleInactiveTabs:       decode[ToggleInactiveTabs],
	TypeHideToast:                decode[HideToast],
	TypeTabUpdated:               decode[TabUpdated],
	TypeInactiveTabsChanged:      decode[InactiveTabsChanged],
	TypeDidLoadTabPanel:          decode[DidLoadTabPanel],
	TypeRefreshTab:               decode[RefreshTab],
	TypeRefreshInactiveTabs:      decode[RefreshInactiveTabs],
	TypeTabPanelShowToast:        decode[TabPanelShowToast],
	TypeShowShareSheet:           decode[ShowShareSheet],

	TypeBrowserShowToast:   decode[BrowserShowToast],
	TypeSetPrivateMode:     decode[SetPrivateMode],
	TypePrivateModeUpdated: decode[PrivateModeUpdated],

	TypeRemoteTabsPanelDidAppear:    decode[RemoteTabsPanelDidAppear],
	TypeRefreshRemoteTabs:           decode[RefreshRemoteTabs],
	TypeRemoteTabsRefreshDidFail:    decode[RemoteTabsRefreshDidFail],
	TypeRemoteTabsRefreshDidSucceed: decode[RemoteTabsRefreshDidSucceed],
	TypeOpenSelectedURL:             decode[OpenSelectedURL],

	TypeDidLoadTabPeek: decode[DidLoadTabPeek],
	TypeLoadTabPeek:    decode[LoadTabPeek],
	TypeAddToBookmarks: decode[AddToBookmarks],
	TypeSendToDevice:   decode[SendToDevice],
	TypeCopyURL:        decode[CopyURL],
	TypePeekCloseTab:   decode[PeekCloseTab],

	TypeThemeSettingsDidLoad:       decode[ThemeSettingsDidLoad],
	TypeReceivedThemeManagerValues: decode[ReceivedThemeManagerValues],
	TypeToggleUseSystemAppearance:  decode[ToggleUseSystemAppearance],
	TypeSystemThemeChanged:         decode[SystemThemeChanged],
	TypeEnableAutomaticBrightness:  decode[EnableAutomaticBrightness],
	TypeAutomaticBrightnessChanged: decode[AutomaticBrightnessChanged],
	TypeSwitchManualTheme:          decode[SwitchManualTheme],
	TypeManualThemeChanged:         decode[ManualThemeChanged],
	TypeUpdateUserBrightness:       decode[UpdateUserBrightness],
	TypeUserBrightnessChanged:      decode[UserBrightnessChanged],
	TypeSystemBrightnessChanged:    decode[SystemBrightnessChanged],
}

// Types lists every registered action type in sorted order.
func Types() []Type {
	types := make([]Type, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Zero returns the zero-valued action of type t in window.
func Zero(t Type, window uuid.UUID) (Action, error) {
	dec, ok := registry[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return dec(In(window), nil)
}

// Marshal encodes a as {"type", "window", "payload"}.
func Marshal(a Action) ([]byte, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", a.Type(), err)
	}
	if string(payload) == "{}" {
		payload = nil
	}
	return json.Marshal(envelope{Type: a.Type(), Window: a.Window(), Payload: payload})
}

// Unmarshal decodes an envelope produced by Marshal.
func Unmarshal(data []byte) (Action, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding action envelope: %w", err)
	}
	dec, ok := registry[env.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}
	a, err := dec(In(env.Window), env.Payload)
	if err != nil {
		return nil, fmt.Errorf("decoding %s payload: %w", env.Type, err)
	}
	return a, nil
}
