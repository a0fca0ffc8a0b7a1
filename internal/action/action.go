// Package action defines every action the store accepts.
//
// Action is a closed set: the interface carries an unexported method that
// only Context provides, and every concrete action embeds Context. Reducers
// and middlewares type-switch over the concrete structs; Types lists all of
// them so tests can check that each one is decodable and reducible.
package action

import "github.com/google/uuid"

// Type is the stable name of an action, used by the JSON codec.
type Type string

// Action is a request for a state transition or side effect in one window.
type Action interface {
	Type() Type
	Window() uuid.UUID
	sealed()
}

// Context scopes an action to the window it came from.
type Context struct {
	WindowUUID uuid.UUID `json:"-"`
}

// In returns a Context for window.
func In(window uuid.UUID) Context {
	return Context{WindowUUID: window}
}

func (c Context) Window() uuid.UUID { return c.WindowUUID }

func (Context) sealed() {}

func (c *Context) setContext(ctx Context) { *c = ctx }

// ScreenType names a screen whose state lives in the state tree.
type ScreenType string

const (
	ScreenTabsTray              ScreenType = "tabsTray"
	ScreenTabsPanel             ScreenType = "tabsPanel"
	ScreenRemoteTabsPanel       ScreenType = "remoteTabsPanel"
	ScreenTabPeek               ScreenType = "tabPeek"
	ScreenThemeSettings         ScreenType = "themeSettings"
	ScreenBrowserViewController ScreenType = "browserViewController"
)

// Screens lists every screen type.
func Screens() []ScreenType {
	return []ScreenType{
		ScreenTabsTray,
		ScreenTabsPanel,
		ScreenRemoteTabsPanel,
		ScreenTabPeek,
		ScreenThemeSettings,
		ScreenBrowserViewController,
	}
}

const (
	TypeShowScreen  Type = "screen.show"
	TypeCloseScreen Type = "screen.close"
)

// ShowScreen adds the state for a screen in the action's window.
type ShowScreen struct {
	Context
	Screen ScreenType `json:"screen"`
}

// CloseScreen removes the state for a screen in the action's window.
type CloseScreen struct {
	Context
	Screen ScreenType `json:"screen"`
}

func (ShowScreen) Type() Type  { return TypeShowScreen }
func (CloseScreen) Type() Type { return TypeCloseScreen }
