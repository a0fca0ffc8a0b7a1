// Package viewmodel derives the immutable models the tab tray renders. Every
// function here is pure: the same tab snapshot always yields the same model.
package viewmodel

import "fmt"

// Panel is one of the tab tray panels.
type Panel string

const (
	PanelTabs        Panel = "tabs"
	PanelPrivateTabs Panel = "privateTabs"
	PanelSyncedTabs  Panel = "syncedTabs"
)

// IsPrivate reports whether the panel lists private tabs.
func (p Panel) IsPrivate() bool {
	return p == PanelPrivateTabs
}

// ParsePanel validates a panel name.
func ParsePanel(name string) (Panel, error) {
	switch p := Panel(name); p {
	case PanelTabs, PanelPrivateTabs, PanelSyncedTabs:
		return p, nil
	}
	return "", fmt.Errorf("unknown panel %q", name)
}

// ToastKind names a notification shown after a tab operation.
type ToastKind string

const (
	ToastSingleTab          ToastKind = "singleTab"
	ToastAllTabs            ToastKind = "allTabs"
	ToastAllInactiveTabs    ToastKind = "allInactiveTabs"
	ToastSingleInactiveTabs ToastKind = "singleInactiveTabs"
	ToastAddBookmark        ToastKind = "addBookmark"
	ToastCopyURL            ToastKind = "copyURL"
)

// Toast is a notification with an optional count.
type Toast struct {
	Kind  ToastKind `json:"kind"`
	Count int       `json:"count,omitempty"`
}

// Undoable reports whether the toast offers an undo button.
func (t Toast) Undoable() bool {
	switch t.Kind {
	case ToastSingleTab, ToastAllTabs, ToastAllInactiveTabs, ToastSingleInactiveTabs:
		return true
	}
	return false
}

// Message is the toast text.
func (t Toast) Message() string {
	switch t.Kind {
	case ToastSingleTab:
		return "Tab closed"
	case ToastAllTabs:
		return fmt.Sprintf("%d tabs closed", t.Count)
	case ToastAllInactiveTabs:
		return fmt.Sprintf("%d inactive tabs closed", t.Count)
	case ToastSingleInactiveTabs:
		return "Inactive tab closed"
	case ToastAddBookmark:
		return "Bookmark added"
	case ToastCopyURL:
		return "URL copied to clipboard"
	}
	return string(t.Kind)
}

// TabModel is one row of the tabs panel.
type TabModel struct {
	TabUUID           string `json:"tabUUID"`
	IsSelected        bool   `json:"isSelected"`
	IsPrivate         bool   `json:"isPrivate"`
	IsFxHomeTab       bool   `json:"isFxHomeTab"`
	TabTitle          string `json:"tabTitle"`
	URL               string `json:"url,omitempty"`
	Screenshot        []byte `json:"screenshot,omitempty"`
	HasHomeScreenshot bool   `json:"hasHomeScreenshot"`
}

// InactiveTabsModel is one row of the inactive tabs section.
type InactiveTabsModel struct {
	TabUUID    string `json:"tabUUID"`
	Title      string `json:"title"`
	URL        string `json:"url,omitempty"`
	FavIconURL string `json:"favIconURL,omitempty"`
}

// TabDisplayModel is the complete tabs panel content.
type TabDisplayModel struct {
	IsPrivateMode          bool                `json:"isPrivateMode"`
	Tabs                   []TabModel          `json:"tabs"`
	NormalTabsCount        string              `json:"normalTabsCount"`
	InactiveTabs           []InactiveTabsModel `json:"inactiveTabs"`
	IsInactiveTabsExpanded bool                `json:"isInactiveTabsExpanded"`
	ShouldScrollToTab      bool                `json:"shouldScrollToTab"`
}

// TabTrayModel summarises the tray header.
type TabTrayModel struct {
	IsPrivateMode      bool   `json:"isPrivateMode"`
	SelectedPanel      Panel  `json:"selectedPanel"`
	NormalTabsCount    string `json:"normalTabsCount"`
	HasSyncableAccount bool   `json:"hasSyncableAccount"`
}

// TabPeekModel describes the long-press preview of a tab.
type TabPeekModel struct {
	CanTabBeSaved      bool   `json:"canTabBeSaved"`
	IsSyncEnabled      bool   `json:"isSyncEnabled"`
	Screenshot         []byte `json:"screenshot,omitempty"`
	AccessibilityLabel string `json:"accessibilityLabel"`
}

// RemoteTab is a tab open on another device.
type RemoteTab struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// RemoteClient is another device with its open tabs.
type RemoteClient struct {
	GUID string      `json:"guid"`
	Name string      `json:"name"`
	Tabs []RemoteTab `json:"tabs"`
}

// ThemeName is a manually selected theme.
type ThemeName string

const (
	ThemeLight ThemeName = "light"
	ThemeDark  ThemeName = "dark"
)

// ThemeSettings mirrors the theme manager's current values.
type ThemeSettings struct {
	UseSystemAppearance          bool      `json:"useSystemAppearance"`
	IsAutomaticBrightnessEnabled bool      `json:"isAutomaticBrightnessEnabled"`
	ManualThemeSelected          ThemeName `json:"manualThemeSelected"`
	UserBrightnessThreshold      float64   `json:"userBrightnessThreshold"`
	SystemBrightness             float64   `json:"systemBrightness"`
}
