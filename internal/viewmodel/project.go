package viewmodel

import (
	"strconv"

	"github.com/atomicstack/tabtray-control/internal/tabs"
)

// overflowCount is the first count rendered as an infinity glyph.
const overflowCount = 100

// CountText renders a tab count for the tray button.
func CountText(count int) string {
	if count < overflowCount {
		return strconv.Itoa(count)
	}
	return "∞"
}

// Tabs projects list into rows, marking the tab whose UUID is selected.
func Tabs(list []tabs.Tab, selected string) []TabModel {
	models := make([]TabModel, 0, len(list))
	for _, tab := range list {
		models = append(models, TabModel{
			TabUUID:           tab.UUID,
			IsSelected:        tab.UUID == selected,
			IsPrivate:         tab.IsPrivate,
			IsFxHomeTab:       tab.IsFxHomeTab(),
			TabTitle:          tab.DisplayTitle(),
			URL:               tab.URL,
			Screenshot:        copyBytes(tab.Screenshot),
			HasHomeScreenshot: tab.HasHomeScreenshot,
		})
	}
	return models
}

// InactiveTabs projects inactive tabs. Private mode has no inactive section.
func InactiveTabs(list []tabs.Tab, isPrivate bool) []InactiveTabsModel {
	models := []InactiveTabsModel{}
	if isPrivate {
		return models
	}
	for _, tab := range list {
		models = append(models, InactiveTabsModel{
			TabUUID:    tab.UUID,
			Title:      tab.DisplayTitle(),
			URL:        tab.URL,
			FavIconURL: tab.FaviconURL,
		})
	}
	return models
}

// Display builds the full panel model for one privacy mode.
func Display(snap tabs.Snapshot, isPrivate, scrollToTab bool) TabDisplayModel {
	source := snap.NormalActive
	if isPrivate {
		source = snap.Private
	}
	return TabDisplayModel{
		IsPrivateMode:          isPrivate,
		Tabs:                   Tabs(source, snap.Selected),
		NormalTabsCount:        CountText(len(snap.Normal)),
		InactiveTabs:           InactiveTabs(snap.Inactive, isPrivate),
		IsInactiveTabsExpanded: false,
		ShouldScrollToTab:      scrollToTab,
	}
}

// Tray builds the tray header model.
func Tray(snap tabs.Snapshot, panel Panel, hasSyncableAccount bool) TabTrayModel {
	return TabTrayModel{
		IsPrivateMode:      panel.IsPrivate(),
		SelectedPanel:      panel,
		NormalTabsCount:    CountText(len(snap.Normal)),
		HasSyncableAccount: hasSyncableAccount,
	}
}

// Peek builds the preview model for tab.
func Peek(tab tabs.Tab, isBookmarked, isSyncEnabled bool) TabPeekModel {
	return TabPeekModel{
		CanTabBeSaved:      !isBookmarked && !tab.URLIsTooLong() && !tab.IsFxHomeTab(),
		IsSyncEnabled:      isSyncEnabled,
		Screenshot:         copyBytes(tab.Screenshot),
		AccessibilityLabel: tab.DisplayTitle(),
	}
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
