package state

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/tabs"
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	"github.com/google/uuid"
)

func replay(actions []action.Action) AppState {
	var s AppState
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func sampleActions(window, other uuid.UUID) []action.Action {
	ctx := action.In(window)
	model := viewmodel.TabDisplayModel{
		Tabs:              []viewmodel.TabModel{{TabUUID: "a"}, {TabUUID: "b", IsSelected: true}},
		NormalTabsCount:   "2",
		InactiveTabs:      []viewmodel.InactiveTabsModel{{TabUUID: "old"}},
		ShouldScrollToTab: true,
	}
	return []action.Action{
		action.ShowScreen{Context: ctx, Screen: action.ScreenTabsTray},
		action.ShowScreen{Context: ctx, Screen: action.ScreenTabsPanel},
		action.ShowScreen{Context: action.In(other), Screen: action.ScreenTabsPanel},
		action.DidLoadTabTray{Context: ctx, Model: viewmodel.TabTrayModel{SelectedPanel: viewmodel.PanelTabs, NormalTabsCount: "2"}},
		action.DidLoadTabPanel{Context: ctx, Model: model},
		action.ToggleInactiveTabs{Context: ctx},
		action.TabPanelShowToast{Context: ctx, Toast: viewmodel.Toast{Kind: viewmodel.ToastSingleTab}},
		action.AddNewTab{Context: ctx, Request: &tabs.Request{URL: "https://example.com"}},
		action.DismissTabTray{Context: ctx},
	}
}

func TestReduceIsPure(t *testing.T) {
	window, other := uuid.New(), uuid.New()
	first := replay(sampleActions(window, other))
	second := replay(sampleActions(window, other))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("replay diverged:\n%#v\n%#v", first, second)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	window := uuid.New()
	actions := sampleActions(window, uuid.New())
	before := replay(actions[:5])
	snapshot := replay(actions[:5])
	_ = Reduce(before, action.ToggleInactiveTabs{Context: action.In(window)})
	_ = Reduce(before, action.CloseScreen{Context: action.In(window), Screen: action.ScreenTabsPanel})
	if !reflect.DeepEqual(before, snapshot) {
		t.Fatal("Reduce mutated its input state")
	}
}

func TestScreensAreWindowScoped(t *testing.T) {
	window, other := uuid.New(), uuid.New()
	s := replay(sampleActions(window, other))

	panel, ok := s.TabsPanel(window)
	if !ok {
		t.Fatal("expected panel for window")
	}
	if !panel.IsInactiveTabsExpanded || panel.Toast == nil || panel.ScrollToIndex != 1 {
		t.Fatalf("unexpected panel %#v", panel)
	}
	otherPanel, ok := s.TabsPanel(other)
	if !ok {
		t.Fatal("expected panel for other window")
	}
	if len(otherPanel.Tabs) != 0 || otherPanel.IsInactiveTabsExpanded {
		t.Fatalf("actions leaked into other window: %#v", otherPanel)
	}
	tray, ok := s.TabsTray(window)
	if !ok || !tray.ShouldDismiss || tray.NormalTabsCount != "2" {
		t.Fatalf("unexpected tray %#v", tray)
	}
}

func TestScreenLookupRequiresWindow(t *testing.T) {
	window := uuid.New()
	s := replay(sampleActions(window, uuid.New()))
	if _, err := s.ScreenState(action.ScreenTabsPanel, uuid.Nil); !errors.Is(err, ErrWindowRequired) {
		t.Fatalf("expected ErrWindowRequired, got %v", err)
	}
	if _, err := s.ScreenState(action.ScreenTabPeek, window); !errors.Is(err, ErrScreenNotFound) {
		t.Fatalf("expected ErrScreenNotFound, got %v", err)
	}
	if _, ok := s.TabPeek(window); ok {
		t.Fatal("tab peek was never shown")
	}
}

func TestShowScreenIsIdempotentAndCloseRemoves(t *testing.T) {
	window := uuid.New()
	show := action.ShowScreen{Context: action.In(window), Screen: action.ScreenTabsPanel}
	s := replay([]action.Action{show, show})
	if got := len(s.ActiveScreens.Screens); got != 1 {
		t.Fatalf("expected one screen, got %d", got)
	}
	s = Reduce(s, action.CloseScreen{Context: action.In(window), Screen: action.ScreenTabsPanel})
	if got := len(s.ActiveScreens.Screens); got != 0 {
		t.Fatalf("expected no screens, got %d", got)
	}
	s = Reduce(s, action.ShowScreen{Context: action.In(uuid.Nil), Screen: action.ScreenTabsPanel})
	if got := len(s.ActiveScreens.Screens); got != 0 {
		t.Fatal("screens without a window must be rejected")
	}
}

func TestRefreshKeepsInactiveSection(t *testing.T) {
	window := uuid.New()
	ctx := action.In(window)
	s := replay([]action.Action{
		action.ShowScreen{Context: ctx, Screen: action.ScreenTabsPanel},
		action.RefreshInactiveTabs{Context: ctx, Tabs: []viewmodel.InactiveTabsModel{{TabUUID: "old"}}},
		action.RefreshTab{Context: ctx, Model: viewmodel.TabDisplayModel{Tabs: []viewmodel.TabModel{{TabUUID: "a"}}}},
	})
	panel, _ := s.TabsPanel(window)
	if len(panel.InactiveTabs) != 1 || len(panel.Tabs) != 1 || panel.ScrollToIndex != -1 {
		t.Fatalf("unexpected panel %#v", panel)
	}
	s = Reduce(s, action.RefreshInactiveTabs{Context: ctx})
	panel, _ = s.TabsPanel(window)
	if panel.InactiveTabs == nil || len(panel.InactiveTabs) != 0 {
		t.Fatalf("expected empty inactive list, got %#v", panel.InactiveTabs)
	}
}

func TestEveryActionTypeReduces(t *testing.T) {
	window := uuid.New()
	var s AppState
	for _, screen := range action.Screens() {
		s = Reduce(s, action.ShowScreen{Context: action.In(window), Screen: screen})
	}
	if got := len(s.ActiveScreens.Screens); got != len(action.Screens()) {
		t.Fatalf("expected %d screens, got %d", len(action.Screens()), got)
	}
	for _, typ := range action.Types() {
		a, err := action.Zero(typ, window)
		if err != nil {
			t.Fatalf("Zero(%s): %v", typ, err)
		}
		s = Reduce(s, a)
	}
}

func TestOtherScreenReducers(t *testing.T) {
	window := uuid.New()
	ctx := action.In(window)
	s := replay([]action.Action{
		action.ShowScreen{Context: ctx, Screen: action.ScreenTabPeek},
		action.ShowScreen{Context: ctx, Screen: action.ScreenRemoteTabsPanel},
		action.ShowScreen{Context: ctx, Screen: action.ScreenThemeSettings},
		action.ShowScreen{Context: ctx, Screen: action.ScreenBrowserViewController},
		action.LoadTabPeek{Context: ctx, Model: viewmodel.TabPeekModel{CanTabBeSaved: true, AccessibilityLabel: "Example"}},
		action.RefreshRemoteTabs{Context: ctx},
		action.ManualThemeChanged{Context: ctx, Theme: viewmodel.ThemeDark},
		action.UserBrightnessChanged{Context: ctx, Value: 0.4},
		action.PrivateModeUpdated{Context: ctx, IsPrivate: true},
		action.BrowserShowToast{Context: ctx, Toast: viewmodel.Toast{Kind: viewmodel.ToastAllTabs, Count: 3}},
	})

	peek, _ := s.TabPeek(window)
	if !peek.ShowAddToBookmarks || peek.ShowSendToDevice || !peek.ShowCopyURL || peek.PreviewAccessibilityLabel != "Example" {
		t.Fatalf("unexpected peek %#v", peek)
	}
	remote, _ := s.RemoteTabsPanel(window)
	if remote.RefreshState != RefreshRefreshing {
		t.Fatalf("unexpected remote %#v", remote)
	}
	s = Reduce(s, action.RemoteTabsRefreshDidFail{Context: ctx, Reason: "notLoggedIn"})
	remote, _ = s.RemoteTabsPanel(window)
	if remote.RefreshState != RefreshIdle || remote.FailureReason != "notLoggedIn" {
		t.Fatalf("unexpected remote after failure %#v", remote)
	}
	theme, _ := s.ThemeSettings(window)
	if theme.ManualThemeSelected != viewmodel.ThemeDark || theme.UserBrightnessThreshold != 0.4 {
		t.Fatalf("unexpected theme %#v", theme)
	}
	browser, _ := s.BrowserViewController(window)
	if !browser.IsPrivateMode || browser.Toast == nil || browser.Toast.Count != 3 {
		t.Fatalf("unexpected browser %#v", browser)
	}
}

func TestMarshalJSONTagsScreens(t *testing.T) {
	window := uuid.New()
	s := Reduce(AppState{}, action.ShowScreen{Context: action.In(window), Screen: action.ScreenTabsTray})
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"screen":"tabsTray"`) || !strings.Contains(string(data), window.String()) {
		t.Fatalf("unexpected JSON %s", data)
	}
}
