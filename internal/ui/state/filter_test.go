package state

import (
	"reflect"
	"testing"
)

func tabItems() []Item {
	return []Item{
		{ID: "1", Label: "Alpha news", Detail: "https://alpha.example"},
		{ID: "2", Label: "Beta docs", Detail: "https://docs.beta.example"},
		{ID: "3", Label: "Gamma", Detail: "https://gamma.example/search"},
	}
}

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := NewLevel("tabs", "Tabs", tabItems())
	level.Cursor = 2
	level.SetFilter("beta")

	if len(level.Items) != 1 || level.Items[0].ID != "2" {
		t.Fatalf("expected only Beta, got %#v", level.Items)
	}
	if level.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", level.Cursor)
	}

	level.SetFilter("")
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
}

func TestFilterMatchesURL(t *testing.T) {
	filtered := FilterItems(tabItems(), "gamma.example/search")
	if len(filtered) != 1 || filtered[0].ID != "3" {
		t.Fatalf("expected URL match for Gamma, got %#v", filtered)
	}
}

func TestFilterItemsKeepsOrderAndClones(t *testing.T) {
	items := tabItems()
	filtered := FilterItems(items, "a")
	if got := ids(filtered); !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Fatalf("expected original order, got %v", got)
	}
	filtered[0].Label = "changed"
	if items[0].Label != "Alpha news" {
		t.Fatal("expected original slice to remain unchanged")
	}
	if len(FilterItems(items, "zzzz")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []Item{
		{ID: "one", Label: "First"},
		{ID: "two", Label: "Second"},
		{ID: "three", Label: "Third"},
	}
	if idx := BestMatchIndex(items, "second"); idx != 1 {
		t.Fatalf("expected exact title match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "th"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
