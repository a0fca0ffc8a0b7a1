package state

import "testing"

func newTestLevel(ids ...string) *Level {
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ID: id, Label: id}
	}
	return NewLevel("tabs", "Tabs", items)
}

func TestCursorMovesClampToRows(t *testing.T) {
	cases := []struct {
		name  string
		start int
		move  func(*Level) bool
		want  int
		moved bool
	}{
		{"home", 2, (*Level).MoveCursorHome, 0, true},
		{"home at top", 0, (*Level).MoveCursorHome, 0, false},
		{"end", 0, (*Level).MoveCursorEnd, 4, true},
		{"up at top", 0, (*Level).MoveCursorUp, 0, false},
		{"down", 1, (*Level).MoveCursorDown, 2, true},
		{"down at bottom", 4, (*Level).MoveCursorDown, 4, false},
		{"page down", 0, func(l *Level) bool { return l.MoveCursorPageDown(2) }, 2, true},
		{"page down clamps", 3, func(l *Level) bool { return l.MoveCursorPageDown(2) }, 4, true},
		{"page up past start", 2, func(l *Level) bool { return l.MoveCursorPageUp(10) }, 0, true},
		{"out of range cursor", 9, (*Level).MoveCursorUp, 3, true},
	}
	for _, tc := range cases {
		l := newTestLevel("a", "b", "c", "d", "e")
		l.Cursor = tc.start
		moved := tc.move(l)
		if moved != tc.moved || l.Cursor != tc.want {
			t.Fatalf("%s: expected cursor %d moved=%v, got %d moved=%v", tc.name, tc.want, tc.moved, l.Cursor, moved)
		}
	}
}

func TestCursorOnEmptyLevel(t *testing.T) {
	l := newTestLevel()
	l.Cursor = 5
	for _, move := range []func() bool{l.MoveCursorHome, l.MoveCursorEnd, l.MoveCursorDown} {
		if move() {
			t.Fatalf("expected no movement on an empty level")
		}
		if l.Cursor != 0 {
			t.Fatalf("expected cursor reset to 0, got %d", l.Cursor)
		}
	}
}

func TestMoveCursorToTab(t *testing.T) {
	l := NewLevel("tabs", "Tabs", []Item{
		{ID: "a", Label: "Hacker News"},
		{ID: "b", Label: "Go Documentation"},
		{ID: "old", Label: "Old Recipe", Section: SectionInactive},
	})
	if !l.MoveCursorTo("old") || l.Cursor != 2 {
		t.Fatalf("expected cursor on the inactive row, got %d", l.Cursor)
	}
	if l.MoveCursorTo("old") {
		t.Fatalf("expected no movement when already on the row")
	}
	if l.MoveCursorTo("missing") || l.Cursor != 2 {
		t.Fatalf("expected unknown id to leave the cursor, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleScrollsViewport(t *testing.T) {
	cases := []struct {
		name       string
		cursor     int
		offset     int
		maxVisible int
		wantCursor int
		wantOffset int
	}{
		{"cursor below page", 4, 0, 2, 4, 3},
		{"cursor above page", 1, 4, 3, 1, 1},
		{"cursor inside page", 2, 1, 3, 2, 1},
		{"negative cursor", -1, 3, 2, 0, 0},
		{"no room", 3, 4, 0, 3, 0},
		{"page taller than list", 4, 2, 10, 4, 0},
	}
	for _, tc := range cases {
		l := newTestLevel("a", "b", "c", "d", "e")
		l.Cursor = tc.cursor
		l.ViewportOffset = tc.offset
		l.EnsureCursorVisible(tc.maxVisible)
		if l.Cursor != tc.wantCursor || l.ViewportOffset != tc.wantOffset {
			t.Fatalf("%s: expected cursor %d offset %d, got %d %d", tc.name, tc.wantCursor, tc.wantOffset, l.Cursor, l.ViewportOffset)
		}
	}
}
