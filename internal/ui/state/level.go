package state

// Level holds the rows of one panel with its cursor, filter, marks and
// viewport.
type Level struct {
	ID             string
	Title          string
	Items          []Item
	Full           []Item
	Filter         string
	Cursor         int
	LastCursor     int
	Marked         map[string]struct{}
	ViewportOffset int
}

// NewLevel constructs a Level using the provided items.
func NewLevel(id, title string, items []Item) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
		Marked:     make(map[string]struct{}),
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index of the visible item with id, or -1.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// FullIndexOf returns the index of id among the unfiltered items of section.
func (l *Level) FullIndexOf(id string, section Section) int {
	n := 0
	for _, item := range l.Full {
		if item.Section != section {
			continue
		}
		if item.ID == id {
			return n
		}
		n++
	}
	return -1
}

// CursorItem returns the item under the cursor.
func (l *Level) CursorItem() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the rows. The cursor follows the item it was on when
// that item is still present.
func (l *Level) UpdateItems(items []Item) {
	prevOffset := l.ViewportOffset
	var prevID string
	if item, ok := l.CursorItem(); ok {
		prevID = item.ID
	}
	l.Full = CloneItems(items)
	l.CleanupMarks()
	l.applyFilter()
	if idx := l.IndexOf(prevID); idx >= 0 {
		l.Cursor = idx
	}
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(l.Items)-1 {
		prevOffset = 0
	}
	l.ViewportOffset = prevOffset
}

// FocusCurrent moves the cursor to the row flagged Current.
func (l *Level) FocusCurrent() bool {
	for i, item := range l.Items {
		if item.Current {
			l.Cursor = i
			return true
		}
	}
	return false
}
