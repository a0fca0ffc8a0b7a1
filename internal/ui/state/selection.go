package state

// CleanupMarks drops marks for rows that are gone.
func (l *Level) CleanupMarks() {
	if len(l.Marked) == 0 {
		return
	}
	valid := make(map[string]struct{}, len(l.Full))
	for _, item := range l.Full {
		valid[item.ID] = struct{}{}
	}
	for id := range l.Marked {
		if _, ok := valid[id]; !ok {
			delete(l.Marked, id)
		}
	}
}

// IsMarked reports whether the given id is marked.
func (l *Level) IsMarked(id string) bool {
	if l.Marked == nil {
		return false
	}
	_, ok := l.Marked[id]
	return ok
}

// ToggleMark toggles the mark of the row under the cursor and reports the
// new mark state.
func (l *Level) ToggleMark() (Item, bool) {
	item, ok := l.CursorItem()
	if !ok {
		return Item{}, false
	}
	if l.Marked == nil {
		l.Marked = make(map[string]struct{})
	}
	if _, marked := l.Marked[item.ID]; marked {
		delete(l.Marked, item.ID)
		return item, false
	}
	l.Marked[item.ID] = struct{}{}
	return item, true
}

// ClearMarks removes every mark.
func (l *Level) ClearMarks() {
	for id := range l.Marked {
		delete(l.Marked, id)
	}
}

// MarkedItems returns the marked rows in list order, including rows hidden
// by the filter.
func (l *Level) MarkedItems() []Item {
	if len(l.Marked) == 0 {
		return nil
	}
	marked := make([]Item, 0, len(l.Marked))
	for _, item := range l.Full {
		if l.IsMarked(item.ID) {
			marked = append(marked, item)
		}
	}
	return marked
}
