package state

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// setCursor clamps idx to the visible rows and reports whether the cursor
// moved.
func (l *Level) setCursor(idx int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(idx, 0, len(l.Items)-1)
	return l.Cursor != old
}

// MoveCursorHome moves the cursor to the first row.
func (l *Level) MoveCursorHome() bool { return l.setCursor(0) }

// MoveCursorEnd moves the cursor to the last row.
func (l *Level) MoveCursorEnd() bool { return l.setCursor(len(l.Items) - 1) }

// MoveCursorUp moves the cursor one row up.
func (l *Level) MoveCursorUp() bool { return l.moveCursorBy(-1) }

// MoveCursorDown moves the cursor one row down.
func (l *Level) MoveCursorDown() bool { return l.moveCursorBy(1) }

// MoveCursorPageUp moves the cursor up by one page of maxVisible rows.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by one page of maxVisible rows.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

// MoveCursorTo puts the cursor on the visible row with id.
func (l *Level) MoveCursorTo(id string) bool {
	idx := l.IndexOf(id)
	if idx < 0 {
		return false
	}
	return l.setCursor(idx)
}

func (l *Level) moveCursorBy(delta int) bool {
	return l.setCursor(clamp(l.Cursor, 0, len(l.Items)-1) + delta)
}

func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Items)
	if maxVisible <= 0 || maxVisible > total {
		return total
	}
	return maxVisible
}

// EnsureCursorVisible scrolls the viewport so the cursor row is one of the
// maxVisible rows shown.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Items) - maxVisible
	offset := clamp(l.ViewportOffset, 0, maxOffset)
	switch {
	case l.Cursor < offset:
		offset = l.Cursor
	case l.Cursor >= offset+maxVisible:
		offset = l.Cursor - maxVisible + 1
	}
	l.ViewportOffset = clamp(offset, 0, maxOffset)
}
