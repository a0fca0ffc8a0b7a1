package state

// Section groups rows of the tab list.
type Section int

const (
	SectionTabs Section = iota
	SectionInactive
)

// Item is one row of the tab list.
type Item struct {
	ID       string
	Label    string
	Detail   string
	Section  Section
	Current  bool
	Private  bool
	HomePage bool
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
