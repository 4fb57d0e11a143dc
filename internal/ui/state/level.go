package state

import "github.com/stepmenu/stepmenu/internal/menu"

// Level is the display state for the sibling group at the handler's current
// depth: the items shown, the cursor mirroring the handler position, and the
// viewport offset for narrow terminals.
type Level struct {
	Title          string
	Items          []menu.Item
	Cursor         int
	ViewportOffset int
}

// NewLevel constructs a Level for the provided siblings with the cursor on
// the handler's current index.
func NewLevel(title string, items []menu.Item, cursor int) *Level {
	l := &Level{
		Title: title,
		Items: CloneItems(items),
	}
	l.SetCursor(cursor)
	return l
}

// SetCursor positions the cursor, clamping it into the item range.
func (l *Level) SetCursor(cursor int) {
	if cursor < 0 {
		cursor = 0
	}
	if n := len(l.Items); n > 0 && cursor >= n {
		cursor = n - 1
	}
	l.Cursor = cursor
}

// IndexOf returns the index of the item with the given name.
func (l *Level) IndexOf(name string) int {
	if name == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.Name == name {
			return i
		}
	}
	return -1
}

// CloneItems produces a shallow copy of the provided menu items.
func CloneItems(items []menu.Item) []menu.Item {
	dup := make([]menu.Item, len(items))
	copy(dup, items)
	return dup
}
