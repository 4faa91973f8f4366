package state

// Level is a filterable list with a cursor and a scrolling viewport. The
// option picker overlay is built on it.
type Level struct {
	ID             string
	Title          string
	Items          []Item
	Full           []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level with the cursor on the item whose ID is
// selected, or the first item.
func NewLevel(id, title string, items []Item, selected string) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
	}
	l.Full = CloneItems(items)
	l.Items = CloneItems(items)
	if idx := l.IndexOf(selected); idx >= 0 {
		l.Cursor = idx
	}
	return l
}

// IndexOf returns the index of the visible item with the given ID, or -1.
func (l *Level) IndexOf(id string) int {
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *Level) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}
