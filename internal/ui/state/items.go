package state

import "github.com/atomicstack/smm-uncleared/internal/filter"

// Item is one row of a picker. ID carries the option value, which may be
// empty for the "Any" choice.
type Item struct {
	ID    string
	Label string
}

// ItemsFromOptions converts filter options into picker rows.
func ItemsFromOptions(options []filter.Option) []Item {
	items := make([]Item, len(options))
	for i, opt := range options {
		items[i] = Item{ID: opt.Value, Label: opt.Label}
	}
	return items
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
