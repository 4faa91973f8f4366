package state

import (
	"fmt"

	"github.com/atomicstack/smm-uncleared/internal/filter"
)

// Selector steps through an ordered option list. Moving past either end is
// a no-op; there is no wraparound.
type Selector struct {
	ID       string
	options  []filter.Option
	index    int
	onChange func(value string)
}

// NewSelector builds a selector positioned on initial. An empty option list
// or an initial value outside it is a configuration error. onChange, when
// set, is called once with the initial value and again on every move.
func NewSelector(id string, options []filter.Option, initial string, onChange func(value string)) (*Selector, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("selector %s: no options", id)
	}
	s := &Selector{ID: id, options: options, index: -1, onChange: onChange}
	for i, opt := range options {
		if opt.Value == initial {
			s.index = i
			break
		}
	}
	if s.index < 0 {
		return nil, fmt.Errorf("selector %s: initial value %q is not an option", id, initial)
	}
	s.emit()
	return s, nil
}

// Prev moves one option back. It reports whether the index changed.
func (s *Selector) Prev() bool {
	return s.setIndex(s.index - 1)
}

// Next moves one option forward. It reports whether the index changed.
func (s *Selector) Next() bool {
	return s.setIndex(s.index + 1)
}

// SelectValue jumps to value. Unknown values leave the selector untouched.
func (s *Selector) SelectValue(value string) bool {
	for i, opt := range s.options {
		if opt.Value == value {
			return s.setIndex(i)
		}
	}
	return false
}

// CanPrev reports whether Prev would move; the view greys the arrow out
// otherwise.
func (s *Selector) CanPrev() bool {
	return s.index > 0
}

// CanNext reports whether Next would move.
func (s *Selector) CanNext() bool {
	return s.index < len(s.options)-1
}

func (s *Selector) Index() int {
	return s.index
}

func (s *Selector) Value() string {
	return s.options[s.index].Value
}

func (s *Selector) Label() string {
	return s.options[s.index].Label
}

func (s *Selector) Options() []filter.Option {
	out := make([]filter.Option, len(s.options))
	copy(out, s.options)
	return out
}

func (s *Selector) setIndex(i int) bool {
	if i < 0 || i >= len(s.options) || i == s.index {
		return false
	}
	s.index = i
	s.emit()
	return true
}

func (s *Selector) emit() {
	if s.onChange != nil {
		s.onChange(s.Value())
	}
}
