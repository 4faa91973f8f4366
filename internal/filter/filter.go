// Package filter holds the per-game filter registries and the immutable
// filter state values the UI edits and the query layer consumes.
package filter

import (
	"net/url"
	"sort"
)

// Game identifies one of the supported level catalogues.
type Game string

const (
	GameSMM1 Game = "smm1"
	GameSMM2 Game = "smm2"
)

// Key names a single selectable search constraint.
type Key string

const (
	KeyYear                Key = "year"
	KeyStyle               Key = "style"
	KeyTheme               Key = "theme"
	KeyClearConditionGroup Key = "clear_condition_group"
	KeyTag                 Key = "tag"
	KeyMinAttempts         Key = "min_attempts"
	KeyMaxAttempts         Key = "max_attempts"
	KeyMinClearcheckMs     Key = "min_clearcheck_ms"
	KeyMaxClearcheckMs     Key = "max_clearcheck_ms"
)

// Option is a selectable value paired with its display label. The value is
// what goes on the wire.
type Option struct {
	Value string
	Label string
}

// State maps filter keys to their selected value. Absent keys fall back to
// the registry default. Empty values are never stored.
type State map[Key]string

// Get returns the value for key and whether it is set.
func (s State) Get(key Key) (string, bool) {
	v, ok := s[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// With returns a copy of s with key set to value. An empty value unsets key.
func (s State) With(key Key, value string) State {
	next := s.Clone()
	if value == "" {
		delete(next, key)
		return next
	}
	next[key] = value
	return next
}

// Clone returns an independent copy, dropping empty values.
func (s State) Clone() State {
	dup := make(State, len(s))
	for k, v := range s {
		if v == "" {
			continue
		}
		dup[k] = v
	}
	return dup
}

// Equal reports whether both states hold the same non-empty values.
func (s State) Equal(other State) bool {
	a, b := s.Clone(), other.Clone()
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// Keys returns the set keys in lexical order.
func (s State) Keys() []Key {
	keys := make([]Key, 0, len(s))
	for k, v := range s {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Values encodes the state as query parameters.
func (s State) Values() url.Values {
	values := make(url.Values, len(s))
	for _, k := range s.Keys() {
		values.Set(string(k), s[k])
	}
	return values
}
