package filter

import (
	"fmt"
	"strings"
)

// Definition describes one filter key: its caption and the ordered option
// list the selector walks through.
type Definition struct {
	Key     Key
	Caption string
	Options []Option
}

// Contains reports whether value is one of the definition's option values.
func (d Definition) Contains(value string) bool {
	return d.IndexOf(value) >= 0
}

// IndexOf returns the option index for value, or -1.
func (d Definition) IndexOf(value string) int {
	for i, opt := range d.Options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// Registry is the static option catalogue of a single game.
type Registry struct {
	Game        Game
	Endpoint    string
	definitions []Definition
	index       map[Key]int
	defaults    State
}

// NewRegistry builds a registry and checks that every default, and every
// implicit "unset" default, is a selectable option.
func NewRegistry(game Game, endpoint string, defs []Definition, defaults State) (*Registry, error) {
	r := &Registry{
		Game:        game,
		Endpoint:    endpoint,
		definitions: make([]Definition, len(defs)),
		index:       make(map[Key]int, len(defs)),
		defaults:    defaults.Clone(),
	}
	copy(r.definitions, defs)
	for i, def := range r.definitions {
		if len(def.Options) == 0 {
			return nil, fmt.Errorf("%s: filter %q has no options", game, def.Key)
		}
		if _, dup := r.index[def.Key]; dup {
			return nil, fmt.Errorf("%s: filter %q defined twice", game, def.Key)
		}
		r.index[def.Key] = i
	}
	for key := range r.defaults {
		if _, ok := r.index[key]; !ok {
			return nil, fmt.Errorf("%s: default for unknown filter %q", game, key)
		}
	}
	for _, def := range r.definitions {
		if want := r.Default(def.Key); !def.Contains(want) {
			return nil, fmt.Errorf("%s: default %q for filter %q is not an option", game, want, def.Key)
		}
	}
	return r, nil
}

// MustRegistry panics when the registry definition is inconsistent.
func MustRegistry(game Game, endpoint string, defs []Definition, defaults State) *Registry {
	r, err := NewRegistry(game, endpoint, defs, defaults)
	if err != nil {
		panic(err)
	}
	return r
}

// Definitions returns the filter definitions in display order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.definitions))
	copy(out, r.definitions)
	return out
}

// Definition looks up a key.
func (r *Registry) Definition(key Key) (Definition, bool) {
	i, ok := r.index[key]
	if !ok {
		return Definition{}, false
	}
	return r.definitions[i], true
}

// Default returns the documented default for key; "" means unconstrained.
func (r *Registry) Default(key Key) string {
	return r.defaults[key]
}

// Defaults returns a fresh copy of the default state.
func (r *Registry) Defaults() State {
	return r.defaults.Clone()
}

// Accepts reports whether value is a valid selection for key.
func (r *Registry) Accepts(key Key, value string) bool {
	def, ok := r.Definition(key)
	return ok && def.Contains(value)
}

// Sanitize drops unknown keys and values outside the option list, replacing
// them with the key default.
func (r *Registry) Sanitize(s State) State {
	out := make(State, len(r.definitions))
	for _, def := range r.definitions {
		value, ok := s.Get(def.Key)
		if !ok || !def.Contains(value) {
			value = r.Default(def.Key)
		}
		if value != "" {
			out[def.Key] = value
		}
	}
	return out
}

// Clean derives the parameters sent to the API: defaults first, then every
// non-empty raw value on top.
func (r *Registry) Clean(raw State) State {
	out := r.Defaults()
	for k, v := range raw {
		if v == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// Selected returns the value a selector for key should show for s.
func (r *Registry) Selected(s State, key Key) string {
	if v, ok := s.Get(key); ok {
		return v
	}
	return r.Default(key)
}

// Label returns the option label for a value of key.
func (r *Registry) Label(key Key, value string) string {
	def, ok := r.Definition(key)
	if !ok {
		return value
	}
	if i := def.IndexOf(value); i >= 0 {
		return def.Options[i].Label
	}
	return value
}

// Summary renders the cleaned state as "caption: label" pairs.
func (r *Registry) Summary(s State) string {
	parts := make([]string, 0, len(r.definitions))
	for _, def := range r.definitions {
		value, ok := s.Get(def.Key)
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", def.Caption, r.Label(def.Key, value)))
	}
	return strings.Join(parts, ", ")
}
