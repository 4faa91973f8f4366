package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Pick   key.Binding
	Load   key.Binding
	Copy   key.Binding
	Mark   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "filter")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "change")),
		Next:   key.NewBinding(key.WithKeys("right", "l")),
		Pick:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
		Load:   key.NewBinding(key.WithKeys("r", " ", "space"), key.WithHelp("r", "new level")),
		Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy id")),
		Mark:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mark cleared")),
		Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch game")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// footerBindings lists the bindings shown in the footer, in order.
func (k keyMap) footerBindings(markable bool) []key.Binding {
	out := []key.Binding{k.Up, k.Prev, k.Pick, k.Load, k.Copy}
	if markable {
		out = append(out, k.Mark)
	}
	return append(out, k.Switch, k.Quit)
}
