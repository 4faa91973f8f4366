package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/smm-uncleared/internal/logging/events"
	"github.com/atomicstack/smm-uncleared/internal/query"
	uistate "github.com/atomicstack/smm-uncleared/internal/ui/state"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.picker != nil {
		return m.handlePickerKey(keyMsg)
	}
	f := m.current()
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit()
	case key.Matches(keyMsg, m.keys.Up):
		m.moveFocus(f, -1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveFocus(f, 1)
	case key.Matches(keyMsg, m.keys.Prev):
		if sel := f.focused(); sel != nil {
			sel.Prev()
		}
	case key.Matches(keyMsg, m.keys.Next):
		if sel := f.focused(); sel != nil {
			sel.Next()
		}
	case key.Matches(keyMsg, m.keys.Pick):
		m.openPicker()
	case key.Matches(keyMsg, m.keys.Load):
		return m.loadLevel(f)
	case key.Matches(keyMsg, m.keys.Copy):
		return m.copyCourseID(f)
	case key.Matches(keyMsg, m.keys.Mark):
		return m.markCleared(f)
	case key.Matches(keyMsg, m.keys.Switch):
		return m.switchGame()
	}
	return nil
}

func (m *Model) moveFocus(f *feature, delta int) {
	if !f.moveFocus(delta) {
		return
	}
	if sel := f.focused(); sel != nil {
		events.UI.Focus(string(f.game()), sel.ID)
	}
}

// switchGame moves to the next game. Its first visit triggers a load; later
// visits show whatever that game last held.
func (m *Model) switchGame() tea.Cmd {
	if len(m.order) < 2 {
		return nil
	}
	m.current().popover.cancel()
	idx := 0
	for i, game := range m.order {
		if game == m.active {
			idx = i
			break
		}
	}
	m.active = m.order[(idx+1)%len(m.order)]
	m.errMsg = ""
	events.App.SwitchGame(string(m.active))
	next := m.current()
	if next.requested() {
		return nil
	}
	return m.loadLevel(next)
}

func (m *Model) quit() tea.Cmd {
	for _, f := range m.features {
		f.popover.cancel()
	}
	events.App.Exit("quit")
	return tea.Quit
}

func (m *Model) openPicker() {
	f := m.current()
	sel := f.focused()
	if sel == nil {
		return
	}
	def, ok := f.focusedDefinition()
	if !ok {
		return
	}
	m.picker = uistate.NewLevel(sel.ID, def.Caption, uistate.ItemsFromOptions(sel.Options()), sel.Value())
	m.syncViewport(m.picker)
	events.UI.PickerOpen(string(f.game()), sel.ID, len(m.picker.Full))
}

// closePicker hides the picker, applying the highlighted option when choose
// is set.
func (m *Model) closePicker(choose bool) {
	if m.picker == nil {
		return
	}
	f := m.current()
	picker := m.picker
	m.picker = nil
	value := ""
	if choose {
		item, ok := picker.Current()
		if !ok {
			choose = false
		} else if sel := f.focused(); sel != nil && sel.ID == picker.ID {
			sel.SelectValue(item.ID)
			value = item.ID
		}
	}
	events.UI.PickerClose(string(f.game()), picker.ID, value, choose)
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		if m.picker.ClearFilter() {
			m.filterCursorDirty = true
			m.syncViewport(m.picker)
			return nil
		}
		m.closePicker(false)
		return nil
	case "enter":
		m.closePicker(true)
		return nil
	}
	if m.handleTextInput(msg) {
		return nil
	}
	switch msg.String() {
	case "up", "ctrl+p":
		m.picker.MoveCursorUp()
	case "down", "ctrl+n":
		m.picker.MoveCursorDown()
	case "pgup":
		m.picker.MoveCursorPageUp(m.maxVisibleItems())
	case "pgdown":
		m.picker.MoveCursorPageDown(m.maxVisibleItems())
	case "home":
		m.picker.MoveCursorHome()
	case "end":
		m.picker.MoveCursorEnd()
	}
	m.syncViewport(m.picker)
	return nil
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

// maxVisibleItems is the number of picker rows that fit on screen.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 4 // tabs, picker title, blank and filter prompt
	if m.showFooter {
		used += 2
	}
	return max(m.height-used, 1)
}

// startSpinner begins animating the loading indicator unless it already is.
func (m *Model) startSpinner() tea.Cmd {
	if !m.animate || m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || !m.spinning {
		return nil
	}
	if !m.anyLoading() {
		m.spinning = false
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(tick)
	return cmd
}

func (m *Model) anyLoading() bool {
	for _, f := range m.features {
		if f.result().Status == query.StatusLoading {
			return true
		}
	}
	return false
}
