package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/smm-uncleared/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l == nil {
		return
	}
	if before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput edits the picker query. It reports whether msg was
// consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.picker
	if current == nil {
		return false
	}
	switch msg.String() {
	case "ctrl+u":
		before := current.FilterCursorPos()
		if !current.ClearFilter() {
			return false
		}
		m.noteFilterCursorChange(current, before)
		m.afterQueryChange()
		return true
	case "ctrl+w":
		before := current.FilterCursorPos()
		if !current.DeleteFilterWordBackward() {
			return false
		}
		m.noteFilterCursorChange(current, before)
		m.afterQueryChange()
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		before := current.FilterCursorPos()
		if !current.DeleteFilterRuneBackward() {
			return false
		}
		m.noteFilterCursorChange(current, before)
		m.afterQueryChange()
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		before := current.FilterCursorPos()
		if !current.MoveFilterCursorRuneBackward() {
			return false
		}
		m.noteFilterCursorChange(current, before)
		events.UI.PickerCursor(current.ID, current.FilterCursor)
		return true
	case tea.KeyRight:
		before := current.FilterCursorPos()
		if !current.MoveFilterCursorRuneForward() {
			return false
		}
		m.noteFilterCursorChange(current, before)
		events.UI.PickerCursor(current.ID, current.FilterCursor)
		return true
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	current := m.picker
	if current == nil || text == "" {
		return false
	}
	before := current.FilterCursorPos()
	if !current.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(current, before)
	m.afterQueryChange()
	return true
}

func (m *Model) afterQueryChange() {
	m.errMsg = ""
	events.UI.PickerQuery(m.picker.ID, m.picker.Filter)
	m.syncViewport(m.picker)
}

func (m *Model) filterPrompt() string {
	current := m.picker
	if current == nil {
		return ""
	}
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if current.Filter == "" {
		runes := []rune("(type to search)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(current.Filter)
	pos := current.FilterCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
