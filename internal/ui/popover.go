package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	popoverDuration = 2 * time.Second
	copiedText      = "Copied to clipboard!"
)

// popover is a transient notice. Every show or cancel bumps seq, so a
// dismiss scheduled for an earlier showing is ignored.
type popover struct {
	text    string
	visible bool
	seq     int
}

func (p *popover) show(text string) int {
	p.seq++
	p.text = text
	p.visible = true
	return p.seq
}

func (p *popover) cancel() {
	p.seq++
	p.visible = false
}

// dismiss hides the popover if seq is the latest showing.
func (p *popover) dismiss(seq int) bool {
	if seq != p.seq || !p.visible {
		return false
	}
	p.visible = false
	return true
}

// popoverDismissMsg fires when a popover's timer runs out.
type popoverDismissMsg struct {
	game string
	seq  int
}

// afterFunc schedules msg after d. The default wraps tea.Tick.
type afterFunc func(d time.Duration, msg tea.Msg) tea.Cmd

func tickAfter(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
