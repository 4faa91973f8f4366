package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type doneMsg struct{ id string }

func TestExecuteReturnsHandlerMessage(t *testing.T) {
	bus := New()
	cmd := bus.Execute(Request{ID: "level:smm2", Label: "load", Run: func() tea.Msg {
		return doneMsg{id: "abc"}
	}})
	if cmd == nil {
		t.Fatal("expected command")
	}
	msg, ok := cmd().(doneMsg)
	if !ok || msg.id != "abc" {
		t.Fatalf("expected doneMsg, got %#v", msg)
	}
}

func TestExecuteWithoutHandlerIsNoop(t *testing.T) {
	cmd := New().Execute(Request{ID: "noop"})
	if msg := cmd(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}
