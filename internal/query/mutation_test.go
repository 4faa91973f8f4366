package query

import (
	"errors"
	"testing"
)

func TestMutationLifecycle(t *testing.T) {
	var m Mutation
	if !m.Enabled() || m.Label() != "Mark as Cleared" {
		t.Fatalf("expected idle enabled mutation, got %s/%q", m.State(), m.Label())
	}

	seq, ok := m.Start()
	if !ok {
		t.Fatal("expected start from idle")
	}
	if m.Enabled() || m.Label() != "Working..." {
		t.Fatalf("expected pending disabled mutation, got %q", m.Label())
	}
	if _, ok := m.Start(); ok {
		t.Fatal("expected start while pending to be refused")
	}

	if !m.Finish(seq, errors.New("nope")) {
		t.Fatal("expected finish to apply")
	}
	if !m.Enabled() || m.Label() != "Failed! :(" || m.Err() == nil {
		t.Fatalf("expected failed mutation to re-enable, got %s", m.State())
	}

	seq, ok = m.Start()
	if !ok {
		t.Fatal("expected retry after failure")
	}
	m.Finish(seq, nil)
	if m.Enabled() || m.Label() != "Done! :)" {
		t.Fatalf("expected success to disable, got %s", m.State())
	}
	if _, ok := m.Start(); ok {
		t.Fatal("expected start after success to be refused")
	}
}

func TestMutationIgnoresStaleFinish(t *testing.T) {
	var m Mutation
	seq, _ := m.Start()
	m.Reset()
	if m.Finish(seq, nil) {
		t.Fatal("expected finish after reset to be ignored")
	}
	if m.State() != MutationIdle {
		t.Fatalf("expected idle, got %s", m.State())
	}
}
