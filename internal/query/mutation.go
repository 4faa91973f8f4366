package query

// MutationState is the stage of a one-shot action.
type MutationState int

const (
	MutationIdle MutationState = iota
	MutationPending
	MutationSuccess
	MutationError
)

func (s MutationState) String() string {
	switch s {
	case MutationPending:
		return "pending"
	case MutationSuccess:
		return "success"
	case MutationError:
		return "error"
	default:
		return "idle"
	}
}

// Mutation tracks a user-triggered action such as marking a level cleared.
// It can be started from idle or after a failure, never while pending or
// after success. It is not safe for concurrent use.
type Mutation struct {
	state MutationState
	seq   int
	err   error
}

// Start moves to pending and returns the attempt number to pass to Finish.
func (m *Mutation) Start() (int, bool) {
	if !m.Enabled() {
		return 0, false
	}
	m.seq++
	m.state = MutationPending
	m.err = nil
	return m.seq, true
}

// Finish records the outcome of attempt seq. Outcomes of older attempts,
// or arriving after Reset, are ignored.
func (m *Mutation) Finish(seq int, err error) bool {
	if seq != m.seq || m.state != MutationPending {
		return false
	}
	if err != nil {
		m.state = MutationError
		m.err = err
		return true
	}
	m.state = MutationSuccess
	return true
}

// Reset returns to idle and invalidates any pending attempt.
func (m *Mutation) Reset() {
	m.seq++
	m.state = MutationIdle
	m.err = nil
}

// Enabled reports whether the action may be triggered.
func (m *Mutation) Enabled() bool {
	return m.state == MutationIdle || m.state == MutationError
}

func (m *Mutation) State() MutationState {
	return m.state
}

// Err is the failure of the last attempt, if any.
func (m *Mutation) Err() error {
	return m.err
}

// Label is the trigger text for the current state.
func (m *Mutation) Label() string {
	switch m.state {
	case MutationPending:
		return "Working..."
	case MutationSuccess:
		return "Done! :)"
	case MutationError:
		return "Failed! :("
	default:
		return "Mark as Cleared"
	}
}
