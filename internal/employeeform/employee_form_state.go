package employeeform

type Phase int

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// State is the submission state of one form. Message is only set when
// Phase is PhaseFailed.
type State struct {
	Phase   Phase
	Message string
}

// Transient reports whether the state reverts to idle on its own.
func (s State) Transient() bool {
	return s.Phase == PhaseSucceeded || s.Phase == PhaseFailed
}

func Idle() State      { return State{Phase: PhaseIdle} }
func Pending() State   { return State{Phase: PhasePending} }
func Succeeded() State { return State{Phase: PhaseSucceeded} }

func Failed(message string) State {
	return State{Phase: PhaseFailed, Message: message}
}
