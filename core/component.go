package core

import "fmt"

// State is one of the component state labels the rendezvous protocol reads
// or sets. Component lifecycle and the rest of the state machine are owned
// by the host component implementation; the core only recognizes these four
// values plus the IsStopped predicate.
type State int

const (
	// StateRunning marks a component that is not currently blocked on a
	// send or receive.
	StateRunning State = iota
	// StateReceivingParams marks a component suspended inside Receive.
	StateReceivingParams
	// StateSendingParams marks a component suspended inside Send.
	StateSendingParams
	// StateStoppedAtIter marks a component that stopped only because a
	// downstream consumer's bounded iteration count was satisfied. Peers
	// observing this state must not treat it as an error.
	StateStoppedAtIter
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StateReceivingParams:
		return "RECEIVING_PARAMS"
	case StateSendingParams:
		return "SENDING_PARAMS"
	case StateStoppedAtIter:
		return "STOPPED_AT_ITER"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Component is the contract the rendezvous protocol relies on from its
// owning component. Component lifecycle, the rest of the state machine and
// the scheduler implementation are external collaborators; this interface
// is the entire surface the core touches.
type Component interface {
	// Name identifies the component in state labels and error messages.
	Name() string
	// State returns the component's current state.
	State() State
	// SetState updates the component's state, with an optional descriptive
	// label (e.g. "producer.out -> consumer.in").
	SetState(s State, label string)
	// IsStopped reports whether the component has reached any terminal
	// state, including but not limited to StateStoppedAtIter.
	IsStopped() bool
	// StoppingIteration is the component's bounded-iteration counter; 0
	// means unbounded (normal) wait mode.
	StoppingIteration() int
	// Scheduler returns the collaborator used to lazily spawn peer tasks.
	Scheduler() Scheduler
}

// Scheduler is the cooperative task scheduler contract the core relies on.
// Implementations must make CreateTaskIfNeeded idempotent and cheap: it is
// called on every send/receive round, not only once, so that peers whose
// tasks ended but must be restarted under bounded-iteration mode get
// restarted.
type Scheduler interface {
	CreateTaskIfNeeded(self, peer Component)
}
