package command

import (
	"fmt"

	"school/internal/pkg/errs"
)

// State is the lifecycle state of a command Context.
//
// State transitions:
//
//	Init ──> Ready ──> Work ──> Done ──> Undone
//	  │        │         │        │
//	  │        │         └────────┴──> Fail
//	  ├────────┴──> Fail
//	  └────────┴──> Cancel
//
// Fail, Undone and Cancel are terminal.
type State int

const (
	// Unknown represents an uninitialized state.
	Unknown State = iota

	// Init is the state of a freshly created context without a redo parameter.
	Init

	// Ready means a valid redo parameter is bound and the command may run.
	Ready

	// Work means the forward operation is in progress.
	Work

	// Done means the forward operation succeeded and the undo parameter is captured.
	Done

	// Fail means the context holds an error. Terminal.
	Fail

	// Undone means the effect of a Done context was reversed. Terminal.
	Undone

	// Cancel marks a nested context that was never started because an
	// earlier sibling failed. Terminal.
	Cancel
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown: "Unknown",
		Init:    "Init",
		Ready:   "Ready",
		Work:    "Work",
		Done:    "Done",
		Fail:    "Fail",
		Undone:  "Undone",
		Cancel:  "Cancel",
	}
}

func getStateTransitions() map[State][]State {
	//nolint:exhaustive // terminal states have no outgoing transitions
	return map[State][]State{
		Init:  {Ready, Fail, Cancel},
		Ready: {Work, Fail, Cancel},
		Work:  {Done, Fail},
		Done:  {Undone, Fail},
	}
}

// Validate checks that s is one of the declared states other than Unknown.
func (s State) Validate() error {
	if s <= Unknown || s > Cancel {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s State) IsTerminal() bool {
	return s == Fail || s == Undone || s == Cancel
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range getStateTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the transition is allowed, otherwise a
// *TransitionError.
func (s State) TransitionTo(next State) (State, error) {
	if !s.CanTransitionTo(next) {
		return s, NewTransitionError(s, next)
	}
	return next, nil
}
