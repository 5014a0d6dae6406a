package command

import (
	"errors"
	"fmt"
)

var (
	ErrInputIsRequired         = errors.New("command input is required")
	ErrInputTypeMismatch       = errors.New("command input has unexpected type")
	ErrUndoParameterIsRequired = errors.New("undo parameter is required")
	ErrIllegalTransition       = errors.New("illegal context state transition")
	ErrIllegalState            = errors.New("context is in illegal state for operation")
	ErrCommandPanicked         = errors.New("command panicked")
	ErrCommandFailed           = errors.New("command failed")
	ErrCommandIsNotRegistered  = errors.New("command is not registered")
	ErrCommandIsDuplicated     = errors.New("command is already registered")
	ErrMacroNeedsNested        = errors.New("macro command needs at least two nested commands")
)

// InputTypeError reports an input (or undo parameter) whose runtime type does
// not match what the command expects.
type InputTypeError struct {
	ParamName string
	Expected  string
	Actual    string
}

// NewInputTypeError reports that paramName holds actual where expected was
// required. The result matches ErrInputTypeMismatch with errors.Is.
//
// Example:
//
//	id, ok := in.Value().(kernel.ID)
//	if !ok {
//	    return command.NewInputTypeError("course.delete", "kernel.ID", fmt.Sprintf("%T", in.Value()))
//	}
func NewInputTypeError(paramName, expected, actual string) *InputTypeError {
	return &InputTypeError{
		ParamName: paramName,
		Expected:  expected,
		Actual:    actual,
	}
}

func (e *InputTypeError) Error() string {
	return fmt.Sprintf("%s: %s expected %s, got %s", ErrInputTypeMismatch, e.ParamName, e.Expected, e.Actual)
}

func (e *InputTypeError) Unwrap() error {
	return ErrInputTypeMismatch
}

// TransitionError reports a rejected state transition.
type TransitionError struct {
	From State
	To   State
}

// NewTransitionError reports a rejected from -> to transition.
func NewTransitionError(from, to State) *TransitionError {
	return &TransitionError{From: from, To: to}
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// StateError reports an operation invoked on a context in the wrong state,
// for example undo on a context that never reached Done.
type StateError struct {
	CommandID string
	Operation string
	State     State
}

// NewStateError reports that operation cannot run on commandID while its
// context is in state. The result matches ErrIllegalState with errors.Is.
//
// Example:
//
//	if !c.IsDone() {
//	    c.Failed(command.NewStateError(cmd.ID(), "undo", c.State()))
//	}
func NewStateError(commandID, operation string, state State) *StateError {
	return &StateError{
		CommandID: commandID,
		Operation: operation,
		State:     state,
	}
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: cannot %s command %q in state %s", ErrIllegalState, e.Operation, e.CommandID, e.State)
}

func (e *StateError) Unwrap() error {
	return ErrIllegalState
}

// PanicError carries a value recovered from a panicking operation.
type PanicError struct {
	CommandID string
	Value     any
}

// NewPanicError wraps a value recovered from commandID.
func NewPanicError(commandID string, value any) *PanicError {
	return &PanicError{CommandID: commandID, Value: value}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: %q: %v", ErrCommandPanicked, e.CommandID, e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return errors.Join(ErrCommandPanicked, err)
	}
	return ErrCommandPanicked
}

// ExecutionError is returned by facades when a command context ends failed.
// Cause is the context error kept by reference.
type ExecutionError struct {
	CommandID string
	Cause     error
}

// NewExecutionError wraps the error of a failed commandID context.
//
// Example:
//
//	if c.IsFailed() {
//	    return nil, command.NewExecutionError(c.Command().ID(), c.Err())
//	}
func NewExecutionError(commandID string, cause error) *ExecutionError {
	return &ExecutionError{CommandID: commandID, Cause: cause}
}

func (e *ExecutionError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %q", ErrCommandFailed, e.CommandID)
	}
	return fmt.Sprintf("%s: %q: %v", ErrCommandFailed, e.CommandID, e.Cause)
}

func (e *ExecutionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrCommandFailed}
	}
	return []error{ErrCommandFailed, e.Cause}
}
