package command

import (
	"sync"
)

// StateListener observes a context after each successful transition.
type StateListener func(c *Context, from, to State)

// Context is the mutable record of one command execution: input, redo and
// undo parameters, result, error and state. A Context is created by
// RootCommand.CreateContext and mutated only by the owning command.
//
// The zero value is not usable; contexts are built by NewContext.
type Context struct {
	mu sync.RWMutex

	command   RootCommand
	input     Input
	state     State
	redo      Input
	undo      Input
	result    any
	hasResult bool
	err       error
	listeners []StateListener
}

// NewContext returns a context in Init state bound to cmd.
func NewContext(cmd RootCommand, in Input) *Context {
	return &Context{
		command: cmd,
		input:   in,
		state:   Init,
	}
}

// Command returns the command that produced the context.
func (c *Context) Command() RootCommand {
	return c.command
}

// Input returns the caller supplied input.
func (c *Context) Input() Input {
	return c.input
}

// State returns the current state.
func (c *Context) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// RedoParameter returns the resolved input of the forward operation.
func (c *Context) RedoParameter() Input {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redo
}

// UndoParameter returns the data captured to reverse the forward operation.
func (c *Context) UndoParameter() Input {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.undo
}

// Result returns the forward result and whether one was produced.
func (c *Context) Result() (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.result, c.hasResult
}

// Err returns the failure cause, nil unless the context is in Fail state.
func (c *Context) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// IsReady reports whether the context holds a redo parameter and waits for
// DoCommand.
func (c *Context) IsReady() bool { return c.State() == Ready }

// IsDone reports whether the forward operation completed. Only a Done
// context can be undone.
//
// Example:
//
//	cmd.DoCommand(ctx, c)
//	if c.IsDone() {
//	    result, _ := c.Result()
//	    ...
//	}
func (c *Context) IsDone() bool { return c.State() == Done }

// IsFailed reports whether the context ended in Fail. Err returns the cause.
func (c *Context) IsFailed() bool { return c.State() == Fail }

// IsUndone reports whether the forward operation was reversed.
func (c *Context) IsUndone() bool { return c.State() == Undone }

// IsCanceled reports whether the context was dropped before it ran, for
// example a macro step after a failed sibling.
func (c *Context) IsCanceled() bool { return c.State() == Cancel }

// AddStateListener registers l for all following transitions.
func (c *Context) AddStateListener(l StateListener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

// Ready binds the redo parameter and moves Init -> Ready.
func (c *Context) Ready(redo Input) error {
	return c.transition(Ready, func() {
		c.redo = redo
	})
}

// SetRedoParameter replaces the redo parameter of a Ready context. Used by
// macro commands to transfer results between nested steps.
func (c *Context) SetRedoParameter(redo Input) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Ready {
		return NewStateError(c.commandID(), "transfer into", c.state)
	}
	c.redo = redo
	return nil
}

// Start moves Ready -> Work.
func (c *Context) Start() error {
	return c.transition(Work, nil)
}

// Complete stores the undo parameter and result, then moves Work -> Done.
func (c *Context) Complete(result any, undo Input) error {
	return c.transition(Done, func() {
		c.undo = undo
		c.result = result
		c.hasResult = true
	})
}

// Undone moves Done -> Undone.
func (c *Context) Undone() error {
	return c.transition(Undone, nil)
}

// Cancel moves an unstarted (Init or Ready) context to Cancel.
func (c *Context) Cancel() error {
	return c.transition(Cancel, nil)
}

// Failed moves a non-terminal context to Fail with cause and drops any
// result. It reports false if the context was already terminal, in which
// case nothing changes.
func (c *Context) Failed(cause error) bool {
	if cause == nil {
		cause = ErrCommandFailed
	}
	return c.transition(Fail, func() {
		c.err = cause
		c.result = nil
		c.hasResult = false
	}) == nil
}

func (c *Context) transition(next State, apply func()) error {
	c.mu.Lock()
	from := c.state
	if _, err := from.TransitionTo(next); err != nil {
		c.mu.Unlock()
		return err
	}
	if apply != nil {
		apply()
	}
	c.state = next
	listeners := append([]StateListener(nil), c.listeners...)
	c.mu.Unlock()

	for _, l := range listeners {
		l(c, from, next)
	}
	return nil
}

func (c *Context) commandID() string {
	if c.command == nil {
		return ""
	}
	return c.command.ID()
}
