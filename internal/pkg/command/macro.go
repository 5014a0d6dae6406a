package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// MacroOperation supplies the command-specific parts of a macro command.
//
// NestedInput derives the input of one nested command from the root input;
// it runs during CreateContext and may read persisted data but must not
// write. TransferResult is called after done completes and before next
// runs, so next's redo parameter can be completed with done's result.
// FinalResult computes the macro result once every nested step is Done.
type MacroOperation interface {
	ID() string
	NestedInput(ctx context.Context, nested RootCommand, root Input) (Input, error)
	TransferResult(done, next *Context) error
	FinalResult(p *MacroParameter) (any, error)
}

// MacroOption configures a Macro.
type MacroOption func(*Macro)

// WithCompensationPool offloads compensation and undo walks to pool.
func WithCompensationPool(pool *CompensationPool) MacroOption {
	return func(m *Macro) {
		m.pool = pool
	}
}

// Macro executes an ordered list of nested commands as one command with
// LIFO compensation. It satisfies RootCommand, so macros nest.
//
// Forward: nested steps run strictly in declaration order. If one fails,
// or FinalResult fails after all of them are Done, steps not yet started
// are moved to Cancel and the completed ones are undone in reverse
// completion order; the macro fails with the error.
//
// The macro opens no transaction of its own. Every nested command runs its
// do and undo under its own boundary, so a failed undo never rolls back the
// undos of its siblings and nested states match what was stored.
//
// Example:
//
//	macro, err := command.NewMacro(op, logger,
//	    []command.RootCommand{createProfile, createPerson})
//	c := macro.CreateContext(ctx, command.InputOf(registration))
//	macro.DoCommand(ctx, c)
type Macro struct {
	op     MacroOperation
	nested []RootCommand
	pool   *CompensationPool
	logger *slog.Logger
}

// NewMacro creates a macro command over nested. At least two nested
// commands are required.
func NewMacro(
	op MacroOperation,
	logger *slog.Logger,
	nested []RootCommand,
	opts ...MacroOption,
) (*Macro, error) {
	if len(nested) < 2 {
		return nil, fmt.Errorf("%w: %q has %d", ErrMacroNeedsNested, op.ID(), len(nested))
	}
	if logger == nil {
		logger = slog.Default()
	}

	m := &Macro{
		op:     op,
		nested: slices.Clone(nested),
		logger: logger.With("component", "macro_command", "command_id", op.ID()),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// ID returns the macro identifier.
func (m *Macro) ID() string {
	return m.op.ID()
}

// Nested returns the nested commands in declaration order.
func (m *Macro) Nested() []RootCommand {
	return slices.Clone(m.nested)
}

// CreateContext prepares one nested context per nested command. The first
// failure fails the macro context and stops preparation.
func (m *Macro) CreateContext(ctx context.Context, in Input) *Context {
	c := NewContext(m, in)
	if in.IsEmpty() {
		c.Failed(ErrInputIsRequired)
		return c
	}

	nestedContexts := make([]*Context, 0, len(m.nested))
	for _, nested := range m.nested {
		nestedIn, err := m.nestedInput(ctx, nested, in)
		if err != nil {
			c.Failed(err)
			return c
		}

		nc := nested.CreateContext(ctx, nestedIn)
		if nc.IsFailed() {
			c.Failed(nc.Err())
			return c
		}
		nestedContexts = append(nestedContexts, nc)
	}

	if err := c.Ready(InputOf(NewMacroParameter(in, nestedContexts))); err != nil {
		c.Failed(err)
	}
	return c
}

// DoCommand runs the nested contexts forward.
func (m *Macro) DoCommand(ctx context.Context, c *Context) {
	if !admitDo(m.ID(), c) {
		return
	}

	param, err := InputValue[*MacroParameter](c.RedoParameter(), "macro parameter")
	if err != nil {
		c.Failed(err)
		return
	}

	result, err := m.doNested(ctx, param)
	if err != nil {
		m.logger.InfoContext(ctx, "Macro command failed", "error", err)
		c.Failed(err)
		return
	}

	if err = c.Complete(result, InputOf(param.Completed())); err != nil {
		c.Failed(err)
	}
}

// UndoCommand undoes the completed nested contexts in reverse completion
// order. Every nested undo is attempted; the macro fails with the first
// failure.
func (m *Macro) UndoCommand(ctx context.Context, c *Context) {
	if !admitUndo(m.ID(), c) {
		return
	}

	completed, err := InputValue[[]*Context](c.UndoParameter(), "macro undo parameter")
	if err != nil {
		c.Failed(err)
		return
	}

	err = m.offload(ctx, func(ctx context.Context) error {
		return m.undoNested(ctx, completed)
	})
	if err != nil {
		m.logger.WarnContext(ctx, "Macro command undo failed", "error", err)
		c.Failed(err)
		return
	}

	if err = c.Undone(); err != nil {
		c.Failed(err)
	}
}

// doNested runs every nested context and computes the macro result. Any
// failure, including one from FinalResult, compensates the completed steps.
func (m *Macro) doNested(ctx context.Context, param *MacroParameter) (any, error) {
	for i, nc := range param.Forward() {
		nc.AddStateListener(func(done *Context, _, to State) {
			if to == Done {
				param.markCompleted(done)
			}
		})

		if i > 0 {
			if err := m.transfer(param.Nested[i-1], nc); err != nil {
				return nil, m.rollbackNested(ctx, param, i, err)
			}
		}

		nc.Command().DoCommand(ctx, nc)
		if !nc.IsDone() {
			return nil, m.rollbackNested(ctx, param, i+1, stepError(nc))
		}
	}

	result, err := m.finalResult(param)
	if err != nil {
		return nil, m.rollbackNested(ctx, param, len(param.Nested), err)
	}
	return result, nil
}

// rollbackNested cancels nested contexts from index next on and
// compensates completed ones. It returns cause, joined with the
// compensation error if compensation failed.
func (m *Macro) rollbackNested(ctx context.Context, param *MacroParameter, next int, cause error) error {
	for _, nc := range param.Nested[next:] {
		if err := nc.Cancel(); err != nil && !nc.State().IsTerminal() {
			nc.Failed(err)
		}
	}

	completed := param.Completed()
	m.logger.DebugContext(ctx, "Compensating nested commands", "completed", len(completed), "error", cause)

	compensateCtx := context.WithoutCancel(ctx)
	if err := m.offload(compensateCtx, func(ctx context.Context) error {
		return m.undoNested(ctx, completed)
	}); err != nil {
		m.logger.ErrorContext(ctx, "Compensation failed", "error", err)
		return errors.Join(cause, err)
	}
	return cause
}

func (m *Macro) undoNested(ctx context.Context, completed []*Context) error {
	var firstErr error
	for _, nc := range slices.Backward(completed) {
		nc.Command().UndoCommand(ctx, nc)
		if !nc.IsUndone() && firstErr == nil {
			firstErr = stepError(nc)
		}
	}
	return firstErr
}

func (m *Macro) offload(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.pool == nil {
		return fn(ctx)
	}
	return m.pool.Run(ctx, fn)
}

func (m *Macro) nestedInput(ctx context.Context, nested RootCommand, root Input) (in Input, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(m.ID(), r)
		}
	}()
	return m.op.NestedInput(ctx, nested, root)
}

func (m *Macro) transfer(done, next *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(m.ID(), r)
		}
	}()
	return m.op.TransferResult(done, next)
}

func (m *Macro) finalResult(param *MacroParameter) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(m.ID(), r)
		}
	}()
	return m.op.FinalResult(param)
}

func stepError(nc *Context) error {
	if err := nc.Err(); err != nil {
		return err
	}
	return NewStateError(nc.Command().ID(), "complete", nc.State())
}
