package command

import (
	"context"
	"log/slog"
)

// Operation is the side-effecting part of a leaf command.
//
// Prepare turns the caller input into the redo parameter and rejects input
// of the wrong type. ExecuteDo performs the forward operation and returns
// its result together with the undo parameter. ExecuteUndo reverses the
// effect described by an undo parameter.
type Operation interface {
	ID() string
	Prepare(in Input) (Input, error)
	ExecuteDo(ctx context.Context, redo Input) (any, Input, error)
	ExecuteUndo(ctx context.Context, undo Input) error
}

// Leaf drives an Operation through the Context state machine. Leaf holds
// no per-call state and may serve any number of contexts concurrently.
//
// Example:
//
//	leaf := command.NewLeaf(findCourseOperation, txScope, logger)
//	c := leaf.CreateContext(ctx, command.InputOf(kernel.ID(42)))
//	leaf.DoCommand(ctx, c)
//	if c.IsFailed() {
//	    return c.Err()
//	}
type Leaf struct {
	op     Operation
	tx     TxScope
	logger *slog.Logger
}

// NewLeaf creates a leaf command. A nil tx runs operations without a
// transaction boundary.
func NewLeaf(op Operation, tx TxScope, logger *slog.Logger) *Leaf {
	if tx == nil {
		tx = NoTx
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Leaf{
		op:     op,
		tx:     tx,
		logger: logger.With("component", "command", "command_id", op.ID()),
	}
}

// ID returns the operation identifier.
func (l *Leaf) ID() string {
	return l.op.ID()
}

// CreateContext validates in and returns a Ready context, or a failed one.
func (l *Leaf) CreateContext(_ context.Context, in Input) *Context {
	c := NewContext(l, in)

	redo, err := l.prepare(in)
	if err != nil {
		c.Failed(err)
		return c
	}

	if err = c.Ready(redo); err != nil {
		c.Failed(err)
	}
	return c
}

// DoCommand runs the forward operation on a Ready context.
func (l *Leaf) DoCommand(ctx context.Context, c *Context) {
	if !admitDo(l.ID(), c) {
		return
	}

	var (
		result any
		undo   Input
	)
	err := l.tx.Execute(ctx, func(ctx context.Context) error {
		return l.safeExec(func() error {
			var execErr error
			result, undo, execErr = l.op.ExecuteDo(ctx, c.RedoParameter())
			return execErr
		})
	})
	if err != nil {
		l.logger.DebugContext(ctx, "Command failed", "error", err)
		c.Failed(err)
		return
	}

	if err = c.Complete(result, undo); err != nil {
		c.Failed(err)
	}
}

// UndoCommand reverses a Done context.
func (l *Leaf) UndoCommand(ctx context.Context, c *Context) {
	if !admitUndo(l.ID(), c) {
		return
	}

	err := l.tx.Execute(ctx, func(ctx context.Context) error {
		return l.safeExec(func() error {
			return l.op.ExecuteUndo(ctx, c.UndoParameter())
		})
	})
	if err != nil {
		l.logger.WarnContext(ctx, "Command undo failed", "error", err)
		c.Failed(err)
		return
	}

	if err = c.Undone(); err != nil {
		c.Failed(err)
	}
}

func (l *Leaf) prepare(in Input) (redo Input, err error) {
	err = l.safeExec(func() error {
		var prepErr error
		redo, prepErr = l.op.Prepare(in)
		return prepErr
	})
	return redo, err
}

func (l *Leaf) safeExec(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(l.ID(), r)
		}
	}()
	return fn()
}

// admitDo moves a Ready context to Work. Contexts in Init or Work are failed
// with a *StateError; Done and terminal contexts are left untouched so a
// repeated do never duplicates side effects.
func admitDo(commandID string, c *Context) bool {
	state := c.State()
	switch state { //nolint:exhaustive // remaining states are handled by default
	case Ready:
		if err := c.Start(); err != nil {
			c.Failed(err)
			return false
		}
		return true
	case Done, Fail, Undone, Cancel:
		return false
	default:
		c.Failed(NewStateError(commandID, "do", state))
		return false
	}
}

// admitUndo accepts only Done contexts. Init, Ready and Work contexts are
// failed with a *StateError; terminal contexts are left untouched.
func admitUndo(commandID string, c *Context) bool {
	state := c.State()
	if state == Done {
		return true
	}
	if !state.IsTerminal() {
		c.Failed(NewStateError(commandID, "undo", state))
	}
	return false
}
