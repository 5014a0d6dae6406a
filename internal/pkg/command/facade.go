package command

import (
	"context"
	"fmt"
	"log/slog"
)

// Facade dispatches facade actions to commands of a Factory. Each call is
// wrapped in an ActionContext and reported to the ActionExecutor.
type Facade struct {
	factory  *Factory
	executor ActionExecutor
	logger   *slog.Logger
}

// NewFacade creates a facade over factory. A nil executor ignores actions.
func NewFacade(factory *Factory, executor ActionExecutor, logger *slog.Logger) *Facade {
	if executor == nil {
		executor = NopActionExecutor
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Facade{
		factory:  factory,
		executor: executor,
		logger:   logger.With("component", "facade", "facade", factory.Name()),
	}
}

// Execute runs the command commandID with in as the action named action and
// returns the unwrapped result. A failed context is returned as an
// *ExecutionError.
func (f *Facade) Execute(ctx context.Context, action, commandID string, in Input) (any, error) {
	c, err := f.Run(ctx, action, commandID, in)
	if err != nil {
		return nil, err
	}

	if !c.IsDone() {
		return nil, NewExecutionError(commandID, c.Err())
	}

	result, _ := c.Result()
	return result, nil
}

// Run executes the command and returns its context without unwrapping it,
// so the caller can undo it later. err is non-nil only when the command is
// not registered.
func (f *Facade) Run(ctx context.Context, action, commandID string, in Input) (*Context, error) {
	cmd, err := f.factory.Command(commandID)
	if err != nil {
		return nil, err
	}

	act := NewActionContext(f.factory.Name(), action)
	ctx = WithAction(ctx, act)

	c := cmd.CreateContext(ctx, in)
	cmd.DoCommand(ctx, c)
	act.Finish()

	f.report(ctx, act, c, c.IsDone())
	return c, nil
}

// Undo reverses a context previously returned by Run.
func (f *Facade) Undo(ctx context.Context, action string, c *Context) error {
	act := NewActionContext(f.factory.Name(), action)
	ctx = WithAction(ctx, act)

	c.Command().UndoCommand(ctx, c)
	act.Finish()

	f.report(ctx, act, c, c.IsUndone())
	if !c.IsUndone() {
		return NewExecutionError(c.Command().ID(), c.Err())
	}
	return nil
}

func (f *Facade) report(ctx context.Context, act *ActionContext, c *Context, succeeded bool) {
	if succeeded {
		f.logger.DebugContext(ctx, "Action committed",
			"action", act.Action, "action_id", act.ID, "command_id", c.Command().ID())
		f.executor.CommitAction(ctx, act, c)
		return
	}

	f.logger.InfoContext(ctx, "Action rolled back",
		"action", act.Action, "action_id", act.ID, "command_id", c.Command().ID(), "error", c.Err())
	f.executor.RollbackAction(ctx, act, c)
}

// Do executes the command through facade and converts the result to T.
//
// Example:
//
//	c, err := command.Do[*course.Course](ctx, facade, "createOrUpdate", CreateOrUpdateCourseID, command.InputOf(c))
func Do[T any](ctx context.Context, facade *Facade, action, commandID string, in Input) (T, error) {
	var zero T

	result, err := facade.Execute(ctx, action, commandID, in)
	if err != nil {
		return zero, err
	}

	typed, ok := result.(T)
	if !ok {
		return zero, NewExecutionError(commandID,
			NewInputTypeError("result", fmt.Sprintf("%T", zero), fmt.Sprintf("%T", result)))
	}
	return typed, nil
}
