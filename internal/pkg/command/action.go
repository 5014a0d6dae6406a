package command

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type actionKey struct{}

// ActionContext describes one top-level facade call. It travels through
// context.Context so nested commands see the action they belong to.
type ActionContext struct {
	ID         uuid.UUID
	Facade     string
	Action     string
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewActionContext starts an action of the named facade.
func NewActionContext(facade, action string) *ActionContext {
	return &ActionContext{
		ID:        uuid.New(),
		Facade:    facade,
		Action:    action,
		StartedAt: time.Now().UTC(),
	}
}

// Finish stamps the finish time.
func (a *ActionContext) Finish() {
	a.FinishedAt = time.Now().UTC()
}

// Duration returns the time between start and finish, zero while unfinished.
func (a *ActionContext) Duration() time.Duration {
	if a.FinishedAt.IsZero() {
		return 0
	}
	return a.FinishedAt.Sub(a.StartedAt)
}

// WithAction returns a copy of ctx carrying action.
func WithAction(ctx context.Context, action *ActionContext) context.Context {
	return context.WithValue(ctx, actionKey{}, action)
}

// ActionFrom returns the action carried by ctx.
func ActionFrom(ctx context.Context) (*ActionContext, bool) {
	action, ok := ctx.Value(actionKey{}).(*ActionContext)
	return action, ok && action != nil
}

// ActionExecutor receives the outcome of every top-level command execution.
// CommitAction is called for contexts that ended Done (or Undone for undo
// actions), RollbackAction for everything else.
type ActionExecutor interface {
	CommitAction(ctx context.Context, action *ActionContext, c *Context)
	RollbackAction(ctx context.Context, action *ActionContext, c *Context)
}

type nopActionExecutor struct{}

func (nopActionExecutor) CommitAction(context.Context, *ActionContext, *Context)   {}
func (nopActionExecutor) RollbackAction(context.Context, *ActionContext, *Context) {}

// NopActionExecutor ignores all actions.
var NopActionExecutor ActionExecutor = nopActionExecutor{}
