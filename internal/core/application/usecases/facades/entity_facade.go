// Package facades exposes the commands of every entity kind as typed
// methods. Each method is one audited action.
package facades

import (
	"context"
	"log/slog"

	"school/internal/core/domain/model/kernel"
	"school/internal/pkg/command"
)

// Action names reported to the ActionExecutor.
const (
	ActionCreateOrUpdate    = "createOrUpdate"
	ActionDelete            = "delete"
	ActionFindByID          = "findById"
	ActionRegister          = "register"
	ActionDeleteWithProfile = "deleteWithProfile"
)

// EntityFacade runs the create-or-update, delete and find commands of one
// entity kind.
type EntityFacade[E any] struct {
	facade   *command.Facade
	createID string
	deleteID string
	findID   string
}

func newEntityFacade[E any](
	name string,
	cmds []command.RootCommand,
	executor command.ActionExecutor,
	logger *slog.Logger,
	createID, deleteID, findID string,
) (*EntityFacade[E], error) {
	factory, err := command.NewFactory(name, cmds...)
	if err != nil {
		return nil, err
	}
	return &EntityFacade[E]{
		facade:   command.NewFacade(factory, executor, logger),
		createID: createID,
		deleteID: deleteID,
		findID:   findID,
	}, nil
}

// CreateOrUpdate stores e and returns the stored state.
func (f *EntityFacade[E]) CreateOrUpdate(ctx context.Context, e E) (E, error) {
	return command.Do[E](ctx, f.facade, ActionCreateOrUpdate, f.createID, command.InputOf(e))
}

// FindByID returns the entity or an error wrapping *errs.ObjectNotFoundError.
func (f *EntityFacade[E]) FindByID(ctx context.Context, id kernel.ID) (E, error) {
	return command.Do[E](ctx, f.facade, ActionFindByID, f.findID, command.InputOf(id))
}

// Delete removes the entity when its deletion rule allows it.
func (f *EntityFacade[E]) Delete(ctx context.Context, id kernel.ID) error {
	_, err := command.Do[bool](ctx, f.facade, ActionDelete, f.deleteID, command.InputOf(id))
	return err
}

// Run executes an arbitrary command of this facade and returns its context
// for a later Undo.
func (f *EntityFacade[E]) Run(ctx context.Context, action, commandID string, in command.Input) (*command.Context, error) {
	return f.facade.Run(ctx, action, commandID, in)
}

// Undo reverses a context returned by Run.
func (f *EntityFacade[E]) Undo(ctx context.Context, action string, c *command.Context) error {
	return f.facade.Undo(ctx, action, c)
}
