package commands

import (
	"context"
	"fmt"

	"school/internal/core/domain/model/kernel"
	"school/internal/core/ports"
	"school/internal/pkg/command"
)

// entity is satisfied by every aggregate pointer type of the domain model.
type entity interface {
	ID() kernel.ID
	Validate() error
}

// saveOperation creates a transient entity or updates a persistent one.
//
// Undo parameter: the assigned kernel.ID after a create, the snapshot read
// before the update otherwise.
type saveOperation[E entity] struct {
	id   string
	kind string
	repo ports.Repository[E]
}

func newSaveOperation[E entity](id, kind string, repo ports.Repository[E]) *saveOperation[E] {
	return &saveOperation[E]{id: id, kind: kind, repo: repo}
}

func (o *saveOperation[E]) ID() string {
	return o.id
}

func (o *saveOperation[E]) Prepare(in command.Input) (command.Input, error) {
	e, err := command.InputValue[E](in, o.kind)
	if err != nil {
		return command.EmptyInput(), err
	}
	if err = e.Validate(); err != nil {
		return command.EmptyInput(), err
	}
	return command.InputOf(e), nil
}

func (o *saveOperation[E]) ExecuteDo(ctx context.Context, redo command.Input) (any, command.Input, error) {
	e, err := command.InputValue[E](redo, o.kind)
	if err != nil {
		return nil, command.EmptyInput(), err
	}

	if e.ID().IsTransient() {
		saved, saveErr := o.repo.Save(ctx, e)
		if saveErr != nil {
			return nil, command.EmptyInput(), saveErr
		}
		return saved, command.InputOf(saved.ID()), nil
	}

	snapshot, err := o.repo.FindByID(ctx, e.ID())
	if err != nil {
		return nil, command.EmptyInput(), err
	}
	saved, err := o.repo.Save(ctx, e)
	if err != nil {
		return nil, command.EmptyInput(), err
	}
	return saved, command.InputOf(snapshot), nil
}

func (o *saveOperation[E]) ExecuteUndo(ctx context.Context, undo command.Input) error {
	return undoChange(ctx, o.repo, o.kind, undo)
}

// deleteOperation removes an entity after checking its deletion rule.
// The undo parameter is the deleted snapshot.
type deleteOperation[E entity] struct {
	id        string
	kind      string
	repo      ports.Repository[E]
	deletable func(ctx context.Context, e E) error
}

func newDeleteOperation[E entity](
	id, kind string,
	repo ports.Repository[E],
	deletable func(ctx context.Context, e E) error,
) *deleteOperation[E] {
	return &deleteOperation[E]{id: id, kind: kind, repo: repo, deletable: deletable}
}

func (o *deleteOperation[E]) ID() string {
	return o.id
}

func (o *deleteOperation[E]) Prepare(in command.Input) (command.Input, error) {
	return prepareID(in, o.kind)
}

func (o *deleteOperation[E]) ExecuteDo(ctx context.Context, redo command.Input) (any, command.Input, error) {
	id, err := command.InputValue[kernel.ID](redo, o.kind+" id")
	if err != nil {
		return nil, command.EmptyInput(), err
	}

	snapshot, err := o.repo.FindByID(ctx, id)
	if err != nil {
		return nil, command.EmptyInput(), err
	}
	if o.deletable != nil {
		if err = o.deletable(ctx, snapshot); err != nil {
			return nil, command.EmptyInput(), err
		}
	}
	if err = o.repo.Delete(ctx, id); err != nil {
		return nil, command.EmptyInput(), err
	}
	return true, command.InputOf(snapshot), nil
}

func (o *deleteOperation[E]) ExecuteUndo(ctx context.Context, undo command.Input) error {
	return undoChange(ctx, o.repo, o.kind, undo)
}

// findOperation is a pure read. Its undo does nothing.
type findOperation[E entity] struct {
	id   string
	kind string
	repo ports.Repository[E]
}

func newFindOperation[E entity](id, kind string, repo ports.Repository[E]) *findOperation[E] {
	return &findOperation[E]{id: id, kind: kind, repo: repo}
}

func (o *findOperation[E]) ID() string {
	return o.id
}

func (o *findOperation[E]) Prepare(in command.Input) (command.Input, error) {
	return prepareID(in, o.kind)
}

func (o *findOperation[E]) ExecuteDo(ctx context.Context, redo command.Input) (any, command.Input, error) {
	id, err := command.InputValue[kernel.ID](redo, o.kind+" id")
	if err != nil {
		return nil, command.EmptyInput(), err
	}

	e, err := o.repo.FindByID(ctx, id)
	if err != nil {
		return nil, command.EmptyInput(), err
	}
	return e, command.EmptyInput(), nil
}

func (o *findOperation[E]) ExecuteUndo(context.Context, command.Input) error {
	return nil
}

func prepareID(in command.Input, kind string) (command.Input, error) {
	id, err := command.InputValue[kernel.ID](in, kind+" id")
	if err != nil {
		return command.EmptyInput(), err
	}
	if err = id.Validate(); err != nil {
		return command.EmptyInput(), err
	}
	return command.InputOf(id), nil
}

// undoChange reverses a save or delete: a kernel.ID is deleted, a snapshot
// is restored.
func undoChange[E entity](ctx context.Context, repo ports.Repository[E], kind string, undo command.Input) error {
	if undo.IsEmpty() {
		return fmt.Errorf("%w: %s", command.ErrUndoParameterIsRequired, kind)
	}

	switch v := undo.Value().(type) {
	case kernel.ID:
		return repo.Delete(ctx, v)
	case E:
		return repo.Restore(ctx, v)
	default:
		var zero E
		return command.NewInputTypeError(kind+" undo parameter",
			fmt.Sprintf("kernel.ID or %T", zero), fmt.Sprintf("%T", v))
	}
}
