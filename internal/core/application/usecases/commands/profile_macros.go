package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/person"
	"school/internal/core/domain/model/profile"
	"school/internal/core/domain/model/student"
	"school/internal/core/ports"
	"school/internal/pkg/command"
)

const (
	CreateAuthorityPersonMacroID = "authorityPerson.createWithProfile"
	DeleteAuthorityPersonMacroID = "authorityPerson.deleteWithProfile"
	CreateStudentMacroID         = "student.createWithProfile"
	DeleteStudentMacroID         = "student.deleteWithProfile"
)

var ErrUnexpectedNestedCommand = errors.New("unexpected nested command")

// profiled is an entity owning exactly one profile.
type profiled[E any] interface {
	entity
	ProfileID() kernel.ID
	WithProfileID(profileID kernel.ID) E
}

// NewCreateAuthorityPersonMacro creates the profile, then the person
// referencing it. Input is a Registration[*person.AuthorityPerson]; the
// result is the stored person.
func NewCreateAuthorityPersonMacro(
	createProfile, createPerson command.RootCommand,
	logger *slog.Logger,
) (*command.Macro, error) {
	op := &createWithProfileOperation[*person.AuthorityPerson]{
		id:               CreateAuthorityPersonMacroID,
		profileCommandID: createProfile.ID(),
		entityCommandID:  createPerson.ID(),
	}
	return command.NewMacro(op, logger, []command.RootCommand{createProfile, createPerson})
}

// NewCreateStudentMacro creates the profile, then the student referencing
// it. Input is a Registration[*student.Student].
func NewCreateStudentMacro(
	createProfile, createStudent command.RootCommand,
	logger *slog.Logger,
) (*command.Macro, error) {
	op := &createWithProfileOperation[*student.Student]{
		id:               CreateStudentMacroID,
		profileCommandID: createProfile.ID(),
		entityCommandID:  createStudent.ID(),
	}
	return command.NewMacro(op, logger, []command.RootCommand{createProfile, createStudent})
}

// NewDeleteAuthorityPersonMacro deletes the person, then its profile.
// Input is the person kernel.ID.
func NewDeleteAuthorityPersonMacro(
	deletePerson, deleteProfile command.RootCommand,
	persons ports.AuthorityPersonRepository,
	pool *command.CompensationPool,
	logger *slog.Logger,
) (*command.Macro, error) {
	op := &deleteWithProfileOperation[*person.AuthorityPerson]{
		id:               DeleteAuthorityPersonMacroID,
		kind:             person.EntityKind,
		entityCommandID:  deletePerson.ID(),
		profileCommandID: deleteProfile.ID(),
		repo:             persons,
	}
	return command.NewMacro(op, logger, []command.RootCommand{deletePerson, deleteProfile},
		command.WithCompensationPool(pool))
}

// NewDeleteStudentMacro deletes the student, then its profile.
// Input is the student kernel.ID.
func NewDeleteStudentMacro(
	deleteStudent, deleteProfile command.RootCommand,
	students ports.StudentRepository,
	pool *command.CompensationPool,
	logger *slog.Logger,
) (*command.Macro, error) {
	op := &deleteWithProfileOperation[*student.Student]{
		id:               DeleteStudentMacroID,
		kind:             student.EntityKind,
		entityCommandID:  deleteStudent.ID(),
		profileCommandID: deleteProfile.ID(),
		repo:             students,
	}
	return command.NewMacro(op, logger, []command.RootCommand{deleteStudent, deleteProfile},
		command.WithCompensationPool(pool))
}

type createWithProfileOperation[E profiled[E]] struct {
	id               string
	profileCommandID string
	entityCommandID  string
}

func (o *createWithProfileOperation[E]) ID() string {
	return o.id
}

func (o *createWithProfileOperation[E]) NestedInput(
	_ context.Context,
	nested command.RootCommand,
	root command.Input,
) (command.Input, error) {
	reg, err := command.InputValue[Registration[E]](root, "registration")
	if err != nil {
		return command.EmptyInput(), err
	}
	if err = reg.Validate(); err != nil {
		return command.EmptyInput(), err
	}

	switch nested.ID() {
	case o.profileCommandID:
		return command.InputOf(reg.Profile()), nil
	case o.entityCommandID:
		return command.InputOf(reg.Entity()), nil
	default:
		return command.EmptyInput(), fmt.Errorf("%w: %s in %s", ErrUnexpectedNestedCommand, nested.ID(), o.id)
	}
}

// TransferResult puts the stored profile ID into the entity about to be
// created.
func (o *createWithProfileOperation[E]) TransferResult(done, next *command.Context) error {
	if done.Command().ID() != o.profileCommandID || next.Command().ID() != o.entityCommandID {
		return nil
	}

	result, _ := done.Result()
	saved, ok := result.(*profile.Profile)
	if !ok || saved == nil {
		return command.NewInputTypeError("profile result", "*profile.Profile", fmt.Sprintf("%T", result))
	}

	e, err := command.InputValue[E](next.RedoParameter(), "entity")
	if err != nil {
		return err
	}
	return next.SetRedoParameter(command.InputOf(e.WithProfileID(saved.ID())))
}

func (o *createWithProfileOperation[E]) FinalResult(p *command.MacroParameter) (any, error) {
	return nestedResult[E](p, o.entityCommandID)
}

type deleteWithProfileOperation[E profiled[E]] struct {
	id               string
	kind             string
	entityCommandID  string
	profileCommandID string
	repo             ports.Repository[E]
}

func (o *deleteWithProfileOperation[E]) ID() string {
	return o.id
}

// NestedInput reads the profile ID from the persisted entity since the
// entity is gone once the profile step runs.
func (o *deleteWithProfileOperation[E]) NestedInput(
	ctx context.Context,
	nested command.RootCommand,
	root command.Input,
) (command.Input, error) {
	id, err := command.InputValue[kernel.ID](root, o.kind+" id")
	if err != nil {
		return command.EmptyInput(), err
	}

	switch nested.ID() {
	case o.entityCommandID:
		return command.InputOf(id), nil
	case o.profileCommandID:
		e, findErr := o.repo.FindByID(ctx, id)
		if findErr != nil {
			return command.EmptyInput(), findErr
		}
		return command.InputOf(e.ProfileID()), nil
	default:
		return command.EmptyInput(), fmt.Errorf("%w: %s in %s", ErrUnexpectedNestedCommand, nested.ID(), o.id)
	}
}

func (o *deleteWithProfileOperation[E]) TransferResult(_, _ *command.Context) error {
	return nil
}

func (o *deleteWithProfileOperation[E]) FinalResult(p *command.MacroParameter) (any, error) {
	return nestedResult[bool](p, o.entityCommandID)
}

func nestedResult[T any](p *command.MacroParameter, commandID string) (T, error) {
	var zero T

	c, ok := p.NestedFor(commandID)
	if !ok {
		return zero, fmt.Errorf("%w: %s", command.ErrCommandIsNotRegistered, commandID)
	}
	result, _ := c.Result()
	typed, ok := result.(T)
	if !ok {
		return zero, command.NewInputTypeError("nested result", fmt.Sprintf("%T", zero), fmt.Sprintf("%T", result))
	}
	return typed, nil
}
