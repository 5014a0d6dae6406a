package commands

import (
	"context"
	"log/slog"

	"school/internal/core/domain/model/person"
	"school/internal/core/ports"
	"school/internal/pkg/command"
	"school/internal/pkg/errs"
)

const (
	CreateOrUpdateAuthorityPersonID = "authorityPerson.createOrUpdate"
	DeleteAuthorityPersonID         = "authorityPerson.delete"
	FindAuthorityPersonID           = "authorityPerson.findById"
)

// NewCreateOrUpdateAuthorityPersonCommand expects a *person.AuthorityPerson
// input. Use NewCreateAuthorityPersonMacro to create the person together
// with its profile.
func NewCreateOrUpdateAuthorityPersonCommand(
	persons ports.AuthorityPersonRepository,
	tx ports.TxScope,
	logger *slog.Logger,
) *command.Leaf {
	return command.NewLeaf(newSaveOperation(CreateOrUpdateAuthorityPersonID, person.EntityKind, persons), tx, logger)
}

// NewDeleteAuthorityPersonCommand refuses to delete the dean of a faculty.
func NewDeleteAuthorityPersonCommand(
	persons ports.AuthorityPersonRepository,
	faculties ports.FacultyRepository,
	tx ports.TxScope,
	logger *slog.Logger,
) *command.Leaf {
	deletable := func(ctx context.Context, p *person.AuthorityPerson) error {
		managed, err := faculties.CountByDean(ctx, p.ID())
		if err != nil {
			return err
		}
		if managed > 0 {
			return errs.NewBusinessRuleError(person.ErrPersonManagesFaculty, person.EntityKind, p.ID())
		}
		return nil
	}
	return command.NewLeaf(
		newDeleteOperation(DeleteAuthorityPersonID, person.EntityKind, persons, deletable), tx, logger)
}

// NewFindAuthorityPersonCommand expects a kernel.ID input.
func NewFindAuthorityPersonCommand(persons ports.AuthorityPersonRepository, logger *slog.Logger) *command.Leaf {
	return command.NewLeaf(newFindOperation(FindAuthorityPersonID, person.EntityKind, persons), nil, logger)
}
