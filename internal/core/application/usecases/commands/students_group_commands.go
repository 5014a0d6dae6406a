package commands

import (
	"context"
	"log/slog"

	"school/internal/core/domain/model/group"
	"school/internal/core/ports"
	"school/internal/pkg/command"
)

const (
	CreateOrUpdateStudentsGroupID = "studentsGroup.createOrUpdate"
	DeleteStudentsGroupID         = "studentsGroup.delete"
	FindStudentsGroupID           = "studentsGroup.findById"
)

// NewCreateOrUpdateStudentsGroupCommand expects a *group.StudentsGroup input.
func NewCreateOrUpdateStudentsGroupCommand(
	groups ports.StudentsGroupRepository,
	tx ports.TxScope,
	logger *slog.Logger,
) *command.Leaf {
	return command.NewLeaf(newSaveOperation(CreateOrUpdateStudentsGroupID, group.EntityKind, groups), tx, logger)
}

// NewDeleteStudentsGroupCommand refuses to delete groups with members.
func NewDeleteStudentsGroupCommand(
	groups ports.StudentsGroupRepository,
	students ports.StudentRepository,
	tx ports.TxScope,
	logger *slog.Logger,
) *command.Leaf {
	deletable := func(ctx context.Context, g *group.StudentsGroup) error {
		members, err := students.CountByGroup(ctx, g.ID())
		if err != nil {
			return err
		}
		return g.CheckDeletable(members)
	}
	return command.NewLeaf(newDeleteOperation(DeleteStudentsGroupID, group.EntityKind, groups, deletable), tx, logger)
}

// NewFindStudentsGroupCommand expects a kernel.ID input.
func NewFindStudentsGroupCommand(groups ports.StudentsGroupRepository, logger *slog.Logger) *command.Leaf {
	return command.NewLeaf(newFindOperation(FindStudentsGroupID, group.EntityKind, groups), nil, logger)
}
