package commands

import (
	"context"
	"log/slog"

	"school/internal/core/domain/model/faculty"
	"school/internal/core/ports"
	"school/internal/pkg/command"
)

const (
	CreateOrUpdateFacultyID = "faculty.createOrUpdate"
	DeleteFacultyID         = "faculty.delete"
	FindFacultyID           = "faculty.findById"
)

// NewCreateOrUpdateFacultyCommand saves a *faculty.Faculty input. A faculty
// with a transient ID is inserted and undone by deleting it; an existing one
// is updated and undone by restoring the stored snapshot.
//
// Example:
//
//	cmd := commands.NewCreateOrUpdateFacultyCommand(faculties, tx, logger)
//	c := cmd.CreateContext(ctx, command.InputOf(f))
//	cmd.DoCommand(ctx, c)
//	saved, _ := c.Result()
func NewCreateOrUpdateFacultyCommand(faculties ports.FacultyRepository, tx ports.TxScope, logger *slog.Logger) *command.Leaf {
	return command.NewLeaf(newSaveOperation(CreateOrUpdateFacultyID, faculty.EntityKind, faculties), tx, logger)
}

// NewDeleteFacultyCommand refuses to delete faculties that still own courses.
func NewDeleteFacultyCommand(faculties ports.FacultyRepository, tx ports.TxScope, logger *slog.Logger) *command.Leaf {
	deletable := func(_ context.Context, f *faculty.Faculty) error {
		return f.CheckDeletable()
	}
	return command.NewLeaf(newDeleteOperation(DeleteFacultyID, faculty.EntityKind, faculties, deletable), tx, logger)
}

// NewFindFacultyCommand expects a kernel.ID input and returns the stored
// *faculty.Faculty. It changes nothing, so its undo is a no-op.
//
// Example:
//
//	cmd := commands.NewFindFacultyCommand(faculties, logger)
//	c := cmd.CreateContext(ctx, command.InputOf(kernel.ID(3)))
//	cmd.DoCommand(ctx, c)
//	if c.IsFailed() {
//	    return c.Err() // errs.ErrObjectNotFound for an unknown ID
//	}
func NewFindFacultyCommand(faculties ports.FacultyRepository, logger *slog.Logger) *command.Leaf {
	return command.NewLeaf(newFindOperation(FindFacultyID, faculty.EntityKind, faculties), nil, logger)
}
