package commands

import (
	"context"
	"log/slog"

	"school/internal/core/domain/model/student"
	"school/internal/core/ports"
	"school/internal/pkg/command"
)

const (
	CreateOrUpdateStudentID = "student.createOrUpdate"
	DeleteStudentID         = "student.delete"
	FindStudentID           = "student.findById"
)

// NewCreateOrUpdateStudentCommand expects a *student.Student input. Course
// registrations are saved together with the student.
func NewCreateOrUpdateStudentCommand(students ports.StudentRepository, tx ports.TxScope, logger *slog.Logger) *command.Leaf {
	return command.NewLeaf(newSaveOperation(CreateOrUpdateStudentID, student.EntityKind, students), tx, logger)
}

// NewDeleteStudentCommand refuses to delete students registered to courses.
func NewDeleteStudentCommand(students ports.StudentRepository, tx ports.TxScope, logger *slog.Logger) *command.Leaf {
	deletable := func(_ context.Context, s *student.Student) error {
		return s.CheckDeletable()
	}
	return command.NewLeaf(newDeleteOperation(DeleteStudentID, student.EntityKind, students, deletable), tx, logger)
}

// NewFindStudentCommand expects a kernel.ID input.
func NewFindStudentCommand(students ports.StudentRepository, logger *slog.Logger) *command.Leaf {
	return command.NewLeaf(newFindOperation(FindStudentID, student.EntityKind, students), nil, logger)
}
