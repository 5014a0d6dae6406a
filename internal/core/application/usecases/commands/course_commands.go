package commands

import (
	"context"
	"log/slog"

	"school/internal/core/domain/model/course"
	"school/internal/core/ports"
	"school/internal/pkg/command"
)

const (
	CreateOrUpdateCourseID = "course.createOrUpdate"
	DeleteCourseID         = "course.delete"
	FindCourseID           = "course.findById"
)

// NewCreateOrUpdateCourseCommand expects a *course.Course input.
func NewCreateOrUpdateCourseCommand(courses ports.CourseRepository, tx ports.TxScope, logger *slog.Logger) *command.Leaf {
	return command.NewLeaf(newSaveOperation(CreateOrUpdateCourseID, course.EntityKind, courses), tx, logger)
}

// NewDeleteCourseCommand expects a kernel.ID input. Courses with enrolled
// students are not deleted.
func NewDeleteCourseCommand(
	courses ports.CourseRepository,
	students ports.StudentRepository,
	tx ports.TxScope,
	logger *slog.Logger,
) *command.Leaf {
	deletable := func(ctx context.Context, c *course.Course) error {
		enrolled, err := students.CountByCourse(ctx, c.ID())
		if err != nil {
			return err
		}
		return c.CheckDeletable(enrolled)
	}
	return command.NewLeaf(newDeleteOperation(DeleteCourseID, course.EntityKind, courses, deletable), tx, logger)
}

// NewFindCourseCommand expects a kernel.ID input.
func NewFindCourseCommand(courses ports.CourseRepository, logger *slog.Logger) *command.Leaf {
	return command.NewLeaf(newFindOperation(FindCourseID, course.EntityKind, courses), nil, logger)
}
