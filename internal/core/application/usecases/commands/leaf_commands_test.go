package commands_test

import (
	"errors"
	"testing"

	"school/internal/core/application/usecases/commands"
	"school/internal/core/domain/model/course"
	"school/internal/core/domain/model/faculty"
	"school/internal/core/domain/model/group"
	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/person"
	"school/internal/core/domain/model/profile"
	"school/internal/core/domain/model/student"
	"school/internal/pkg/command"
	"school/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrUpdateCourse_Create(t *testing.T) {
	ctx := t.Context()
	transient := newCourse(kernel.NoID, "Algebra")
	saved := transient.WithID(kernel.ID(11))

	courses := new(MockCourseRepository)
	courses.On("Save", mock.Anything, transient).Return(saved, nil).Once()

	cmd := commands.NewCreateOrUpdateCourseCommand(courses, nil, nil)
	c := cmd.CreateContext(ctx, command.InputOf(transient))
	require.True(t, c.IsReady())

	cmd.DoCommand(ctx, c)

	require.True(t, c.IsDone(), "context error: %v", c.Err())
	result, ok := c.Result()
	require.True(t, ok)
	assert.Same(t, saved, result)
	assert.Equal(t, kernel.ID(11), c.UndoParameter().Value())
	courses.AssertNumberOfCalls(t, "Save", 1)
	courses.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)

	courses.On("Delete", mock.Anything, kernel.ID(11)).Return(nil).Once()
	cmd.UndoCommand(ctx, c)

	assert.True(t, c.IsUndone())
	courses.AssertExpectations(t)
}

func TestCreateOrUpdateCourse_UpdateMissing(t *testing.T) {
	ctx := t.Context()
	update := newCourse(kernel.ID(42), "Algebra II")

	courses := new(MockCourseRepository)
	courses.On("FindByID", mock.Anything, kernel.ID(42)).
		Return(nil, errs.NewObjectNotFoundError(course.EntityKind, kernel.ID(42))).Once()

	cmd := commands.NewCreateOrUpdateCourseCommand(courses, nil, nil)
	c := cmd.CreateContext(ctx, command.InputOf(update))
	cmd.DoCommand(ctx, c)

	assert.True(t, c.IsFailed())
	require.ErrorIs(t, c.Err(), errs.ErrObjectNotFound)
	_, hasResult := c.Result()
	assert.False(t, hasResult)
	courses.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateOrUpdateCourse_UpdateRestoresSnapshot(t *testing.T) {
	ctx := t.Context()
	before := newCourse(kernel.ID(42), "Algebra")
	after := newCourse(kernel.ID(42), "Algebra II")

	courses := new(MockCourseRepository)
	mock.InOrder(
		courses.On("FindByID", mock.Anything, kernel.ID(42)).Return(before, nil).Once(),
		courses.On("Save", mock.Anything, after).Return(after, nil).Once(),
		courses.On("Restore", mock.Anything, before).Return(nil).Once(),
	)

	cmd := commands.NewCreateOrUpdateCourseCommand(courses, nil, nil)
	c := cmd.CreateContext(ctx, command.InputOf(after))
	cmd.DoCommand(ctx, c)

	require.True(t, c.IsDone())
	assert.Same(t, before, c.UndoParameter().Value())

	cmd.UndoCommand(ctx, c)
	assert.True(t, c.IsUndone())
	courses.AssertExpectations(t)
}

func TestCreateOrUpdateCourse_InvalidInput(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateOrUpdateCourseCommand(new(MockCourseRepository), nil, nil)

	tests := []struct {
		name string
		in   command.Input
		want error
	}{
		{"empty input", command.EmptyInput(), errs.ErrValueIsRequired},
		{"typed nil", command.InputOf((*course.Course)(nil)), errs.ErrValueIsRequired},
		{"wrong type", command.InputOf("Algebra"), command.ErrInputTypeMismatch},
		{"zero value entity", command.InputOf(&course.Course{}), course.ErrCourseIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cmd.CreateContext(ctx, tt.in)

			assert.True(t, c.IsFailed())
			require.ErrorIs(t, c.Err(), tt.want)
		})
	}
}

func TestDeleteCourse(t *testing.T) {
	t.Run("course with enrolled students is kept", func(t *testing.T) {
		ctx := t.Context()
		existing := newCourse(kernel.ID(5), "Physics")

		courses := new(MockCourseRepository)
		students := new(MockStudentRepository)
		courses.On("FindByID", mock.Anything, kernel.ID(5)).Return(existing, nil).Once()
		students.On("CountByCourse", mock.Anything, kernel.ID(5)).Return(int64(3), nil).Once()

		cmd := commands.NewDeleteCourseCommand(courses, students, nil, nil)
		c := cmd.CreateContext(ctx, command.InputOf(kernel.ID(5)))
		cmd.DoCommand(ctx, c)

		assert.True(t, c.IsFailed())
		require.ErrorIs(t, c.Err(), course.ErrCourseHasStudents)
		assert.Contains(t, c.Err().Error(), "course has enrolled students")
		courses.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deleted course is restored on undo", func(t *testing.T) {
		ctx := t.Context()
		existing := newCourse(kernel.ID(5), "Physics")

		courses := new(MockCourseRepository)
		students := new(MockStudentRepository)
		mock.InOrder(
			courses.On("FindByID", mock.Anything, kernel.ID(5)).Return(existing, nil).Once(),
			students.On("CountByCourse", mock.Anything, kernel.ID(5)).Return(int64(0), nil).Once(),
			courses.On("Delete", mock.Anything, kernel.ID(5)).Return(nil).Once(),
			courses.On("Restore", mock.Anything, existing).Return(nil).Once(),
		)

		cmd := commands.NewDeleteCourseCommand(courses, students, nil, nil)
		c := cmd.CreateContext(ctx, command.InputOf(kernel.ID(5)))
		cmd.DoCommand(ctx, c)

		require.True(t, c.IsDone())
		result, _ := c.Result()
		assert.Equal(t, true, result)

		cmd.UndoCommand(ctx, c)
		assert.True(t, c.IsUndone())
		courses.AssertExpectations(t)
		students.AssertExpectations(t)
	})

	t.Run("invalid id fails context creation", func(t *testing.T) {
		cmd := commands.NewDeleteCourseCommand(new(MockCourseRepository), new(MockStudentRepository), nil, nil)
		c := cmd.CreateContext(t.Context(), command.InputOf(kernel.ID(-3)))

		assert.True(t, c.IsFailed())
		require.ErrorIs(t, c.Err(), errs.ErrValueIsInvalid)
	})
}

func TestDeleteRules(t *testing.T) {
	ctx := t.Context()

	t.Run("faculty with courses", func(t *testing.T) {
		f, err := faculty.NewFaculty(kernel.ID(1), "Science", kernel.NoID, []kernel.ID{4})
		require.NoError(t, err)
		faculties := new(MockFacultyRepository)
		faculties.On("FindByID", mock.Anything, kernel.ID(1)).Return(f, nil).Once()

		cmd := commands.NewDeleteFacultyCommand(faculties, nil, nil)
		c := cmd.CreateContext(ctx, command.InputOf(kernel.ID(1)))
		cmd.DoCommand(ctx, c)

		require.ErrorIs(t, c.Err(), faculty.ErrFacultyHasCourses)
		faculties.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("dean of a faculty", func(t *testing.T) {
		persons := new(MockAuthorityPersonRepository)
		faculties := new(MockFacultyRepository)
		persons.On("FindByID", mock.Anything, kernel.ID(2)).Return(newPerson(2, 1), nil).Once()
		faculties.On("CountByDean", mock.Anything, kernel.ID(2)).Return(int64(1), nil).Once()

		cmd := commands.NewDeleteAuthorityPersonCommand(persons, faculties, nil, nil)
		c := cmd.CreateContext(ctx, command.InputOf(kernel.ID(2)))
		cmd.DoCommand(ctx, c)

		require.ErrorIs(t, c.Err(), person.ErrPersonManagesFaculty)
		require.ErrorIs(t, c.Err(), errs.ErrBusinessRuleViolated)
		persons.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("group with students", func(t *testing.T) {
		g, err := group.NewStudentsGroup(kernel.ID(9), "10-A")
		require.NoError(t, err)
		groups := new(MockStudentsGroupRepository)
		students := new(MockStudentRepository)
		groups.On("FindByID", mock.Anything, kernel.ID(9)).Return(g, nil).Once()
		students.On("CountByGroup", mock.Anything, kernel.ID(9)).Return(int64(20), nil).Once()

		cmd := commands.NewDeleteStudentsGroupCommand(groups, students, nil, nil)
		c := cmd.CreateContext(ctx, command.InputOf(kernel.ID(9)))
		cmd.DoCommand(ctx, c)

		require.ErrorIs(t, c.Err(), group.ErrGroupHasStudents)
		groups.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("profile used by a student", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("FindByID", mock.Anything, kernel.ID(6)).Return(newProfile(kernel.ID(6)), nil).Once()
		profiles.On("CountReferences", mock.Anything, kernel.ID(6)).Return(int64(1), nil).Once()

		cmd := commands.NewDeleteProfileCommand(profiles, nil, nil)
		c := cmd.CreateContext(ctx, command.InputOf(kernel.ID(6)))
		cmd.DoCommand(ctx, c)

		require.ErrorIs(t, c.Err(), profile.ErrProfileIsReferenced)
		require.ErrorIs(t, c.Err(), errs.ErrBusinessRuleViolated)
		profiles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("student with courses", func(t *testing.T) {
		students := new(MockStudentRepository)
		students.On("FindByID", mock.Anything, kernel.ID(3)).Return(newStudent(3, 1, 7), nil).Once()

		cmd := commands.NewDeleteStudentCommand(students, nil, nil)
		c := cmd.CreateContext(ctx, command.InputOf(kernel.ID(3)))
		cmd.DoCommand(ctx, c)

		require.ErrorIs(t, c.Err(), student.ErrStudentHasCourses)
		students.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestFacultyCommands(t *testing.T) {
	ctx := t.Context()
	transient, err := faculty.NewFaculty(kernel.NoID, "Science", kernel.ID(2), nil)
	require.NoError(t, err)
	saved := transient.WithID(kernel.ID(3))

	faculties := new(MockFacultyRepository)
	faculties.On("Save", mock.Anything, transient).Return(saved, nil).Once()
	faculties.On("FindByID", mock.Anything, kernel.ID(3)).Return(saved, nil).Once()

	save := commands.NewCreateOrUpdateFacultyCommand(faculties, nil, nil)
	c := save.CreateContext(ctx, command.InputOf(transient))
	save.DoCommand(ctx, c)
	require.True(t, c.IsDone(), "context error: %v", c.Err())
	assert.Equal(t, kernel.ID(3), c.UndoParameter().Value())

	find := commands.NewFindFacultyCommand(faculties, nil)
	fc := find.CreateContext(ctx, command.InputOf(kernel.ID(3)))
	find.DoCommand(ctx, fc)
	require.True(t, fc.IsDone(), "context error: %v", fc.Err())
	found, _ := fc.Result()
	assert.Same(t, saved, found)
	faculties.AssertExpectations(t)
}

func TestFindCourse(t *testing.T) {
	ctx := t.Context()
	existing := newCourse(kernel.ID(8), "Chemistry")

	courses := new(MockCourseRepository)
	courses.On("FindByID", mock.Anything, kernel.ID(8)).Return(existing, nil).Once()

	cmd := commands.NewFindCourseCommand(courses, nil)
	c := cmd.CreateContext(ctx, command.InputOf(kernel.ID(8)))
	cmd.DoCommand(ctx, c)

	require.True(t, c.IsDone())
	result, _ := c.Result()
	assert.Same(t, existing, result)
	assert.True(t, c.UndoParameter().IsEmpty())

	cmd.UndoCommand(ctx, c)
	assert.True(t, c.IsUndone())
	courses.AssertExpectations(t)
}

func TestLeafCommands_UndoParameterPresence(t *testing.T) {
	ctx := t.Context()
	profiles := new(MockProfileRepository)
	saved := newProfile(kernel.ID(4))
	profiles.On("Save", mock.Anything, mock.Anything).Return(saved, nil)
	profiles.On("FindByID", mock.Anything, kernel.ID(4)).Return(saved, nil)
	profiles.On("CountReferences", mock.Anything, kernel.ID(4)).Return(int64(0), nil)
	profiles.On("Delete", mock.Anything, kernel.ID(4)).Return(nil)

	tests := []struct {
		name string
		cmd  command.RootCommand
		in   command.Input
		want any
	}{
		{"create", commands.NewCreateOrUpdateProfileCommand(profiles, nil, nil),
			command.InputOf(newProfile(kernel.NoID)), kernel.ID(4)},
		{"update", commands.NewCreateOrUpdateProfileCommand(profiles, nil, nil),
			command.InputOf(newProfile(kernel.ID(4))), saved},
		{"delete", commands.NewDeleteProfileCommand(profiles, nil, nil),
			command.InputOf(kernel.ID(4)), saved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.cmd.CreateContext(ctx, tt.in)
			tt.cmd.DoCommand(ctx, c)

			require.True(t, c.IsDone(), "context error: %v", c.Err())
			require.False(t, c.UndoParameter().IsEmpty())
			assert.Equal(t, tt.want, c.UndoParameter().Value())
		})
	}
}

func TestLeafCommands_UndoFailure(t *testing.T) {
	ctx := t.Context()
	deleteErr := errors.New("connection reset")

	courses := new(MockCourseRepository)
	courses.On("Save", mock.Anything, mock.Anything).Return(newCourse(kernel.ID(1), "Art"), nil).Once()
	courses.On("Delete", mock.Anything, kernel.ID(1)).Return(deleteErr).Once()

	cmd := commands.NewCreateOrUpdateCourseCommand(courses, nil, nil)
	c := cmd.CreateContext(ctx, command.InputOf(newCourse(kernel.NoID, "Art")))
	cmd.DoCommand(ctx, c)
	require.True(t, c.IsDone())

	cmd.UndoCommand(ctx, c)

	assert.True(t, c.IsFailed())
	require.ErrorIs(t, c.Err(), deleteErr)
}
