package facades

import (
	"context"
	"errors"
	"log/slog"

	"school/internal/core/application/usecases/commands"
	"school/internal/core/domain/model/course"
	"school/internal/core/domain/model/faculty"
	"school/internal/core/domain/model/group"
	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/person"
	"school/internal/core/domain/model/profile"
	"school/internal/core/domain/model/student"
	"school/internal/pkg/command"
)

type (
	CourseFacade        = EntityFacade[*course.Course]
	FacultyFacade       = EntityFacade[*faculty.Faculty]
	StudentsGroupFacade = EntityFacade[*group.StudentsGroup]
	ProfileFacade       = EntityFacade[*profile.Profile]
)

// AuthorityPersonFacade adds the profile macros to the person commands.
type AuthorityPersonFacade struct {
	*EntityFacade[*person.AuthorityPerson]
}

// Register creates the profile and the person in one action.
func (f *AuthorityPersonFacade) Register(
	ctx context.Context,
	reg commands.Registration[*person.AuthorityPerson],
) (*person.AuthorityPerson, error) {
	return command.Do[*person.AuthorityPerson](ctx, f.facade, ActionRegister,
		commands.CreateAuthorityPersonMacroID, command.InputOf(reg))
}

// DeleteWithProfile deletes the person and its profile in one action.
func (f *AuthorityPersonFacade) DeleteWithProfile(ctx context.Context, id kernel.ID) error {
	_, err := command.Do[bool](ctx, f.facade, ActionDeleteWithProfile,
		commands.DeleteAuthorityPersonMacroID, command.InputOf(id))
	return err
}

// StudentFacade adds the profile macros to the student commands.
type StudentFacade struct {
	*EntityFacade[*student.Student]
}

func (f *StudentFacade) Register(ctx context.Context, reg commands.Registration[*student.Student]) (*student.Student, error) {
	return command.Do[*student.Student](ctx, f.facade, ActionRegister,
		commands.CreateStudentMacroID, command.InputOf(reg))
}

func (f *StudentFacade) DeleteWithProfile(ctx context.Context, id kernel.ID) error {
	_, err := command.Do[bool](ctx, f.facade, ActionDeleteWithProfile,
		commands.DeleteStudentMacroID, command.InputOf(id))
	return err
}

// Facades holds one facade per entity kind.
type Facades struct {
	Courses          *CourseFacade
	Faculties        *FacultyFacade
	StudentsGroups   *StudentsGroupFacade
	Profiles         *ProfileFacade
	AuthorityPersons *AuthorityPersonFacade
	Students         *StudentFacade
}

// New builds the facades over catalog. Every action is reported to executor.
func New(catalog *commands.Catalog, executor command.ActionExecutor, logger *slog.Logger) (*Facades, error) {
	courses, coursesErr := newEntityFacade[*course.Course]("course", catalog.Courses, executor, logger,
		commands.CreateOrUpdateCourseID, commands.DeleteCourseID, commands.FindCourseID)
	faculties, facultiesErr := newEntityFacade[*faculty.Faculty]("faculty", catalog.Faculties, executor, logger,
		commands.CreateOrUpdateFacultyID, commands.DeleteFacultyID, commands.FindFacultyID)
	groups, groupsErr := newEntityFacade[*group.StudentsGroup]("studentsGroup", catalog.StudentsGroups, executor, logger,
		commands.CreateOrUpdateStudentsGroupID, commands.DeleteStudentsGroupID, commands.FindStudentsGroupID)
	profiles, profilesErr := newEntityFacade[*profile.Profile]("profile", catalog.Profiles, executor, logger,
		commands.CreateOrUpdateProfileID, commands.DeleteProfileID, commands.FindProfileID)
	persons, personsErr := newEntityFacade[*person.AuthorityPerson]("authorityPerson", catalog.AuthorityPersons,
		executor, logger,
		commands.CreateOrUpdateAuthorityPersonID, commands.DeleteAuthorityPersonID, commands.FindAuthorityPersonID)
	students, studentsErr := newEntityFacade[*student.Student]("student", catalog.Students, executor, logger,
		commands.CreateOrUpdateStudentID, commands.DeleteStudentID, commands.FindStudentID)

	if err := errors.Join(coursesErr, facultiesErr, groupsErr, profilesErr, personsErr, studentsErr); err != nil {
		return nil, err
	}

	return &Facades{
		Courses:          courses,
		Faculties:        faculties,
		StudentsGroups:   groups,
		Profiles:         profiles,
		AuthorityPersons: &AuthorityPersonFacade{EntityFacade: persons},
		Students:         &StudentFacade{EntityFacade: students},
	}, nil
}
