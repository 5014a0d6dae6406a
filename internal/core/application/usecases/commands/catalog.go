package commands

import (
	"errors"
	"log/slog"

	"school/internal/core/ports"
	"school/internal/pkg/command"
)

// Dependencies are the collaborators every command is built from.
type Dependencies struct {
	Profiles  ports.ProfileRepository
	Persons   ports.AuthorityPersonRepository
	Students  ports.StudentRepository
	Courses   ports.CourseRepository
	Faculties ports.FacultyRepository
	Groups    ports.StudentsGroupRepository

	Tx     ports.TxScope
	Pool   *command.CompensationPool
	Logger *slog.Logger
}

// Catalog groups the commands of each facade.
type Catalog struct {
	Courses          []command.RootCommand
	Faculties        []command.RootCommand
	StudentsGroups   []command.RootCommand
	Profiles         []command.RootCommand
	AuthorityPersons []command.RootCommand
	Students         []command.RootCommand
}

// NewCatalog builds every leaf and macro command.
func NewCatalog(deps Dependencies) (*Catalog, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	createProfile := NewCreateOrUpdateProfileCommand(deps.Profiles, deps.Tx, logger)
	deleteProfile := NewDeleteProfileCommand(deps.Profiles, deps.Tx, logger)
	createPerson := NewCreateOrUpdateAuthorityPersonCommand(deps.Persons, deps.Tx, logger)
	deletePerson := NewDeleteAuthorityPersonCommand(deps.Persons, deps.Faculties, deps.Tx, logger)
	createStudent := NewCreateOrUpdateStudentCommand(deps.Students, deps.Tx, logger)
	deleteStudent := NewDeleteStudentCommand(deps.Students, deps.Tx, logger)

	createPersonMacro, createPersonErr := NewCreateAuthorityPersonMacro(createProfile, createPerson, logger)
	deletePersonMacro, deletePersonErr := NewDeleteAuthorityPersonMacro(
		deletePerson, deleteProfile, deps.Persons, deps.Pool, logger)
	createStudentMacro, createStudentErr := NewCreateStudentMacro(createProfile, createStudent, logger)
	deleteStudentMacro, deleteStudentErr := NewDeleteStudentMacro(
		deleteStudent, deleteProfile, deps.Students, deps.Pool, logger)
	if err := errors.Join(createPersonErr, deletePersonErr, createStudentErr, deleteStudentErr); err != nil {
		return nil, err
	}

	return &Catalog{
		Courses: []command.RootCommand{
			NewCreateOrUpdateCourseCommand(deps.Courses, deps.Tx, logger),
			NewDeleteCourseCommand(deps.Courses, deps.Students, deps.Tx, logger),
			NewFindCourseCommand(deps.Courses, logger),
		},
		Faculties: []command.RootCommand{
			NewCreateOrUpdateFacultyCommand(deps.Faculties, deps.Tx, logger),
			NewDeleteFacultyCommand(deps.Faculties, deps.Tx, logger),
			NewFindFacultyCommand(deps.Faculties, logger),
		},
		StudentsGroups: []command.RootCommand{
			NewCreateOrUpdateStudentsGroupCommand(deps.Groups, deps.Tx, logger),
			NewDeleteStudentsGroupCommand(deps.Groups, deps.Students, deps.Tx, logger),
			NewFindStudentsGroupCommand(deps.Groups, logger),
		},
		Profiles: []command.RootCommand{
			createProfile,
			deleteProfile,
			NewFindProfileCommand(deps.Profiles, logger),
		},
		AuthorityPersons: []command.RootCommand{
			createPerson,
			deletePerson,
			NewFindAuthorityPersonCommand(deps.Persons, logger),
			createPersonMacro,
			deletePersonMacro,
		},
		Students: []command.RootCommand{
			createStudent,
			deleteStudent,
			NewFindStudentCommand(deps.Students, logger),
			createStudentMacro,
			deleteStudentMacro,
		},
	}, nil
}
