// Package http exposes the facades and read queries over the REST API
// described in internal/generated/servers/openapi.yml.
package http

import (
	"context"
	"log/slog"

	"school/internal/core/application/usecases/commands"
	"school/internal/core/application/usecases/queries"
	"school/internal/core/domain/model/course"
	"school/internal/core/domain/model/faculty"
	"school/internal/core/domain/model/group"
	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/person"
	"school/internal/core/domain/model/profile"
	"school/internal/core/domain/model/student"
	"school/internal/core/ports"
	"school/internal/generated/servers"
)

const defaultListLimit = 100

type entityFacade[E any] interface {
	CreateOrUpdate(ctx context.Context, e E) (E, error)
	FindByID(ctx context.Context, id kernel.ID) (E, error)
	Delete(ctx context.Context, id kernel.ID) error
}

type registeringFacade[E interface {
	ID() kernel.ID
	Validate() error
}] interface {
	entityFacade[E]
	Register(ctx context.Context, reg commands.Registration[E]) (E, error)
	DeleteWithProfile(ctx context.Context, id kernel.ID) error
}

type coursesWithoutStudentsHandler interface {
	Handle(
		ctx context.Context,
		query queries.GetCoursesWithoutStudentsQuery,
	) ([]queries.GetCoursesWithoutStudentsQueryResponse, error)
}

type orphanProfilesHandler interface {
	Handle(ctx context.Context, query queries.GetOrphanProfilesQuery) ([]queries.GetOrphanProfilesQueryResponse, error)
}

type actionLogReader interface {
	ListByFacade(ctx context.Context, facade string, limit int) ([]ports.ActionRecord, error)
}

// Handlers are the use cases the server delegates to.
type Handlers struct {
	Courses          entityFacade[*course.Course]
	Faculties        entityFacade[*faculty.Faculty]
	StudentsGroups   entityFacade[*group.StudentsGroup]
	Profiles         entityFacade[*profile.Profile]
	AuthorityPersons registeringFacade[*person.AuthorityPerson]
	Students         registeringFacade[*student.Student]

	CoursesWithoutStudents coursesWithoutStudentsHandler
	OrphanProfiles         orphanProfilesHandler
	Actions                actionLogReader
}

// Server implements servers.ServerInterface.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(h Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{h: h, logger: logger.With("component", "http")}
}
