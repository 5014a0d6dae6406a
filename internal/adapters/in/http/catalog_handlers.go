package http

import (
	"net/http"

	"school/internal/core/application/usecases/queries"
	"school/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateCourse handles POST /api/v1/courses.
func (s *Server) CreateCourse(c echo.Context) error {
	return createEntity(c, s.h.Courses, toCourse, fromCourse)
}

// GetCourse handles GET /api/v1/courses/{id}.
func (s *Server) GetCourse(c echo.Context, id servers.ID) error {
	return getEntity(c, id, s.h.Courses, fromCourse)
}

// UpdateCourse handles PUT /api/v1/courses/{id}.
func (s *Server) UpdateCourse(c echo.Context, id servers.ID) error {
	return updateEntity(c, id, s.h.Courses, toCourse, fromCourse)
}

// DeleteCourse handles DELETE /api/v1/courses/{id}. Courses with
// registered students are rejected with 409.
func (s *Server) DeleteCourse(c echo.Context, id servers.ID) error {
	return deleteEntity(c, id, s.h.Courses.Delete)
}

// ListCoursesWithoutStudents handles GET /api/v1/courses/without-students.
func (s *Server) ListCoursesWithoutStudents(c echo.Context, params servers.ListCoursesWithoutStudentsParams) error {
	query := queries.NewGetCoursesWithoutStudentsQuery(uint(limitOf(params.Limit)))

	courses, err := s.h.CoursesWithoutStudents.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Course, 0, len(courses))
	for _, course := range courses {
		response = append(response, servers.Course{
			Id:          course.ID.Int64(),
			Name:        course.Name,
			Description: optionalString(course.Description),
		})
	}
	return c.JSON(http.StatusOK, response)
}

// CreateFaculty handles POST /api/v1/faculties.
func (s *Server) CreateFaculty(c echo.Context) error {
	return createEntity(c, s.h.Faculties, toFaculty, fromFaculty)
}

func (s *Server) GetFaculty(c echo.Context, id servers.ID) error {
	return getEntity(c, id, s.h.Faculties, fromFaculty)
}

func (s *Server) UpdateFaculty(c echo.Context, id servers.ID) error {
	return updateEntity(c, id, s.h.Faculties, toFaculty, fromFaculty)
}

// DeleteFaculty handles DELETE /api/v1/faculties/{id}. Faculties that
// still have courses are rejected with 409.
func (s *Server) DeleteFaculty(c echo.Context, id servers.ID) error {
	return deleteEntity(c, id, s.h.Faculties.Delete)
}

func (s *Server) CreateStudentsGroup(c echo.Context) error {
	return createEntity(c, s.h.StudentsGroups, toStudentsGroup, fromStudentsGroup)
}

func (s *Server) GetStudentsGroup(c echo.Context, id servers.ID) error {
	return getEntity(c, id, s.h.StudentsGroups, fromStudentsGroup)
}

func (s *Server) UpdateStudentsGroup(c echo.Context, id servers.ID) error {
	return updateEntity(c, id, s.h.StudentsGroups, toStudentsGroup, fromStudentsGroup)
}

func (s *Server) DeleteStudentsGroup(c echo.Context, id servers.ID) error {
	return deleteEntity(c, id, s.h.StudentsGroups.Delete)
}

// ListActions handles GET /api/v1/actions.
func (s *Server) ListActions(c echo.Context, params servers.ListActionsParams) error {
	records, err := s.h.Actions.ListByFacade(c.Request().Context(), params.Facade, limitOf(params.Limit))
	if err != nil {
		return err
	}

	response := make([]servers.ActionRecord, 0, len(records))
	for _, record := range records {
		response = append(response, fromActionRecord(record))
	}
	return c.JSON(http.StatusOK, response)
}
