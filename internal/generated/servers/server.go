package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Create a Course
	// (POST /api/v1/courses)
	CreateCourse(ctx echo.Context) error

	// List courses nobody is registered to
	// (GET /api/v1/courses/without-students)
	ListCoursesWithoutStudents(ctx echo.Context, params ListCoursesWithoutStudentsParams) error

	// Delete a Course
	// (DELETE /api/v1/courses/{id})
	DeleteCourse(ctx echo.Context, id ID) error

	// Get a Course
	// (GET /api/v1/courses/{id})
	GetCourse(ctx echo.Context, id ID) error

	// Update a Course
	// (PUT /api/v1/courses/{id})
	UpdateCourse(ctx echo.Context, id ID) error

	// Create a Faculty
	// (POST /api/v1/faculties)
	CreateFaculty(ctx echo.Context) error

	// Delete a Faculty
	// (DELETE /api/v1/faculties/{id})
	DeleteFaculty(ctx echo.Context, id ID) error

	// Get a Faculty
	// (GET /api/v1/faculties/{id})
	GetFaculty(ctx echo.Context, id ID) error

	// Update a Faculty
	// (PUT /api/v1/faculties/{id})
	UpdateFaculty(ctx echo.Context, id ID) error

	// Create a StudentsGroup
	// (POST /api/v1/students-groups)
	CreateStudentsGroup(ctx echo.Context) error

	// Delete a StudentsGroup
	// (DELETE /api/v1/students-groups/{id})
	DeleteStudentsGroup(ctx echo.Context, id ID) error

	// Get a StudentsGroup
	// (GET /api/v1/students-groups/{id})
	GetStudentsGroup(ctx echo.Context, id ID) error

	// Update a StudentsGroup
	// (PUT /api/v1/students-groups/{id})
	UpdateStudentsGroup(ctx echo.Context, id ID) error

	// Create a Profile
	// (POST /api/v1/profiles)
	CreateProfile(ctx echo.Context) error

	// List profiles no person or student refers to
	// (GET /api/v1/profiles/orphans)
	ListOrphanProfiles(ctx echo.Context, params ListOrphanProfilesParams) error

	// Delete a Profile
	// (DELETE /api/v1/profiles/{id})
	DeleteProfile(ctx echo.Context, id ID) error

	// Get a Profile
	// (GET /api/v1/profiles/{id})
	GetProfile(ctx echo.Context, id ID) error

	// Update a Profile
	// (PUT /api/v1/profiles/{id})
	UpdateProfile(ctx echo.Context, id ID) error

	// Register an AuthorityPerson
	// (POST /api/v1/authority-persons)
	RegisterAuthorityPerson(ctx echo.Context) error

	// Delete an AuthorityPerson
	// (DELETE /api/v1/authority-persons/{id})
	DeleteAuthorityPerson(ctx echo.Context, id ID) error

	// Get an AuthorityPerson
	// (GET /api/v1/authority-persons/{id})
	GetAuthorityPerson(ctx echo.Context, id ID) error

	// Update an AuthorityPerson
	// (PUT /api/v1/authority-persons/{id})
	UpdateAuthorityPerson(ctx echo.Context, id ID) error

	// Register a Student
	// (POST /api/v1/students)
	RegisterStudent(ctx echo.Context) error

	// Delete a Student
	// (DELETE /api/v1/students/{id})
	DeleteStudent(ctx echo.Context, id ID) error

	// Get a Student
	// (GET /api/v1/students/{id})
	GetStudent(ctx echo.Context, id ID) error

	// Update a Student
	// (PUT /api/v1/students/{id})
	UpdateStudent(ctx echo.Context, id ID) error

	// List recent actions of a facade
	// (GET /api/v1/actions)
	ListActions(ctx echo.Context, params ListActionsParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindID(ctx echo.Context) (ID, error) {
	var id ID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// CreateCourse converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCourse(ctx echo.Context) error {
	return w.Handler.CreateCourse(ctx)
}

// ListCoursesWithoutStudents converts echo context to params.
func (w *ServerInterfaceWrapper) ListCoursesWithoutStudents(ctx echo.Context) error {
	var params ListCoursesWithoutStudentsParams
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	return w.Handler.ListCoursesWithoutStudents(ctx, params)
}

// DeleteCourse converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteCourse(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteCourse(ctx, id)
}

// GetCourse converts echo context to params.
func (w *ServerInterfaceWrapper) GetCourse(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetCourse(ctx, id)
}

// UpdateCourse converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateCourse(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateCourse(ctx, id)
}

// CreateFaculty converts echo context to params.
func (w *ServerInterfaceWrapper) CreateFaculty(ctx echo.Context) error {
	return w.Handler.CreateFaculty(ctx)
}

// DeleteFaculty converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteFaculty(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteFaculty(ctx, id)
}

// GetFaculty converts echo context to params.
func (w *ServerInterfaceWrapper) GetFaculty(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetFaculty(ctx, id)
}

// UpdateFaculty converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateFaculty(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateFaculty(ctx, id)
}

// CreateStudentsGroup converts echo context to params.
func (w *ServerInterfaceWrapper) CreateStudentsGroup(ctx echo.Context) error {
	return w.Handler.CreateStudentsGroup(ctx)
}

// DeleteStudentsGroup converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteStudentsGroup(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteStudentsGroup(ctx, id)
}

// GetStudentsGroup converts echo context to params.
func (w *ServerInterfaceWrapper) GetStudentsGroup(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetStudentsGroup(ctx, id)
}

// UpdateStudentsGroup converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateStudentsGroup(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateStudentsGroup(ctx, id)
}

// CreateProfile converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProfile(ctx echo.Context) error {
	return w.Handler.CreateProfile(ctx)
}

// ListOrphanProfiles converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrphanProfiles(ctx echo.Context) error {
	var params ListOrphanProfilesParams
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	return w.Handler.ListOrphanProfiles(ctx, params)
}

// DeleteProfile converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteProfile(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteProfile(ctx, id)
}

// GetProfile converts echo context to params.
func (w *ServerInterfaceWrapper) GetProfile(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetProfile(ctx, id)
}

// UpdateProfile converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateProfile(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateProfile(ctx, id)
}

// RegisterAuthorityPerson converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterAuthorityPerson(ctx echo.Context) error {
	return w.Handler.RegisterAuthorityPerson(ctx)
}

// DeleteAuthorityPerson converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteAuthorityPerson(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteAuthorityPerson(ctx, id)
}

// GetAuthorityPerson converts echo context to params.
func (w *ServerInterfaceWrapper) GetAuthorityPerson(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetAuthorityPerson(ctx, id)
}

// UpdateAuthorityPerson converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateAuthorityPerson(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateAuthorityPerson(ctx, id)
}

// RegisterStudent converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterStudent(ctx echo.Context) error {
	return w.Handler.RegisterStudent(ctx)
}

// DeleteStudent converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteStudent(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteStudent(ctx, id)
}

// GetStudent converts echo context to params.
func (w *ServerInterfaceWrapper) GetStudent(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetStudent(ctx, id)
}

// UpdateStudent converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateStudent(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateStudent(ctx, id)
}

// ListActions converts echo context to params.
func (w *ServerInterfaceWrapper) ListActions(ctx echo.Context) error {
	var params ListActionsParams
	if err := runtime.BindQueryParameter("form", true, true, "facade", ctx.QueryParams(), &params.Facade); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter facade: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	return w.Handler.ListActions(ctx, params)
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/courses", wrapper.CreateCourse)
	router.GET(baseURL+"/api/v1/courses/without-students", wrapper.ListCoursesWithoutStudents)
	router.DELETE(baseURL+"/api/v1/courses/:id", wrapper.DeleteCourse)
	router.GET(baseURL+"/api/v1/courses/:id", wrapper.GetCourse)
	router.PUT(baseURL+"/api/v1/courses/:id", wrapper.UpdateCourse)
	router.POST(baseURL+"/api/v1/faculties", wrapper.CreateFaculty)
	router.DELETE(baseURL+"/api/v1/faculties/:id", wrapper.DeleteFaculty)
	router.GET(baseURL+"/api/v1/faculties/:id", wrapper.GetFaculty)
	router.PUT(baseURL+"/api/v1/faculties/:id", wrapper.UpdateFaculty)
	router.POST(baseURL+"/api/v1/students-groups", wrapper.CreateStudentsGroup)
	router.DELETE(baseURL+"/api/v1/students-groups/:id", wrapper.DeleteStudentsGroup)
	router.GET(baseURL+"/api/v1/students-groups/:id", wrapper.GetStudentsGroup)
	router.PUT(baseURL+"/api/v1/students-groups/:id", wrapper.UpdateStudentsGroup)
	router.POST(baseURL+"/api/v1/profiles", wrapper.CreateProfile)
	router.GET(baseURL+"/api/v1/profiles/orphans", wrapper.ListOrphanProfiles)
	router.DELETE(baseURL+"/api/v1/profiles/:id", wrapper.DeleteProfile)
	router.GET(baseURL+"/api/v1/profiles/:id", wrapper.GetProfile)
	router.PUT(baseURL+"/api/v1/profiles/:id", wrapper.UpdateProfile)
	router.POST(baseURL+"/api/v1/authority-persons", wrapper.RegisterAuthorityPerson)
	router.DELETE(baseURL+"/api/v1/authority-persons/:id", wrapper.DeleteAuthorityPerson)
	router.GET(baseURL+"/api/v1/authority-persons/:id", wrapper.GetAuthorityPerson)
	router.PUT(baseURL+"/api/v1/authority-persons/:id", wrapper.UpdateAuthorityPerson)
	router.POST(baseURL+"/api/v1/students", wrapper.RegisterStudent)
	router.DELETE(baseURL+"/api/v1/students/:id", wrapper.DeleteStudent)
	router.GET(baseURL+"/api/v1/students/:id", wrapper.GetStudent)
	router.PUT(baseURL+"/api/v1/students/:id", wrapper.UpdateStudent)
	router.GET(baseURL+"/api/v1/actions", wrapper.ListActions)
}
