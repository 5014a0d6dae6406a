package http

import (
	"net/http"

	"school/internal/core/application/usecases/commands"
	"school/internal/core/application/usecases/queries"
	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/person"
	"school/internal/core/domain/model/student"
	"school/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateProfile handles POST /api/v1/profiles.
func (s *Server) CreateProfile(c echo.Context) error {
	return createEntity(c, s.h.Profiles, toProfile, fromProfile)
}

func (s *Server) GetProfile(c echo.Context, id servers.ID) error {
	return getEntity(c, id, s.h.Profiles, fromProfile)
}

func (s *Server) UpdateProfile(c echo.Context, id servers.ID) error {
	return updateEntity(c, id, s.h.Profiles, toProfile, fromProfile)
}

// DeleteProfile handles DELETE /api/v1/profiles/{id}. A profile still
// owned by a person or student is rejected with 409.
func (s *Server) DeleteProfile(c echo.Context, id servers.ID) error {
	return deleteEntity(c, id, s.h.Profiles.Delete)
}

// ListOrphanProfiles handles GET /api/v1/profiles/orphans.
func (s *Server) ListOrphanProfiles(c echo.Context, params servers.ListOrphanProfilesParams) error {
	query := queries.NewGetOrphanProfilesQuery(uint(limitOf(params.Limit)))

	orphans, err := s.h.OrphanProfiles.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Profile, 0, len(orphans))
	for _, orphan := range orphans {
		response = append(response, servers.Profile{
			Id:   orphan.ID.Int64(),
			Kind: servers.ProfileKind(orphan.Kind.String()),
		})
	}
	return c.JSON(http.StatusOK, response)
}

// RegisterAuthorityPerson handles POST /api/v1/authority-persons. The
// person and its profile are created in one action.
func (s *Server) RegisterAuthorityPerson(c echo.Context) error {
	in, err := bindBody[servers.AuthorityPersonInput](c)
	if err != nil {
		return err
	}
	p, err := toAuthorityPerson(kernel.NoID, kernel.NoID, in)
	if err != nil {
		return err
	}
	pr, err := toOptionalProfile(in.Profile)
	if err != nil {
		return err
	}
	reg, err := commands.NewAuthorityPersonRegistration(p, pr)
	if err != nil {
		return err
	}

	created, err := s.h.AuthorityPersons.Register(c.Request().Context(), reg)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, fromAuthorityPerson(created))
}

func (s *Server) GetAuthorityPerson(c echo.Context, id servers.ID) error {
	return getEntity[*person.AuthorityPerson](c, id, s.h.AuthorityPersons, fromAuthorityPerson)
}

// UpdateAuthorityPerson handles PUT /api/v1/authority-persons/{id}. The
// profile link is kept; a profile in the body is ignored.
func (s *Server) UpdateAuthorityPerson(c echo.Context, raw servers.ID) error {
	id, err := pathID(raw)
	if err != nil {
		return err
	}
	in, err := bindBody[servers.AuthorityPersonInput](c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	existing, err := s.h.AuthorityPersons.FindByID(ctx, id)
	if err != nil {
		return err
	}
	p, err := toAuthorityPerson(id, existing.ProfileID(), in)
	if err != nil {
		return err
	}
	saved, err := s.h.AuthorityPersons.CreateOrUpdate(ctx, p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fromAuthorityPerson(saved))
}

// DeleteAuthorityPerson handles DELETE /api/v1/authority-persons/{id}. The
// person and its profile are deleted in one action.
func (s *Server) DeleteAuthorityPerson(c echo.Context, id servers.ID) error {
	return deleteEntity(c, id, s.h.AuthorityPersons.DeleteWithProfile)
}

// RegisterStudent handles POST /api/v1/students.
func (s *Server) RegisterStudent(c echo.Context) error {
	in, err := bindBody[servers.StudentInput](c)
	if err != nil {
		return err
	}
	st, err := toStudent(kernel.NoID, kernel.NoID, in)
	if err != nil {
		return err
	}
	pr, err := toOptionalProfile(in.Profile)
	if err != nil {
		return err
	}
	reg, err := commands.NewStudentRegistration(st, pr)
	if err != nil {
		return err
	}

	created, err := s.h.Students.Register(c.Request().Context(), reg)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, fromStudent(created))
}

func (s *Server) GetStudent(c echo.Context, id servers.ID) error {
	return getEntity[*student.Student](c, id, s.h.Students, fromStudent)
}

func (s *Server) UpdateStudent(c echo.Context, raw servers.ID) error {
	id, err := pathID(raw)
	if err != nil {
		return err
	}
	in, err := bindBody[servers.StudentInput](c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	existing, err := s.h.Students.FindByID(ctx, id)
	if err != nil {
		return err
	}
	st, err := toStudent(id, existing.ProfileID(), in)
	if err != nil {
		return err
	}
	saved, err := s.h.Students.CreateOrUpdate(ctx, st)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fromStudent(saved))
}

func (s *Server) DeleteStudent(c echo.Context, id servers.ID) error {
	return deleteEntity(c, id, s.h.Students.DeleteWithProfile)
}
