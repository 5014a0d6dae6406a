package http

import (
	"context"
	"net/http"

	"school/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// The helpers below implement the create, get, update and delete shape
// shared by every entity.

func bindBody[In any](c echo.Context) (In, error) {
	var in In
	if err := c.Bind(&in); err != nil {
		return in, echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return in, nil
}

func pathID(raw int64) (kernel.ID, error) {
	id, err := kernel.NewID(raw)
	if err != nil {
		return kernel.NoID, echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
	}
	return id, nil
}

func createEntity[In, E, Out any](
	c echo.Context,
	facade entityFacade[E],
	toDomain func(kernel.ID, In) (E, error),
	toResponse func(E) Out,
) error {
	in, err := bindBody[In](c)
	if err != nil {
		return err
	}
	e, err := toDomain(kernel.NoID, in)
	if err != nil {
		return err
	}
	saved, err := facade.CreateOrUpdate(c.Request().Context(), e)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toResponse(saved))
}

func updateEntity[In, E, Out any](
	c echo.Context,
	raw int64,
	facade entityFacade[E],
	toDomain func(kernel.ID, In) (E, error),
	toResponse func(E) Out,
) error {
	id, err := pathID(raw)
	if err != nil {
		return err
	}
	in, err := bindBody[In](c)
	if err != nil {
		return err
	}
	e, err := toDomain(id, in)
	if err != nil {
		return err
	}
	saved, err := facade.CreateOrUpdate(c.Request().Context(), e)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResponse(saved))
}

func getEntity[E, Out any](c echo.Context, raw int64, facade entityFacade[E], toResponse func(E) Out) error {
	id, err := pathID(raw)
	if err != nil {
		return err
	}
	e, err := facade.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResponse(e))
}

func deleteEntity(c echo.Context, raw int64, del func(ctx context.Context, id kernel.ID) error) error {
	id, err := pathID(raw)
	if err != nil {
		return err
	}
	if err = del(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func limitOf(limit *int) int {
	if limit == nil || *limit <= 0 {
		return defaultListLimit
	}
	return *limit
}
