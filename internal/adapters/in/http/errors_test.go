package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"school/internal/core/domain/model/faculty"
	"school/internal/core/domain/model/kernel"
	"school/internal/pkg/command"
	"school/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"echo error", echo.NewHTTPError(http.StatusUnprocessableEntity, "nope"), http.StatusUnprocessableEntity},
		{"not found", errs.NewObjectNotFoundError("course", 1), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", errs.NewObjectNotFoundError("course", 1)), http.StatusNotFound},
		{
			"business rule",
			errs.NewBusinessRuleError(faculty.ErrFacultyHasCourses, faculty.EntityKind, kernel.ID(1)),
			http.StatusConflict,
		},
		{"already exists", errs.NewObjectAlreadyExistsError("profile.email"), http.StatusConflict},
		{"required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"invalid", errs.NewValueIsInvalidError("email"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("limit", 0, 1, 100), http.StatusBadRequest},
		{"input type", command.NewInputTypeError("input", "*course.Course", "string"), http.StatusBadRequest},
		{
			"execution error keeps cause",
			command.NewExecutionError("course.create", errs.NewValueIsRequiredError("name")),
			http.StatusBadRequest,
		},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(tt.err))
		})
	}
}
