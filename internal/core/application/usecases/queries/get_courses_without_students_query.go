package queries

import (
	"errors"

	"school/internal/core/domain/model/kernel"
	"school/internal/pkg/guard"
)

var ErrGetCoursesWithoutStudentsQueryIsNotConstructed = errors.New(
	"GetCoursesWithoutStudentsQuery must be created via NewGetCoursesWithoutStudentsQuery constructor",
)

// GetCoursesWithoutStudentsQuery lists courses nobody is registered to.
// Such courses are the only ones the delete course command accepts.
//
// Example:
//
//	query := NewGetCoursesWithoutStudentsQuery(50)
//	courses, err := handler.Handle(ctx, query)
type GetCoursesWithoutStudentsQuery struct {
	limit uint

	guard guard.ConstructorGuard
}

// NewGetCoursesWithoutStudentsQuery creates the query. A zero limit returns every course.
func NewGetCoursesWithoutStudentsQuery(limit uint) GetCoursesWithoutStudentsQuery {
	return GetCoursesWithoutStudentsQuery{limit: limit, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was built by its constructor.
func (q GetCoursesWithoutStudentsQuery) Validate() error {
	return q.guard.Validate(ErrGetCoursesWithoutStudentsQueryIsNotConstructed)
}

func (q GetCoursesWithoutStudentsQuery) Limit() uint {
	return q.limit
}

// GetCoursesWithoutStudentsQueryResponse is one course of the read model.
type GetCoursesWithoutStudentsQueryResponse struct {
	ID          kernel.ID
	Name        string
	Description string
}
