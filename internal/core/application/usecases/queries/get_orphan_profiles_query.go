package queries

import (
	"errors"

	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/profile"
	"school/internal/pkg/guard"
)

var ErrGetOrphanProfilesQueryIsNotConstructed = errors.New(
	"GetOrphanProfilesQuery must be created via NewGetOrphanProfilesQuery constructor",
)

// GetOrphanProfilesQuery lists profiles no authority person or student
// refers to. A failed compensation or a manual delete leaves them behind.
//
// Example:
//
//	query := NewGetOrphanProfilesQuery(100)
//	orphans, err := handler.Handle(ctx, query)
//	for _, o := range orphans {
//	    _ = profiles.Delete(ctx, o.ID)
//	}
type GetOrphanProfilesQuery struct {
	limit uint

	guard guard.ConstructorGuard
}

// NewGetOrphanProfilesQuery creates the query. A zero limit returns every orphan.
func NewGetOrphanProfilesQuery(limit uint) GetOrphanProfilesQuery {
	return GetOrphanProfilesQuery{limit: limit, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was built by its constructor.
func (q GetOrphanProfilesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrphanProfilesQueryIsNotConstructed)
}

func (q GetOrphanProfilesQuery) Limit() uint {
	return q.limit
}

type GetOrphanProfilesQueryResponse struct {
	ID   kernel.ID
	Kind profile.Kind
}
