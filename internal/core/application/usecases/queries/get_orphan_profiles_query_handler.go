package queries

import (
	"context"

	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/profile"

	"github.com/doug-martin/goqu/v9"
	"gorm.io/gorm"
)

// GetOrphanProfilesQueryHandler reads profiles without an owner.
type GetOrphanProfilesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrphanProfilesQueryHandler reads profiles straight from db.
func NewGetOrphanProfilesQueryHandler(db *gorm.DB) GetOrphanProfilesQueryHandler {
	return GetOrphanProfilesQueryHandler{db: db}
}

// Handle returns orphan profiles ordered by ID.
func (h GetOrphanProfilesQueryHandler) Handle(
	ctx context.Context,
	query GetOrphanProfilesQuery,
) ([]GetOrphanProfilesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql, err := buildOrphanProfilesSQL(query.Limit())
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ID   int64
		Kind string
	}
	if err = h.db.WithContext(ctx).Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}

	orphans := make([]GetOrphanProfilesQueryResponse, 0, len(rows))
	for _, row := range rows {
		kind, kindErr := profile.ParseKind(row.Kind)
		if kindErr != nil {
			return nil, kindErr
		}
		orphans = append(orphans, GetOrphanProfilesQueryResponse{ID: kernel.ID(row.ID), Kind: kind})
	}
	return orphans, nil
}

func buildOrphanProfilesSQL(limit uint) (string, error) {
	ownedBy := func(table string) goqu.Expression {
		return goqu.L("NOT EXISTS ?", dialect().
			From(goqu.T(table).As("o")).
			Select(goqu.L("1")).
			Where(goqu.I("o.profile_id").Eq(goqu.I("p.id"))))
	}

	stmt := dialect().
		From(goqu.T("profiles").As("p")).
		Select(goqu.I("p.id"), goqu.I("p.kind")).
		Where(ownedBy("authority_persons"), ownedBy("students")).
		Order(goqu.I("p.id").Asc())
	if limit > 0 {
		stmt = stmt.Limit(limit)
	}

	sql, _, err := stmt.ToSQL()
	return sql, err
}
