package queries

import (
	"context"

	"school/internal/core/domain/model/kernel"

	"github.com/doug-martin/goqu/v9"
	"gorm.io/gorm"
)

// GetCoursesWithoutStudentsQueryHandler reads courses with no enrolment rows.
type GetCoursesWithoutStudentsQueryHandler struct {
	db *gorm.DB
}

// NewGetCoursesWithoutStudentsQueryHandler reads courses straight from db.
func NewGetCoursesWithoutStudentsQueryHandler(db *gorm.DB) GetCoursesWithoutStudentsQueryHandler {
	return GetCoursesWithoutStudentsQueryHandler{db: db}
}

// Handle returns the courses ordered by name.
func (h GetCoursesWithoutStudentsQueryHandler) Handle(
	ctx context.Context,
	query GetCoursesWithoutStudentsQuery,
) ([]GetCoursesWithoutStudentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql, err := buildCoursesWithoutStudentsSQL(query.Limit())
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ID          int64
		Name        string
		Description string
	}
	if err = h.db.WithContext(ctx).Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}

	courses := make([]GetCoursesWithoutStudentsQueryResponse, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, GetCoursesWithoutStudentsQueryResponse{
			ID:          kernel.ID(row.ID),
			Name:        row.Name,
			Description: row.Description,
		})
	}
	return courses, nil
}

func buildCoursesWithoutStudentsSQL(limit uint) (string, error) {
	enrolled := dialect().
		From(goqu.T("student_courses").As("sc")).
		Select(goqu.L("1")).
		Where(goqu.I("sc.course_id").Eq(goqu.I("c.id")))

	stmt := dialect().
		From(goqu.T("courses").As("c")).
		Select(goqu.I("c.id"), goqu.I("c.name"), goqu.I("c.description")).
		Where(goqu.L("NOT EXISTS ?", enrolled)).
		Order(goqu.I("c.name").Asc(), goqu.I("c.id").Asc())
	if limit > 0 {
		stmt = stmt.Limit(limit)
	}

	sql, _, err := stmt.ToSQL()
	return sql, err
}
