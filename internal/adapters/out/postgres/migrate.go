package postgres

import (
	"context"
	"fmt"

	"school/internal/adapters/out/postgres/actionlogrepo"
	"school/internal/adapters/out/postgres/courserepo"
	"school/internal/adapters/out/postgres/facultyrepo"
	"school/internal/adapters/out/postgres/grouprepo"
	"school/internal/adapters/out/postgres/personrepo"
	"school/internal/adapters/out/postgres/profilerepo"
	"school/internal/adapters/out/postgres/studentrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&profilerepo.ProfileDTO{},
		&grouprepo.StudentsGroupDTO{},
		&courserepo.CourseDTO{},
		&personrepo.AuthorityPersonDTO{},
		&studentrepo.StudentDTO{},
		&studentrepo.StudentCourseDTO{},
		&facultyrepo.FacultyDTO{},
		&facultyrepo.FacultyCourseDTO{},
		&actionlogrepo.ActionLogDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
