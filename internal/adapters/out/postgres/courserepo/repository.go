package courserepo

import (
	"context"

	"school/internal/adapters/out/postgres/dberr"
	"school/internal/adapters/out/postgres/txctx"
	"school/internal/core/domain/model/course"
	"school/internal/core/domain/model/kernel"
	"school/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCourseRepository implements ports.CourseRepository using GORM.
type GormCourseRepository struct {
	db *gorm.DB
}

// NewGormCourseRepository uses the transaction bound to ctx when there is one.
func NewGormCourseRepository(db *gorm.DB) *GormCourseRepository {
	return &GormCourseRepository{db: db}
}

// FindByID retrieves a course by ID.
func (r *GormCourseRepository) FindByID(ctx context.Context, id kernel.ID) (*course.Course, error) {
	var dto CourseDTO
	if err := txctx.DB(ctx, r.db).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		return nil, dberr.NotFound(err, course.EntityKind, id)
	}
	return toDomain(dto)
}

// Save inserts a transient course or updates an existing one. Course
// names are unique.
func (r *GormCourseRepository) Save(ctx context.Context, p *course.Course) (*course.Course, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(p)
	db := txctx.DB(ctx, r.db)
	if p.ID().IsTransient() {
		if err := db.Create(&dto).Error; err != nil {
			return nil, dberr.Translate(err, course.EntityKind, p.ID())
		}
		return toDomain(dto)
	}

	result := db.Model(&CourseDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return nil, dberr.Translate(result.Error, course.EntityKind, p.ID())
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError(course.EntityKind, p.ID())
	}
	return toDomain(dto)
}

// Restore writes the snapshot back under its ID.
func (r *GormCourseRepository) Restore(ctx context.Context, p *course.Course) error {
	dto := fromDomain(p)
	err := txctx.DB(ctx, r.db).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
	return dberr.Translate(err, course.EntityKind, p.ID())
}

// Delete removes the course. Enrolments and faculty links referencing it
// make the store return a business rule error.
func (r *GormCourseRepository) Delete(ctx context.Context, id kernel.ID) error {
	err := txctx.DB(ctx, r.db).Delete(&CourseDTO{}, id.Int64()).Error
	return dberr.Translate(err, course.EntityKind, id)
}
