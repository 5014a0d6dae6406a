package facultyrepo

import (
	"context"

	"school/internal/adapters/out/postgres/dberr"
	"school/internal/adapters/out/postgres/txctx"
	"school/internal/core/domain/model/faculty"
	"school/internal/core/domain/model/kernel"
	"school/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFacultyRepository implements ports.FacultyRepository using GORM.
type GormFacultyRepository struct {
	db *gorm.DB
}

// NewGormFacultyRepository uses the transaction bound to ctx when there is one.
func NewGormFacultyRepository(db *gorm.DB) *GormFacultyRepository {
	return &GormFacultyRepository{db: db}
}

// FindByID retrieves a faculty with its courses.
func (r *GormFacultyRepository) FindByID(ctx context.Context, id kernel.ID) (*faculty.Faculty, error) {
	db := txctx.DB(ctx, r.db)

	var dto FacultyDTO
	if err := db.First(&dto, "id = ?", id.Int64()).Error; err != nil {
		return nil, dberr.NotFound(err, faculty.EntityKind, id)
	}

	var links []FacultyCourseDTO
	if err := db.Where("faculty_id = ?", dto.ID).Order("course_id").Find(&links).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, links)
}

// Save inserts a transient faculty or updates an existing one, replacing
// its course links.
func (r *GormFacultyRepository) Save(ctx context.Context, f *faculty.Faculty) (*faculty.Faculty, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	dto, _ := fromDomain(f)
	var links []FacultyCourseDTO
	err := txctx.DB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if f.ID().IsTransient() {
			if err := tx.Omit(clause.Associations).Create(&dto).Error; err != nil {
				return err
			}
		} else {
			result := tx.Model(&FacultyDTO{}).Where("id = ?", dto.ID).
				Select("*").Omit(clause.Associations).Updates(&dto)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return errs.NewObjectNotFoundError(faculty.EntityKind, f.ID())
			}
		}

		links = courseLinks(dto.ID, f.CourseIDs())
		return replaceCourseLinks(tx, dto.ID, links)
	})
	if err != nil {
		return nil, dberr.Translate(err, faculty.EntityKind, f.ID())
	}

	return toDomain(dto, links)
}

// Restore writes the snapshot and its course links back under its ID.
func (r *GormFacultyRepository) Restore(ctx context.Context, f *faculty.Faculty) error {
	dto, links := fromDomain(f)
	err := txctx.DB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error; err != nil {
			return err
		}
		return replaceCourseLinks(tx, dto.ID, links)
	})
	return dberr.Translate(err, faculty.EntityKind, f.ID())
}

// Delete removes the faculty and its course links.
func (r *GormFacultyRepository) Delete(ctx context.Context, id kernel.ID) error {
	err := txctx.DB(ctx, r.db).Delete(&FacultyDTO{}, id.Int64()).Error
	return dberr.Translate(err, faculty.EntityKind, id)
}

// CountByDean returns how many faculties the authority person manages.
func (r *GormFacultyRepository) CountByDean(ctx context.Context, personID kernel.ID) (int64, error) {
	var count int64
	err := txctx.DB(ctx, r.db).Model(&FacultyDTO{}).Where("dean_id = ?", personID.Int64()).Count(&count).Error
	return count, err
}

func replaceCourseLinks(tx *gorm.DB, facultyID int64, links []FacultyCourseDTO) error {
	if err := tx.Where("faculty_id = ?", facultyID).Delete(&FacultyCourseDTO{}).Error; err != nil {
		return err
	}
	if len(links) == 0 {
		return nil
	}
	return tx.Omit(clause.Associations).Create(&links).Error
}
