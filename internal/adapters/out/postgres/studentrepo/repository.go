package studentrepo

import (
	"context"

	"school/internal/adapters/out/postgres/dberr"
	"school/internal/adapters/out/postgres/txctx"
	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/student"
	"school/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStudentRepository implements ports.StudentRepository using GORM.
// A student row and its enrolments are always written in one transaction.
type GormStudentRepository struct {
	db *gorm.DB
}

// NewGormStudentRepository uses the transaction bound to ctx when there is one.
func NewGormStudentRepository(db *gorm.DB) *GormStudentRepository {
	return &GormStudentRepository{db: db}
}

// FindByID retrieves a student with its enrolments.
func (r *GormStudentRepository) FindByID(ctx context.Context, id kernel.ID) (*student.Student, error) {
	db := txctx.DB(ctx, r.db)

	var dto StudentDTO
	if err := db.First(&dto, "id = ?", id.Int64()).Error; err != nil {
		return nil, dberr.NotFound(err, student.EntityKind, id)
	}

	var links []StudentCourseDTO
	if err := db.Where("student_id = ?", dto.ID).Order("course_id").Find(&links).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, links)
}

// Save inserts a transient student or updates an existing one, replacing
// its enrolments.
func (r *GormStudentRepository) Save(ctx context.Context, s *student.Student) (*student.Student, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	dto, _ := fromDomain(s)
	var links []StudentCourseDTO
	err := txctx.DB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if s.ID().IsTransient() {
			if err := tx.Omit(clause.Associations).Create(&dto).Error; err != nil {
				return err
			}
		} else {
			result := tx.Model(&StudentDTO{}).Where("id = ?", dto.ID).
				Select("*").Omit(clause.Associations).Updates(&dto)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return errs.NewObjectNotFoundError(student.EntityKind, s.ID())
			}
		}

		links = enrolments(dto.ID, s.CourseIDs())
		return replaceEnrolments(tx, dto.ID, links)
	})
	if err != nil {
		return nil, dberr.Translate(err, student.EntityKind, s.ID())
	}

	return toDomain(dto, links)
}

// Restore writes the snapshot and its enrolments back under its ID.
func (r *GormStudentRepository) Restore(ctx context.Context, s *student.Student) error {
	dto, links := fromDomain(s)
	err := txctx.DB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error; err != nil {
			return err
		}
		return replaceEnrolments(tx, dto.ID, links)
	})
	return dberr.Translate(err, student.EntityKind, s.ID())
}

// Delete removes the student. Enrolments are removed by cascade.
func (r *GormStudentRepository) Delete(ctx context.Context, id kernel.ID) error {
	err := txctx.DB(ctx, r.db).Delete(&StudentDTO{}, id.Int64()).Error
	return dberr.Translate(err, student.EntityKind, id)
}

// CountByCourse returns how many students are enrolled to the course.
func (r *GormStudentRepository) CountByCourse(ctx context.Context, courseID kernel.ID) (int64, error) {
	var count int64
	err := txctx.DB(ctx, r.db).Model(&StudentCourseDTO{}).Where("course_id = ?", courseID.Int64()).Count(&count).Error
	return count, err
}

// CountByGroup returns how many students belong to the group.
func (r *GormStudentRepository) CountByGroup(ctx context.Context, groupID kernel.ID) (int64, error) {
	var count int64
	err := txctx.DB(ctx, r.db).Model(&StudentDTO{}).Where("group_id = ?", groupID.Int64()).Count(&count).Error
	return count, err
}

func replaceEnrolments(tx *gorm.DB, studentID int64, links []StudentCourseDTO) error {
	if err := tx.Where("student_id = ?", studentID).Delete(&StudentCourseDTO{}).Error; err != nil {
		return err
	}
	if len(links) == 0 {
		return nil
	}
	return tx.Omit(clause.Associations).Create(&links).Error
}
