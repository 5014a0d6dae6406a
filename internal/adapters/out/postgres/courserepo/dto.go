// Package courserepo persists courses.
package courserepo

import (
	"school/internal/core/domain/model/course"
	"school/internal/core/domain/model/kernel"
)

// CourseDTO represents the database structure for persisting courses.
type CourseDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
}

// TableName overrides GORM's default naming convention.
func (CourseDTO) TableName() string {
	return "courses"
}

func fromDomain(c *course.Course) CourseDTO {
	return CourseDTO{
		ID:          c.ID().Int64(),
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func toDomain(dto CourseDTO) (*course.Course, error) {
	return course.NewCourse(kernel.ID(dto.ID), dto.Name, dto.Description)
}
