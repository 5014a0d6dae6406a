// Package grouprepo persists students groups.
package grouprepo

import (
	"school/internal/core/domain/model/group"
	"school/internal/core/domain/model/kernel"
)

// StudentsGroupDTO represents the database structure for persisting students groups.
type StudentsGroupDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null;uniqueIndex"`
}

// TableName overrides GORM's default naming convention.
func (StudentsGroupDTO) TableName() string {
	return "students_groups"
}

func fromDomain(g *group.StudentsGroup) StudentsGroupDTO {
	return StudentsGroupDTO{ID: g.ID().Int64(), Name: g.Name()}
}

func toDomain(dto StudentsGroupDTO) (*group.StudentsGroup, error) {
	return group.NewStudentsGroup(kernel.ID(dto.ID), dto.Name)
}
