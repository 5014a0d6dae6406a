// Package facultyrepo persists faculties and the courses they own.
package facultyrepo

import (
	"school/internal/adapters/out/postgres/courserepo"
	"school/internal/adapters/out/postgres/personrepo"
	"school/internal/core/domain/model/faculty"
	"school/internal/core/domain/model/kernel"
)

// FacultyDTO represents the database structure for persisting faculties.
type FacultyDTO struct {
	ID     int64                          `gorm:"primaryKey;autoIncrement"`
	Name   string                         `gorm:"type:varchar(255);not null;uniqueIndex"`
	DeanID *int64                         `gorm:"index"`
	Dean   *personrepo.AuthorityPersonDTO `gorm:"foreignKey:DeanID;constraint:OnDelete:RESTRICT"`
}

// TableName overrides GORM's default naming convention.
func (FacultyDTO) TableName() string {
	return "faculties"
}

// FacultyCourseDTO links a course to the faculty owning it. A course
// belongs to one faculty at most.
type FacultyCourseDTO struct {
	FacultyID int64                 `gorm:"primaryKey"`
	Faculty   *FacultyDTO           `gorm:"foreignKey:FacultyID;constraint:OnDelete:CASCADE"`
	CourseID  int64                 `gorm:"primaryKey;uniqueIndex"`
	Course    *courserepo.CourseDTO `gorm:"foreignKey:CourseID;constraint:OnDelete:RESTRICT"`
}

// TableName overrides GORM's default naming convention.
func (FacultyCourseDTO) TableName() string {
	return "faculty_courses"
}

func fromDomain(f *faculty.Faculty) (FacultyDTO, []FacultyCourseDTO) {
	dto := FacultyDTO{
		ID:   f.ID().Int64(),
		Name: f.Name(),
	}
	if !f.DeanID().IsTransient() {
		deanID := f.DeanID().Int64()
		dto.DeanID = &deanID
	}
	return dto, courseLinks(dto.ID, f.CourseIDs())
}

func courseLinks(facultyID int64, courseIDs []kernel.ID) []FacultyCourseDTO {
	links := make([]FacultyCourseDTO, 0, len(courseIDs))
	for _, courseID := range courseIDs {
		links = append(links, FacultyCourseDTO{FacultyID: facultyID, CourseID: courseID.Int64()})
	}
	return links
}

func toDomain(dto FacultyDTO, links []FacultyCourseDTO) (*faculty.Faculty, error) {
	deanID := kernel.NoID
	if dto.DeanID != nil {
		deanID = kernel.ID(*dto.DeanID)
	}

	courseIDs := make([]kernel.ID, 0, len(links))
	for _, link := range links {
		courseIDs = append(courseIDs, kernel.ID(link.CourseID))
	}

	return faculty.NewFaculty(kernel.ID(dto.ID), dto.Name, deanID, courseIDs)
}
