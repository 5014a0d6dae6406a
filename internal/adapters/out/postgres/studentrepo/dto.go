// Package studentrepo persists students and their course enrolments.
package studentrepo

import (
	"school/internal/adapters/out/postgres/courserepo"
	"school/internal/adapters/out/postgres/grouprepo"
	"school/internal/adapters/out/postgres/profilerepo"
	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/student"
)

// StudentDTO represents the database structure for persisting students.
type StudentDTO struct {
	ID        int64                       `gorm:"primaryKey;autoIncrement"`
	ProfileID *int64                      `gorm:"uniqueIndex"`
	Profile   *profilerepo.ProfileDTO     `gorm:"foreignKey:ProfileID;constraint:OnDelete:RESTRICT"`
	FirstName string                      `gorm:"type:varchar(255);not null"`
	LastName  string                      `gorm:"type:varchar(255);not null"`
	Gender    string                      `gorm:"type:varchar(16);not null"`
	GroupID   *int64                      `gorm:"index"`
	Group     *grouprepo.StudentsGroupDTO `gorm:"foreignKey:GroupID;constraint:OnDelete:RESTRICT"`
}

// TableName overrides GORM's default naming convention.
func (StudentDTO) TableName() string {
	return "students"
}

// StudentCourseDTO links a student to a course.
type StudentCourseDTO struct {
	StudentID int64                 `gorm:"primaryKey"`
	Student   *StudentDTO           `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	CourseID  int64                 `gorm:"primaryKey;index"`
	Course    *courserepo.CourseDTO `gorm:"foreignKey:CourseID;constraint:OnDelete:RESTRICT"`
}

// TableName overrides GORM's default naming convention.
func (StudentCourseDTO) TableName() string {
	return "student_courses"
}

func fromDomain(s *student.Student) (StudentDTO, []StudentCourseDTO) {
	dto := StudentDTO{
		ID:        s.ID().Int64(),
		ProfileID: optionalID(s.ProfileID()),
		FirstName: s.FirstName(),
		LastName:  s.LastName(),
		Gender:    s.Gender().String(),
		GroupID:   optionalID(s.GroupID()),
	}
	return dto, enrolments(dto.ID, s.CourseIDs())
}

func enrolments(studentID int64, courseIDs []kernel.ID) []StudentCourseDTO {
	links := make([]StudentCourseDTO, 0, len(courseIDs))
	for _, courseID := range courseIDs {
		links = append(links, StudentCourseDTO{StudentID: studentID, CourseID: courseID.Int64()})
	}
	return links
}

func toDomain(dto StudentDTO, links []StudentCourseDTO) (*student.Student, error) {
	gender, err := kernel.ParseGender(dto.Gender)
	if err != nil {
		return nil, err
	}

	courseIDs := make([]kernel.ID, 0, len(links))
	for _, link := range links {
		courseIDs = append(courseIDs, kernel.ID(link.CourseID))
	}

	return student.NewStudent(
		kernel.ID(dto.ID),
		requiredID(dto.ProfileID),
		dto.FirstName,
		dto.LastName,
		gender,
		requiredID(dto.GroupID),
		courseIDs,
	)
}

func optionalID(id kernel.ID) *int64 {
	if id.IsTransient() {
		return nil
	}
	v := id.Int64()
	return &v
}

func requiredID(v *int64) kernel.ID {
	if v == nil {
		return kernel.NoID
	}
	return kernel.ID(*v)
}
