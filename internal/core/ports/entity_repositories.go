package ports

import (
	"context"

	"school/internal/core/domain/model/course"
	"school/internal/core/domain/model/faculty"
	"school/internal/core/domain/model/group"
	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/person"
	"school/internal/core/domain/model/profile"
	"school/internal/core/domain/model/student"
)

// ProfileRepository adds the lookup used by profile deletion.
type ProfileRepository interface {
	Repository[*profile.Profile]

	// CountReferences returns how many authority persons and students use the profile.
	CountReferences(ctx context.Context, profileID kernel.ID) (int64, error)
}

type AuthorityPersonRepository interface {
	Repository[*person.AuthorityPerson]
}

type CourseRepository interface {
	Repository[*course.Course]
}

type StudentsGroupRepository interface {
	Repository[*group.StudentsGroup]
}

// StudentRepository adds the counts used by course and group deletion rules.
type StudentRepository interface {
	Repository[*student.Student]

	// CountByCourse returns how many students are enrolled to the course.
	CountByCourse(ctx context.Context, courseID kernel.ID) (int64, error)

	// CountByGroup returns how many students belong to the group.
	CountByGroup(ctx context.Context, groupID kernel.ID) (int64, error)
}

// FacultyRepository adds the lookup used by authority person deletion.
type FacultyRepository interface {
	Repository[*faculty.Faculty]

	// CountByDean returns how many faculties the authority person manages.
	CountByDean(ctx context.Context, personID kernel.ID) (int64, error)
}
