package student

import (
	"errors"
	"slices"

	"school/internal/core/domain/model/kernel"
	"school/internal/pkg/errs"
)

// EntityKind names students in errors and audit records.
const EntityKind = "student"

var (
	ErrStudentIsNotConstructed = errors.New("Student must be created via NewStudent constructor")

	// ErrStudentHasCourses is the rule violated when deleting an enrolled student.
	ErrStudentHasCourses = errors.New("student has registered courses")
)

// Student is a learner. A student belongs to at most one students group and
// may be registered to any number of courses.
//
// Student invariants:
//   - First and last name are required
//   - Gender is Male or Female
//   - Course identities are unique and valid
type Student struct {
	id        kernel.ID
	profileID kernel.ID
	firstName string
	lastName  string
	gender    kernel.Gender
	groupID   kernel.ID
	courseIDs []kernel.ID

	isConstructed bool
}

// NewStudent creates a Student. groupID may be NoID.
//
// Example:
//
//	s, err := student.NewStudent(kernel.NoID, kernel.NoID, "Grace", "Hopper", kernel.Female, kernel.NoID, nil)
func NewStudent(
	id, profileID kernel.ID,
	firstName, lastName string,
	gender kernel.Gender,
	groupID kernel.ID,
	courseIDs []kernel.ID,
) (*Student, error) {
	s := &Student{
		id:            id,
		profileID:     profileID,
		firstName:     firstName,
		lastName:      lastName,
		gender:        gender,
		groupID:       groupID,
		isConstructed: true,
	}

	var nameErr error
	if firstName == "" {
		nameErr = errors.Join(nameErr, errs.NewValueIsRequiredError("first name"))
	}
	if lastName == "" {
		nameErr = errors.Join(nameErr, errs.NewValueIsRequiredError("last name"))
	}

	if err := errors.Join(
		id.ValidateOptional(),
		profileID.ValidateOptional(),
		groupID.ValidateOptional(),
		nameErr,
		gender.Validate(),
		s.setCourses(courseIDs),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the student was created through NewStudent.
func (s *Student) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStudentIsNotConstructed
	}
	return nil
}

func (s *Student) ID() kernel.ID         { return s.id }
func (s *Student) ProfileID() kernel.ID  { return s.profileID }
func (s *Student) FirstName() string     { return s.firstName }
func (s *Student) LastName() string      { return s.lastName }
func (s *Student) Gender() kernel.Gender { return s.gender }
func (s *Student) GroupID() kernel.ID    { return s.groupID }

// CourseIDs returns the registered courses in ascending order.
func (s *Student) CourseIDs() []kernel.ID {
	return slices.Clone(s.courseIDs)
}

// HasCourses reports whether the student is registered to any course.
func (s *Student) HasCourses() bool {
	return len(s.courseIDs) > 0
}

// CheckDeletable returns a business rule error while courses are registered.
func (s *Student) CheckDeletable() error {
	if s.HasCourses() {
		return errs.NewBusinessRuleError(ErrStudentHasCourses, EntityKind, s.id)
	}
	return nil
}

// WithID returns a copy carrying id.
func (s *Student) WithID(id kernel.ID) *Student {
	cp := *s
	cp.id = id
	cp.courseIDs = slices.Clone(s.courseIDs)
	return &cp
}

// WithProfileID returns a copy linked to the profile profileID.
func (s *Student) WithProfileID(profileID kernel.ID) *Student {
	cp := *s
	cp.profileID = profileID
	cp.courseIDs = slices.Clone(s.courseIDs)
	return &cp
}

func (s *Student) setCourses(courseIDs []kernel.ID) error {
	ids := slices.Clone(courseIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("course id", err)
		}
	}
	s.courseIDs = ids
	return nil
}
