// Package course provides the Course aggregate.
package course

import (
	"errors"
	"strings"

	"school/internal/core/domain/model/kernel"
	"school/internal/pkg/errs"
)

// EntityKind names courses in errors and audit records.
const EntityKind = "course"

var (
	ErrCourseIsNotConstructed = errors.New("Course must be created via NewCourse constructor")

	// ErrCourseHasStudents is the rule violated when deleting a course with enrolled students.
	ErrCourseHasStudents = errors.New("course has enrolled students")
)

// Course is a subject students register to. Names are unique.
type Course struct {
	id          kernel.ID
	name        string
	description string

	isConstructed bool
}

// NewCourse creates a Course. The name is trimmed and required.
func NewCourse(id kernel.ID, name, description string) (*Course, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("course name")
	}
	if err := errors.Join(id.ValidateOptional(), nameErr); err != nil {
		return nil, err
	}

	return &Course{
		id:            id,
		name:          name,
		description:   description,
		isConstructed: true,
	}, nil
}

// Validate ensures the course was created through NewCourse.
func (c *Course) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourseIsNotConstructed
	}
	return nil
}

func (c *Course) ID() kernel.ID       { return c.id }
func (c *Course) Name() string        { return c.name }
func (c *Course) Description() string { return c.description }

// WithID returns a copy carrying id.
func (c *Course) WithID(id kernel.ID) *Course {
	cp := *c
	cp.id = id
	return &cp
}

// CheckDeletable returns a business rule error when students are enrolled.
// The enrolment count comes from the student store.
func (c *Course) CheckDeletable(enrolledStudents int64) error {
	if enrolledStudents > 0 {
		return errs.NewBusinessRuleError(ErrCourseHasStudents, EntityKind, c.id)
	}
	return nil
}
