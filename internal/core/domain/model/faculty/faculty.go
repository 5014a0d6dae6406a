// Package faculty provides the Faculty aggregate: a division headed by a
// dean (an authority person) that groups courses.
package faculty

import (
	"errors"
	"slices"
	"strings"

	"school/internal/core/domain/model/kernel"
	"school/internal/pkg/errs"
)

// EntityKind names faculties in errors and audit records.
const EntityKind = "faculty"

var (
	ErrFacultyIsNotConstructed = errors.New("Faculty must be created via NewFaculty constructor")

	// ErrFacultyHasCourses is the rule violated when deleting a faculty that still owns courses.
	ErrFacultyHasCourses = errors.New("faculty has courses")
)

type Faculty struct {
	id        kernel.ID
	name      string
	deanID    kernel.ID
	courseIDs []kernel.ID

	isConstructed bool
}

// NewFaculty creates a Faculty. deanID may be NoID.
func NewFaculty(id kernel.ID, name string, deanID kernel.ID, courseIDs []kernel.ID) (*Faculty, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("faculty name")
	}

	ids := slices.Clone(courseIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	var coursesErr error
	for _, courseID := range ids {
		if err := courseID.Validate(); err != nil {
			coursesErr = errs.NewValueIsInvalidErrorWithCause("course id", err)
			break
		}
	}

	if err := errors.Join(id.ValidateOptional(), deanID.ValidateOptional(), nameErr, coursesErr); err != nil {
		return nil, err
	}

	return &Faculty{
		id:            id,
		name:          name,
		deanID:        deanID,
		courseIDs:     ids,
		isConstructed: true,
	}, nil
}

func (f *Faculty) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFacultyIsNotConstructed
	}
	return nil
}

func (f *Faculty) ID() kernel.ID     { return f.id }
func (f *Faculty) Name() string      { return f.name }
func (f *Faculty) DeanID() kernel.ID { return f.deanID }

func (f *Faculty) CourseIDs() []kernel.ID {
	return slices.Clone(f.courseIDs)
}

func (f *Faculty) WithID(id kernel.ID) *Faculty {
	cp := *f
	cp.id = id
	cp.courseIDs = slices.Clone(f.courseIDs)
	return &cp
}

// CheckDeletable returns a business rule error while the faculty owns courses.
func (f *Faculty) CheckDeletable() error {
	if len(f.courseIDs) > 0 {
		return errs.NewBusinessRuleError(ErrFacultyHasCourses, EntityKind, f.id)
	}
	return nil
}
