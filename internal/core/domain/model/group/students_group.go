// Package group provides the StudentsGroup aggregate.
package group

import (
	"errors"
	"strings"

	"school/internal/core/domain/model/kernel"
	"school/internal/pkg/errs"
)

// EntityKind names students groups in errors and audit records.
const EntityKind = "students group"

var (
	ErrStudentsGroupIsNotConstructed = errors.New("StudentsGroup must be created via NewStudentsGroup constructor")

	// ErrGroupHasStudents is the rule violated when deleting a group with members.
	ErrGroupHasStudents = errors.New("students group has students")
)

// StudentsGroup is a class of students. Membership is stored on the student.
type StudentsGroup struct {
	id   kernel.ID
	name string

	isConstructed bool
}

func NewStudentsGroup(id kernel.ID, name string) (*StudentsGroup, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("group name")
	}
	if err := errors.Join(id.ValidateOptional(), nameErr); err != nil {
		return nil, err
	}

	return &StudentsGroup{id: id, name: name, isConstructed: true}, nil
}

func (g *StudentsGroup) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrStudentsGroupIsNotConstructed
	}
	return nil
}

func (g *StudentsGroup) ID() kernel.ID { return g.id }
func (g *StudentsGroup) Name() string  { return g.name }

func (g *StudentsGroup) WithID(id kernel.ID) *StudentsGroup {
	cp := *g
	cp.id = id
	return &cp
}

// CheckDeletable returns a business rule error while the group has members.
func (g *StudentsGroup) CheckDeletable(members int64) error {
	if members > 0 {
		return errs.NewBusinessRuleError(ErrGroupHasStudents, EntityKind, g.id)
	}
	return nil
}
