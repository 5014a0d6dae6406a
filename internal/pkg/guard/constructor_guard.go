// Package guard provides a marker that distinguishes values built through
// their constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into commands, queries and value objects that
// must only be created through their New... function.
//
// Example:
//
//	var ErrFindCourseQueryIsNotConstructed = errors.New("FindCourseQuery must be created via NewFindCourseQuery")
//
//	type FindCourseQuery struct {
//	    id    kernel.ID
//	    guard guard.ConstructorGuard
//	}
//
//	func (q FindCourseQuery) Validate() error {
//	    return q.guard.Validate(ErrFindCourseQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
