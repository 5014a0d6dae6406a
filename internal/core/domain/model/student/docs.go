// Package student provides the Student aggregate.
//
// Key business rules:
//   - A student owns exactly one profile, created and deleted with it
//   - A student registered to courses cannot be deleted
package student
