// Package errs holds the typed errors shared by the school domain, its
// commands and its adapters.
//
// Every kind comes as a sentinel (ErrObjectNotFound, ErrValueIsRequired,
// ErrBusinessRuleViolated, ...) plus a struct carrying the details, built
// with New...Error or New...ErrorWithCause. Structs unwrap to their sentinel,
// so callers classify with errors.Is:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return http.StatusNotFound
//	}
//
// BusinessRuleError additionally unwraps to the specific rule, for example
// course.ErrCourseHasStudents, and ObjectAlreadyExistsError to its driver
// cause.
package errs
