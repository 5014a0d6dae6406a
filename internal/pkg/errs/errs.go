package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrObjectAlreadyExists  = errors.New("object already exists")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrValueIsRequired      = errors.New("value is required")
	ErrVersionIsInvalid     = errors.New("version is invalid")
	ErrBusinessRuleViolated = errors.New("business rule violated")
)

// ObjectNotFoundError reports a lookup by identity that matched nothing.
// ParamName holds the kind of the object (for example "course").
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(fmt.Sprintf("%s", e.ID)), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(fmt.Sprintf("%s", e.ID)))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError reports a uniqueness conflict on write.
type ObjectAlreadyExistsError struct {
	ParamName string
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrObjectAlreadyExists, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, e.ParamName)
}

// Unwrap exposes both the sentinel and the cause.
func (e *ObjectAlreadyExistsError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrObjectAlreadyExists, e.Cause}
	}
	return []error{ErrObjectAlreadyExists}
}

type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

// Unwrap exposes both the sentinel and the cause.
func (e *ValueIsInvalidError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrValueIsInvalid, e.Cause}
	}
	return []error{ErrValueIsInvalid}
}

type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

// Unwrap exposes both the sentinel and the cause.
func (e *ValueIsRequiredError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrValueIsRequired, e.Cause}
	}
	return []error{ErrValueIsRequired}
}

type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// BusinessRuleError reports a violated domain precondition. Rule is the
// sentinel named after the rule (for example "course has enrolled students"),
// Kind and ID identify the entity the rule was checked against.
//
// errors.Is matches both Rule and ErrBusinessRuleViolated.
//
// Example:
//
//	var ErrCourseHasStudents = errors.New("course has enrolled students")
//
//	if enrolled > 0 {
//	    return errs.NewBusinessRuleError(ErrCourseHasStudents, "course", id)
//	}
type BusinessRuleError struct {
	Rule  error
	Kind  string
	ID    any
	Cause error
}

func NewBusinessRuleError(rule error, kind string, id any) *BusinessRuleError {
	return &BusinessRuleError{
		Rule: rule,
		Kind: kind,
		ID:   id,
	}
}

func NewBusinessRuleErrorWithCause(rule error, kind string, id any, cause error) *BusinessRuleError {
	return &BusinessRuleError{
		Rule:  rule,
		Kind:  kind,
		ID:    id,
		Cause: cause,
	}
}

func (e *BusinessRuleError) Error() string {
	msg := sanitize(fmt.Sprintf("%s: %v, %s ID is: %v", ErrBusinessRuleViolated, e.Rule, e.Kind, e.ID))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *BusinessRuleError) Unwrap() []error {
	wrapped := []error{ErrBusinessRuleViolated}
	if e.Rule != nil {
		wrapped = append([]error{e.Rule}, wrapped...)
	}
	if e.Cause != nil {
		wrapped = append(wrapped, e.Cause)
	}
	return wrapped
}

func sanitize(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
