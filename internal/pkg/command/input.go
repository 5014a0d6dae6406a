package command

import (
	"fmt"
	"reflect"

	"school/internal/pkg/errs"
)

// Input is a type-erased parameter passed to commands. The zero value is
// the empty input ("no parameter").
type Input struct {
	value any
}

// InputOf wraps v. A nil v yields the empty input.
func InputOf(v any) Input {
	return Input{value: v}
}

// EmptyInput returns the input representing "no parameter".
func EmptyInput() Input {
	return Input{}
}

// Value returns the wrapped value, nil for the empty input.
func (in Input) Value() any {
	return in.value
}

// IsEmpty reports whether the input carries no value, including a typed nil pointer.
func (in Input) IsEmpty() bool {
	if in.value == nil {
		return true
	}
	rv := reflect.ValueOf(in.value)
	switch rv.Kind() { //nolint:exhaustive // only nillable kinds matter
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (in Input) String() string {
	if in.IsEmpty() {
		return "Input(empty)"
	}
	return fmt.Sprintf("Input(%T)", in.value)
}

// InputValue extracts a value of type T from in. An empty input yields a
// *errs.ValueIsRequiredError named after paramName, a value of another type
// yields an *InputTypeError.
//
// Example:
//
//	id, err := command.InputValue[kernel.ID](in, "course id")
//	if err != nil {
//	    return command.EmptyInput(), err
//	}
func InputValue[T any](in Input, paramName string) (T, error) {
	var zero T
	if in.IsEmpty() {
		return zero, errs.NewValueIsRequiredErrorWithCause(paramName, ErrInputIsRequired)
	}

	v, ok := in.value.(T)
	if !ok {
		return zero, NewInputTypeError(paramName, reflect.TypeFor[T]().String(), fmt.Sprintf("%T", in.value))
	}
	return v, nil
}
