package errs_test

import (
	"errors"
	"testing"

	"school/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("course", "42")

		assert.Equal(t, "course", err.ParamName)
		assert.Equal(t, "42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 42", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("profile", "7", cause)

		assert.Equal(t,
			"object not found: param is: profile, ID is: 7 (cause: connection reset)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("identity formatted with Stringer", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("faculty", stringer("faculty-3"))
		assert.Equal(t, "object not found: faculty-3", err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")

	err := errs.NewObjectAlreadyExistsErrorWithCause("course", cause)

	assert.Equal(t, "object already exists: course (cause: duplicate key value violates unique constraint)", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	assert.Equal(t, "object already exists: group", errs.NewObjectAlreadyExistsError("group").Error())
}

func TestValueErrors(t *testing.T) {
	cause := errors.New("bad format")

	testCases := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("email"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: email",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("email", cause),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: email (cause: bad format)",
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("name"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: name",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("name", cause),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: name (cause: bad format)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("gender", 9, 1, 2),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 9 is gender, min value is 1, max value is 2",
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("kind", -1, 1, 2, cause),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -1 is kind, min value is 1, max value is 2 (cause: bad format)",
		},
		{
			name:     "version",
			err:      errs.NewVersionIsInvalidError("schema", cause),
			sentinel: errs.ErrVersionIsInvalid,
			message:  "version is invalid: schema (cause: bad format)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.message, tc.err.Error())
			require.ErrorIs(t, tc.err, tc.sentinel)
		})
	}
}

func TestValueIsOutOfRangeError_SanitizesNewlines(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)

	assert.Contains(t, err.Error(), "hello world")
	assert.NotContains(t, err.Error(), "\n")
}

func TestBusinessRuleError(t *testing.T) {
	errCourseHasStudents := errors.New("course has enrolled students")

	t.Run("matches rule and violation sentinel", func(t *testing.T) {
		err := errs.NewBusinessRuleError(errCourseHasStudents, "course", 12)

		require.ErrorIs(t, err, errCourseHasStudents)
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.Equal(t,
			"business rule violated: course has enrolled students, course ID is: 12",
			err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewBusinessRuleErrorWithCause(errCourseHasStudents, "course", 12, errors.New("3 students"))

		assert.Contains(t, err.Error(), "(cause: 3 students)")
	})

	t.Run("errors.As extracts details", func(t *testing.T) {
		var wrapped error = errs.NewBusinessRuleError(errCourseHasStudents, "course", 5)

		var target *errs.BusinessRuleError
		require.ErrorAs(t, wrapped, &target)
		assert.Equal(t, "course", target.Kind)
		assert.Equal(t, 5, target.ID)
	})

	t.Run("nil rule still reports violation", func(t *testing.T) {
		err := errs.NewBusinessRuleError(nil, "faculty", 1)
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
	assert.Equal(t, "business rule violated", errs.ErrBusinessRuleViolated.Error())
}

type stringer string

func (s stringer) String() string { return string(s) }
