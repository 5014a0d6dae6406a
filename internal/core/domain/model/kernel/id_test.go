package kernel_test

import (
	"testing"

	"school/internal/core/domain/model/kernel"
	"school/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id, err := kernel.NewID(42)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(42), id)
	assert.Equal(t, "42", id.String())
	assert.False(t, id.IsTransient())

	_, err = kernel.NewID(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = kernel.NewID(-3)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseID(t *testing.T) {
	id, err := kernel.ParseID("17")
	require.NoError(t, err)
	assert.Equal(t, int64(17), id.Int64())

	_, err = kernel.ParseID("abc")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestID_ValidateOptional(t *testing.T) {
	require.NoError(t, kernel.NoID.ValidateOptional())
	require.NoError(t, kernel.ID(5).ValidateOptional())
	require.Error(t, kernel.ID(-5).ValidateOptional())
	assert.True(t, kernel.NoID.IsTransient())
}

func TestGender(t *testing.T) {
	g, err := kernel.ParseGender("female")
	require.NoError(t, err)
	assert.Equal(t, kernel.Female, g)
	assert.Equal(t, "FEMALE", g.String())
	require.NoError(t, g.Validate())

	_, err = kernel.ParseGender("other")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.ErrorIs(t, kernel.UnknownGender.Validate(), errs.ErrValueIsOutOfRange)
	assert.Equal(t, "UNKNOWN", kernel.Gender(9).String())
}
