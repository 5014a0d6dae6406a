package profile_test

import (
	"testing"

	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/profile"
	"school/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	t.Run("valid transient profile", func(t *testing.T) {
		p, err := profile.NewProfile(kernel.NoID, profile.Principal, "Dean <dean@school.edu>", "+1 555", "Campus A", "")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsTransient())
		assert.Equal(t, "dean@school.edu", p.Email())
		assert.Equal(t, profile.Principal, p.Kind())
		assert.Equal(t, "Campus A", p.Location())
	})

	t.Run("email is optional", func(t *testing.T) {
		p, err := profile.NewProfile(kernel.ID(3), profile.Student, "", "", "", "https://cdn/p.png")

		require.NoError(t, err)
		assert.Empty(t, p.Email())
		assert.Equal(t, "https://cdn/p.png", p.PhotoURL())
	})

	t.Run("collects all validation errors", func(t *testing.T) {
		_, err := profile.NewProfile(kernel.ID(-1), profile.UnknownKind, "not-an-email", "", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "id")
		assert.Contains(t, err.Error(), "profile kind")
		assert.Contains(t, err.Error(), "email")
	})
}

func TestProfile_WithID(t *testing.T) {
	p, err := profile.NewProfile(kernel.NoID, profile.Student, "s@school.edu", "", "", "")
	require.NoError(t, err)

	persisted := p.WithID(kernel.ID(8))

	assert.Equal(t, kernel.ID(8), persisted.ID())
	assert.True(t, p.ID().IsTransient())
	assert.Equal(t, p.Email(), persisted.Email())
	assert.True(t, persisted.IsEqual(p.WithID(kernel.ID(8))))
	assert.False(t, p.IsEqual(p))
}

func TestProfile_CheckDeletable(t *testing.T) {
	p, err := profile.NewProfile(kernel.ID(5), profile.Student, "", "", "", "")
	require.NoError(t, err)

	require.NoError(t, p.CheckDeletable(0))

	err = p.CheckDeletable(1)
	require.ErrorIs(t, err, profile.ErrProfileIsReferenced)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Equal(t, "business rule violated: profile is referenced, profile ID is: 5", err.Error())
}

func TestProfile_ValidateZeroValue(t *testing.T) {
	var p *profile.Profile
	require.ErrorIs(t, p.Validate(), profile.ErrProfileIsNotConstructed)
	require.ErrorIs(t, (&profile.Profile{}).Validate(), profile.ErrProfileIsNotConstructed)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "PRINCIPAL", profile.Principal.String())
	assert.Equal(t, "UNKNOWN", profile.Kind(42).String())
}

func TestParseKind(t *testing.T) {
	kind, err := profile.ParseKind("student")
	require.NoError(t, err)
	assert.Equal(t, profile.Student, kind)

	_, err = profile.ParseKind("janitor")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
