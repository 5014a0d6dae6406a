package queries_test

import (
	"testing"

	"school/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.GetCoursesWithoutStudentsQuery{}.Validate(),
		queries.ErrGetCoursesWithoutStudentsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetOrphanProfilesQuery{}.Validate(),
		queries.ErrGetOrphanProfilesQueryIsNotConstructed)

	require.NoError(t, queries.NewGetCoursesWithoutStudentsQuery(0).Validate())
	require.NoError(t, queries.NewGetOrphanProfilesQuery(10).Validate())
}

func TestBuildCoursesWithoutStudentsSQL(t *testing.T) {
	sql, err := queries.BuildCoursesWithoutStudentsSQL(5)
	require.NoError(t, err)

	assert.Contains(t, sql, `FROM "courses" AS "c"`)
	assert.Contains(t, sql, `NOT EXISTS (SELECT 1 FROM "student_courses" AS "sc"`)
	assert.Contains(t, sql, `ORDER BY "c"."name" ASC, "c"."id" ASC`)
	assert.Contains(t, sql, "LIMIT 5")
}

func TestBuildCoursesWithoutStudentsSQL_NoLimit(t *testing.T) {
	sql, err := queries.BuildCoursesWithoutStudentsSQL(0)
	require.NoError(t, err)

	assert.NotContains(t, sql, "LIMIT")
}

func TestBuildOrphanProfilesSQL(t *testing.T) {
	sql, err := queries.BuildOrphanProfilesSQL(0)
	require.NoError(t, err)

	assert.Contains(t, sql, `FROM "profiles" AS "p"`)
	assert.Contains(t, sql, `NOT EXISTS (SELECT 1 FROM "authority_persons" AS "o"`)
	assert.Contains(t, sql, `NOT EXISTS (SELECT 1 FROM "students" AS "o"`)
	assert.Contains(t, sql, `ORDER BY "p"."id" ASC`)
}
