package queries

var (
	BuildCoursesWithoutStudentsSQL = buildCoursesWithoutStudentsSQL
	BuildOrphanProfilesSQL         = buildOrphanProfilesSQL
)
