package studentrepo_test

import (
	"context"
	"testing"

	"school/internal/adapters/out/postgres/courserepo"
	"school/internal/adapters/out/postgres/dberr"
	"school/internal/adapters/out/postgres/grouprepo"
	"school/internal/adapters/out/postgres/pgtest"
	"school/internal/adapters/out/postgres/studentrepo"
	"school/internal/core/domain/model/course"
	"school/internal/core/domain/model/group"
	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/student"
	"school/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// StudentRepositoryIntegrationTestSuite verifies students, enrolments and
// group membership against PostgreSQL.
type StudentRepositoryIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	students *studentrepo.GormStudentRepository
	courses  *courserepo.GormCourseRepository
	groups   *grouprepo.GormStudentsGroupRepository
}

func TestStudentRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(StudentRepositoryIntegrationTestSuite))
}

func (suite *StudentRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.students = studentrepo.NewGormStudentRepository(database.DB)
	suite.courses = courserepo.NewGormCourseRepository(database.DB)
	suite.groups = grouprepo.NewGormStudentsGroupRepository(database.DB)
}

func (suite *StudentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *StudentRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *StudentRepositoryIntegrationTestSuite) saveCourse(name string) *course.Course {
	c, err := course.NewCourse(kernel.NoID, name, "")
	suite.Require().NoError(err)
	saved, err := suite.courses.Save(suite.T().Context(), c)
	suite.Require().NoError(err)
	return saved
}

func (suite *StudentRepositoryIntegrationTestSuite) saveGroup(name string) *group.StudentsGroup {
	g, err := group.NewStudentsGroup(kernel.NoID, name)
	suite.Require().NoError(err)
	saved, err := suite.groups.Save(suite.T().Context(), g)
	suite.Require().NoError(err)
	return saved
}

func (suite *StudentRepositoryIntegrationTestSuite) newStudent(id, groupID kernel.ID, courseIDs ...kernel.ID) *student.Student {
	s, err := student.NewStudent(id, kernel.NoID, "Grace", "Hopper", kernel.Female, groupID, courseIDs)
	suite.Require().NoError(err)
	return s
}

func (suite *StudentRepositoryIntegrationTestSuite) TestSave_WithEnrolments() {
	ctx := suite.T().Context()
	algebra := suite.saveCourse("Algebra")
	physics := suite.saveCourse("Physics")
	class := suite.saveGroup("10-A")

	saved, err := suite.students.Save(ctx, suite.newStudent(kernel.NoID, class.ID(), physics.ID(), algebra.ID()))
	suite.Require().NoError(err)

	found, err := suite.students.FindByID(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.Equal([]kernel.ID{algebra.ID(), physics.ID()}, found.CourseIDs())
	suite.Equal(class.ID(), found.GroupID())
	suite.Equal(kernel.Female, found.Gender())

	count, err := suite.students.CountByCourse(ctx, algebra.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	count, err = suite.students.CountByGroup(ctx, class.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *StudentRepositoryIntegrationTestSuite) TestSave_ReplacesEnrolments() {
	ctx := suite.T().Context()
	algebra := suite.saveCourse("Algebra")
	physics := suite.saveCourse("Physics")

	saved, err := suite.students.Save(ctx, suite.newStudent(kernel.NoID, kernel.NoID, algebra.ID()))
	suite.Require().NoError(err)

	_, err = suite.students.Save(ctx, suite.newStudent(saved.ID(), kernel.NoID, physics.ID()))
	suite.Require().NoError(err)

	found, err := suite.students.FindByID(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.Equal([]kernel.ID{physics.ID()}, found.CourseIDs())

	count, err := suite.students.CountByCourse(ctx, algebra.ID())
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *StudentRepositoryIntegrationTestSuite) TestSave_UnknownCourseIsRejected() {
	_, err := suite.students.Save(suite.T().Context(), suite.newStudent(kernel.NoID, kernel.NoID, kernel.ID(404)))

	suite.Require().ErrorIs(err, errs.ErrBusinessRuleViolated)
}

func (suite *StudentRepositoryIntegrationTestSuite) TestDeleteAndRestore() {
	ctx := suite.T().Context()
	algebra := suite.saveCourse("Algebra")
	saved, err := suite.students.Save(ctx, suite.newStudent(kernel.NoID, kernel.NoID, algebra.ID()))
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.courses.Delete(ctx, algebra.ID()), dberr.ErrEntityIsReferenced)

	suite.Require().NoError(suite.students.Delete(ctx, saved.ID()))
	_, err = suite.students.FindByID(ctx, saved.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(suite.students.Restore(ctx, saved))
	found, err := suite.students.FindByID(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.Equal([]kernel.ID{algebra.ID()}, found.CourseIDs())
}
