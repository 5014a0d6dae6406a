package profilerepo_test

import (
	"context"
	"testing"

	"school/internal/adapters/out/postgres/dberr"
	"school/internal/adapters/out/postgres/personrepo"
	"school/internal/adapters/out/postgres/pgtest"
	"school/internal/adapters/out/postgres/profilerepo"
	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/person"
	"school/internal/core/domain/model/profile"
	"school/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// ProfileRepositoryIntegrationTestSuite verifies profile persistence and
// the references held by authority persons.
type ProfileRepositoryIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	profiles *profilerepo.GormProfileRepository
	persons  *personrepo.GormAuthorityPersonRepository
}

func TestProfileRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ProfileRepositoryIntegrationTestSuite))
}

func (suite *ProfileRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.profiles = profilerepo.NewGormProfileRepository(database.DB)
	suite.persons = personrepo.NewGormAuthorityPersonRepository(database.DB)
}

func (suite *ProfileRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *ProfileRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ProfileRepositoryIntegrationTestSuite) TestSaveAndFind() {
	ctx := suite.T().Context()
	p, err := profile.NewProfile(kernel.NoID, profile.Principal, "dean@school.edu", "+100", "Main campus", "")
	suite.Require().NoError(err)

	saved, err := suite.profiles.Save(ctx, p)
	suite.Require().NoError(err)

	found, err := suite.profiles.FindByID(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.True(found.IsEqual(saved))
	suite.Equal(profile.Principal, found.Kind())
	suite.Equal("dean@school.edu", found.Email())
}

func (suite *ProfileRepositoryIntegrationTestSuite) TestDelete_ReferencedProfileIsKept() {
	ctx := suite.T().Context()
	p, err := profile.NewProfile(kernel.NoID, profile.Principal, "", "", "", "")
	suite.Require().NoError(err)
	savedProfile, err := suite.profiles.Save(ctx, p)
	suite.Require().NoError(err)

	ap, err := person.NewAuthorityPerson(kernel.NoID, savedProfile.ID(), "Dr.", "Ada", "Lovelace", kernel.Female)
	suite.Require().NoError(err)
	savedPerson, err := suite.persons.Save(ctx, ap)
	suite.Require().NoError(err)
	suite.Equal(savedProfile.ID(), savedPerson.ProfileID())

	references, err := suite.profiles.CountReferences(ctx, savedProfile.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), references)

	err = suite.profiles.Delete(ctx, savedProfile.ID())

	suite.Require().ErrorIs(err, dberr.ErrEntityIsReferenced)
	suite.Require().ErrorIs(err, errs.ErrBusinessRuleViolated)
	_, err = suite.profiles.FindByID(ctx, savedProfile.ID())
	suite.Require().NoError(err)
}

func (suite *ProfileRepositoryIntegrationTestSuite) TestCountReferences_OrphanProfile() {
	ctx := suite.T().Context()
	p, err := profile.NewProfile(kernel.NoID, profile.Student, "", "", "", "")
	suite.Require().NoError(err)
	saved, err := suite.profiles.Save(ctx, p)
	suite.Require().NoError(err)

	references, err := suite.profiles.CountReferences(ctx, saved.ID())

	suite.Require().NoError(err)
	suite.Zero(references)
}

func (suite *ProfileRepositoryIntegrationTestSuite) TestPerson_ProfileIsUnique() {
	ctx := suite.T().Context()
	p, err := profile.NewProfile(kernel.NoID, profile.Principal, "", "", "", "")
	suite.Require().NoError(err)
	savedProfile, err := suite.profiles.Save(ctx, p)
	suite.Require().NoError(err)

	first, err := person.NewAuthorityPerson(kernel.NoID, savedProfile.ID(), "", "Ada", "Lovelace", kernel.Female)
	suite.Require().NoError(err)
	_, err = suite.persons.Save(ctx, first)
	suite.Require().NoError(err)

	second, err := person.NewAuthorityPerson(kernel.NoID, savedProfile.ID(), "", "Alan", "Turing", kernel.Male)
	suite.Require().NoError(err)
	_, err = suite.persons.Save(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}
