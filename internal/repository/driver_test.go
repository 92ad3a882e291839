//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"
	"driver-planning-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// DriverRepositoryTestSuite tests the DriverRepository and the NoteRepository
type DriverRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	ctx           context.Context
	repo          *DriverRepository
	noteRepo      *NoteRepository
	factory       *testutils.DriverFactory
}

// SetupSuite runs before all tests in the suite
func (suite *DriverRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.ctx = context.Background()

	suite.repo = NewDriverRepository(suite.baseTestSuite.DB)
	suite.noteRepo = NewNoteRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewDriverFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *DriverRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *DriverRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *DriverRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating and reading back a driver
func (suite *DriverRepositoryTestSuite) TestCreate() {
	driver := suite.factory.Create()

	err := suite.repo.Create(suite.ctx, driver)

	suite.NoError(err)
	suite.NotZero(driver.ID)

	found, err := suite.repo.GetByName(suite.ctx, "Test Driver")
	suite.Require().NoError(err)
	suite.Equal(driver.ID, found.ID)
}

// TestCreateDuplicateName tests the unique name constraint
func (suite *DriverRepositoryTestSuite) TestCreateDuplicateName() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factory.WithName("Paul")))

	err := suite.repo.Create(suite.ctx, suite.factory.WithName("Paul"))

	suite.Error(err)
}

// TestGetAll tests drivers are listed by name
func (suite *DriverRepositoryTestSuite) TestGetAll() {
	for _, name := range []string{"Nadia", "Karim", "Paul"} {
		suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factory.WithName(name)))
	}

	drivers, err := suite.repo.GetAll(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(drivers, 3)
	suite.Equal("Karim", drivers[0].Name)
}

// TestUpdateAndDelete tests renaming then removing a driver
func (suite *DriverRepositoryTestSuite) TestUpdateAndDelete() {
	driver := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, driver))

	driver.Name = "Renamed"
	suite.Require().NoError(suite.repo.Update(suite.ctx, driver))
	found, err := suite.repo.GetByID(suite.ctx, driver.ID)
	suite.Require().NoError(err)
	suite.Equal("Renamed", found.Name)

	suite.Require().NoError(suite.repo.Delete(suite.ctx, driver.ID))
	_, err = suite.repo.GetByID(suite.ctx, driver.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestNoteUpsert tests a day note is created then replaced
func (suite *DriverRepositoryTestSuite) TestNoteUpsert() {
	day := calendar.MustParse("15/10/2025")

	suite.Require().NoError(suite.noteRepo.Upsert(suite.ctx, &models.Note{Date: day, Note: "first"}))
	suite.Require().NoError(suite.noteRepo.Upsert(suite.ctx, &models.Note{Date: day, Note: "second"}))
	suite.Require().NoError(suite.noteRepo.Upsert(suite.ctx, &models.Note{Date: calendar.MustParse("25/10/2025"), Note: "later"}))

	notes, err := suite.noteRepo.GetBetween(suite.ctx, calendar.MustParse("13/10/2025"), calendar.MustParse("19/10/2025"))
	suite.Require().NoError(err)
	suite.Require().Len(notes, 1)
	suite.Equal("second", notes[0].Note)
}

// TestDriverRepositoryTestSuite runs the test suite
func TestDriverRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryTestSuite))
}
