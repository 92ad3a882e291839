package service_test

import (
	"context"
	"errors"
	"testing"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"
	apperrors "driver-planning-backend/internal/errors"
	"driver-planning-backend/internal/mocks"
	"driver-planning-backend/internal/recurrence"
	"driver-planning-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RecurrenceServiceTestSuite defines the test suite for RecurrenceService
type RecurrenceServiceTestSuite struct {
	suite.Suite
	ctx               context.Context
	ctrl              *gomock.Controller
	mockRecurrences   *mocks.MockRecurrenceRepositoryInterface
	mockExcludedDays  *mocks.MockExcludedDayRepositoryInterface
	mockPlannings     *mocks.MockPlanningRepositoryInterface
	recurrenceService *service.RecurrenceService
}

func d(s string) calendar.Date {
	return calendar.MustParse(s)
}

// SetupTest sets up the test suite
func (suite *RecurrenceServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRecurrences = mocks.NewMockRecurrenceRepositoryInterface(suite.ctrl)
	suite.mockExcludedDays = mocks.NewMockExcludedDayRepositoryInterface(suite.ctrl)
	suite.mockPlannings = mocks.NewMockPlanningRepositoryInterface(suite.ctrl)
	suite.recurrenceService = service.NewRecurrenceService(
		suite.mockRecurrences,
		suite.mockExcludedDays,
		suite.mockPlannings,
		calendar.FixedClock(d("15/10/2025")),
		nil,
	)
}

// TearDownTest cleans up after each test
func (suite *RecurrenceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RecurrenceServiceTestSuite) noExclusions(id uint) {
	suite.mockExcludedDays.EXPECT().
		GetByRecurrenceID(gomock.Any(), id).
		Return(nil, gorm.ErrRecordNotFound).
		AnyTimes()
}

func (suite *RecurrenceServiceTestSuite) exclusions(id uint, dates ...calendar.Date) {
	raw, err := models.EncodeDates(dates)
	suite.Require().NoError(err)
	suite.mockExcludedDays.EXPECT().
		GetByRecurrenceID(gomock.Any(), id).
		Return(&models.ExcludedDays{RecurrenceID: id, Dates: raw}, nil).
		AnyTimes()
}

func (suite *RecurrenceServiceTestSuite) TestCreateRecurrence() {
	suite.Run("anchor on the pattern", func() {
		var stored *models.Recurrence
		suite.mockRecurrences.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *models.Recurrence) error {
				rec.ID = 5
				stored = rec
				return nil
			})

		creation, err := suite.recurrenceService.CreateRecurrence(suite.ctx, d("15/10/2025"), recurrence.WeekdaySet{1, 2, 3})

		suite.Require().NoError(err)
		suite.Equal(uint(5), creation.RecurrenceID)
		suite.Len(creation.Occurrences, 12)
		suite.Equal("20/10/2025", creation.NextDay.String())
		suite.Equal(recurrence.Pattern{1, 2, 3}, stored.Frequency)
		suite.Equal("15/10/2025", stored.StartDate.String())
		suite.Equal("20/10/2025", stored.NextDay.String())
	})

	suite.Run("anchor off the pattern", func() {
		suite.mockRecurrences.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		creation, err := suite.recurrenceService.CreateRecurrence(suite.ctx, d("16/10/2025"), recurrence.WeekdaySet{1})

		suite.Require().NoError(err)
		suite.Equal("20/10/2025", creation.Occurrences[0].String())
		suite.Equal("20/10/2025", creation.NextDay.String())
	})

	suite.Run("empty pattern", func() {
		_, err := suite.recurrenceService.CreateRecurrence(suite.ctx, d("15/10/2025"), recurrence.WeekdaySet{})
		suite.True(errors.Is(err, apperrors.ErrInvalidPattern))
	})

	suite.Run("store failure", func() {
		suite.mockRecurrences.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		_, err := suite.recurrenceService.CreateRecurrence(suite.ctx, d("15/10/2025"), recurrence.WeekdaySet{1})
		suite.True(apperrors.IsStore(err))
	})
}

func (suite *RecurrenceServiceTestSuite) TestModifyRecurrenceNarrowsPattern() {
	rec := &models.Recurrence{BaseModel: models.BaseModel{ID: 3}, Frequency: recurrence.Pattern{1, 2, 3}, StartDate: d("15/10/2025"), NextDay: d("20/10/2025")}
	suite.mockRecurrences.EXPECT().GetByID(gomock.Any(), uint(3)).Return(rec, nil)
	suite.noExclusions(3)

	var saved *models.Recurrence
	suite.mockRecurrences.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Recurrence) error {
			saved = r
			return nil
		})

	change, err := suite.recurrenceService.ModifyRecurrence(suite.ctx, 3, d("15/10/2025"), recurrence.WeekdaySet{3})

	suite.Require().NoError(err)
	suite.Empty(change.ToAdd)
	suite.Equal([]string{
		"20/10/2025", "21/10/2025", "27/10/2025", "28/10/2025",
		"03/11/2025", "04/11/2025", "10/11/2025", "11/11/2025",
	}, calendar.Strings(change.ToDelete))
	suite.Equal("22/10/2025", change.NextDay.String())
	suite.Equal(recurrence.Pattern{3}, saved.Frequency)
	suite.Equal("22/10/2025", saved.NextDay.String())
}

func (suite *RecurrenceServiceTestSuite) TestModifyRecurrenceWidensPatternAroundExclusions() {
	rec := &models.Recurrence{BaseModel: models.BaseModel{ID: 4}, Frequency: recurrence.Pattern{1, 2, 3}, StartDate: d("15/10/2025"), NextDay: d("20/10/2025")}
	suite.mockRecurrences.EXPECT().GetByID(gomock.Any(), uint(4)).Return(rec, nil)
	suite.exclusions(4, d("23/10/2025"))
	suite.mockRecurrences.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	change, err := suite.recurrenceService.ModifyRecurrence(suite.ctx, 4, d("15/10/2025"), recurrence.WeekdaySet{1, 2, 3, 4})

	suite.Require().NoError(err)
	suite.Equal([]string{"16/10/2025", "30/10/2025", "06/11/2025"}, calendar.Strings(change.ToAdd))
	suite.Empty(change.ToDelete)
	suite.Equal("16/10/2025", change.NextDay.String())
}

func (suite *RecurrenceServiceTestSuite) TestModifyRecurrenceEmptyPattern() {
	rec := &models.Recurrence{BaseModel: models.BaseModel{ID: 6}, Frequency: recurrence.Pattern{1, 2, 3}, StartDate: d("15/10/2025"), NextDay: d("20/10/2025")}
	suite.mockRecurrences.EXPECT().GetByID(gomock.Any(), uint(6)).Return(rec, nil)
	suite.noExclusions(6)
	suite.mockRecurrences.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	change, err := suite.recurrenceService.ModifyRecurrence(suite.ctx, 6, d("15/10/2025"), recurrence.WeekdaySet{})

	suite.Require().NoError(err)
	suite.Empty(change.ToAdd)
	suite.Len(change.ToDelete, 12)
	suite.True(change.NextDay.IsZero())
}

func (suite *RecurrenceServiceTestSuite) TestModifyRecurrenceNotFound() {
	suite.mockRecurrences.EXPECT().GetByID(gomock.Any(), uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.recurrenceService.ModifyRecurrence(suite.ctx, 9, d("15/10/2025"), recurrence.WeekdaySet{1})

	suite.True(errors.Is(err, apperrors.ErrRecurrenceNotFound))
}

func (suite *RecurrenceServiceTestSuite) TestCreateExcludeDay() {
	suite.Run("creates the exclusion set", func() {
		suite.mockExcludedDays.EXPECT().GetByRecurrenceID(gomock.Any(), uint(1)).Return(nil, gorm.ErrRecordNotFound)
		suite.mockExcludedDays.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *models.ExcludedDays) error {
				dates, err := e.DateList()
				suite.Require().NoError(err)
				suite.Equal([]string{"21/10/2025"}, calendar.Strings(dates))
				return nil
			})

		suite.NoError(suite.recurrenceService.CreateExcludeDay(suite.ctx, 1, d("21/10/2025")))
	})

	suite.Run("appends to the existing set", func() {
		raw, _ := models.EncodeDates([]calendar.Date{d("21/10/2025")})
		suite.mockExcludedDays.EXPECT().
			GetByRecurrenceID(gomock.Any(), uint(2)).
			Return(&models.ExcludedDays{RecurrenceID: 2, Dates: raw}, nil)
		suite.mockExcludedDays.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *models.ExcludedDays) error {
				dates, err := e.DateList()
				suite.Require().NoError(err)
				suite.Equal([]string{"21/10/2025", "22/10/2025"}, calendar.Strings(dates))
				return nil
			})

		suite.NoError(suite.recurrenceService.CreateExcludeDay(suite.ctx, 2, d("22/10/2025")))
	})

	suite.Run("already excluded", func() {
		raw, _ := models.EncodeDates([]calendar.Date{d("21/10/2025")})
		suite.mockExcludedDays.EXPECT().
			GetByRecurrenceID(gomock.Any(), uint(3)).
			Return(&models.ExcludedDays{RecurrenceID: 3, Dates: raw}, nil)

		suite.NoError(suite.recurrenceService.CreateExcludeDay(suite.ctx, 3, d("21/10/2025")))
	})
}

func (suite *RecurrenceServiceTestSuite) TestDeleteRecurrence() {
	gomock.InOrder(
		suite.mockExcludedDays.EXPECT().DeleteByRecurrenceID(gomock.Any(), uint(8)).Return(nil),
		suite.mockRecurrences.EXPECT().Delete(gomock.Any(), uint(8)).Return(nil),
	)

	suite.NoError(suite.recurrenceService.DeleteRecurrence(suite.ctx, 8))
}

func (suite *RecurrenceServiceTestSuite) TestAdvanceWithoutTemplateLeavesRecurrenceUntouched() {
	rec := models.Recurrence{BaseModel: models.BaseModel{ID: 2}, Frequency: recurrence.Pattern{1}, StartDate: d("06/10/2025"), NextDay: d("13/10/2025")}
	suite.mockRecurrences.EXPECT().GetStartedBefore(gomock.Any(), d("15/10/2025")).Return([]models.Recurrence{rec}, nil)
	suite.noExclusions(2)
	suite.mockPlannings.EXPECT().GetOneByRecurrenceID(gomock.Any(), uint(2)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRecurrences.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	report, err := suite.recurrenceService.AdvanceIfExpired(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(1, report.Checked)
	suite.Empty(report.Advanced)
	suite.Require().Len(report.Failures, 1)
	suite.True(errors.Is(report.Failures[0].Cause(), apperrors.ErrNoTemplateFound))
}

func (suite *RecurrenceServiceTestSuite) TestAdvanceListFailure() {
	suite.mockRecurrences.EXPECT().GetStartedBefore(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := suite.recurrenceService.AdvanceIfExpired(suite.ctx)

	suite.True(apperrors.IsStore(err))
}

// TestRecurrenceServiceTestSuite runs the test suite
func TestRecurrenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurrenceServiceTestSuite))
}
