package service_test

import (
	"context"
	"errors"
	"testing"

	"driver-planning-backend/internal/cache"
	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"
	apperrors "driver-planning-backend/internal/errors"
	"driver-planning-backend/internal/recurrence"
	"driver-planning-backend/internal/service"
	"driver-planning-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

// PlanningScenarioTestSuite runs planning mutations end to end against the in-memory store
type PlanningScenarioTestSuite struct {
	suite.Suite
	ctx         context.Context
	store       *testutils.MemoryStore
	cache       *cache.MemoryCache
	recurrences *service.RecurrenceService
	reconciler  *service.ReconcilerService
	plannings   *service.PlanningService
}

func (suite *PlanningScenarioTestSuite) SetupTest() {
	suite.setup("15/10/2025")
}

func (suite *PlanningScenarioTestSuite) setup(today string) {
	suite.ctx = context.Background()
	suite.store = testutils.NewMemoryStore()
	suite.cache = cache.NewMemoryCache()
	clock := calendar.FixedClock(d(today))

	suite.recurrences = service.NewRecurrenceService(
		suite.store.Recurrences(),
		suite.store.ExcludedDays(),
		suite.store.Plannings(),
		clock,
		nil,
	)
	suite.reconciler = service.NewReconcilerService(
		suite.store.Recurrences(),
		suite.store.Plannings(),
		suite.recurrences,
		nil,
	)
	suite.plannings = service.NewPlanningService(
		suite.store.Plannings(),
		suite.store.Recurrences(),
		suite.store.Drivers(),
		suite.recurrences,
		suite.cache,
		clock,
		validator.New(),
		nil,
	)
}

func (suite *PlanningScenarioTestSuite) addSeries(date string, days ...int) service.AddedPlanning {
	result := suite.plannings.AddPlanning(suite.ctx, []service.CreatePlanningRequest{{
		DriverID:   1,
		Date:       d(date),
		ClientName: "M. Martin",
		StartTime:  "09:00",
		Frequency:  recurrence.Pattern(days),
	}})
	suite.Require().Empty(result.Failed)
	suite.Require().Len(result.Success, 1)
	return result.Success[0]
}

func (suite *PlanningScenarioTestSuite) planningOn(recurrenceID uint, date string) models.Planning {
	p, err := suite.store.Plannings().GetByRecurrenceIDAndDate(suite.ctx, recurrenceID, d(date))
	suite.Require().NoError(err)
	return *p
}

func (suite *PlanningScenarioTestSuite) modifyRequest(p models.Planning, days ...int) *service.ModifyPlanningRequest {
	return &service.ModifyPlanningRequest{
		ID:         p.ID,
		DriverID:   p.DriverID,
		ClientName: p.ClientName,
		StartTime:  p.StartTime,
		Frequency:  recurrence.Pattern(days),
	}
}

func (suite *PlanningScenarioTestSuite) reconcileUnchanged() {
	report, err := suite.reconciler.Reconcile(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(report.Repaired)
	suite.Empty(report.Deleted)
	suite.Zero(report.Inserted)
}

func (suite *PlanningScenarioTestSuite) TestAddSeries() {
	added := suite.addSeries("15/10/2025", 1, 2, 3)

	suite.Require().NotNil(added.RecurrenceID)
	suite.Len(added.PlanningIDs, 12)
	rec, ok := suite.store.Recurrence(*added.RecurrenceID)
	suite.Require().True(ok)
	suite.Equal("15/10/2025", rec.StartDate.String())
	suite.Equal("20/10/2025", rec.NextDay.String())
	suite.Equal("11/11/2025", suite.store.PlanningDates(*added.RecurrenceID)[11].String())

	suite.reconcileUnchanged()
}

func (suite *PlanningScenarioTestSuite) TestAddSeriesOffPattern() {
	added := suite.addSeries("16/10/2025", 1)

	suite.Equal([]string{"16/10/2025", "20/10/2025", "27/10/2025", "03/11/2025", "10/11/2025"},
		calendar.Strings(suite.store.PlanningDates(*added.RecurrenceID)))

	suite.reconcileUnchanged()
}

func (suite *PlanningScenarioTestSuite) TestAddPlanningReportsFailedItems() {
	suite.store.FailCreateBatch = errors.New("disk full")

	result := suite.plannings.AddPlanning(suite.ctx, []service.CreatePlanningRequest{
		{DriverID: 1, Date: d("15/10/2025"), Frequency: recurrence.Pattern{1, 2, 3}},
		{DriverID: 2, Date: d("16/10/2025")},
		{DriverID: 0, Date: d("16/10/2025")},
	})

	suite.Require().Len(result.Success, 1)
	suite.Len(result.Success[0].PlanningIDs, 1)
	suite.Require().Len(result.Failed, 2)
	suite.Len(result.Failed[0].Dates, 12)
	suite.Contains(result.Failed[0].Error, "disk full")
	suite.Equal([]string{"16/10/2025"}, calendar.Strings(result.Failed[1].Dates))
	suite.Zero(suite.store.RecurrenceCount())
}

func (suite *PlanningScenarioTestSuite) TestAddSeriesAtTheEndOfTheCalendar() {
	result := suite.plannings.AddPlanning(suite.ctx, []service.CreatePlanningRequest{
		{DriverID: 1, Date: d("27/12/9999"), Frequency: recurrence.Pattern{1}},
		{DriverID: 1, Date: d("15/10/2025"), Frequency: recurrence.Pattern{3}},
	})

	suite.Require().Len(result.Failed, 1)
	suite.Equal([]string{"27/12/9999"}, calendar.Strings(result.Failed[0].Dates))
	suite.Contains(result.Failed[0].Error, "leaves no room")
	suite.Require().Len(result.Success, 1)
	suite.Len(result.Success[0].PlanningIDs, 4)
	suite.Equal(1, suite.store.RecurrenceCount())
}

func (suite *PlanningScenarioTestSuite) TestAdvanceIsolatesSeriesWithoutReachableAnchor() {
	suite.setup("15/10/2026")
	stale := suite.addSeries("15/10/2025", 3)
	healthy := suite.addSeries("08/10/2026", 1, 2, 3)

	report, err := suite.recurrences.AdvanceIfExpired(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(2, report.Checked)
	suite.Require().Len(report.Failures, 1)
	suite.Equal(*stale.RecurrenceID, report.Failures[0].RecurrenceID)
	suite.True(errors.Is(report.Failures[0].Cause(), apperrors.ErrNoSuitableAnchorFound))
	suite.Equal([]uint{*healthy.RecurrenceID}, report.Advanced)

	rec, ok := suite.store.Recurrence(*healthy.RecurrenceID)
	suite.Require().True(ok)
	suite.Equal("19/10/2026", rec.NextDay.String())
	rec, ok = suite.store.Recurrence(*stale.RecurrenceID)
	suite.Require().True(ok)
	suite.Equal("22/10/2025", rec.NextDay.String())
}

func (suite *PlanningScenarioTestSuite) TestDeleteOccurrenceIsNotReinserted() {
	added := suite.addSeries("15/10/2025", 1, 2, 3)
	recID := *added.RecurrenceID
	target := suite.planningOn(recID, "21/10/2025")

	suite.Require().NoError(suite.plannings.DeletePlanning(suite.ctx, &service.DeletePlanningRequest{ID: target.ID}))

	suite.Len(suite.store.PlanningDates(recID), 11)
	suite.Equal([]string{"21/10/2025"}, calendar.Strings(suite.store.ExcludedDates(recID)))
	suite.reconcileUnchanged()
	suite.Len(suite.store.PlanningDates(recID), 11)
}

func (suite *PlanningScenarioTestSuite) TestDeleteAnchorMovesSeries() {
	added := suite.addSeries("15/10/2025", 1, 2, 3)
	recID := *added.RecurrenceID
	anchor := suite.planningOn(recID, "15/10/2025")

	suite.Require().NoError(suite.plannings.DeletePlanning(suite.ctx, &service.DeletePlanningRequest{ID: anchor.ID}))

	rec, ok := suite.store.Recurrence(recID)
	suite.Require().True(ok)
	suite.Equal("20/10/2025", rec.StartDate.String())
	suite.Equal("21/10/2025", rec.NextDay.String())
	dates := suite.store.PlanningDates(recID)
	suite.Len(dates, 12)
	suite.False(calendar.Contains(dates, d("15/10/2025")))
	suite.True(calendar.Contains(dates, d("12/11/2025")))

	suite.reconcileUnchanged()
}

func (suite *PlanningScenarioTestSuite) TestDeleteWholeSeries() {
	added := suite.addSeries("15/10/2025", 1, 2, 3)
	recID := *added.RecurrenceID
	suite.Require().NoError(suite.recurrences.CreateExcludeDay(suite.ctx, recID, d("21/10/2025")))

	err := suite.plannings.DeletePlanning(suite.ctx, &service.DeletePlanningRequest{ID: added.PlanningIDs[3], DeleteRecurrence: true})

	suite.Require().NoError(err)
	suite.Empty(suite.store.AllPlannings())
	suite.Zero(suite.store.RecurrenceCount())
	suite.Empty(suite.store.ExcludedDates(recID))
}

func (suite *PlanningScenarioTestSuite) TestDeleteWithDanglingRecurrence() {
	missing := uint(404)
	p := testutils.NewPlanningFactory().WithRecurrence(missing, d("15/10/2025"))
	suite.Require().NoError(suite.store.Plannings().Create(suite.ctx, p))

	suite.Require().NoError(suite.plannings.DeletePlanning(suite.ctx, &service.DeletePlanningRequest{ID: p.ID}))

	suite.Empty(suite.store.AllPlannings())
}

func (suite *PlanningScenarioTestSuite) TestDeleteUnknownPlanning() {
	err := suite.plannings.DeletePlanning(suite.ctx, &service.DeletePlanningRequest{ID: 77})

	suite.True(errors.Is(err, apperrors.ErrPlanningNotFound))
}

func (suite *PlanningScenarioTestSuite) TestMoveOccurrenceOutOfSeries() {
	added := suite.addSeries("15/10/2025", 1, 2, 3)
	recID := *added.RecurrenceID
	item := suite.planningOn(recID, "22/10/2025")

	req := suite.modifyRequest(item, 1, 2, 3)
	moved := d("24/10/2025")
	req.NewDate = &moved
	outcome, err := suite.plannings.ModifyPlanning(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal(service.ModifySucceeded, outcome)
	stored, ok := suite.store.Planning(item.ID)
	suite.Require().True(ok)
	suite.Equal("24/10/2025", stored.Date.String())
	suite.Nil(stored.RecurrenceID)
	suite.Len(suite.store.PlanningDates(recID), 11)
	suite.Equal([]string{"22/10/2025"}, calendar.Strings(suite.store.ExcludedDates(recID)))

	suite.reconcileUnchanged()
}

func (suite *PlanningScenarioTestSuite) TestClearPatternDissolvesSeries() {
	added := suite.addSeries("15/10/2025", 1, 2, 3)
	recID := *added.RecurrenceID
	item := suite.planningOn(recID, "22/10/2025")

	_, err := suite.plannings.ModifyPlanning(suite.ctx, suite.modifyRequest(item))

	suite.Require().NoError(err)
	all := suite.store.AllPlannings()
	suite.Len(all, 4)
	for _, p := range all {
		suite.Nil(p.RecurrenceID)
		suite.False(p.Date.After(d("22/10/2025")))
	}
	suite.Zero(suite.store.RecurrenceCount())
}

func (suite *PlanningScenarioTestSuite) TestSetPatternOnSinglePlanning() {
	result := suite.plannings.AddPlanning(suite.ctx, []service.CreatePlanningRequest{{DriverID: 1, Date: d("15/10/2025"), ClientName: "Mme Petit"}})
	suite.Require().Len(result.Success, 1)
	item, ok := suite.store.Planning(result.Success[0].PlanningIDs[0])
	suite.Require().True(ok)

	_, err := suite.plannings.ModifyPlanning(suite.ctx, suite.modifyRequest(item, 3))

	suite.Require().NoError(err)
	stored, _ := suite.store.Planning(item.ID)
	suite.Require().NotNil(stored.RecurrenceID)
	suite.Equal([]string{"15/10/2025", "22/10/2025", "29/10/2025", "05/11/2025"},
		calendar.Strings(suite.store.PlanningDates(*stored.RecurrenceID)))
	for _, p := range suite.store.AllPlannings() {
		suite.Equal("Mme Petit", p.ClientName)
	}

	suite.reconcileUnchanged()
}

func (suite *PlanningScenarioTestSuite) TestChangePatternInPlace() {
	added := suite.addSeries("15/10/2025", 1, 2, 3)
	recID := *added.RecurrenceID
	item := suite.planningOn(recID, "22/10/2025")

	_, err := suite.plannings.ModifyPlanning(suite.ctx, suite.modifyRequest(item, 3))

	suite.Require().NoError(err)
	suite.Equal([]string{"15/10/2025", "22/10/2025", "29/10/2025", "05/11/2025"},
		calendar.Strings(suite.store.PlanningDates(recID)))
	rec, _ := suite.store.Recurrence(recID)
	suite.Equal(recurrence.Pattern{3}, rec.Frequency)
	suite.Equal("22/10/2025", rec.NextDay.String())

	suite.reconcileUnchanged()
}

func (suite *PlanningScenarioTestSuite) TestMoveAnchorWithNewPattern() {
	added := suite.addSeries("15/10/2025", 1, 2, 3)
	recID := *added.RecurrenceID
	anchor := suite.planningOn(recID, "15/10/2025")

	req := suite.modifyRequest(anchor, 4)
	moved := d("16/10/2025")
	req.NewDate = &moved
	_, err := suite.plannings.ModifyPlanning(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal([]string{"16/10/2025", "23/10/2025", "30/10/2025", "06/11/2025"},
		calendar.Strings(suite.store.PlanningDates(recID)))
	stored, _ := suite.store.Planning(anchor.ID)
	suite.Equal("16/10/2025", stored.Date.String())
	rec, _ := suite.store.Recurrence(recID)
	suite.Equal("16/10/2025", rec.StartDate.String())

	suite.reconcileUnchanged()
}

func (suite *PlanningScenarioTestSuite) TestMoveAnchorOntoNextDay() {
	added := suite.addSeries("15/10/2025", 3)
	recID := *added.RecurrenceID
	anchor := suite.planningOn(recID, "15/10/2025")
	sibling := suite.planningOn(recID, "22/10/2025")

	req := suite.modifyRequest(anchor, 3, 4)
	moved := d("22/10/2025")
	req.NewDate = &moved
	_, err := suite.plannings.ModifyPlanning(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal([]string{
		"22/10/2025", "23/10/2025", "29/10/2025", "30/10/2025",
		"05/11/2025", "06/11/2025", "12/11/2025", "13/11/2025",
	}, calendar.Strings(suite.store.PlanningDates(recID)))
	stored, _ := suite.store.Planning(anchor.ID)
	suite.Equal("22/10/2025", stored.Date.String())
	_, ok := suite.store.Planning(sibling.ID)
	suite.False(ok)

	suite.reconcileUnchanged()
}

func (suite *PlanningScenarioTestSuite) TestMoveOccurrenceOntoSiblingWhileWideningPattern() {
	added := suite.addSeries("15/10/2025", 1, 2, 3)
	recID := *added.RecurrenceID
	item := suite.planningOn(recID, "22/10/2025")

	req := suite.modifyRequest(item, 1, 2, 3, 4)
	moved := d("27/10/2025")
	req.NewDate = &moved
	_, err := suite.plannings.ModifyPlanning(suite.ctx, req)

	suite.Require().NoError(err)
	on27 := 0
	for _, date := range suite.store.PlanningDates(recID) {
		if date.Equal(moved) {
			on27++
		}
	}
	suite.Equal(1, on27)
	stored, _ := suite.store.Planning(item.ID)
	suite.Equal("27/10/2025", stored.Date.String())
	suite.True(calendar.Contains(suite.store.PlanningDates(recID), d("23/10/2025")))
}

func (suite *PlanningScenarioTestSuite) TestModifyFieldsOnly() {
	added := suite.addSeries("15/10/2025", 1, 2, 3)
	item := suite.planningOn(*added.RecurrenceID, "20/10/2025")

	req := suite.modifyRequest(item, 1, 2, 3)
	req.Destination = "Gare de Lyon"
	_, err := suite.plannings.ModifyPlanning(suite.ctx, req)

	suite.Require().NoError(err)
	stored, _ := suite.store.Planning(item.ID)
	suite.Equal("Gare de Lyon", stored.Destination)
	suite.Len(suite.store.PlanningDates(*added.RecurrenceID), 12)
}

func (suite *PlanningScenarioTestSuite) TestModifyInvalidRequest() {
	outcome, err := suite.plannings.ModifyPlanning(suite.ctx, &service.ModifyPlanningRequest{ID: 1})

	suite.Error(err)
	suite.Equal(service.ModifyFailed, outcome)
}

func (suite *PlanningScenarioTestSuite) TestMutationsInvalidateTodayCache() {
	added := suite.addSeries("15/10/2025", 1, 2, 3)

	today, err := suite.plannings.GetTodayPlanning(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(today.Plannings, 1)
	suite.Equal(recurrence.Pattern{1, 2, 3}, today.Plannings[0].Frequency)
	suite.True(suite.cache.Has(cache.TodayPlanningKey))

	item := suite.planningOn(*added.RecurrenceID, "20/10/2025")
	_, err = suite.plannings.ModifyPlanning(suite.ctx, suite.modifyRequest(item, 1, 2, 3))
	suite.Require().NoError(err)
	suite.False(suite.cache.Has(cache.TodayPlanningKey))

	_, err = suite.plannings.GetTodayPlanning(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.plannings.DeletePlanning(suite.ctx, &service.DeletePlanningRequest{ID: item.ID}))
	suite.False(suite.cache.Has(cache.TodayPlanningKey))

	_, err = suite.plannings.GetTodayPlanning(suite.ctx)
	suite.Require().NoError(err)
	suite.addSeries("16/10/2025", 4)
	suite.False(suite.cache.Has(cache.TodayPlanningKey))

	_, err = suite.plannings.GetTodayPlanning(suite.ctx)
	suite.Require().NoError(err)
	_ = suite.plannings.DeletePlanning(suite.ctx, &service.DeletePlanningRequest{ID: 9999})
	suite.False(suite.cache.Has(cache.TodayPlanningKey))
}

func (suite *PlanningScenarioTestSuite) TestWeekPlanning() {
	suite.addSeries("15/10/2025", 1, 2, 3)

	week, err := suite.plannings.GetWeekPlanning(suite.ctx, calendar.Date{})

	suite.Require().NoError(err)
	suite.Require().Len(week, 7)
	suite.Equal("15/10/2025", week[0].Date.String())
	counts := make([]int, 0, len(week))
	for _, day := range week {
		counts = append(counts, len(day.Plannings))
	}
	suite.Equal([]int{1, 0, 0, 0, 0, 1, 1}, counts)
}

func (suite *PlanningScenarioTestSuite) TestAdvanceExpiredSeries() {
	suite.setup("22/10/2025")
	added := suite.addSeries("15/10/2025", 1, 2, 3)
	recID := *added.RecurrenceID

	report, err := suite.recurrences.AdvanceIfExpired(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal([]uint{recID}, report.Advanced)
	suite.Equal(3, report.Created)
	rec, _ := suite.store.Recurrence(recID)
	suite.Equal("22/10/2025", rec.StartDate.String())
	suite.Equal("27/10/2025", rec.NextDay.String())
	dates := suite.store.PlanningDates(recID)
	suite.Len(dates, 15)
	suite.True(calendar.Contains(dates, d("15/10/2025")))
	suite.True(calendar.Contains(dates, d("18/11/2025")))

	suite.reconcileUnchanged()
}

func (suite *PlanningScenarioTestSuite) TestReconcileRepairsAndRemovesOrphans() {
	added := suite.addSeries("15/10/2025", 1, 2, 3)
	recID := *added.RecurrenceID
	lost := suite.planningOn(recID, "28/10/2025")
	suite.Require().NoError(suite.store.Plannings().Delete(suite.ctx, lost.ID))

	orphan := testutils.NewRecurrenceFactory().Create()
	suite.Require().NoError(suite.store.Recurrences().Create(suite.ctx, orphan))

	report, err := suite.reconciler.Reconcile(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(2, report.Checked)
	suite.Equal([]uint{recID}, report.Repaired)
	suite.Equal([]uint{orphan.ID}, report.Deleted)
	suite.Equal(1, report.Inserted)
	suite.True(calendar.Contains(suite.store.PlanningDates(recID), d("28/10/2025")))
	_, ok := suite.store.Recurrence(orphan.ID)
	suite.False(ok)
}

func (suite *PlanningScenarioTestSuite) TestReconcileRestoresMissingAnchor() {
	added := suite.addSeries("16/10/2025", 1)
	recID := *added.RecurrenceID
	anchor := suite.planningOn(recID, "16/10/2025")
	suite.Require().NoError(suite.store.Plannings().Delete(suite.ctx, anchor.ID))

	report, err := suite.reconciler.Reconcile(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(1, report.Inserted)
	suite.Equal("16/10/2025", suite.store.PlanningDates(recID)[0].String())
}

// TestPlanningScenarioTestSuite runs the test suite
func TestPlanningScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(PlanningScenarioTestSuite))
}
