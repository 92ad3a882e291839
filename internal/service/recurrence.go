package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"
	apperrors "driver-planning-backend/internal/errors"
	"driver-planning-backend/internal/logger"
	"driver-planning-backend/internal/metrics"
	"driver-planning-backend/internal/recurrence"
	"driver-planning-backend/internal/repository"

	"gorm.io/gorm"
)

// maxAnchorSearches bounds the forward search for a new anchor of an expired recurrence
const maxAnchorSearches = 10

// RecurrenceService owns the lifecycle of recurrence definitions and their exclusions
type RecurrenceService struct {
	recurrenceRepo repository.RecurrenceRepositoryInterface
	excludedRepo   repository.ExcludedDayRepositoryInterface
	planningRepo   repository.PlanningRepositoryInterface
	clock          calendar.Clock
	metrics        metrics.Recorder
}

var _ RecurrenceServiceInterface = (*RecurrenceService)(nil)

// NewRecurrenceService creates a new recurrence service
func NewRecurrenceService(
	recurrenceRepo repository.RecurrenceRepositoryInterface,
	excludedRepo repository.ExcludedDayRepositoryInterface,
	planningRepo repository.PlanningRepositoryInterface,
	clock calendar.Clock,
	recorder metrics.Recorder,
) *RecurrenceService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &RecurrenceService{
		recurrenceRepo: recurrenceRepo,
		excludedRepo:   excludedRepo,
		planningRepo:   planningRepo,
		clock:          clock,
		metrics:        recorder,
	}
}

// RecurrenceCreation is the outcome of CreateRecurrence
type RecurrenceCreation struct {
	RecurrenceID uint            `json:"recurrence_id"`
	Occurrences  []calendar.Date `json:"occurrences"`
	NextDay      calendar.Date   `json:"next_day"`
}

// RecurrenceChange is the outcome of ModifyRecurrence.
// ToAdd and ToDelete are the occurrence dates the caller has to materialize or remove.
type RecurrenceChange struct {
	RecurrenceID uint            `json:"recurrence_id"`
	ToAdd        []calendar.Date `json:"to_add"`
	ToDelete     []calendar.Date `json:"to_delete"`
	NextDay      calendar.Date   `json:"next_day"`
}

// RecurrenceFailure records why one recurrence could not be processed by a maintenance pass
type RecurrenceFailure struct {
	RecurrenceID uint   `json:"recurrence_id"`
	Error        string `json:"error"`
	err          error
}

// Cause returns the error that stopped the recurrence
func (f RecurrenceFailure) Cause() error {
	return f.err
}

// AdvanceReport summarizes an AdvanceIfExpired pass
type AdvanceReport struct {
	Checked  int                 `json:"checked"`
	Advanced []uint              `json:"advanced"`
	Created  int                 `json:"created"`
	Failures []RecurrenceFailure `json:"failures"`
}

// CreateRecurrence stores a new recurrence anchored on start and returns all its occurrences.
// The anchor is expected to be materialized by the caller, so when it is itself the first
// occurrence next_day is the second one.
func (s *RecurrenceService) CreateRecurrence(ctx context.Context, start calendar.Date, days recurrence.WeekdaySet) (*RecurrenceCreation, error) {
	if start.IsZero() {
		return nil, apperrors.NewValidationError("date", "is required")
	}
	set, err := recurrence.NewWeekdaySet(days)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: empty weekday set", apperrors.ErrInvalidPattern)
	}

	occurrences := recurrence.Generate(start, set)
	if len(occurrences) < recurrence.WeeksAhead*len(set) {
		return nil, apperrors.NewValidationError("date", fmt.Sprintf("%s leaves no room for %d weeks of occurrences", start, recurrence.WeeksAhead))
	}
	nextDay := occurrences[0]
	if occurrences[0].Equal(start) {
		nextDay = occurrences[1]
	}

	rec := &models.Recurrence{
		Frequency: set.Pattern(),
		StartDate: start,
		NextDay:   nextDay,
	}
	if err := s.recurrenceRepo.Create(ctx, rec); err != nil {
		return nil, apperrors.NewStoreError("insert recurrence", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"recurrence_id": rec.ID,
		"start_date":    start.String(),
		"next_day":      nextDay.String(),
	}).Debug("Recurrence created")

	return &RecurrenceCreation{
		RecurrenceID: rec.ID,
		Occurrences:  occurrences,
		NextDay:      nextDay,
	}, nil
}

// ModifyRecurrence re-anchors a recurrence and reports the occurrence dates that appeared or
// disappeared. The definition is always persisted, even when nothing changes. An empty
// weekday set is accepted: every former occurrence is then reported in ToDelete.
func (s *RecurrenceService) ModifyRecurrence(ctx context.Context, id uint, newStart calendar.Date, newDays recurrence.WeekdaySet) (*RecurrenceChange, error) {
	rec, err := s.getRecurrence(ctx, id)
	if err != nil {
		return nil, err
	}
	newSet, err := recurrence.NewWeekdaySet(newDays)
	if err != nil {
		return nil, err
	}
	oldSet, err := recurrence.ParseWeekdaySet(rec.Frequency)
	if err != nil {
		return nil, fmt.Errorf("stored pattern of recurrence %d: %w", id, err)
	}
	exclusions, err := s.Exclusions(ctx, id)
	if err != nil {
		return nil, err
	}

	oldOccurrences := recurrence.Generate(rec.StartDate, oldSet)
	newOccurrences := recurrence.Generate(newStart, newSet)

	change := &RecurrenceChange{
		RecurrenceID: id,
		ToAdd:        calendar.Subtract(newOccurrences, oldOccurrences, exclusions),
		ToDelete:     calendar.Subtract(oldOccurrences, newOccurrences),
		NextDay:      nextDayAfter(newStart, calendar.Subtract(newOccurrences, exclusions)),
	}

	rec.Frequency = newSet.Pattern()
	rec.StartDate = newStart
	rec.NextDay = change.NextDay
	if err := s.recurrenceRepo.Update(ctx, rec); err != nil {
		return nil, apperrors.NewStoreError("update recurrence", err)
	}

	return change, nil
}

// nextDayAfter picks the first available occurrence other than the anchor.
// A zero date means the recurrence has no occurrence left.
func nextDayAfter(anchor calendar.Date, available []calendar.Date) calendar.Date {
	if !calendar.Contains(available, anchor) {
		if len(available) == 0 {
			return calendar.Date{}
		}
		return available[0]
	}
	for _, d := range available {
		if !d.Equal(anchor) {
			return d
		}
	}
	return calendar.Date{}
}

// CreateExcludeDay adds date to the exclusion set of a recurrence, creating the set when absent.
// A date already excluded is not added twice.
func (s *RecurrenceService) CreateExcludeDay(ctx context.Context, id uint, date calendar.Date) error {
	excluded, err := s.excludedRepo.GetByRecurrenceID(ctx, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewStoreError("get excluded days", err)
	}

	if excluded == nil {
		dates, err := models.EncodeDates([]calendar.Date{date})
		if err != nil {
			return err
		}
		if err := s.excludedRepo.Create(ctx, &models.ExcludedDays{RecurrenceID: id, Dates: dates}); err != nil {
			return apperrors.NewStoreError("insert excluded days", err)
		}
		return nil
	}

	current, err := excluded.DateList()
	if err != nil {
		return err
	}
	if calendar.Contains(current, date) {
		return nil
	}
	excluded.Dates, err = models.EncodeDates(append(current, date))
	if err != nil {
		return err
	}
	if err := s.excludedRepo.Update(ctx, excluded); err != nil {
		return apperrors.NewStoreError("update excluded days", err)
	}
	return nil
}

// Exclusions returns the excluded dates of a recurrence, empty when it has none
func (s *RecurrenceService) Exclusions(ctx context.Context, id uint) ([]calendar.Date, error) {
	excluded, err := s.excludedRepo.GetByRecurrenceID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []calendar.Date{}, nil
		}
		return nil, apperrors.NewStoreError("get excluded days", err)
	}
	return excluded.DateList()
}

// DeleteRecurrence removes a recurrence and its exclusions. Deleting an unknown id is not an error.
func (s *RecurrenceService) DeleteRecurrence(ctx context.Context, id uint) error {
	if err := s.excludedRepo.DeleteByRecurrenceID(ctx, id); err != nil {
		return apperrors.NewStoreError("delete excluded days", err)
	}
	if err := s.recurrenceRepo.Delete(ctx, id); err != nil {
		return apperrors.NewStoreError("delete recurrence", err)
	}
	return nil
}

// GetRecurrence retrieves a recurrence by ID
func (s *RecurrenceService) GetRecurrence(ctx context.Context, id uint) (*models.Recurrence, error) {
	return s.getRecurrence(ctx, id)
}

func (s *RecurrenceService) getRecurrence(ctx context.Context, id uint) (*models.Recurrence, error) {
	rec, err := s.recurrenceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecurrenceNotFound
		}
		return nil, apperrors.NewStoreError("get recurrence", err)
	}
	return rec, nil
}

// AdvanceIfExpired moves the anchor of every recurrence that started before today to its first
// occurrence at or after today and materializes the occurrences that enter the window.
// Past plannings are left untouched. A failing recurrence is reported and does not stop the pass.
func (s *RecurrenceService) AdvanceIfExpired(ctx context.Context) (*AdvanceReport, error) {
	started := time.Now()
	today := s.clock.Today()
	log := logger.WithContext(ctx).WithField("today", today.String())

	recs, err := s.recurrenceRepo.GetStartedBefore(ctx, today)
	if err != nil {
		return nil, apperrors.NewStoreError("list expired recurrences", err)
	}

	report := &AdvanceReport{
		Checked:  len(recs),
		Advanced: []uint{},
		Failures: []RecurrenceFailure{},
	}
	for i := range recs {
		rec := recs[i]
		created, advanced, err := s.advance(ctx, &rec, today)
		if err != nil {
			log.WithField("recurrence_id", rec.ID).Errorf("Failed to advance recurrence: %v", err)
			report.Failures = append(report.Failures, RecurrenceFailure{RecurrenceID: rec.ID, Error: err.Error(), err: err})
			continue
		}
		if advanced {
			report.Advanced = append(report.Advanced, rec.ID)
			report.Created += created
		}
	}

	s.metrics.RecordMaintenance("advance", report.Checked, len(report.Failures), time.Since(started))
	log.WithFields(map[string]interface{}{
		"checked":  report.Checked,
		"advanced": len(report.Advanced),
		"created":  report.Created,
		"failed":   len(report.Failures),
	}).Info("Expired recurrences advanced")

	return report, nil
}

func (s *RecurrenceService) advance(ctx context.Context, rec *models.Recurrence, today calendar.Date) (int, bool, error) {
	set, err := recurrence.ParseWeekdaySet(rec.Frequency)
	if err != nil {
		return 0, false, err
	}
	if len(set) == 0 {
		return 0, false, nil
	}
	exclusions, err := s.Exclusions(ctx, rec.ID)
	if err != nil {
		return 0, false, err
	}

	anchor := rec.NextDay
	if anchor.IsZero() || anchor.Before(today) {
		seed := rec.NextDay
		if seed.IsZero() {
			seed = rec.StartDate
		}
		anchor, err = findAnchor(seed, set, exclusions, today)
		if err != nil {
			return 0, false, err
		}
	}

	template, err := s.planningRepo.GetOneByRecurrenceID(ctx, rec.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, apperrors.ErrNoTemplateFound
		}
		return 0, false, apperrors.NewStoreError("get template planning", err)
	}

	change, err := s.ModifyRecurrence(ctx, rec.ID, anchor, set)
	if err != nil {
		return 0, false, err
	}

	created, err := materialize(ctx, s.planningRepo, template, rec.ID, change.ToAdd)
	if err != nil {
		return 0, false, err
	}
	return created, true, nil
}

// findAnchor searches forward from seed for the first non-excluded occurrence at or after today.
// Each round restarts the generator from the last date of the previous one.
func findAnchor(seed calendar.Date, days recurrence.WeekdaySet, exclusions []calendar.Date, today calendar.Date) (calendar.Date, error) {
	for i := 0; i < maxAnchorSearches; i++ {
		occurrences := recurrence.Generate(seed, days)
		if len(occurrences) == 0 {
			break
		}
		for _, d := range occurrences {
			if !d.Before(today) && !calendar.Contains(exclusions, d) {
				return d, nil
			}
		}
		last := occurrences[len(occurrences)-1]
		if !seed.Before(last) {
			break
		}
		seed = last
	}
	return calendar.Date{}, apperrors.ErrNoSuitableAnchorFound
}

// materialize inserts a clone of template for every date of the recurrence not planned yet
func materialize(ctx context.Context, repo repository.PlanningRepositoryInterface, template *models.Planning, recurrenceID uint, dates []calendar.Date) (int, error) {
	if len(dates) == 0 {
		return 0, nil
	}
	existing, err := repo.GetByRecurrenceID(ctx, recurrenceID)
	if err != nil {
		return 0, apperrors.NewStoreError("list recurrence plannings", err)
	}
	planned := make([]calendar.Date, 0, len(existing))
	for _, p := range existing {
		planned = append(planned, p.Date)
	}

	missing := calendar.Subtract(dates, planned)
	if len(missing) == 0 {
		return 0, nil
	}
	id := recurrenceID
	clones := make([]models.Planning, 0, len(missing))
	for _, d := range missing {
		clones = append(clones, template.CloneAt(d, &id))
	}
	if err := repo.CreateBatch(ctx, clones); err != nil {
		return 0, apperrors.NewStoreError("insert plannings", err)
	}
	return len(clones), nil
}
