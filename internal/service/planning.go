package service

import (
	"context"
	"errors"
	"fmt"

	"driver-planning-backend/internal/cache"
	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"
	apperrors "driver-planning-backend/internal/errors"
	"driver-planning-backend/internal/logger"
	"driver-planning-backend/internal/metrics"
	"driver-planning-backend/internal/recurrence"
	"driver-planning-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Outcomes of ModifyPlanning
const (
	ModifySucceeded = "success modify planning"
	ModifyFailed    = "failed modify"
)

// ArchiveReader reads plannings that were moved out of the main store
type ArchiveReader interface {
	GetByDate(ctx context.Context, date calendar.Date) ([]models.Planning, error)
}

// PlanningService handles business logic for plannings
type PlanningService struct {
	planningRepo   repository.PlanningRepositoryInterface
	recurrenceRepo repository.RecurrenceRepositoryInterface
	driverRepo     repository.DriverRepositoryInterface
	recurrences    RecurrenceServiceInterface
	cache          cache.PlanningCache
	clock          calendar.Clock
	archive        ArchiveReader
	validator      *validator.Validate
	metrics        metrics.Recorder
}

var _ PlanningServiceInterface = (*PlanningService)(nil)

// NewPlanningService creates a new planning service
func NewPlanningService(
	planningRepo repository.PlanningRepositoryInterface,
	recurrenceRepo repository.RecurrenceRepositoryInterface,
	driverRepo repository.DriverRepositoryInterface,
	recurrences RecurrenceServiceInterface,
	planningCache cache.PlanningCache,
	clock calendar.Clock,
	validator *validator.Validate,
	recorder metrics.Recorder,
) *PlanningService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &PlanningService{
		planningRepo:   planningRepo,
		recurrenceRepo: recurrenceRepo,
		driverRepo:     driverRepo,
		recurrences:    recurrences,
		cache:          planningCache,
		clock:          clock,
		validator:      validator,
		metrics:        recorder,
	}
}

// WithArchive makes the history view fall back to archived plannings
func (s *PlanningService) WithArchive(archive ArchiveReader) *PlanningService {
	s.archive = archive
	return s
}

// CreatePlanningRequest represents one planning to add.
// A non-empty frequency turns it into the first occurrence of a new recurrence.
type CreatePlanningRequest struct {
	DriverID     uint               `json:"driver_id" validate:"required"`
	Date         calendar.Date      `json:"date" swaggertype:"string" example:"15/10/2026"`
	ClientName   string             `json:"client_name" validate:"max=200"`
	StartTime    string             `json:"start_time" validate:"max=10"`
	ReturnTime   string             `json:"return_time" validate:"max=10"`
	Note         string             `json:"note"`
	Destination  string             `json:"destination" validate:"max=200"`
	LongDistance bool               `json:"long_distance"`
	Frequency    recurrence.Pattern `json:"frequency" swaggertype:"array,integer"`
}

// ModifyPlanningRequest represents the edition of a stored planning.
// NewDate moves the planning; Frequency is the weekday pattern it must follow afterwards.
type ModifyPlanningRequest struct {
	ID           uint               `json:"id" validate:"required"`
	DriverID     uint               `json:"driver_id" validate:"required"`
	NewDate      *calendar.Date     `json:"new_date,omitempty" swaggertype:"string" example:"16/10/2026"`
	ClientName   string             `json:"client_name" validate:"max=200"`
	StartTime    string             `json:"start_time" validate:"max=10"`
	ReturnTime   string             `json:"return_time" validate:"max=10"`
	Note         string             `json:"note"`
	Destination  string             `json:"destination" validate:"max=200"`
	LongDistance bool               `json:"long_distance"`
	Frequency    recurrence.Pattern `json:"frequency" swaggertype:"array,integer"`
}

// DeletePlanningRequest represents the deletion of a planning, or of its whole series
type DeletePlanningRequest struct {
	ID               uint `json:"id" validate:"required"`
	DeleteRecurrence bool `json:"delete_recurrence"`
}

// AddedPlanning describes one request item that was stored
type AddedPlanning struct {
	ClientName   string `json:"client_name"`
	RecurrenceID *uint  `json:"recurrence_id,omitempty"`
	PlanningIDs  []uint `json:"planning_ids"`
}

// FailedPlanning describes one request item that was not stored and the dates left unplanned
type FailedPlanning struct {
	Request CreatePlanningRequest `json:"request"`
	Dates   []calendar.Date       `json:"dates"`
	Error   string                `json:"error"`
}

// AddPlanningResult collects the outcome of every item of an AddPlanning batch
type AddPlanningResult struct {
	Success []AddedPlanning  `json:"success"`
	Failed  []FailedPlanning `json:"failed"`
}

// DayPlanning is the planning of one day with the drivers to display it
type DayPlanning struct {
	Date      calendar.Date                  `json:"date"`
	Plannings []models.PlanningWithFrequency `json:"data"`
	Drivers   []models.Driver                `json:"drivers"`
}

// HistoryPlanning is the planning of a past day
type HistoryPlanning struct {
	Date     calendar.Date     `json:"date"`
	Data     []models.Planning `json:"data"`
	Drivers  []models.Driver   `json:"drivers"`
	Archived bool              `json:"archived"`
}

// AddPlanning stores every item independently. A failing item is reported with the dates it
// would have planned and does not stop the batch.
func (s *PlanningService) AddPlanning(ctx context.Context, items []CreatePlanningRequest) *AddPlanningResult {
	defer s.invalidate()
	log := logger.WithContext(ctx)

	result := &AddPlanningResult{
		Success: []AddedPlanning{},
		Failed:  []FailedPlanning{},
	}
	for _, item := range items {
		added, dates, err := s.addOne(ctx, item)
		s.metrics.RecordMutation("add", err == nil)
		if err != nil {
			log.WithFields(map[string]interface{}{
				"driver_id": item.DriverID,
				"date":      item.Date.String(),
			}).Errorf("Failed to add planning: %v", err)
			if len(dates) == 0 {
				dates = []calendar.Date{item.Date}
			}
			result.Failed = append(result.Failed, FailedPlanning{Request: item, Dates: dates, Error: err.Error()})
			continue
		}
		result.Success = append(result.Success, *added)
	}
	return result
}

func (s *PlanningService) addOne(ctx context.Context, item CreatePlanningRequest) (*AddedPlanning, []calendar.Date, error) {
	if err := s.validator.Struct(item); err != nil {
		return nil, nil, fmt.Errorf("validation failed: %w", err)
	}
	if item.Date.IsZero() {
		return nil, nil, apperrors.NewValidationError("date", "is required")
	}
	set, err := recurrence.NewWeekdaySet(item.Frequency)
	if err != nil {
		return nil, nil, err
	}

	planning := models.Planning{
		DriverID:     item.DriverID,
		Date:         item.Date,
		ClientName:   item.ClientName,
		StartTime:    item.StartTime,
		ReturnTime:   item.ReturnTime,
		Note:         item.Note,
		Destination:  item.Destination,
		LongDistance: item.LongDistance,
	}

	if len(set) == 0 {
		if err := s.planningRepo.Create(ctx, &planning); err != nil {
			return nil, nil, apperrors.NewStoreError("insert planning", err)
		}
		return &AddedPlanning{ClientName: item.ClientName, PlanningIDs: []uint{planning.ID}}, nil, nil
	}

	creation, err := s.recurrences.CreateRecurrence(ctx, item.Date, set)
	if err != nil {
		return nil, nil, err
	}
	recurrenceID := creation.RecurrenceID

	// the requested day is planned even when it is not on the pattern
	dates := creation.Occurrences
	if !calendar.Contains(dates, item.Date) {
		dates = append([]calendar.Date{item.Date}, dates...)
	}

	series := make([]models.Planning, 0, len(dates))
	for _, d := range dates {
		series = append(series, planning.CloneAt(d, &recurrenceID))
	}
	if err := s.planningRepo.CreateBatch(ctx, series); err != nil {
		if derr := s.recurrences.DeleteRecurrence(ctx, recurrenceID); derr != nil {
			logger.WithContext(ctx).WithField("recurrence_id", recurrenceID).Errorf("Failed to remove recurrence after failed insert: %v", derr)
		}
		return nil, dates, apperrors.NewStoreError("insert plannings", err)
	}

	ids := make([]uint, 0, len(series))
	for _, p := range series {
		ids = append(ids, p.ID)
	}
	return &AddedPlanning{ClientName: item.ClientName, RecurrenceID: &recurrenceID, PlanningIDs: ids}, nil, nil
}

// ModifyPlanning applies an edition of a planning and of the recurrence it belongs to
func (s *PlanningService) ModifyPlanning(ctx context.Context, req *ModifyPlanningRequest) (string, error) {
	defer s.invalidate()

	err := s.modify(ctx, req)
	s.metrics.RecordMutation("modify", err == nil)
	if err != nil {
		logger.WithContext(ctx).WithField("planning_id", req.ID).Errorf("Failed to modify planning: %v", err)
		return ModifyFailed, err
	}
	return ModifySucceeded, nil
}

func (s *PlanningService) modify(ctx context.Context, req *ModifyPlanningRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	newSet, err := recurrence.NewWeekdaySet(req.Frequency)
	if err != nil {
		return err
	}

	item, err := s.getPlanning(ctx, req.ID)
	if err != nil {
		return err
	}
	rec, err := s.recurrenceOf(ctx, item)
	if err != nil {
		return err
	}
	oldSet := recurrence.WeekdaySet{}
	if rec != nil {
		if oldSet, err = recurrence.ParseWeekdaySet(rec.Frequency); err != nil {
			return fmt.Errorf("stored pattern of recurrence %d: %w", rec.ID, err)
		}
	}

	date := item.Date
	var newDate calendar.Date
	hasNewDate := req.NewDate != nil && !req.NewDate.IsZero() && !req.NewDate.Equal(date)
	if hasNewDate {
		newDate = *req.NewDate
	}
	patternChanged := !oldSet.Equal(newSet)
	applyFields(item, req)

	switch {
	// anchor moved with a new pattern
	case rec != nil && patternChanged && len(newSet) > 0 && hasNewDate && date.Equal(rec.StartDate):
		anchor := newDate
		if !rec.NextDay.IsZero() && !newDate.Before(rec.NextDay) {
			anchor = rec.NextDay
		}
		if err := s.dropSiblingsOn(ctx, item, rec.ID, newDate); err != nil {
			return err
		}
		item.Date = newDate
		if err := s.updatePlanning(ctx, item); err != nil {
			return err
		}
		change, err := s.recurrences.ModifyRecurrence(ctx, rec.ID, anchor, newSet)
		if err != nil {
			return err
		}
		return s.applyChange(ctx, item, change, newDate)

	// pattern cleared
	case rec != nil && patternChanged && len(newSet) == 0:
		if hasNewDate {
			item.Date = newDate
		}
		return s.dissolveRecurrence(ctx, item, rec.ID, date)

	// pattern set on a planning without recurrence
	case rec == nil && patternChanged:
		anchor := date
		if hasNewDate {
			anchor = newDate
		}
		creation, err := s.recurrences.CreateRecurrence(ctx, anchor, newSet)
		if err != nil {
			return err
		}
		recurrenceID := creation.RecurrenceID
		item.Date = anchor
		item.RecurrenceID = &recurrenceID
		if err := s.updatePlanning(ctx, item); err != nil {
			return err
		}
		series := make([]models.Planning, 0, len(creation.Occurrences))
		for _, d := range calendar.Subtract(creation.Occurrences, []calendar.Date{anchor}) {
			series = append(series, item.CloneAt(d, &recurrenceID))
		}
		if err := s.planningRepo.CreateBatch(ctx, series); err != nil {
			return apperrors.NewStoreError("insert plannings", err)
		}
		return nil

	// pattern changed in place
	case patternChanged:
		if hasNewDate {
			if err := s.dropSiblingsOn(ctx, item, rec.ID, newDate); err != nil {
				return err
			}
			item.Date = newDate
		}
		if err := s.updatePlanning(ctx, item); err != nil {
			return err
		}
		change, err := s.recurrences.ModifyRecurrence(ctx, rec.ID, rec.StartDate, newSet)
		if err != nil {
			return err
		}
		return s.applyChange(ctx, item, change, item.Date)

	// moved out of its series
	case hasNewDate && rec != nil && len(oldSet) > 0:
		item.Date = newDate
		item.RecurrenceID = nil
		if err := s.updatePlanning(ctx, item); err != nil {
			return err
		}
		return s.excludeOccurrence(ctx, rec, date)

	case hasNewDate:
		item.Date = newDate
		return s.updatePlanning(ctx, item)

	default:
		return s.updatePlanning(ctx, item)
	}
}

func applyFields(item *models.Planning, req *ModifyPlanningRequest) {
	item.DriverID = req.DriverID
	item.ClientName = req.ClientName
	item.StartTime = req.StartTime
	item.ReturnTime = req.ReturnTime
	item.Note = req.Note
	item.Destination = req.Destination
	item.LongDistance = req.LongDistance
}

// applyChange removes the dates that left the series and clones item on the dates that entered it.
// keep is never deleted, it holds the edited planning.
func (s *PlanningService) applyChange(ctx context.Context, item *models.Planning, change *RecurrenceChange, keep calendar.Date) error {
	toDelete := calendar.Subtract(change.ToDelete, []calendar.Date{keep})
	if err := s.planningRepo.DeleteByDatesAndRecurrenceID(ctx, toDelete, change.RecurrenceID); err != nil {
		return apperrors.NewStoreError("delete plannings", err)
	}
	if _, err := materialize(ctx, s.planningRepo, item, change.RecurrenceID, change.ToAdd); err != nil {
		return err
	}
	return nil
}

// dropSiblingsOn deletes the other plannings of the series on date, so that item stays the
// only planning of that occurrence once it moves there
func (s *PlanningService) dropSiblingsOn(ctx context.Context, item *models.Planning, recurrenceID uint, date calendar.Date) error {
	plannings, err := s.planningRepo.GetByRecurrenceID(ctx, recurrenceID)
	if err != nil {
		return apperrors.NewStoreError("list recurrence plannings", err)
	}
	ids := []uint{}
	for _, p := range plannings {
		if p.ID != item.ID && p.Date.Equal(date) {
			ids = append(ids, p.ID)
		}
	}
	if err := s.planningRepo.DeleteByIDs(ctx, ids); err != nil {
		return apperrors.NewStoreError("delete plannings", err)
	}
	return nil
}

// dissolveRecurrence drops the plannings of the series after date, detaches the others
// and deletes the recurrence
func (s *PlanningService) dissolveRecurrence(ctx context.Context, item *models.Planning, recurrenceID uint, date calendar.Date) error {
	plannings, err := s.planningRepo.GetByRecurrenceID(ctx, recurrenceID)
	if err != nil {
		return apperrors.NewStoreError("list recurrence plannings", err)
	}
	toDelete := []uint{}
	for _, p := range plannings {
		if p.ID == item.ID {
			continue
		}
		if p.Date.After(date) {
			toDelete = append(toDelete, p.ID)
			continue
		}
		if err := s.planningRepo.UpdateRecurrenceID(ctx, p.ID, nil); err != nil {
			return apperrors.NewStoreError("detach planning", err)
		}
	}
	if err := s.planningRepo.DeleteByIDs(ctx, toDelete); err != nil {
		return apperrors.NewStoreError("delete plannings", err)
	}

	item.RecurrenceID = nil
	if err := s.updatePlanning(ctx, item); err != nil {
		return err
	}
	return s.recurrences.DeleteRecurrence(ctx, recurrenceID)
}

// excludeOccurrence records date as excluded and keeps the series anchored on live occurrences
func (s *PlanningService) excludeOccurrence(ctx context.Context, rec *models.Recurrence, date calendar.Date) error {
	if err := s.recurrences.CreateExcludeDay(ctx, rec.ID, date); err != nil {
		return err
	}
	return s.reanchor(ctx, rec, date)
}

// reanchor moves the series to its next day when the excluded date was its anchor, and
// recomputes the next day from the anchor when the excluded date was the next day
func (s *PlanningService) reanchor(ctx context.Context, rec *models.Recurrence, date calendar.Date) error {
	var anchor calendar.Date
	switch {
	case date.Equal(rec.StartDate):
		anchor = rec.NextDay
	case date.Equal(rec.NextDay):
		anchor = rec.StartDate
	default:
		return nil
	}
	if anchor.IsZero() {
		return nil
	}

	set, err := recurrence.ParseWeekdaySet(rec.Frequency)
	if err != nil {
		return err
	}
	change, err := s.recurrences.ModifyRecurrence(ctx, rec.ID, anchor, set)
	if err != nil {
		return err
	}
	if err := s.planningRepo.DeleteByDatesAndRecurrenceID(ctx, change.ToDelete, rec.ID); err != nil {
		return apperrors.NewStoreError("delete plannings", err)
	}
	if len(change.ToAdd) == 0 {
		return nil
	}
	template, err := s.planningRepo.GetOneByRecurrenceID(ctx, rec.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// last planning of the series, the reconciler drops the recurrence
			return nil
		}
		return apperrors.NewStoreError("get template planning", err)
	}
	_, err = materialize(ctx, s.planningRepo, template, rec.ID, change.ToAdd)
	return err
}

// DeletePlanning removes a planning, one occurrence of a series, or the whole series
func (s *PlanningService) DeletePlanning(ctx context.Context, req *DeletePlanningRequest) error {
	defer s.invalidate()

	err := s.delete(ctx, req)
	s.metrics.RecordMutation("delete", err == nil)
	if err != nil {
		logger.WithContext(ctx).WithField("planning_id", req.ID).Errorf("Failed to delete planning: %v", err)
	}
	return err
}

func (s *PlanningService) delete(ctx context.Context, req *DeletePlanningRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	item, err := s.getPlanning(ctx, req.ID)
	if err != nil {
		return err
	}

	if !item.HasRecurrence() {
		return s.deletePlanning(ctx, item.ID)
	}

	recurrenceID := *item.RecurrenceID
	if req.DeleteRecurrence {
		if err := s.planningRepo.DeleteByRecurrenceID(ctx, recurrenceID); err != nil {
			return apperrors.NewStoreError("delete recurrence plannings", err)
		}
		return s.recurrences.DeleteRecurrence(ctx, recurrenceID)
	}

	rec, err := s.recurrenceOf(ctx, item)
	if err != nil {
		return err
	}
	if rec == nil {
		return s.deletePlanning(ctx, item.ID)
	}
	if err := s.recurrences.CreateExcludeDay(ctx, rec.ID, item.Date); err != nil {
		return err
	}
	if err := s.deletePlanning(ctx, item.ID); err != nil {
		return err
	}
	return s.reanchor(ctx, rec, item.Date)
}

// GetTodayPlanning returns the planning of the current day, read through the cache
func (s *PlanningService) GetTodayPlanning(ctx context.Context) (*DayPlanning, error) {
	if s.cache.Has(cache.TodayPlanningKey) {
		if cached, ok := s.cache.Get(cache.TodayPlanningKey); ok {
			if day, ok := cached.(*DayPlanning); ok {
				s.metrics.RecordCacheLookup(true)
				return day, nil
			}
		}
	}
	s.metrics.RecordCacheLookup(false)

	drivers, err := s.drivers(ctx)
	if err != nil {
		return nil, err
	}
	day, err := s.dayPlanning(ctx, s.clock.Today(), drivers)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cache.TodayPlanningKey, day)
	return day, nil
}

// GetWeekPlanning returns the seven days starting at from, or at today when from is zero
func (s *PlanningService) GetWeekPlanning(ctx context.Context, from calendar.Date) ([]DayPlanning, error) {
	if from.IsZero() {
		from = s.clock.Today()
	}
	drivers, err := s.drivers(ctx)
	if err != nil {
		return nil, err
	}
	week := make([]DayPlanning, 0, 7)
	for _, d := range calendar.Week(from) {
		day, err := s.dayPlanning(ctx, d, drivers)
		if err != nil {
			return nil, err
		}
		week = append(week, *day)
	}
	return week, nil
}

// GetDriverPlanningByDate returns the plannings of one driver on one day
func (s *PlanningService) GetDriverPlanningByDate(ctx context.Context, driverID uint, date calendar.Date) ([]models.Planning, error) {
	plannings, err := s.planningRepo.GetByDriverAndDate(ctx, driverID, date)
	if err != nil {
		return nil, apperrors.NewStoreError("get driver plannings", err)
	}
	return plannings, nil
}

// GetHistoryPlanning returns the planning of a past day, from the archive when it was moved there
func (s *PlanningService) GetHistoryPlanning(ctx context.Context, date calendar.Date) (*HistoryPlanning, error) {
	drivers, err := s.drivers(ctx)
	if err != nil {
		return nil, err
	}
	plannings, err := s.planningRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, apperrors.NewStoreError("get plannings", err)
	}
	history := &HistoryPlanning{Date: date, Data: plannings, Drivers: drivers}
	if len(plannings) == 0 && s.archive != nil {
		archived, err := s.archive.GetByDate(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("read archive: %w", err)
		}
		history.Data = archived
		history.Archived = len(archived) > 0
	}
	return history, nil
}

func (s *PlanningService) dayPlanning(ctx context.Context, date calendar.Date, drivers []models.Driver) (*DayPlanning, error) {
	plannings, err := s.planningRepo.GetByDateWithFrequency(ctx, date)
	if err != nil {
		return nil, apperrors.NewStoreError("get plannings", err)
	}
	return &DayPlanning{Date: date, Plannings: plannings, Drivers: drivers}, nil
}

func (s *PlanningService) drivers(ctx context.Context) ([]models.Driver, error) {
	drivers, err := s.driverRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("list drivers", err)
	}
	return drivers, nil
}

func (s *PlanningService) getPlanning(ctx context.Context, id uint) (*models.Planning, error) {
	planning, err := s.planningRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanningNotFound
		}
		return nil, apperrors.NewStoreError("get planning", err)
	}
	return planning, nil
}

// recurrenceOf loads the recurrence of a planning. A dangling reference counts as none.
func (s *PlanningService) recurrenceOf(ctx context.Context, item *models.Planning) (*models.Recurrence, error) {
	if !item.HasRecurrence() {
		return nil, nil
	}
	rec, err := s.recurrences.GetRecurrence(ctx, *item.RecurrenceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecurrenceNotFound) {
			logger.WithContext(ctx).WithField("recurrence_id", *item.RecurrenceID).Warn("Planning references a missing recurrence")
			item.RecurrenceID = nil
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (s *PlanningService) updatePlanning(ctx context.Context, item *models.Planning) error {
	if err := s.planningRepo.Update(ctx, item); err != nil {
		return apperrors.NewStoreError("update planning", err)
	}
	return nil
}

func (s *PlanningService) deletePlanning(ctx context.Context, id uint) error {
	if err := s.planningRepo.Delete(ctx, id); err != nil {
		return apperrors.NewStoreError("delete planning", err)
	}
	return nil
}

func (s *PlanningService) invalidate() {
	s.cache.Delete(cache.TodayPlanningKey)
}
