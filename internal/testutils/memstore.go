package testutils

import (
	"context"
	"sort"
	"sync"
	"time"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"
	"driver-planning-backend/internal/recurrence"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MemoryStore keeps recurrences, exclusions, plannings, drivers and notes in memory.
// Its repositories follow the GORM repositories' contracts, including gorm.ErrRecordNotFound.
type MemoryStore struct {
	mu          sync.Mutex
	nextID      uint
	recurrences map[uint]models.Recurrence
	excluded    map[uint]models.ExcludedDays
	plannings   map[uint]models.Planning
	drivers     map[uint]models.Driver
	notes       map[calendar.Date]models.Note

	// FailCreateBatch, when set, is returned by every batch insert
	FailCreateBatch error
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		recurrences: make(map[uint]models.Recurrence),
		excluded:    make(map[uint]models.ExcludedDays),
		plannings:   make(map[uint]models.Planning),
		drivers:     make(map[uint]models.Driver),
		notes:       make(map[calendar.Date]models.Note),
	}
}

func (s *MemoryStore) id() uint {
	s.nextID++
	return s.nextID
}

func stamp(b *models.BaseModel, id uint) {
	now := time.Now()
	if b.ID == 0 {
		b.ID = id
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

func clonePlanning(p models.Planning) models.Planning {
	if p.RecurrenceID != nil {
		id := *p.RecurrenceID
		if id == 0 {
			p.RecurrenceID = nil
		} else {
			p.RecurrenceID = &id
		}
	}
	return p
}

func cloneRecurrence(r models.Recurrence) models.Recurrence {
	r.Frequency = append(recurrence.Pattern{}, r.Frequency...)
	return r
}

// Recurrences returns the recurrence repository
func (s *MemoryStore) Recurrences() *MemoryRecurrenceRepository {
	return &MemoryRecurrenceRepository{s: s}
}

// ExcludedDays returns the exclusion repository
func (s *MemoryStore) ExcludedDays() *MemoryExcludedDayRepository {
	return &MemoryExcludedDayRepository{s: s}
}

// Plannings returns the planning repository
func (s *MemoryStore) Plannings() *MemoryPlanningRepository {
	return &MemoryPlanningRepository{s: s}
}

// Drivers returns the driver repository
func (s *MemoryStore) Drivers() *MemoryDriverRepository {
	return &MemoryDriverRepository{s: s}
}

// Notes returns the note repository
func (s *MemoryStore) Notes() *MemoryNoteRepository {
	return &MemoryNoteRepository{s: s}
}

// Recurrence returns a stored recurrence
func (s *MemoryStore) Recurrence(id uint) (models.Recurrence, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recurrences[id]
	return cloneRecurrence(r), ok
}

// RecurrenceCount returns the number of stored recurrences
func (s *MemoryStore) RecurrenceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recurrences)
}

// ExcludedDates returns the excluded dates of a recurrence
func (s *MemoryStore) ExcludedDates(recurrenceID uint) []calendar.Date {
	s.mu.Lock()
	e, ok := s.excluded[recurrenceID]
	s.mu.Unlock()
	if !ok {
		return []calendar.Date{}
	}
	dates, err := e.DateList()
	if err != nil {
		return []calendar.Date{}
	}
	return dates
}

// AllPlannings returns every planning ordered by date then id
func (s *MemoryStore) AllPlannings() []models.Planning {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(models.Planning) bool { return true })
}

// PlanningDates returns the dates of the plannings of a recurrence, ascending
func (s *MemoryStore) PlanningDates(recurrenceID uint) []calendar.Date {
	s.mu.Lock()
	defer s.mu.Unlock()
	dates := []calendar.Date{}
	for _, p := range s.filter(byRecurrence(recurrenceID)) {
		dates = append(dates, p.Date)
	}
	return dates
}

// Planning returns a stored planning
func (s *MemoryStore) Planning(id uint) (models.Planning, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plannings[id]
	return clonePlanning(p), ok
}

// filter must be called with the lock held
func (s *MemoryStore) filter(keep func(models.Planning) bool) []models.Planning {
	out := []models.Planning{}
	for _, p := range s.plannings {
		if keep(p) {
			out = append(out, clonePlanning(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Date.Compare(out[j].Date); c != 0 {
			return c < 0
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func byRecurrence(id uint) func(models.Planning) bool {
	return func(p models.Planning) bool {
		return p.RecurrenceID != nil && *p.RecurrenceID == id
	}
}

// MemoryRecurrenceRepository is the in-memory recurrence repository
type MemoryRecurrenceRepository struct{ s *MemoryStore }

func (r *MemoryRecurrenceRepository) Create(_ context.Context, rec *models.Recurrence) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec.ID = 0
	stamp(&rec.BaseModel, r.s.id())
	r.s.recurrences[rec.ID] = cloneRecurrence(*rec)
	return nil
}

func (r *MemoryRecurrenceRepository) GetByID(_ context.Context, id uint) (*models.Recurrence, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.recurrences[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := cloneRecurrence(rec)
	return &out, nil
}

func (r *MemoryRecurrenceRepository) GetAll(_ context.Context) ([]models.Recurrence, error) {
	return r.list(func(models.Recurrence) bool { return true }), nil
}

func (r *MemoryRecurrenceRepository) GetStartedBefore(_ context.Context, date calendar.Date) ([]models.Recurrence, error) {
	return r.list(func(rec models.Recurrence) bool { return rec.StartDate.Before(date) }), nil
}

func (r *MemoryRecurrenceRepository) list(keep func(models.Recurrence) bool) []models.Recurrence {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Recurrence{}
	for _, rec := range r.s.recurrences {
		if keep(rec) {
			out = append(out, cloneRecurrence(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *MemoryRecurrenceRepository) Update(_ context.Context, rec *models.Recurrence) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&rec.BaseModel, r.s.id())
	r.s.recurrences[rec.ID] = cloneRecurrence(*rec)
	return nil
}

func (r *MemoryRecurrenceRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.recurrences, id)
	return nil
}

// MemoryExcludedDayRepository is the in-memory exclusion repository
type MemoryExcludedDayRepository struct{ s *MemoryStore }

func (r *MemoryExcludedDayRepository) GetByRecurrenceID(_ context.Context, recurrenceID uint) (*models.ExcludedDays, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.excluded[recurrenceID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	e.Dates = append(datatypes.JSON{}, e.Dates...)
	return &e, nil
}

func (r *MemoryExcludedDayRepository) Create(_ context.Context, excluded *models.ExcludedDays) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&excluded.BaseModel, r.s.id())
	e := *excluded
	e.Dates = append(datatypes.JSON{}, excluded.Dates...)
	r.s.excluded[excluded.RecurrenceID] = e
	return nil
}

func (r *MemoryExcludedDayRepository) Update(_ context.Context, excluded *models.ExcludedDays) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.excluded[excluded.RecurrenceID]
	if !ok {
		return nil
	}
	e.Dates = append(datatypes.JSON{}, excluded.Dates...)
	r.s.excluded[excluded.RecurrenceID] = e
	return nil
}

func (r *MemoryExcludedDayRepository) DeleteByRecurrenceID(_ context.Context, recurrenceID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.excluded, recurrenceID)
	return nil
}

// MemoryPlanningRepository is the in-memory planning repository
type MemoryPlanningRepository struct{ s *MemoryStore }

func (r *MemoryPlanningRepository) Create(_ context.Context, planning *models.Planning) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	planning.ID = 0
	stamp(&planning.BaseModel, r.s.id())
	r.s.plannings[planning.ID] = clonePlanning(*planning)
	return nil
}

func (r *MemoryPlanningRepository) CreateBatch(_ context.Context, plannings []models.Planning) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailCreateBatch != nil {
		return r.s.FailCreateBatch
	}
	for i := range plannings {
		plannings[i].ID = 0
		stamp(&plannings[i].BaseModel, r.s.id())
		r.s.plannings[plannings[i].ID] = clonePlanning(plannings[i])
	}
	return nil
}

func (r *MemoryPlanningRepository) GetByID(_ context.Context, id uint) (*models.Planning, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.plannings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := clonePlanning(p)
	return &out, nil
}

func (r *MemoryPlanningRepository) GetByDate(_ context.Context, date calendar.Date) ([]models.Planning, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.filter(func(p models.Planning) bool { return p.Date.Equal(date) }), nil
}

func (r *MemoryPlanningRepository) GetByDateWithFrequency(_ context.Context, date calendar.Date) ([]models.PlanningWithFrequency, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.PlanningWithFrequency{}
	for _, p := range r.s.filter(func(p models.Planning) bool { return p.Date.Equal(date) }) {
		row := models.PlanningWithFrequency{Planning: p, Frequency: recurrence.Pattern{}}
		if p.RecurrenceID != nil {
			if rec, ok := r.s.recurrences[*p.RecurrenceID]; ok {
				row.Frequency = append(recurrence.Pattern{}, rec.Frequency...)
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *MemoryPlanningRepository) GetBetween(_ context.Context, from, to calendar.Date) ([]models.Planning, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.filter(func(p models.Planning) bool {
		return !p.Date.Before(from) && !p.Date.After(to)
	}), nil
}

func (r *MemoryPlanningRepository) GetByDriverBetween(_ context.Context, driverID uint, from, to calendar.Date) ([]models.Planning, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.filter(func(p models.Planning) bool {
		return p.DriverID == driverID && !p.Date.Before(from) && !p.Date.After(to)
	}), nil
}

func (r *MemoryPlanningRepository) GetByDriverAndDate(_ context.Context, driverID uint, date calendar.Date) ([]models.Planning, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.filter(func(p models.Planning) bool {
		return p.DriverID == driverID && p.Date.Equal(date)
	}), nil
}

func (r *MemoryPlanningRepository) GetByRecurrenceID(_ context.Context, recurrenceID uint) ([]models.Planning, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.filter(byRecurrence(recurrenceID)), nil
}

func (r *MemoryPlanningRepository) GetOneByRecurrenceID(_ context.Context, recurrenceID uint) (*models.Planning, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var found *models.Planning
	for _, p := range r.s.plannings {
		if byRecurrence(recurrenceID)(p) && (found == nil || p.ID < found.ID) {
			c := clonePlanning(p)
			found = &c
		}
	}
	if found == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return found, nil
}

func (r *MemoryPlanningRepository) GetByRecurrenceIDAndDate(_ context.Context, recurrenceID uint, date calendar.Date) (*models.Planning, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	matches := r.s.filter(func(p models.Planning) bool {
		return byRecurrence(recurrenceID)(p) && p.Date.Equal(date)
	})
	if len(matches) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &matches[0], nil
}

func (r *MemoryPlanningRepository) GetOlderThan(_ context.Context, date calendar.Date) ([]models.Planning, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.filter(func(p models.Planning) bool { return p.Date.Before(date) }), nil
}

func (r *MemoryPlanningRepository) Update(_ context.Context, planning *models.Planning) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&planning.BaseModel, r.s.id())
	r.s.plannings[planning.ID] = clonePlanning(*planning)
	return nil
}

func (r *MemoryPlanningRepository) UpdateRecurrenceID(_ context.Context, id uint, recurrenceID *uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.plannings[id]
	if !ok {
		return nil
	}
	p.RecurrenceID = recurrenceID
	r.s.plannings[id] = clonePlanning(p)
	return nil
}

func (r *MemoryPlanningRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.plannings, id)
	return nil
}

func (r *MemoryPlanningRepository) DeleteByIDs(_ context.Context, ids []uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range ids {
		delete(r.s.plannings, id)
	}
	return nil
}

func (r *MemoryPlanningRepository) DeleteByRecurrenceID(_ context.Context, recurrenceID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.plannings {
		if byRecurrence(recurrenceID)(p) {
			delete(r.s.plannings, id)
		}
	}
	return nil
}

func (r *MemoryPlanningRepository) DeleteByDatesAndRecurrenceID(_ context.Context, dates []calendar.Date, recurrenceID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.plannings {
		if byRecurrence(recurrenceID)(p) && calendar.Contains(dates, p.Date) {
			delete(r.s.plannings, id)
		}
	}
	return nil
}

// MemoryDriverRepository is the in-memory driver repository
type MemoryDriverRepository struct{ s *MemoryStore }

func (r *MemoryDriverRepository) Create(_ context.Context, driver *models.Driver) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	driver.ID = 0
	stamp(&driver.BaseModel, r.s.id())
	r.s.drivers[driver.ID] = *driver
	return nil
}

func (r *MemoryDriverRepository) GetByID(_ context.Context, id uint) (*models.Driver, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.drivers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (r *MemoryDriverRepository) GetByName(_ context.Context, name string) (*models.Driver, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, d := range r.s.drivers {
		if d.Name == name {
			out := d
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryDriverRepository) GetAll(_ context.Context) ([]models.Driver, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Driver{}
	for _, d := range r.s.drivers {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryDriverRepository) Update(_ context.Context, driver *models.Driver) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&driver.BaseModel, r.s.id())
	r.s.drivers[driver.ID] = *driver
	return nil
}

func (r *MemoryDriverRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.drivers, id)
	return nil
}

// MemoryNoteRepository is the in-memory note repository
type MemoryNoteRepository struct{ s *MemoryStore }

func (r *MemoryNoteRepository) GetBetween(_ context.Context, from, to calendar.Date) ([]models.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Note{}
	for d, n := range r.s.notes {
		if !d.Before(from) && !d.After(to) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *MemoryNoteRepository) Upsert(_ context.Context, note *models.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.notes[note.Date] = *note
	return nil
}
