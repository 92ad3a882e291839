package repository

import (
	"context"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"

	"gorm.io/gorm"
)

// planningBatchSize bounds the rows of one INSERT statement
const planningBatchSize = 100

// PlanningRepository handles database operations for plannings
type PlanningRepository struct {
	db *gorm.DB
}

var _ PlanningRepositoryInterface = (*PlanningRepository)(nil)

// NewPlanningRepository creates a new planning repository
func NewPlanningRepository(db *gorm.DB) *PlanningRepository {
	return &PlanningRepository{db: db}
}

// Create creates a new planning
func (r *PlanningRepository) Create(ctx context.Context, planning *models.Planning) error {
	return r.db.WithContext(ctx).Create(planning).Error
}

// CreateBatch inserts every planning in one transaction
func (r *PlanningRepository) CreateBatch(ctx context.Context, plannings []models.Planning) error {
	if len(plannings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&plannings, planningBatchSize).Error
	})
}

// GetByID retrieves a planning by ID
func (r *PlanningRepository) GetByID(ctx context.Context, id uint) (*models.Planning, error) {
	var planning models.Planning
	err := r.db.WithContext(ctx).First(&planning, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &planning, nil
}

// GetByDate retrieves the plannings of one day ordered by start time
func (r *PlanningRepository) GetByDate(ctx context.Context, date calendar.Date) ([]models.Planning, error) {
	var plannings []models.Planning
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("start_time ASC, id ASC").
		Find(&plannings).Error
	if err != nil {
		return nil, err
	}
	return plannings, nil
}

// GetByDateWithFrequency retrieves the plannings of one day with the pattern of their recurrence
func (r *PlanningRepository) GetByDateWithFrequency(ctx context.Context, date calendar.Date) ([]models.PlanningWithFrequency, error) {
	var rows []models.PlanningWithFrequency
	err := r.db.WithContext(ctx).
		Table("plannings").
		Select("plannings.*, COALESCE(recurrences.frequency, '[]') AS frequency").
		Joins("LEFT JOIN recurrences ON recurrences.id = plannings.recurrence_id").
		Where("plannings.date = ?", date).
		Order("plannings.start_time ASC, plannings.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	// Scan skips hooks
	for i := range rows {
		if rows[i].RecurrenceID != nil && *rows[i].RecurrenceID == 0 {
			rows[i].RecurrenceID = nil
		}
	}
	return rows, nil
}

// GetBetween retrieves the plannings of the inclusive date range
func (r *PlanningRepository) GetBetween(ctx context.Context, from, to calendar.Date) ([]models.Planning, error) {
	var plannings []models.Planning
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC, start_time ASC, id ASC").
		Find(&plannings).Error
	if err != nil {
		return nil, err
	}
	return plannings, nil
}

// GetByDriverBetween retrieves the plannings of one driver in the inclusive date range
func (r *PlanningRepository) GetByDriverBetween(ctx context.Context, driverID uint, from, to calendar.Date) ([]models.Planning, error) {
	var plannings []models.Planning
	err := r.db.WithContext(ctx).
		Where("driver_id = ? AND date >= ? AND date <= ?", driverID, from, to).
		Order("date ASC, start_time ASC, id ASC").
		Find(&plannings).Error
	if err != nil {
		return nil, err
	}
	return plannings, nil
}

// GetByDriverAndDate retrieves the plannings of one driver on one day
func (r *PlanningRepository) GetByDriverAndDate(ctx context.Context, driverID uint, date calendar.Date) ([]models.Planning, error) {
	var plannings []models.Planning
	err := r.db.WithContext(ctx).
		Where("driver_id = ? AND date = ?", driverID, date).
		Order("start_time ASC, id ASC").
		Find(&plannings).Error
	if err != nil {
		return nil, err
	}
	return plannings, nil
}

// GetByRecurrenceID retrieves every planning of a recurrence ordered by date
func (r *PlanningRepository) GetByRecurrenceID(ctx context.Context, recurrenceID uint) ([]models.Planning, error) {
	var plannings []models.Planning
	err := r.db.WithContext(ctx).
		Where("recurrence_id = ?", recurrenceID).
		Order("date ASC, id ASC").
		Find(&plannings).Error
	if err != nil {
		return nil, err
	}
	return plannings, nil
}

// GetOneByRecurrenceID retrieves any planning of a recurrence
func (r *PlanningRepository) GetOneByRecurrenceID(ctx context.Context, recurrenceID uint) (*models.Planning, error) {
	var planning models.Planning
	err := r.db.WithContext(ctx).
		Where("recurrence_id = ?", recurrenceID).
		Order("id ASC").
		First(&planning).Error
	if err != nil {
		return nil, err
	}
	return &planning, nil
}

// GetByRecurrenceIDAndDate retrieves the planning of a recurrence on one day
func (r *PlanningRepository) GetByRecurrenceIDAndDate(ctx context.Context, recurrenceID uint, date calendar.Date) (*models.Planning, error) {
	var planning models.Planning
	err := r.db.WithContext(ctx).
		Where("recurrence_id = ? AND date = ?", recurrenceID, date).
		Order("id ASC").
		First(&planning).Error
	if err != nil {
		return nil, err
	}
	return &planning, nil
}

// GetOlderThan retrieves the plannings strictly before date
func (r *PlanningRepository) GetOlderThan(ctx context.Context, date calendar.Date) ([]models.Planning, error) {
	var plannings []models.Planning
	err := r.db.WithContext(ctx).
		Where("date < ?", date).
		Order("date ASC, id ASC").
		Find(&plannings).Error
	if err != nil {
		return nil, err
	}
	return plannings, nil
}

// Update saves every field of the planning
func (r *PlanningRepository) Update(ctx context.Context, planning *models.Planning) error {
	return r.db.WithContext(ctx).Save(planning).Error
}

// UpdateRecurrenceID attaches the planning to a recurrence, or detaches it when recurrenceID is nil
func (r *PlanningRepository) UpdateRecurrenceID(ctx context.Context, id uint, recurrenceID *uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Planning{}).
		Where("id = ?", id).
		Update("recurrence_id", recurrenceID).Error
}

// Delete deletes a planning
func (r *PlanningRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Planning{}, "id = ?", id).Error
}

// DeleteByIDs deletes a set of plannings in one statement
func (r *PlanningRepository) DeleteByIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&models.Planning{}, "id IN ?", ids).Error
}

// DeleteByRecurrenceID deletes every planning of a recurrence
func (r *PlanningRepository) DeleteByRecurrenceID(ctx context.Context, recurrenceID uint) error {
	return r.db.WithContext(ctx).Delete(&models.Planning{}, "recurrence_id = ?", recurrenceID).Error
}

// DeleteByDatesAndRecurrenceID deletes the plannings of a recurrence on the given days in one statement
func (r *PlanningRepository) DeleteByDatesAndRecurrenceID(ctx context.Context, dates []calendar.Date, recurrenceID uint) error {
	if len(dates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Delete(&models.Planning{}, "recurrence_id = ? AND date IN ?", recurrenceID, dates).Error
}
