package repository

import (
	"context"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"

	"gorm.io/gorm"
)

// RecurrenceRepository handles database operations for recurrences
type RecurrenceRepository struct {
	db *gorm.DB
}

// Ensure RecurrenceRepository implements RecurrenceRepositoryInterface
var _ RecurrenceRepositoryInterface = (*RecurrenceRepository)(nil)

// NewRecurrenceRepository creates a new recurrence repository
func NewRecurrenceRepository(db *gorm.DB) *RecurrenceRepository {
	return &RecurrenceRepository{db: db}
}

// Create creates a new recurrence
func (r *RecurrenceRepository) Create(ctx context.Context, rec *models.Recurrence) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// GetByID retrieves a recurrence by ID
func (r *RecurrenceRepository) GetByID(ctx context.Context, id uint) (*models.Recurrence, error) {
	var rec models.Recurrence
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetAll retrieves every recurrence ordered by ID
func (r *RecurrenceRepository) GetAll(ctx context.Context) ([]models.Recurrence, error) {
	var recs []models.Recurrence
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// GetStartedBefore retrieves the recurrences whose anchor is strictly before date
func (r *RecurrenceRepository) GetStartedBefore(ctx context.Context, date calendar.Date) ([]models.Recurrence, error) {
	var recs []models.Recurrence
	err := r.db.WithContext(ctx).
		Where("start_date < ?", date).
		Order("id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// Update saves every field of the recurrence
func (r *RecurrenceRepository) Update(ctx context.Context, rec *models.Recurrence) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// Delete deletes a recurrence
func (r *RecurrenceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Recurrence{}, "id = ?", id).Error
}
