package repository

import (
	"context"

	"driver-planning-backend/internal/database/models"

	"gorm.io/gorm"
)

// ExcludedDayRepository handles database operations for recurrence exclusions
type ExcludedDayRepository struct {
	db *gorm.DB
}

var _ ExcludedDayRepositoryInterface = (*ExcludedDayRepository)(nil)

// NewExcludedDayRepository creates a new exclusion repository
func NewExcludedDayRepository(db *gorm.DB) *ExcludedDayRepository {
	return &ExcludedDayRepository{db: db}
}

// GetByRecurrenceID retrieves the exclusion row of a recurrence
func (r *ExcludedDayRepository) GetByRecurrenceID(ctx context.Context, recurrenceID uint) (*models.ExcludedDays, error) {
	var excluded models.ExcludedDays
	err := r.db.WithContext(ctx).First(&excluded, "recurrence_id = ?", recurrenceID).Error
	if err != nil {
		return nil, err
	}
	return &excluded, nil
}

// Create creates the exclusion row of a recurrence
func (r *ExcludedDayRepository) Create(ctx context.Context, excluded *models.ExcludedDays) error {
	return r.db.WithContext(ctx).Create(excluded).Error
}

// Update replaces the stored dates
func (r *ExcludedDayRepository) Update(ctx context.Context, excluded *models.ExcludedDays) error {
	return r.db.WithContext(ctx).
		Model(&models.ExcludedDays{}).
		Where("recurrence_id = ?", excluded.RecurrenceID).
		Update("dates", excluded.Dates).Error
}

// DeleteByRecurrenceID removes the exclusions of a recurrence
func (r *ExcludedDayRepository) DeleteByRecurrenceID(ctx context.Context, recurrenceID uint) error {
	return r.db.WithContext(ctx).Delete(&models.ExcludedDays{}, "recurrence_id = ?", recurrenceID).Error
}
