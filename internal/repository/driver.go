package repository

import (
	"context"

	"driver-planning-backend/internal/database/models"

	"gorm.io/gorm"
)

// DriverRepository handles database operations for drivers
type DriverRepository struct {
	db *gorm.DB
}

var _ DriverRepositoryInterface = (*DriverRepository)(nil)

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

// Create creates a new driver
func (r *DriverRepository) Create(ctx context.Context, driver *models.Driver) error {
	return r.db.WithContext(ctx).Create(driver).Error
}

// GetByID retrieves a driver by ID
func (r *DriverRepository) GetByID(ctx context.Context, id uint) (*models.Driver, error) {
	var driver models.Driver
	err := r.db.WithContext(ctx).First(&driver, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

// GetByName retrieves a driver by name
func (r *DriverRepository) GetByName(ctx context.Context, name string) (*models.Driver, error) {
	var driver models.Driver
	err := r.db.WithContext(ctx).First(&driver, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

// GetAll retrieves every driver ordered by name
func (r *DriverRepository) GetAll(ctx context.Context) ([]models.Driver, error) {
	var drivers []models.Driver
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

// Update updates a driver
func (r *DriverRepository) Update(ctx context.Context, driver *models.Driver) error {
	return r.db.WithContext(ctx).Save(driver).Error
}

// Delete deletes a driver
func (r *DriverRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Driver{}, "id = ?", id).Error
}
