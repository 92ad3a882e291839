package service

import (
	"context"
	"errors"
	"fmt"

	"driver-planning-backend/internal/database/models"
	apperrors "driver-planning-backend/internal/errors"
	"driver-planning-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// DriverService handles business logic for drivers
type DriverService struct {
	repo      repository.DriverRepositoryInterface
	validator *validator.Validate
}

var _ DriverServiceInterface = (*DriverService)(nil)

// NewDriverService creates a new driver service
func NewDriverService(repo repository.DriverRepositoryInterface, validator *validator.Validate) *DriverService {
	return &DriverService{
		repo:      repo,
		validator: validator,
	}
}

// DriverRequest represents the request to create or update a driver
type DriverRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Color string `json:"color" validate:"omitempty,max=20"`
}

// GetAll returns every driver
func (s *DriverService) GetAll(ctx context.Context) ([]models.Driver, error) {
	drivers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}

// GetByID returns one driver
func (s *DriverService) GetByID(ctx context.Context, id uint) (*models.Driver, error) {
	driver, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return driver, nil
}

// Create creates a new driver with a unique name
func (s *DriverService) Create(ctx context.Context, req *DriverRequest) (*models.Driver, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing driver by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDriverExists
	}

	driver := &models.Driver{Name: req.Name, Color: req.Color}
	if err := s.repo.Create(ctx, driver); err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}
	return driver, nil
}

// Update renames or recolors a driver
func (s *DriverService) Update(ctx context.Context, id uint, req *DriverRequest) (*models.Driver, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	driver, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != driver.Name {
		existing, err := s.repo.GetByName(ctx, req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing driver by name: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, apperrors.ErrDriverExists
		}
	}

	driver.Name = req.Name
	driver.Color = req.Color
	if err := s.repo.Update(ctx, driver); err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return driver, nil
}

// Delete deletes a driver
func (s *DriverService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	return nil
}
