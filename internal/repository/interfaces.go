package repository

import (
	"context"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RecurrenceRepositoryInterface defines the interface for recurrence repository operations
type RecurrenceRepositoryInterface interface {
	Create(ctx context.Context, rec *models.Recurrence) error
	GetByID(ctx context.Context, id uint) (*models.Recurrence, error)
	GetAll(ctx context.Context) ([]models.Recurrence, error)
	GetStartedBefore(ctx context.Context, date calendar.Date) ([]models.Recurrence, error)
	Update(ctx context.Context, rec *models.Recurrence) error
	Delete(ctx context.Context, id uint) error
}

// ExcludedDayRepositoryInterface defines the interface for recurrence exclusion operations
type ExcludedDayRepositoryInterface interface {
	GetByRecurrenceID(ctx context.Context, recurrenceID uint) (*models.ExcludedDays, error)
	Create(ctx context.Context, excluded *models.ExcludedDays) error
	Update(ctx context.Context, excluded *models.ExcludedDays) error
	DeleteByRecurrenceID(ctx context.Context, recurrenceID uint) error
}

// PlanningRepositoryInterface defines the interface for planning repository operations
type PlanningRepositoryInterface interface {
	Create(ctx context.Context, planning *models.Planning) error
	CreateBatch(ctx context.Context, plannings []models.Planning) error
	GetByID(ctx context.Context, id uint) (*models.Planning, error)
	GetByDate(ctx context.Context, date calendar.Date) ([]models.Planning, error)
	GetByDateWithFrequency(ctx context.Context, date calendar.Date) ([]models.PlanningWithFrequency, error)
	GetBetween(ctx context.Context, from, to calendar.Date) ([]models.Planning, error)
	GetByDriverBetween(ctx context.Context, driverID uint, from, to calendar.Date) ([]models.Planning, error)
	GetByDriverAndDate(ctx context.Context, driverID uint, date calendar.Date) ([]models.Planning, error)
	GetByRecurrenceID(ctx context.Context, recurrenceID uint) ([]models.Planning, error)
	GetOneByRecurrenceID(ctx context.Context, recurrenceID uint) (*models.Planning, error)
	GetByRecurrenceIDAndDate(ctx context.Context, recurrenceID uint, date calendar.Date) (*models.Planning, error)
	GetOlderThan(ctx context.Context, date calendar.Date) ([]models.Planning, error)
	Update(ctx context.Context, planning *models.Planning) error
	UpdateRecurrenceID(ctx context.Context, id uint, recurrenceID *uint) error
	Delete(ctx context.Context, id uint) error
	DeleteByIDs(ctx context.Context, ids []uint) error
	DeleteByRecurrenceID(ctx context.Context, recurrenceID uint) error
	DeleteByDatesAndRecurrenceID(ctx context.Context, dates []calendar.Date, recurrenceID uint) error
}

// DriverRepositoryInterface defines the interface for driver repository operations
type DriverRepositoryInterface interface {
	Create(ctx context.Context, driver *models.Driver) error
	GetByID(ctx context.Context, id uint) (*models.Driver, error)
	GetByName(ctx context.Context, name string) (*models.Driver, error)
	GetAll(ctx context.Context) ([]models.Driver, error)
	Update(ctx context.Context, driver *models.Driver) error
	Delete(ctx context.Context, id uint) error
}

// NoteRepositoryInterface defines the interface for day note operations
type NoteRepositoryInterface interface {
	GetBetween(ctx context.Context, from, to calendar.Date) ([]models.Note, error)
	Upsert(ctx context.Context, note *models.Note) error
}
