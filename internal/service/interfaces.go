package service

import (
	"context"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"
	"driver-planning-backend/internal/recurrence"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RecurrenceServiceInterface defines the interface for the recurrence engine
type RecurrenceServiceInterface interface {
	CreateRecurrence(ctx context.Context, start calendar.Date, days recurrence.WeekdaySet) (*RecurrenceCreation, error)
	ModifyRecurrence(ctx context.Context, id uint, newStart calendar.Date, newDays recurrence.WeekdaySet) (*RecurrenceChange, error)
	CreateExcludeDay(ctx context.Context, id uint, date calendar.Date) error
	Exclusions(ctx context.Context, id uint) ([]calendar.Date, error)
	DeleteRecurrence(ctx context.Context, id uint) error
	GetRecurrence(ctx context.Context, id uint) (*models.Recurrence, error)
	AdvanceIfExpired(ctx context.Context) (*AdvanceReport, error)
}

// ReconcilerServiceInterface defines the interface for the planning reconciler
type ReconcilerServiceInterface interface {
	Reconcile(ctx context.Context) (*ReconcileReport, error)
}

// MaintenanceRunnerInterface defines the interface for the serialized maintenance run
type MaintenanceRunnerInterface interface {
	Run(ctx context.Context) (*MaintenanceReport, error)
}

// PlanningServiceInterface defines the interface for planning service
type PlanningServiceInterface interface {
	AddPlanning(ctx context.Context, items []CreatePlanningRequest) *AddPlanningResult
	ModifyPlanning(ctx context.Context, req *ModifyPlanningRequest) (string, error)
	DeletePlanning(ctx context.Context, req *DeletePlanningRequest) error
	GetTodayPlanning(ctx context.Context) (*DayPlanning, error)
	GetWeekPlanning(ctx context.Context, from calendar.Date) ([]DayPlanning, error)
	GetDriverPlanningByDate(ctx context.Context, driverID uint, date calendar.Date) ([]models.Planning, error)
	GetHistoryPlanning(ctx context.Context, date calendar.Date) (*HistoryPlanning, error)
}

// DriverServiceInterface defines the interface for driver service
type DriverServiceInterface interface {
	GetAll(ctx context.Context) ([]models.Driver, error)
	GetByID(ctx context.Context, id uint) (*models.Driver, error)
	Create(ctx context.Context, req *DriverRequest) (*models.Driver, error)
	Update(ctx context.Context, id uint, req *DriverRequest) (*models.Driver, error)
	Delete(ctx context.Context, id uint) error
}

// NoteServiceInterface defines the interface for note service
type NoteServiceInterface interface {
	GetWeekNotes(ctx context.Context, from calendar.Date) ([]DayNote, error)
	ModifyOrAddNote(ctx context.Context, req *NoteRequest) error
}

// ArchiveServiceInterface defines the interface for archive service
type ArchiveServiceInterface interface {
	ArchiveOldPlannings(ctx context.Context) (*ArchiveReport, error)
}

// CalendarServiceInterface defines the interface for the iCalendar export
type CalendarServiceInterface interface {
	ExportDriverWeek(ctx context.Context, driverID uint, from calendar.Date) (string, error)
}
