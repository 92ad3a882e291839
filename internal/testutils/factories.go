package testutils

import (
	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"
	"driver-planning-backend/internal/recurrence"
)

// DriverFactory provides methods to create test Driver data
type DriverFactory struct{}

// NewDriverFactory creates a new DriverFactory
func NewDriverFactory() *DriverFactory {
	return &DriverFactory{}
}

// Create creates a test Driver with default values
func (f *DriverFactory) Create() *models.Driver {
	return &models.Driver{
		Name:  "Test Driver",
		Color: "#3366ff",
	}
}

// WithName sets a custom name for the driver
func (f *DriverFactory) WithName(name string) *models.Driver {
	driver := f.Create()
	driver.Name = name
	return driver
}

// PlanningFactory provides methods to create test Planning data
type PlanningFactory struct{}

// NewPlanningFactory creates a new PlanningFactory
func NewPlanningFactory() *PlanningFactory {
	return &PlanningFactory{}
}

// Create creates a test Planning with default values
func (f *PlanningFactory) Create() *models.Planning {
	return &models.Planning{
		DriverID:    1,
		Date:        calendar.NewDate(2025, 10, 15),
		ClientName:  "Mme Durand",
		StartTime:   "08:30",
		ReturnTime:  "11:00",
		Destination: "Hôpital Nord",
	}
}

// WithDriverAndDate sets the driver and date of the planning
func (f *PlanningFactory) WithDriverAndDate(driverID uint, date calendar.Date) *models.Planning {
	planning := f.Create()
	planning.DriverID = driverID
	planning.Date = date
	return planning
}

// WithRecurrence attaches the planning to a recurrence
func (f *PlanningFactory) WithRecurrence(recurrenceID uint, date calendar.Date) *models.Planning {
	planning := f.Create()
	planning.Date = date
	planning.RecurrenceID = &recurrenceID
	return planning
}

// RecurrenceFactory provides methods to create test Recurrence data
type RecurrenceFactory struct{}

// NewRecurrenceFactory creates a new RecurrenceFactory
func NewRecurrenceFactory() *RecurrenceFactory {
	return &RecurrenceFactory{}
}

// Create creates a test Recurrence on Mondays, Tuesdays and Wednesdays
func (f *RecurrenceFactory) Create() *models.Recurrence {
	return f.WithPattern(calendar.NewDate(2025, 10, 15), recurrence.Pattern{1, 2, 3})
}

// WithPattern creates a recurrence anchored on start with the given pattern.
// NextDay is the second occurrence, or the zero date when there is none.
func (f *RecurrenceFactory) WithPattern(start calendar.Date, pattern recurrence.Pattern) *models.Recurrence {
	rec := &models.Recurrence{
		Frequency: pattern,
		StartDate: start,
	}
	if set, err := recurrence.NewWeekdaySet(pattern); err == nil {
		if dates := recurrence.Generate(start, set); len(dates) > 1 {
			rec.NextDay = dates[1]
		}
	}
	return rec
}
