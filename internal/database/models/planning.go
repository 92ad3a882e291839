package models

import (
	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/recurrence"

	"gorm.io/gorm"
)

// Planning is one assignment of a driver on one date, optionally materialized from a recurrence
type Planning struct {
	BaseModel
	DriverID     uint          `json:"driver_id" gorm:"not null;index"`
	Date         calendar.Date `json:"date" gorm:"type:date;not null;index"`
	ClientName   string        `json:"client_name" gorm:"size:200"`
	StartTime    string        `json:"start_time" gorm:"size:10"`
	ReturnTime   string        `json:"return_time" gorm:"size:10"`
	Note         string        `json:"note" gorm:"type:text"`
	Destination  string        `json:"destination" gorm:"size:200"`
	LongDistance bool          `json:"long_distance" gorm:"default:false"`
	RecurrenceID *uint         `json:"recurrence_id" gorm:"index"`
}

// TableName returns the table name for Planning
func (Planning) TableName() string {
	return "plannings"
}

// BeforeSave stores "no recurrence" as NULL
func (p *Planning) BeforeSave(tx *gorm.DB) error {
	if p.RecurrenceID != nil && *p.RecurrenceID == 0 {
		p.RecurrenceID = nil
	}
	return nil
}

// AfterFind maps the legacy 0 sentinel to "no recurrence"
func (p *Planning) AfterFind(tx *gorm.DB) error {
	if p.RecurrenceID != nil && *p.RecurrenceID == 0 {
		p.RecurrenceID = nil
	}
	return nil
}

// HasRecurrence reports whether the planning belongs to a recurrence
func (p *Planning) HasRecurrence() bool {
	return p.RecurrenceID != nil
}

// CloneAt copies the payload of p to a new, unsaved planning at date for the given recurrence
func (p *Planning) CloneAt(date calendar.Date, recurrenceID *uint) Planning {
	clone := *p
	clone.BaseModel = BaseModel{}
	clone.Date = date
	clone.RecurrenceID = nil
	if recurrenceID != nil {
		id := *recurrenceID
		clone.RecurrenceID = &id
	}
	return clone
}

// PlanningWithFrequency is a planning joined with the pattern of its recurrence
type PlanningWithFrequency struct {
	Planning
	Frequency recurrence.Pattern `json:"frequency"`
}
