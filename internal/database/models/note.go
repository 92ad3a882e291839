package models

import (
	"driver-planning-backend/internal/calendar"
)

// Note is the free text attached to one planning day
type Note struct {
	Date calendar.Date `json:"date" gorm:"type:date;primaryKey"`
	Note string        `json:"note" gorm:"type:text"`
}

// TableName returns the table name for Note
func (Note) TableName() string {
	return "planning_notes"
}
