package models

import (
	"encoding/json"
	"fmt"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/recurrence"

	"gorm.io/datatypes"
)

// Recurrence is the weekly definition shared by the plannings of one series.
// NextDay is the zero date when the series has no unconsumed occurrence left.
type Recurrence struct {
	BaseModel
	Frequency recurrence.Pattern `json:"frequency" gorm:"type:text;not null;default:'[]'"`
	StartDate calendar.Date      `json:"start_date" gorm:"type:date;not null"`
	NextDay   calendar.Date      `json:"next_day" gorm:"type:date"`
}

// TableName returns the table name for Recurrence
func (Recurrence) TableName() string {
	return "recurrences"
}

// ExcludedDays holds the occurrence dates of a recurrence that must never be materialized again
type ExcludedDays struct {
	BaseModel
	RecurrenceID uint           `json:"recurrence_id" gorm:"not null;uniqueIndex"`
	Dates        datatypes.JSON `json:"dates" gorm:"type:text;not null"`
}

// TableName returns the table name for ExcludedDays
func (ExcludedDays) TableName() string {
	return "recurrence_excluded_days"
}

// DateList decodes the stored JSON list of dd/MM/yyyy dates.
func (e *ExcludedDays) DateList() ([]calendar.Date, error) {
	if e == nil || len(e.Dates) == 0 {
		return []calendar.Date{}, nil
	}
	var dates []calendar.Date
	if err := json.Unmarshal(e.Dates, &dates); err != nil {
		return nil, fmt.Errorf("decode excluded days of recurrence %d: %w", e.RecurrenceID, err)
	}
	return dates, nil
}

// EncodeDates builds the JSON column value for a list of dates.
func EncodeDates(dates []calendar.Date) (datatypes.JSON, error) {
	if dates == nil {
		dates = []calendar.Date{}
	}
	data, err := json.Marshal(dates)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}
