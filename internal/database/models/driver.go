package models

// Driver is a person plannings are assigned to
type Driver struct {
	BaseModel
	Name  string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Color string `json:"color" gorm:"size:20" validate:"max=20"`
}

// TableName returns the table name for Driver
func (Driver) TableName() string {
	return "drivers"
}
