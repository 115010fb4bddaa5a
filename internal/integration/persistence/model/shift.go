package model

import "github.com/hotel-ops/backend/internal/domain/entity"

// ShiftModel represents the shifts table in the database.
type ShiftModel struct {
	Number      int    `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(60);not null"`
	WindowStart string `gorm:"type:varchar(5)"`
	WindowEnd   string `gorm:"type:varchar(5)"`
}

// TableName returns the table name for the ShiftModel.
func (ShiftModel) TableName() string {
	return "shifts"
}

// ToEntity converts a ShiftModel to a domain Shift entity.
func (m *ShiftModel) ToEntity() entity.Shift {
	return entity.Shift{
		Number:      m.Number,
		Name:        m.Name,
		WindowStart: m.WindowStart,
		WindowEnd:   m.WindowEnd,
	}
}
