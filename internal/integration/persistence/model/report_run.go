package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ReportRunModel represents the report_runs audit table in the database.
type ReportRunModel struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	GeneratedBy string        `gorm:"type:varchar(120);not null"`
	DateFrom    time.Time     `gorm:"type:date;not null"`
	DateTo      time.Time     `gorm:"type:date;not null"`
	Shifts      pq.Int64Array `gorm:"type:integer[]"`
	Format      string        `gorm:"type:varchar(10);not null"`
	RecordCount int           `gorm:"not null"`
	DurationMS  int64         `gorm:"not null"`
	GeneratedAt time.Time     `gorm:"not null;index"`
}

// TableName returns the table name for the ReportRunModel.
func (ReportRunModel) TableName() string {
	return "report_runs"
}
