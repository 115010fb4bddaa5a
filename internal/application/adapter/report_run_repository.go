package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReportRun is the audit record written for every report generation.
type ReportRun struct {
	ID          uuid.UUID
	GeneratedBy string
	DateFrom    time.Time
	DateTo      time.Time
	Shifts      []int
	Format      string
	RecordCount int
	Duration    time.Duration
	GeneratedAt time.Time
}

// ReportRunRepository records report generations for auditing. Failures here
// must never fail the report itself.
type ReportRunRepository interface {
	Record(ctx context.Context, run *ReportRun) error
}
