package persistence

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/hotel-ops/backend/internal/application/adapter"
	"github.com/hotel-ops/backend/internal/integration/persistence/model"
)

// reportRunRepository implements the adapter.ReportRunRepository interface.
type reportRunRepository struct {
	db *gorm.DB
}

// NewReportRunRepository creates a new report-run repository instance.
func NewReportRunRepository(db *gorm.DB) adapter.ReportRunRepository {
	return &reportRunRepository{
		db: db,
	}
}

// Record inserts the audit row for one report generation.
func (r *reportRunRepository) Record(ctx context.Context, run *adapter.ReportRun) error {
	shifts := make(pq.Int64Array, len(run.Shifts))
	for i, shift := range run.Shifts {
		shifts[i] = int64(shift)
	}

	row := &model.ReportRunModel{
		ID:          run.ID,
		GeneratedBy: run.GeneratedBy,
		DateFrom:    run.DateFrom,
		DateTo:      run.DateTo,
		Shifts:      shifts,
		Format:      run.Format,
		RecordCount: run.RecordCount,
		DurationMS:  run.Duration.Milliseconds(),
		GeneratedAt: run.GeneratedAt,
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to record report run: %w", err)
	}

	return nil
}
