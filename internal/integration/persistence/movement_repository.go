// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hotel-ops/backend/internal/application/adapter"
	"github.com/hotel-ops/backend/internal/domain/entity"
	"github.com/hotel-ops/backend/internal/integration/persistence/model"
)

// movementRepository implements the adapter.MovementRepository interface.
type movementRepository struct {
	db *gorm.DB
}

// NewMovementRepository creates a new movement repository instance.
func NewMovementRepository(db *gorm.DB) adapter.MovementRepository {
	return &movementRepository{
		db: db,
	}
}

// FindByRange retrieves the movements matching the filter, ordered by
// occurrence timestamp ascending. Empty filter members add no restriction,
// so an unrestricted query returns the same rows as one explicitly listing
// every value.
func (r *movementRepository) FindByRange(
	ctx context.Context,
	filter adapter.MovementFilter,
) ([]entity.Movement, error) {
	query := r.db.WithContext(ctx).
		Model(&model.MovementModel{}).
		Where("occurred_at >= ?", filter.DateFrom).
		Where("occurred_at < ?", filter.DateTo.AddDate(0, 0, 1)) // dateTo is inclusive

	if len(filter.Shifts) > 0 {
		// The sentinel shift 0 matches movements recorded without a shift.
		containsUnassigned := false
		for _, shift := range filter.Shifts {
			if shift == entity.UnassignedShiftNumber {
				containsUnassigned = true
				break
			}
		}
		if containsUnassigned {
			query = query.Where("shift IN ? OR shift IS NULL", filter.Shifts)
		} else {
			query = query.Where("shift IN ?", filter.Shifts)
		}
	}

	if len(filter.Currencies) > 0 {
		query = query.Where("currency IN ?", filter.Currencies)
	}

	if len(filter.PaymentTypes) > 0 {
		query = query.Where("payment_type IN ?", filter.PaymentTypes)
	}

	if len(filter.MovementTypes) > 0 {
		query = query.Where("type IN ?", filter.MovementTypes)
	}

	var models []model.MovementModel
	if err := query.Order("occurred_at ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to query movements: %w", err)
	}

	movements := make([]entity.Movement, len(models))
	for i := range models {
		movements[i] = models[i].ToEntity()
	}

	return movements, nil
}
