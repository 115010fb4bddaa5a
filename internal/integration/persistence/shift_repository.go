package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hotel-ops/backend/internal/application/adapter"
	"github.com/hotel-ops/backend/internal/domain/entity"
	"github.com/hotel-ops/backend/internal/integration/persistence/model"
)

// shiftRepository implements the adapter.ShiftRepository interface.
type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository instance.
func NewShiftRepository(db *gorm.DB) adapter.ShiftRepository {
	return &shiftRepository{
		db: db,
	}
}

// FindAll returns every registered shift keyed by shift number.
func (r *shiftRepository) FindAll(ctx context.Context) (map[int]entity.Shift, error) {
	var models []model.ShiftModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}

	shifts := make(map[int]entity.Shift, len(models))
	for i := range models {
		shifts[models[i].Number] = models[i].ToEntity()
	}

	return shifts, nil
}
