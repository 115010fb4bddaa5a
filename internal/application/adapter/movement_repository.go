// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/hotel-ops/backend/internal/domain/entity"
)

// MovementFilter defines filter options for querying movements. Nil or empty
// members mean "no restriction".
type MovementFilter struct {
	DateFrom      time.Time
	DateTo        time.Time
	Shifts        []int
	Currencies    []entity.Currency
	PaymentTypes  []entity.PaymentType
	MovementTypes []entity.MovementType
}

// MovementRepository is the movement source consumed by the reporting engine.
// The engine never retries a failed fetch; a query failure fails the report.
type MovementRepository interface {
	// FindByRange retrieves the movements matching the filter, ordered by
	// occurrence timestamp ascending.
	FindByRange(ctx context.Context, filter MovementFilter) ([]entity.Movement, error)
}

// ShiftRepository provides shift display metadata.
type ShiftRepository interface {
	// FindAll returns every registered shift keyed by shift number.
	FindAll(ctx context.Context) (map[int]entity.Shift, error)
}
