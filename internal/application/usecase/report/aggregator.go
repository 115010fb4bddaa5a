package report

import (
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/hotel-ops/backend/internal/domain/entity"
	"github.com/hotel-ops/backend/internal/domain/valueobject"
)

// ShiftBucket accumulates the decomposed movements of a single shift.
type ShiftBucket struct {
	Number        int
	Name          string
	Totals        entity.CurrencyTotals
	ByPaymentType entity.PaymentTotals
	Movements     []entity.DecomposedMovement
	PaymentCount  int
	RefundCount   int
}

// Aggregation is the outcome of bucketing a movement list by shift.
type Aggregation struct {
	Buckets map[int]*ShiftBucket
	Skipped int
}

// Aggregator groups decomposed movements into shift buckets.
type Aggregator struct {
	taxRate    decimal.Decimal
	feeRate    decimal.Decimal
	shiftNames map[int]string
}

// NewAggregator creates an aggregator with the given inclusive rates and the
// shift number → display name lookup.
func NewAggregator(taxRate, feeRate decimal.Decimal, shiftNames map[int]string) *Aggregator {
	return &Aggregator{
		taxRate:    taxRate,
		feeRate:    feeRate,
		shiftNames: shiftNames,
	}
}

// Aggregate filters the movement list against the config, classifies each
// movement through the static movement-type table, decomposes its gross
// amount and assigns it to its shift bucket. Movements without a shift
// reference go to the sentinel bucket 0 instead of being dropped. Malformed
// movements (unknown type, currency or payment type, negative gross) are
// skipped with a warning; one bad record never aborts a shift's
// reconciliation.
func (a *Aggregator) Aggregate(movements []entity.Movement, cfg *valueobject.ReportConfig) *Aggregation {
	result := &Aggregation{Buckets: make(map[int]*ShiftBucket)}

	for _, movement := range movements {
		if !matches(cfg, &movement) {
			continue
		}

		info, ok := movement.Type.Info()
		if !ok {
			slog.Warn("skipping movement with unknown type",
				"movement_id", movement.ID,
				"type", movement.Type,
			)
			result.Skipped++
			continue
		}

		if !movement.Currency.IsValid() {
			slog.Warn("skipping movement with unknown currency",
				"movement_id", movement.ID,
				"currency", movement.Currency,
			)
			result.Skipped++
			continue
		}

		if !movement.PaymentType.IsValid() {
			slog.Warn("skipping movement with unknown payment type",
				"movement_id", movement.ID,
				"payment_type", movement.PaymentType,
			)
			result.Skipped++
			continue
		}

		if movement.Amount.IsNegative() {
			slog.Warn("skipping movement with negative gross amount",
				"movement_id", movement.ID,
				"amount", movement.Amount.String(),
			)
			result.Skipped++
			continue
		}

		breakdown, err := Decompose(movement.Amount, a.taxRate, a.feeRate)
		if err != nil {
			slog.Warn("skipping movement that failed decomposition",
				"movement_id", movement.ID,
				"error", err,
			)
			result.Skipped++
			continue
		}

		bucket := a.bucketFor(result, movement.Shift)
		decomposed := entity.DecomposedMovement{
			Movement:   movement,
			Subtotal:   breakdown.Subtotal,
			Tax:        breakdown.Tax,
			ServiceFee: breakdown.ServiceFee,
			Total:      breakdown.Total,
			IsIncome:   info.IsIncome,
			TypeLabel:  info.Label,
		}

		bucket.Movements = append(bucket.Movements, decomposed)
		bucket.Totals.Add(movement.Currency, breakdown.Total, info.IsIncome)
		bucket.ByPaymentType.Add(movement.PaymentType, movement.Currency, breakdown.Total, info.IsIncome)

		if info.IsIncome {
			bucket.PaymentCount++
		} else {
			bucket.RefundCount++
		}
	}

	// Rows inside a bucket are ordered by occurrence timestamp ascending so
	// two generations over the same snapshot render identically.
	for _, bucket := range result.Buckets {
		sortMovements(bucket.Movements)
	}

	return result
}

// bucketFor returns the bucket for the movement's shift, creating it on
// first use.
func (a *Aggregator) bucketFor(result *Aggregation, shift *int) *ShiftBucket {
	number := entity.UnassignedShiftNumber
	if shift != nil {
		number = *shift
	}

	bucket, ok := result.Buckets[number]
	if !ok {
		bucket = &ShiftBucket{
			Number:        number,
			Name:          entity.ShiftDisplayName(number, a.shiftNames[number]),
			Totals:        entity.NewCurrencyTotals(),
			ByPaymentType: entity.NewPaymentTotals(),
		}
		result.Buckets[number] = bucket
	}
	return bucket
}

// matches applies every config filter. Unrestricted filters aggregate
// identically to filters explicitly listing every possible value.
func matches(cfg *valueobject.ReportConfig, movement *entity.Movement) bool {
	return cfg.MatchesShift(movement.Shift) &&
		cfg.MatchesCurrency(movement.Currency) &&
		cfg.MatchesPaymentType(movement.PaymentType) &&
		cfg.MatchesMovementType(movement.Type)
}

func sortMovements(movements []entity.DecomposedMovement) {
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].OccurredAt.Before(movements[j].OccurredAt)
	})
}
