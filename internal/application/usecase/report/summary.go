package report

import (
	"sort"

	"github.com/hotel-ops/backend/internal/domain/entity"
)

// BuildSummaries converts shift buckets into summary records in ascending
// shift-number order and computes the grand-total record across all shifts.
//
// Shifts explicitly requested in the filter that saw no matching movements
// still produce an all-zero summary, so requesting turnos 1,2,3 always
// yields exactly three summaries.
func BuildSummaries(
	agg *Aggregation,
	requestedShifts []int,
	shiftNames map[int]string,
) ([]entity.ShiftSummary, entity.CurrencyTotals) {
	numbers := make(map[int]struct{}, len(agg.Buckets)+len(requestedShifts))
	for number := range agg.Buckets {
		numbers[number] = struct{}{}
	}
	for _, number := range requestedShifts {
		numbers[number] = struct{}{}
	}

	ordered := make([]int, 0, len(numbers))
	for number := range numbers {
		ordered = append(ordered, number)
	}
	sort.Ints(ordered)

	summaries := make([]entity.ShiftSummary, 0, len(ordered))
	grand := entity.NewCurrencyTotals()

	for _, number := range ordered {
		bucket, ok := agg.Buckets[number]
		if !ok {
			// Explicitly requested shift with zero matching movements.
			summaries = append(summaries, entity.ShiftSummary{
				Number:        number,
				Name:          entity.ShiftDisplayName(number, shiftNames[number]),
				Totals:        entity.NewCurrencyTotals(),
				ByPaymentType: entity.NewPaymentTotals(),
			})
			continue
		}

		summary := entity.ShiftSummary{
			Number:        bucket.Number,
			Name:          bucket.Name,
			Totals:        bucket.Totals,
			ByPaymentType: bucket.ByPaymentType,
			MovementCount: len(bucket.Movements),
			PaymentCount:  bucket.PaymentCount,
			RefundCount:   bucket.RefundCount,
		}
		summaries = append(summaries, summary)
		grand.Merge(bucket.Totals)
	}

	return summaries, grand
}
