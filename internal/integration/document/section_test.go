package document

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-ops/backend/internal/domain/entity"
)

func intPtr(n int) *int { return &n }

func decomposedRow(shift *int, user string, currency entity.Currency, occurredAt time.Time) entity.DecomposedMovement {
	gross := decimal.NewFromInt(120)
	return entity.DecomposedMovement{
		Movement: entity.Movement{
			ID:          uuid.New(),
			Type:        entity.MovementTypePayment,
			Currency:    currency,
			PaymentType: entity.PaymentTypeCash,
			Amount:      gross,
			OccurredAt:  occurredAt,
			Shift:       shift,
			UserName:    user,
			Concept:     "Hospedaje",
		},
		Subtotal:   decimal.NewFromInt(100),
		Tax:        decimal.NewFromInt(16),
		ServiceFee: decimal.NewFromInt(4),
		Total:      gross,
		IsIncome:   true,
		TypeLabel:  "Pago",
	}
}

func summaryFor(number int, name string, movementCount int) entity.ShiftSummary {
	return entity.ShiftSummary{
		Number:        number,
		Name:          name,
		Totals:        entity.NewCurrencyTotals(),
		ByPaymentType: entity.NewPaymentTotals(),
		MovementCount: movementCount,
	}
}

func TestBuildSections_ByShift(t *testing.T) {
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("produces one section per shift with its detail rows", func(t *testing.T) {
		doc := &entity.ReportDocument{
			GroupBy:       "turno",
			IncludeDetail: true,
			Summaries: []entity.ShiftSummary{
				summaryFor(1, "Matutino", 2),
				summaryFor(2, "Vespertino", 1),
			},
			Movements: []entity.DecomposedMovement{
				decomposedRow(intPtr(1), "ana", entity.CurrencyMXN, day),
				decomposedRow(intPtr(1), "ana", entity.CurrencyMXN, day.Add(time.Hour)),
				decomposedRow(intPtr(2), "luis", entity.CurrencyMXN, day.Add(9*time.Hour)),
			},
		}

		sections := BuildSections(doc)

		require.Len(t, sections, 2)
		assert.Equal(t, "Matutino", sections[0].Title)
		assert.Len(t, sections[0].Rows, 2)
		assert.Equal(t, "Vespertino", sections[1].Title)
		assert.Len(t, sections[1].Rows, 1)
		require.NotNil(t, sections[0].Summary)
		assert.Equal(t, 1, sections[0].Summary.Number)
	})

	t.Run("skips empty shifts only when unrestricted and without details", func(t *testing.T) {
		doc := &entity.ReportDocument{
			GroupBy: "turno",
			Summaries: []entity.ShiftSummary{
				summaryFor(1, "Matutino", 1),
				summaryFor(2, "Vespertino", 0),
			},
		}

		sections := BuildSections(doc)
		require.Len(t, sections, 1)
		assert.Equal(t, "Matutino", sections[0].Title)
	})

	t.Run("explicitly requested empty shifts always show", func(t *testing.T) {
		doc := &entity.ReportDocument{
			GroupBy: "turno",
			Shifts:  []int{1, 2},
			Summaries: []entity.ShiftSummary{
				summaryFor(1, "Matutino", 1),
				summaryFor(2, "Vespertino", 0),
			},
		}

		sections := BuildSections(doc)
		require.Len(t, sections, 2)
		assert.Equal(t, "Vespertino", sections[1].Title)
		assert.Equal(t, 0, sections[1].MovementCount)
	})

	t.Run("empty shifts show when details are requested", func(t *testing.T) {
		doc := &entity.ReportDocument{
			GroupBy:       "turno",
			IncludeDetail: true,
			Summaries: []entity.ShiftSummary{
				summaryFor(1, "Matutino", 0),
			},
		}

		sections := BuildSections(doc)
		require.Len(t, sections, 1)
		assert.Empty(t, sections[0].Rows)
	})
}

func TestBuildSections_ByKey(t *testing.T) {
	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)

	baseDoc := func(groupBy string) *entity.ReportDocument {
		return &entity.ReportDocument{
			GroupBy:       groupBy,
			IncludeDetail: true,
			Summaries:     []entity.ShiftSummary{summaryFor(1, "Matutino", 3)},
			Movements: []entity.DecomposedMovement{
				decomposedRow(intPtr(1), "ana", entity.CurrencyMXN, day1),
				decomposedRow(intPtr(1), "luis", entity.CurrencyUSD, day2),
				decomposedRow(intPtr(1), "ana", entity.CurrencyMXN, day2),
			},
		}
	}

	t.Run("groups by calendar date with sorted keys", func(t *testing.T) {
		sections := BuildSections(baseDoc("date"))

		require.Len(t, sections, 2)
		assert.Equal(t, "2026-03-10", sections[0].Key)
		assert.Equal(t, "2026-03-11", sections[1].Key)
		assert.Len(t, sections[1].Rows, 2)
	})

	t.Run("groups by user", func(t *testing.T) {
		sections := BuildSections(baseDoc("user"))

		require.Len(t, sections, 2)
		assert.Equal(t, "ana", sections[0].Key)
		assert.Equal(t, "luis", sections[1].Key)
	})

	t.Run("groups by currency", func(t *testing.T) {
		sections := BuildSections(baseDoc("currency"))

		require.Len(t, sections, 2)
		assert.Equal(t, "MXN", sections[0].Key)
		assert.Equal(t, "USD", sections[1].Key)
	})

	t.Run("movements without a user fall under sistema", func(t *testing.T) {
		doc := baseDoc("user")
		doc.Movements = append(doc.Movements, decomposedRow(intPtr(1), "", entity.CurrencyMXN, day1))

		sections := BuildSections(doc)

		keys := make([]string, len(sections))
		for i, section := range sections {
			keys[i] = section.Key
		}
		assert.Contains(t, keys, "sistema")
	})

	t.Run("omits detail rows when details are off", func(t *testing.T) {
		doc := baseDoc("date")
		doc.IncludeDetail = false

		sections := BuildSections(doc)
		require.NotEmpty(t, sections)
		for _, section := range sections {
			assert.Empty(t, section.Rows)
			assert.NotZero(t, section.MovementCount)
		}
	})
}
