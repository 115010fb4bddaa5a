package entity

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// UnassignedShiftNumber is the sentinel bucket for movements recorded without
// a shift reference. They are aggregated here rather than dropped so report
// totals never silently lose records.
const UnassignedShiftNumber = 0

// UnassignedShiftName is the display name of the sentinel bucket.
const UnassignedShiftName = "Sin turno"

// Shift represents an operating window (morning/evening/night) to which
// monetary movements are attributed for reconciliation.
type Shift struct {
	Number      int
	Name        string
	WindowStart string // "HH:MM", informational only
	WindowEnd   string
}

// ShiftDisplayName returns the shift name, falling back to "Turno N" when
// the shift has no registered metadata.
func ShiftDisplayName(number int, name string) string {
	if name != "" {
		return name
	}
	if number == UnassignedShiftNumber {
		return UnassignedShiftName
	}
	return "Turno " + strconv.Itoa(number)
}

// CurrencyAmounts holds the reconciled totals for one currency.
// Net is always Income minus Expenses.
type CurrencyAmounts struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// CurrencyTotals maps every known currency to its totals. Entries for all
// known currencies are always present, zero-valued when the currency saw no
// activity.
type CurrencyTotals map[Currency]CurrencyAmounts

// NewCurrencyTotals returns a CurrencyTotals with a zero entry per known currency.
func NewCurrencyTotals() CurrencyTotals {
	totals := make(CurrencyTotals, len(KnownCurrencies))
	for _, c := range KnownCurrencies {
		totals[c] = CurrencyAmounts{
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
			Net:      decimal.Zero,
		}
	}
	return totals
}

// Add accumulates an amount as income or expense for the given currency and
// keeps Net consistent.
func (t CurrencyTotals) Add(currency Currency, amount decimal.Decimal, isIncome bool) {
	entry := t[currency]
	if isIncome {
		entry.Income = entry.Income.Add(amount)
	} else {
		entry.Expenses = entry.Expenses.Add(amount)
	}
	entry.Net = entry.Income.Sub(entry.Expenses)
	t[currency] = entry
}

// Merge adds another CurrencyTotals into this one, currency by currency.
func (t CurrencyTotals) Merge(other CurrencyTotals) {
	for currency, amounts := range other {
		entry := t[currency]
		entry.Income = entry.Income.Add(amounts.Income)
		entry.Expenses = entry.Expenses.Add(amounts.Expenses)
		entry.Net = entry.Income.Sub(entry.Expenses)
		t[currency] = entry
	}
}

// PaymentTotals holds signed running sums per payment type per currency.
type PaymentTotals map[PaymentType]map[Currency]decimal.Decimal

// NewPaymentTotals returns a PaymentTotals with a zero entry per known
// payment type and currency, matching the always-present shape of
// CurrencyTotals.
func NewPaymentTotals() PaymentTotals {
	totals := make(PaymentTotals, len(KnownPaymentTypes))
	for _, p := range KnownPaymentTypes {
		byCurrency := make(map[Currency]decimal.Decimal, len(KnownCurrencies))
		for _, c := range KnownCurrencies {
			byCurrency[c] = decimal.Zero
		}
		totals[p] = byCurrency
	}
	return totals
}

// Add accumulates a signed amount for the payment type and currency.
func (t PaymentTotals) Add(payment PaymentType, currency Currency, amount decimal.Decimal, isIncome bool) {
	if !isIncome {
		amount = amount.Neg()
	}
	t[payment][currency] = t[payment][currency].Add(amount)
}

// ShiftSummary is the reconciliation record for a single shift.
type ShiftSummary struct {
	Number        int
	Name          string
	Totals        CurrencyTotals
	ByPaymentType PaymentTotals
	MovementCount int
	PaymentCount  int
	RefundCount   int
}

// PrimaryCurrency returns the currency with the largest absolute net for the
// shift, defaulting to MXN when the shift had no activity.
func (s *ShiftSummary) PrimaryCurrency() Currency {
	primary := CurrencyMXN
	largest := decimal.Zero
	for _, c := range KnownCurrencies {
		abs := s.Totals[c].Net.Abs()
		if abs.GreaterThan(largest) {
			largest = abs
			primary = c
		}
	}
	return primary
}
