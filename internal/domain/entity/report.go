package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportDocument is the fully assembled shift report, ready for rendering.
// It is constructed fresh per request and never mutated afterwards.
type ReportDocument struct {
	Title         string
	HotelName     string
	DateFrom      time.Time
	DateTo        time.Time
	Shifts        []int // Echo of the shift filter, empty = all
	IncludeDetail bool
	ShowTotals    bool
	GroupBy       string

	Summaries   []ShiftSummary
	GrandTotals CurrencyTotals
	Movements   []DecomposedMovement

	GeneratedAt time.Time
	GeneratedBy string
	RecordCount int
}

// GrandNet returns the grand total net for a currency, rounded for display.
func (d *ReportDocument) GrandNet(currency Currency) decimal.Decimal {
	return d.GrandTotals[currency].Net.Round(2)
}
