// Package valueobject contains domain value objects for the Hotel Ops system.
package valueobject

import (
	"time"

	"github.com/hotel-ops/backend/internal/domain/entity"
	domainerror "github.com/hotel-ops/backend/internal/domain/error"
)

// GroupKey selects how the detail sections of the rendered document are
// partitioned. Shift summaries are always computed per shift regardless.
type GroupKey string

const (
	GroupByShift       GroupKey = "turno"
	GroupByDate        GroupKey = "date"
	GroupByUser        GroupKey = "user"
	GroupByCurrency    GroupKey = "currency"
	GroupByPaymentType GroupKey = "paymentType"
)

// ReportFormat selects the output artifact of the export pipeline.
type ReportFormat string

const (
	// FormatDocument produces a binary PDF artifact.
	FormatDocument ReportFormat = "document"
	// FormatPrint produces an HTML payload intended for client-side printing.
	FormatPrint ReportFormat = "print"
	// FormatData returns the structured ReportDocument for programmatic use.
	FormatData ReportFormat = "data"
)

// RawReportConfig is the unvalidated configuration payload as supplied by
// the caller.
type RawReportConfig struct {
	DateFrom       time.Time
	DateTo         time.Time
	Shifts         []int
	Currencies     []entity.Currency
	PaymentTypes   []entity.PaymentType
	MovementTypes  []entity.MovementType
	GroupBy        GroupKey
	IncludeDetails bool
	ShowTotals     bool
	Format         ReportFormat
}

// ReportConfig is a validated, immutable description of the report to
// produce. Empty filter lists mean "no restriction", never "match nothing".
type ReportConfig struct {
	dateFrom       time.Time
	dateTo         time.Time
	shifts         []int
	currencies     []entity.Currency
	paymentTypes   []entity.PaymentType
	movementTypes  []entity.MovementType
	groupBy        GroupKey
	includeDetails bool
	showTotals     bool
	format         ReportFormat
}

// NewReportConfig validates the raw payload and returns an immutable config.
// It is the only gate through which a report request enters the engine; it
// fails before any data is fetched.
func NewReportConfig(raw RawReportConfig) (*ReportConfig, error) {
	if raw.DateFrom.IsZero() || raw.DateTo.IsZero() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMissingDateRange,
			"dateFrom and dateTo are required",
			domainerror.ErrMissingDateRange,
		)
	}

	if raw.DateTo.Before(raw.DateFrom) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"dateTo must not be before dateFrom",
			domainerror.ErrInvalidDateRange,
		)
	}

	for _, shift := range raw.Shifts {
		if shift < 0 {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeInvalidShiftNumber,
				"shift numbers must be zero or positive",
				domainerror.ErrInvalidShiftNumber,
			)
		}
	}

	for _, currency := range raw.Currencies {
		if !currency.IsValid() {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeInvalidCurrency,
				"unknown currency: "+string(currency),
				domainerror.ErrInvalidCurrency,
			)
		}
	}

	for _, payment := range raw.PaymentTypes {
		if !payment.IsValid() {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeInvalidPaymentType,
				"unknown payment type: "+string(payment),
				domainerror.ErrInvalidPaymentType,
			)
		}
	}

	for _, movementType := range raw.MovementTypes {
		if !movementType.IsValid() {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeInvalidMovementType,
				"unknown movement type: "+string(movementType),
				domainerror.ErrInvalidMovementType,
			)
		}
	}

	groupBy := raw.GroupBy
	if groupBy == "" {
		groupBy = GroupByShift
	}
	switch groupBy {
	case GroupByShift, GroupByDate, GroupByUser, GroupByCurrency, GroupByPaymentType:
	default:
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidGroupKey,
			"unknown grouping key: "+string(raw.GroupBy),
			domainerror.ErrInvalidGroupKey,
		)
	}

	format := raw.Format
	if format == "" {
		format = FormatDocument
	}
	switch format {
	case FormatDocument, FormatPrint, FormatData:
	default:
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidFormat,
			"unknown report format: "+string(raw.Format),
			domainerror.ErrInvalidFormat,
		)
	}

	return &ReportConfig{
		dateFrom:       raw.DateFrom,
		dateTo:         raw.DateTo,
		shifts:         append([]int(nil), raw.Shifts...),
		currencies:     append([]entity.Currency(nil), raw.Currencies...),
		paymentTypes:   append([]entity.PaymentType(nil), raw.PaymentTypes...),
		movementTypes:  append([]entity.MovementType(nil), raw.MovementTypes...),
		groupBy:        groupBy,
		includeDetails: raw.IncludeDetails,
		showTotals:     raw.ShowTotals,
		format:         format,
	}, nil
}

// DateFrom returns the inclusive start of the report range.
func (c *ReportConfig) DateFrom() time.Time { return c.dateFrom }

// DateTo returns the inclusive end of the report range.
func (c *ReportConfig) DateTo() time.Time { return c.dateTo }

// Shifts returns a copy of the shift filter. Empty means unrestricted.
func (c *ReportConfig) Shifts() []int { return append([]int(nil), c.shifts...) }

// Currencies returns a copy of the currency filter. Empty means unrestricted.
func (c *ReportConfig) Currencies() []entity.Currency {
	return append([]entity.Currency(nil), c.currencies...)
}

// PaymentTypes returns a copy of the payment-type filter. Empty means unrestricted.
func (c *ReportConfig) PaymentTypes() []entity.PaymentType {
	return append([]entity.PaymentType(nil), c.paymentTypes...)
}

// MovementTypes returns a copy of the movement-type filter. Empty means unrestricted.
func (c *ReportConfig) MovementTypes() []entity.MovementType {
	return append([]entity.MovementType(nil), c.movementTypes...)
}

// GroupBy returns the grouping key for the detail sections.
func (c *ReportConfig) GroupBy() GroupKey { return c.groupBy }

// IncludeDetails reports whether itemized movement tables are requested.
func (c *ReportConfig) IncludeDetails() bool { return c.includeDetails }

// ShowTotals reports whether the trailing totals section is requested.
func (c *ReportConfig) ShowTotals() bool { return c.showTotals }

// Format returns the requested output format.
func (c *ReportConfig) Format() ReportFormat { return c.format }

// MatchesShift reports whether the movement shift passes the shift filter.
func (c *ReportConfig) MatchesShift(shift *int) bool {
	if len(c.shifts) == 0 {
		return true
	}
	number := entity.UnassignedShiftNumber
	if shift != nil {
		number = *shift
	}
	for _, s := range c.shifts {
		if s == number {
			return true
		}
	}
	return false
}

// MatchesCurrency reports whether the currency passes the currency filter.
func (c *ReportConfig) MatchesCurrency(currency entity.Currency) bool {
	if len(c.currencies) == 0 {
		return true
	}
	for _, cur := range c.currencies {
		if cur == currency {
			return true
		}
	}
	return false
}

// MatchesPaymentType reports whether the channel passes the payment-type filter.
func (c *ReportConfig) MatchesPaymentType(payment entity.PaymentType) bool {
	if len(c.paymentTypes) == 0 {
		return true
	}
	for _, p := range c.paymentTypes {
		if p == payment {
			return true
		}
	}
	return false
}

// MatchesMovementType reports whether the type passes the movement-type filter.
func (c *ReportConfig) MatchesMovementType(movementType entity.MovementType) bool {
	if len(c.movementTypes) == 0 {
		return true
	}
	for _, t := range c.movementTypes {
		if t == movementType {
			return true
		}
	}
	return false
}
