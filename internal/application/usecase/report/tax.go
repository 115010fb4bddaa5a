// Package report contains the shift reconciliation and reporting use cases.
package report

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/hotel-ops/backend/internal/domain/error"
)

// Default inclusive rates baked into historical gross amounts.
var (
	DefaultTaxRate        = decimal.NewFromFloat(0.16)
	DefaultServiceFeeRate = decimal.NewFromFloat(0.04)
)

// TaxBreakdown is the result of decomposing a gross, tax-inclusive amount.
// Total always equals the original gross amount exactly.
type TaxBreakdown struct {
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	ServiceFee decimal.Decimal
	Total      decimal.Decimal
}

// Decompose breaks a gross amount into its tax-exclusive components given
// the inclusive tax and service-fee rates:
//
//	subtotal = gross / (1 + taxRate + feeRate)
//	tax      = subtotal * taxRate
//	fee      = subtotal * feeRate
//
// No rounding is applied between steps; rounding happens only at the
// presentation edge so error never compounds. The only failure mode is a
// negative rate.
func Decompose(gross, taxRate, feeRate decimal.Decimal) (TaxBreakdown, error) {
	if taxRate.IsNegative() || feeRate.IsNegative() {
		return TaxBreakdown{}, domainerror.NewReportError(
			domainerror.ErrCodeNegativeRate,
			"tax and service-fee rates must not be negative",
			domainerror.ErrNegativeRate,
		)
	}

	divisor := decimal.NewFromInt(1).Add(taxRate).Add(feeRate)
	subtotal := gross.Div(divisor)

	return TaxBreakdown{
		Subtotal:   subtotal,
		Tax:        subtotal.Mul(taxRate),
		ServiceFee: subtotal.Mul(feeRate),
		Total:      gross,
	}, nil
}
