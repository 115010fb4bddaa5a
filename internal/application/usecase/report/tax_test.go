// Package report contains the shift reconciliation and reporting use cases.
package report

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/hotel-ops/backend/internal/domain/error"
)

func TestDecompose(t *testing.T) {
	taxRate := decimal.NewFromFloat(0.16)
	feeRate := decimal.NewFromFloat(0.04)

	t.Run("decomposes a gross amount into subtotal, tax and service fee", func(t *testing.T) {
		gross := decimal.NewFromInt(2500)

		breakdown, err := Decompose(gross, taxRate, feeRate)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if got := breakdown.Subtotal.Round(2).StringFixed(2); got != "2083.33" {
			t.Errorf("expected subtotal 2083.33, got %s", got)
		}
		if got := breakdown.Tax.Round(2).StringFixed(2); got != "333.33" {
			t.Errorf("expected tax 333.33, got %s", got)
		}
		if got := breakdown.ServiceFee.Round(2).StringFixed(2); got != "83.33" {
			t.Errorf("expected service fee 83.33, got %s", got)
		}
		if !breakdown.Total.Equal(gross) {
			t.Errorf("expected total to equal gross %s, got %s", gross, breakdown.Total)
		}
	})

	t.Run("total always equals the original gross amount", func(t *testing.T) {
		amounts := []string{"0", "0.01", "1", "99.99", "1234.56", "2500", "1000000"}

		for _, raw := range amounts {
			gross := decimal.RequireFromString(raw)

			breakdown, err := Decompose(gross, taxRate, feeRate)
			if err != nil {
				t.Fatalf("gross %s: expected no error, got %v", raw, err)
			}

			if !breakdown.Total.Equal(gross) {
				t.Errorf("gross %s: expected total %s, got %s", raw, gross, breakdown.Total)
			}
		}
	})

	t.Run("rounded components sum back to the total within a cent", func(t *testing.T) {
		amounts := []string{"0.01", "0.03", "10.55", "2500", "333.33", "87654.21"}
		tolerance := decimal.RequireFromString("0.01")

		for _, raw := range amounts {
			gross := decimal.RequireFromString(raw)

			breakdown, err := Decompose(gross, taxRate, feeRate)
			if err != nil {
				t.Fatalf("gross %s: expected no error, got %v", raw, err)
			}

			sum := breakdown.Subtotal.Round(2).
				Add(breakdown.Tax.Round(2)).
				Add(breakdown.ServiceFee.Round(2))
			diff := sum.Sub(breakdown.Total.Round(2)).Abs()

			if diff.GreaterThan(tolerance) {
				t.Errorf("gross %s: rounded components sum to %s, off by %s", raw, sum, diff)
			}
		}
	})

	t.Run("zero rates leave the subtotal equal to the gross", func(t *testing.T) {
		gross := decimal.NewFromInt(100)

		breakdown, err := Decompose(gross, decimal.Zero, decimal.Zero)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !breakdown.Subtotal.Equal(gross) {
			t.Errorf("expected subtotal %s, got %s", gross, breakdown.Subtotal)
		}
		if !breakdown.Tax.IsZero() {
			t.Errorf("expected zero tax, got %s", breakdown.Tax)
		}
		if !breakdown.ServiceFee.IsZero() {
			t.Errorf("expected zero service fee, got %s", breakdown.ServiceFee)
		}
	})

	t.Run("honors configured rates different from the defaults", func(t *testing.T) {
		gross := decimal.NewFromInt(1180)

		breakdown, err := Decompose(gross, decimal.RequireFromString("0.18"), decimal.Zero)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if got := breakdown.Subtotal.Round(2).StringFixed(2); got != "1000.00" {
			t.Errorf("expected subtotal 1000.00, got %s", got)
		}
		if got := breakdown.Tax.Round(2).StringFixed(2); got != "180.00" {
			t.Errorf("expected tax 180.00, got %s", got)
		}
	})

	t.Run("rejects a negative tax rate", func(t *testing.T) {
		_, err := Decompose(decimal.NewFromInt(100), decimal.RequireFromString("-0.16"), feeRate)
		if err == nil {
			t.Fatal("expected an error for a negative tax rate")
		}
		if !errors.Is(err, domainerror.ErrNegativeRate) {
			t.Errorf("expected ErrNegativeRate, got %v", err)
		}

		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) {
			t.Fatal("expected a *ReportError")
		}
		if reportErr.Code != domainerror.ErrCodeNegativeRate {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeNegativeRate, reportErr.Code)
		}
	})

	t.Run("rejects a negative service-fee rate", func(t *testing.T) {
		_, err := Decompose(decimal.NewFromInt(100), decimal.Zero, decimal.RequireFromString("-0.04"))
		if err == nil {
			t.Fatal("expected an error for a negative service-fee rate")
		}
		if !errors.Is(err, domainerror.ErrNegativeRate) {
			t.Errorf("expected ErrNegativeRate, got %v", err)
		}
	})
}
