// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementType represents the kind of monetary movement recorded for a shift.
type MovementType string

const (
	MovementTypePayment        MovementType = "payment"
	MovementTypeRoomCharge     MovementType = "room_charge"
	MovementTypeExtraCharge    MovementType = "extra_charge"
	MovementTypeAdvanceDeposit MovementType = "advance_deposit"
	MovementTypeRefund         MovementType = "refund"
	MovementTypeExpense        MovementType = "expense"
	MovementTypeCancellation   MovementType = "cancellation"
)

// Currency represents a currency accepted by the hotel.
type Currency string

const (
	CurrencyMXN Currency = "MXN"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// KnownCurrencies lists every currency the reporting engine accounts for.
// Currency-keyed totals always carry an entry for each of these, zero-valued
// when the currency is not in play, so downstream summation never needs to
// special-case missing keys.
var KnownCurrencies = []Currency{CurrencyMXN, CurrencyUSD, CurrencyEUR}

// PaymentType represents the channel a movement was settled through.
type PaymentType string

const (
	PaymentTypeCash       PaymentType = "cash"
	PaymentTypeCreditCard PaymentType = "credit_card"
	PaymentTypeDebitCard  PaymentType = "debit_card"
	PaymentTypeTransfer   PaymentType = "transfer"
	PaymentTypeOther      PaymentType = "other"
)

// KnownPaymentTypes lists every payment channel the reporting engine accounts for.
var KnownPaymentTypes = []PaymentType{
	PaymentTypeCash,
	PaymentTypeCreditCard,
	PaymentTypeDebitCard,
	PaymentTypeTransfer,
	PaymentTypeOther,
}

// MovementTypeInfo holds the intrinsic, fixed properties of a movement type:
// whether it represents income or an outflow, its reconciliation category,
// and its human display label.
type MovementTypeInfo struct {
	IsIncome bool
	Category string
	Label    string
}

// movementTypeTable is the single source of truth for movement classification.
// Sign and categorization are never inferred from the amount.
var movementTypeTable = map[MovementType]MovementTypeInfo{
	MovementTypePayment:        {IsIncome: true, Category: "payment", Label: "Pago"},
	MovementTypeRoomCharge:     {IsIncome: true, Category: "charge", Label: "Cargo a habitación"},
	MovementTypeExtraCharge:    {IsIncome: true, Category: "charge", Label: "Cargo extra"},
	MovementTypeAdvanceDeposit: {IsIncome: true, Category: "payment", Label: "Anticipo"},
	MovementTypeRefund:         {IsIncome: false, Category: "refund", Label: "Reembolso"},
	MovementTypeExpense:        {IsIncome: false, Category: "expense", Label: "Egreso"},
	MovementTypeCancellation:   {IsIncome: false, Category: "refund", Label: "Cancelación"},
}

// Info returns the classification entry for the movement type and whether
// the type belongs to the closed set of known types.
func (t MovementType) Info() (MovementTypeInfo, bool) {
	info, ok := movementTypeTable[t]
	return info, ok
}

// IsValid reports whether the movement type belongs to the closed set.
func (t MovementType) IsValid() bool {
	_, ok := movementTypeTable[t]
	return ok
}

// IsValid reports whether the currency is one of the known currencies.
func (c Currency) IsValid() bool {
	for _, known := range KnownCurrencies {
		if c == known {
			return true
		}
	}
	return false
}

// IsValid reports whether the payment type is one of the known channels.
func (p PaymentType) IsValid() bool {
	for _, known := range KnownPaymentTypes {
		if p == known {
			return true
		}
	}
	return false
}

// Movement represents a single recorded monetary event attributed to a shift.
type Movement struct {
	ID          uuid.UUID
	Type        MovementType
	Currency    Currency
	PaymentType PaymentType
	Amount      decimal.Decimal // Gross, tax-inclusive amount actually charged or paid
	OccurredAt  time.Time
	Shift       *int // Nil when the movement was recorded outside a shift
	UserName    string
	Reference   string
	Concept     string
	BookingName string
	GuestName   string
}

// CounterpartyName returns the display name of the movement's counterparty,
// preferring the booking over the guest.
func (m *Movement) CounterpartyName() string {
	if m.BookingName != "" {
		return m.BookingName
	}
	return m.GuestName
}

// DecomposedMovement is a Movement broken apart into its tax-exclusive
// components. Total always equals the original gross amount; decomposition
// never changes the paid amount.
type DecomposedMovement struct {
	Movement
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	ServiceFee decimal.Decimal
	Total      decimal.Decimal
	IsIncome   bool
	TypeLabel  string
}

// SignedTotal returns the total negated for outflow movements, for display
// in itemized tables.
func (d *DecomposedMovement) SignedTotal() decimal.Decimal {
	if d.IsIncome {
		return d.Total
	}
	return d.Total.Neg()
}
