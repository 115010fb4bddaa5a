// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/hotel-ops/backend/internal/domain/entity"
	domainerror "github.com/hotel-ops/backend/internal/domain/error"
	"github.com/hotel-ops/backend/internal/domain/valueobject"
)

// ErrorResponse represents an API error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ShiftReportRequest represents the report configuration payload.
type ShiftReportRequest struct {
	DateFrom       string   `json:"dateFrom" binding:"required"`
	DateTo         string   `json:"dateTo" binding:"required"`
	Turnos         []int    `json:"turnos"`
	Currencies     []string `json:"currencies"`
	PaymentTypes   []string `json:"paymentTypes"`
	MovementTypes  []string `json:"movementTypes"`
	GroupBy        string   `json:"groupBy"`
	IncludeDetails bool     `json:"includeDetails"`
	ShowTotals     bool     `json:"showTotals"`
	Format         string   `json:"format"`
	EmailTo        string   `json:"emailTo"`
}

// ToRawConfig converts the request into the unvalidated domain payload.
// Only date parsing happens here; everything else is validated by the
// ReportConfig value object.
func (r *ShiftReportRequest) ToRawConfig() (valueobject.RawReportConfig, error) {
	dateFrom, err := time.Parse("2006-01-02", r.DateFrom)
	if err != nil {
		return valueobject.RawReportConfig{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateFormat,
			"invalid dateFrom, expected YYYY-MM-DD",
			domainerror.ErrInvalidDateFormat,
		)
	}

	dateTo, err := time.Parse("2006-01-02", r.DateTo)
	if err != nil {
		return valueobject.RawReportConfig{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateFormat,
			"invalid dateTo, expected YYYY-MM-DD",
			domainerror.ErrInvalidDateFormat,
		)
	}

	currencies := make([]entity.Currency, len(r.Currencies))
	for i, c := range r.Currencies {
		currencies[i] = entity.Currency(c)
	}

	paymentTypes := make([]entity.PaymentType, len(r.PaymentTypes))
	for i, p := range r.PaymentTypes {
		paymentTypes[i] = entity.PaymentType(p)
	}

	movementTypes := make([]entity.MovementType, len(r.MovementTypes))
	for i, t := range r.MovementTypes {
		movementTypes[i] = entity.MovementType(t)
	}

	return valueobject.RawReportConfig{
		DateFrom:       dateFrom,
		DateTo:         dateTo,
		Shifts:         r.Turnos,
		Currencies:     currencies,
		PaymentTypes:   paymentTypes,
		MovementTypes:  movementTypes,
		GroupBy:        valueobject.GroupKey(r.GroupBy),
		IncludeDetails: r.IncludeDetails,
		ShowTotals:     r.ShowTotals,
		Format:         valueobject.ReportFormat(r.Format),
	}, nil
}

// CurrencyAmountsResponse represents reconciled totals for one currency.
type CurrencyAmountsResponse struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// ShiftSummaryResponse represents one shift's reconciliation record.
type ShiftSummaryResponse struct {
	Turno         int                                   `json:"turno"`
	Name          string                                `json:"name"`
	Totals        map[string]CurrencyAmountsResponse    `json:"totals"`
	ByPaymentType map[string]map[string]float64         `json:"byPaymentType"`
	MovementCount int                                   `json:"movementCount"`
	PaymentCount  int                                   `json:"paymentCount"`
	RefundCount   int                                   `json:"refundCount"`
}

// MovementDetailResponse represents one decomposed movement row.
type MovementDetailResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Concept      string  `json:"concept"`
	Reference    string  `json:"reference"`
	Counterparty string  `json:"counterparty"`
	Subtotal     float64 `json:"subtotal"`
	Tax          float64 `json:"tax"`
	ServiceFee   float64 `json:"serviceFee"`
	Total        float64 `json:"total"`
	Turno        *int    `json:"turno"`
	User         string  `json:"user"`
	Type         string  `json:"type"`
	TypeLabel    string  `json:"typeLabel"`
	Currency     string  `json:"currency"`
	PaymentType  string  `json:"paymentType"`
}

// ShiftReportResponse represents the structured report document.
type ShiftReportResponse struct {
	Title       string                             `json:"title"`
	DateFrom    string                             `json:"dateFrom"`
	DateTo      string                             `json:"dateTo"`
	Turnos      []int                              `json:"turnos"`
	Summaries   []ShiftSummaryResponse             `json:"summaries"`
	GrandTotals map[string]CurrencyAmountsResponse `json:"grandTotals"`
	Movements   []MovementDetailResponse           `json:"movements,omitempty"`
	GeneratedAt string                             `json:"generatedAt"`
	GeneratedBy string                             `json:"generatedBy"`
	RecordCount int                                `json:"recordCount"`
	Filename    string                             `json:"filename"`
}

// ToShiftReportResponse converts a report document to its response DTO.
// Amounts are rounded to two decimals here, at the presentation edge.
func ToShiftReportResponse(document *entity.ReportDocument, filename string) ShiftReportResponse {
	summaries := make([]ShiftSummaryResponse, len(document.Summaries))
	for i, summary := range document.Summaries {
		summaries[i] = ShiftSummaryResponse{
			Turno:         summary.Number,
			Name:          summary.Name,
			Totals:        toCurrencyTotalsResponse(summary.Totals),
			ByPaymentType: toPaymentTotalsResponse(summary.ByPaymentType),
			MovementCount: summary.MovementCount,
			PaymentCount:  summary.PaymentCount,
			RefundCount:   summary.RefundCount,
		}
	}

	var movements []MovementDetailResponse
	for _, movement := range document.Movements {
		subtotal, _ := movement.Subtotal.Round(2).Float64()
		tax, _ := movement.Tax.Round(2).Float64()
		serviceFee, _ := movement.ServiceFee.Round(2).Float64()
		total, _ := movement.SignedTotal().Round(2).Float64()

		movements = append(movements, MovementDetailResponse{
			ID:           movement.ID.String(),
			Date:         movement.OccurredAt.Format(time.RFC3339),
			Concept:      movement.Concept,
			Reference:    movement.Reference,
			Counterparty: movement.CounterpartyName(),
			Subtotal:     subtotal,
			Tax:          tax,
			ServiceFee:   serviceFee,
			Total:        total,
			Turno:        movement.Shift,
			User:         movement.UserName,
			Type:         string(movement.Type),
			TypeLabel:    movement.TypeLabel,
			Currency:     string(movement.Currency),
			PaymentType:  string(movement.PaymentType),
		})
	}

	return ShiftReportResponse{
		Title:       document.Title,
		DateFrom:    document.DateFrom.Format("2006-01-02"),
		DateTo:      document.DateTo.Format("2006-01-02"),
		Turnos:      document.Shifts,
		Summaries:   summaries,
		GrandTotals: toCurrencyTotalsResponse(document.GrandTotals),
		Movements:   movements,
		GeneratedAt: document.GeneratedAt.Format(time.RFC3339),
		GeneratedBy: document.GeneratedBy,
		RecordCount: document.RecordCount,
		Filename:    filename,
	}
}

func toCurrencyTotalsResponse(totals entity.CurrencyTotals) map[string]CurrencyAmountsResponse {
	response := make(map[string]CurrencyAmountsResponse, len(totals))
	for currency, amounts := range totals {
		income, _ := amounts.Income.Round(2).Float64()
		expenses, _ := amounts.Expenses.Round(2).Float64()
		net, _ := amounts.Net.Round(2).Float64()
		response[string(currency)] = CurrencyAmountsResponse{
			Income:   income,
			Expenses: expenses,
			Net:      net,
		}
	}
	return response
}

func toPaymentTotalsResponse(totals entity.PaymentTotals) map[string]map[string]float64 {
	response := make(map[string]map[string]float64, len(totals))
	for payment, byCurrency := range totals {
		entry := make(map[string]float64, len(byCurrency))
		for currency, amount := range byCurrency {
			value, _ := amount.Round(2).Float64()
			entry[string(currency)] = value
		}
		response[string(payment)] = entry
	}
	return response
}
