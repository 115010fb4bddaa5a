package document

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"

	"github.com/hotel-ops/backend/internal/application/adapter"
	"github.com/hotel-ops/backend/internal/domain/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

// HTMLRenderer renders the report as print markup for client-side printing.
type HTMLRenderer struct {
	templates *htmltemplate.Template
}

// NewHTMLRenderer creates a new HTML renderer, parsing the embedded templates.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := htmltemplate.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse report templates: %w", err)
	}
	return &HTMLRenderer{templates: tmpl}, nil
}

// htmlReport is the view model handed to the template. All money is
// preformatted here so the template carries no arithmetic.
type htmlReport struct {
	Title       string
	HotelName   string
	DateFrom    string
	DateTo      string
	GeneratedBy string
	GeneratedAt string
	RecordCount int
	ShowDetail  bool
	ShowTotals  bool
	Sections    []htmlSection
	ShiftTotals []htmlShiftTotal
	GrandTotals []string
}

type htmlSection struct {
	Title         string
	MovementCount int
	Rows          []htmlRow
}

type htmlRow struct {
	Date         string
	Concept      string
	Reference    string
	Counterparty string
	Subtotal     string
	Tax          string
	ServiceFee   string
	Total        string
	Shift        string
	User         string
	Type         string
}

type htmlShiftTotal struct {
	Name string
	Net  string
}

// Render implements adapter.DocumentRenderer.
func (r *HTMLRenderer) Render(ctx context.Context, doc *entity.ReportDocument) (*adapter.RenderedArtifact, error) {
	view := r.buildView(doc)

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "shift_report.html", view); err != nil {
		return nil, fmt.Errorf("failed to render shift report template: %w", err)
	}

	return &adapter.RenderedArtifact{
		Bytes:       buf.Bytes(),
		ContentType: "text/html; charset=utf-8",
		Extension:   "html",
	}, nil
}

func (r *HTMLRenderer) buildView(doc *entity.ReportDocument) htmlReport {
	view := htmlReport{
		Title:       doc.Title,
		HotelName:   doc.HotelName,
		DateFrom:    doc.DateFrom.Format("2006-01-02"),
		DateTo:      doc.DateTo.Format("2006-01-02"),
		GeneratedBy: doc.GeneratedBy,
		GeneratedAt: doc.GeneratedAt.Format("2006-01-02 15:04"),
		RecordCount: doc.RecordCount,
		ShowDetail:  doc.IncludeDetail,
		ShowTotals:  doc.ShowTotals,
	}

	for _, section := range BuildSections(doc) {
		htmlSec := htmlSection{
			Title:         section.Title,
			MovementCount: section.MovementCount,
		}
		for _, row := range section.Rows {
			shift := "-"
			if row.Shift != nil {
				shift = fmt.Sprintf("%d", *row.Shift)
			}
			htmlSec.Rows = append(htmlSec.Rows, htmlRow{
				Date:         row.OccurredAt.Format("2006-01-02 15:04"),
				Concept:      row.Concept,
				Reference:    row.Reference,
				Counterparty: row.CounterpartyName(),
				Subtotal:     money(row.Subtotal, row.Currency),
				Tax:          money(row.Tax, row.Currency),
				ServiceFee:   money(row.ServiceFee, row.Currency),
				Total:        money(row.SignedTotal(), row.Currency),
				Shift:        shift,
				User:         row.UserName,
				Type:         row.TypeLabel,
			})
		}
		view.Sections = append(view.Sections, htmlSec)
	}

	if doc.ShowTotals {
		for _, summary := range doc.Summaries {
			primary := summary.PrimaryCurrency()
			view.ShiftTotals = append(view.ShiftTotals, htmlShiftTotal{
				Name: summary.Name,
				Net:  money(summary.Totals[primary].Net, primary),
			})
		}
		for _, currency := range entity.KnownCurrencies {
			amounts := doc.GrandTotals[currency]
			if amounts.Income.IsZero() && amounts.Expenses.IsZero() {
				continue
			}
			view.GrandTotals = append(view.GrandTotals, fmt.Sprintf(
				"Total %s: ingresos %s, egresos %s, neto %s",
				currency,
				amounts.Income.Round(2).StringFixed(2),
				amounts.Expenses.Round(2).StringFixed(2),
				amounts.Net.Round(2).StringFixed(2),
			))
		}
	}

	return view
}
