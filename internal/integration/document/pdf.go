package document

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/hotel-ops/backend/internal/application/adapter"
	"github.com/hotel-ops/backend/internal/domain/entity"
)

const (
	pdfBottomMargin = 20.0
	pdfRowHeight    = 5.0
	pdfHeaderHeight = 14.0
)

// pdfColumnWidths for the itemized movement table, in mm (A4 landscape).
var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"Fecha", 22, "L"},
	{"Concepto", 48, "L"},
	{"Referencia", 24, "L"},
	{"Huésped / Reserva", 42, "L"},
	{"Subtotal", 20, "R"},
	{"IVA", 18, "R"},
	{"Servicio", 18, "R"},
	{"Total", 22, "R"},
	{"Turno", 12, "C"},
	{"Usuario", 26, "L"},
	{"Tipo", 25, "L"},
}

// PDFRenderer renders the report document as a paginated PDF.
type PDFRenderer struct{}

// NewPDFRenderer creates a new PDF renderer instance.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render implements adapter.DocumentRenderer. Sections are laid out one
// after another; a section header is never separated from its first data
// row across a page break.
func (r *PDFRenderer) Render(ctx context.Context, doc *entity.ReportDocument) (*adapter.RenderedArtifact, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, pdfBottomMargin)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Página %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	r.writeDocumentHeader(pdf, tr, doc)

	sections := BuildSections(doc)
	for _, section := range sections {
		r.writeSection(pdf, tr, doc, &section)
	}

	if doc.ShowTotals {
		r.writeTotals(pdf, tr, doc)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf encoding failed: %w", err)
	}

	return &adapter.RenderedArtifact{
		Bytes:       buf.Bytes(),
		ContentType: "application/pdf",
		Extension:   "pdf",
	}, nil
}

func (r *PDFRenderer) writeDocumentHeader(pdf *gofpdf.Fpdf, tr func(string) string, doc *entity.ReportDocument) {
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 8, tr(doc.HotelName), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, tr(doc.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Periodo: %s al %s",
		doc.DateFrom.Format("2006-01-02"), doc.DateTo.Format("2006-01-02")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Generado por %s el %s, %d registros",
		doc.GeneratedBy, doc.GeneratedAt.Format("2006-01-02 15:04"), doc.RecordCount)), "", 1, "L", false, 0, "")
	pdf.Ln(3)
}

// ensureRoom breaks the page when fewer than needed millimeters remain, so
// headers stay glued to the content below them.
func (r *PDFRenderer) ensureRoom(pdf *gofpdf.Fpdf, needed float64) {
	_, pageHeight := pdf.GetPageSize()
	if pdf.GetY()+needed > pageHeight-pdfBottomMargin {
		pdf.AddPage()
	}
}

func (r *PDFRenderer) writeSection(pdf *gofpdf.Fpdf, tr func(string) string, doc *entity.ReportDocument, section *Section) {
	// Header plus at least the column row and one data row must fit together.
	r.ensureRoom(pdf, pdfHeaderHeight+2*pdfRowHeight)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(0, 7, tr(section.Title), "", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("Movimientos: %d", section.MovementCount), "", 1, "L", false, 0, "")

	if !doc.IncludeDetail || len(section.Rows) == 0 {
		pdf.Ln(2)
		return
	}

	r.writeColumnHeader(pdf, tr)
	for _, row := range section.Rows {
		r.ensureRoom(pdf, pdfRowHeight)
		r.writeRow(pdf, tr, &row)
	}
	pdf.Ln(3)
}

func (r *PDFRenderer) writeColumnHeader(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "B", 7.5)
	pdf.SetFillColor(245, 245, 245)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, pdfRowHeight, tr(col.title), "1", 0, col.align, true, 0, "")
	}
	pdf.Ln(-1)
}

func (r *PDFRenderer) writeRow(pdf *gofpdf.Fpdf, tr func(string) string, row *entity.DecomposedMovement) {
	shift := "-"
	if row.Shift != nil {
		shift = fmt.Sprintf("%d", *row.Shift)
	}

	cells := []string{
		row.OccurredAt.Format("2006-01-02 15:04"),
		row.Concept,
		row.Reference,
		row.CounterpartyName(),
		money(row.Subtotal, row.Currency),
		money(row.Tax, row.Currency),
		money(row.ServiceFee, row.Currency),
		money(row.SignedTotal(), row.Currency),
		shift,
		row.UserName,
		row.TypeLabel,
	}

	pdf.SetFont("Helvetica", "", 7.5)
	for i, col := range pdfColumns {
		pdf.CellFormat(col.width, pdfRowHeight, tr(cells[i]), "1", 0, col.align, false, 0, "")
	}
	pdf.Ln(-1)
}

func (r *PDFRenderer) writeTotals(pdf *gofpdf.Fpdf, tr func(string) string, doc *entity.ReportDocument) {
	r.ensureRoom(pdf, pdfHeaderHeight+float64(len(doc.Summaries)+len(entity.KnownCurrencies))*pdfRowHeight)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(0, 7, tr("Resumen de turnos"), "", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, summary := range doc.Summaries {
		primary := summary.PrimaryCurrency()
		net := summary.Totals[primary].Net
		pdf.CellFormat(90, pdfRowHeight+1, tr(summary.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, pdfRowHeight+1, money(net, primary), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 9)
	for _, currency := range entity.KnownCurrencies {
		amounts := doc.GrandTotals[currency]
		if amounts.Income.IsZero() && amounts.Expenses.IsZero() {
			continue
		}
		line := fmt.Sprintf("Total %s: ingresos %s, egresos %s, neto %s",
			currency,
			amounts.Income.Round(2).StringFixed(2),
			amounts.Expenses.Round(2).StringFixed(2),
			amounts.Net.Round(2).StringFixed(2),
		)
		pdf.CellFormat(0, pdfRowHeight+1, tr(line), "", 1, "L", false, 0, "")
	}
}

// money rounds for presentation only; intermediate math stays unrounded.
func money(amount decimal.Decimal, currency entity.Currency) string {
	return fmt.Sprintf("%s %s", amount.Round(2).StringFixed(2), currency)
}
