// Package report renders downloadable reports over the current context's
// transactions: a paginated PDF document and a CSV export of the same rows.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"rupeewise/internal/models"
	"rupeewise/internal/summary"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// Exporter renders reports. Rendering is deterministic given identical
// inputs; the generated-on timestamp is injectable for tests.
type Exporter struct {
	now func() time.Time
}

// NewExporter creates an Exporter using the wall clock.
func NewExporter() *Exporter {
	return &Exporter{now: time.Now}
}

// NewExporterAt creates an Exporter with a fixed clock.
func NewExporterAt(now func() time.Time) *Exporter {
	return &Exporter{now: now}
}

// Filename returns the download name for the PDF report.
func Filename(ctx models.BudgetContext) string {
	return strings.ToLower(string(ctx)) + "_expenses_report.pdf"
}

// CSVFilename returns the download name for the CSV export.
func CSVFilename(ctx models.BudgetContext) string {
	return strings.ToLower(string(ctx)) + "_expenses_report.csv"
}

// PDF renders the report document: a title block, a totals summary band and
// a row-per-transaction table. Rendering errors propagate; the operation is
// fatal for that export and is not retried.
func (e *Exporter) PDF(transactions []models.Transaction, ctx models.BudgetContext) ([]byte, error) {
	filtered := summary.FilterByContext(transactions, ctx)
	income := summary.TotalByType(filtered, models.TypeIncome)
	expense := summary.TotalByType(filtered, models.TypeExpense)
	balance := summary.NetBalance(filtered)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(40, 40, 40)
	pdf.Text(14, 22, fmt.Sprintf("RupeeWise Report - %s", ctx.Title()))
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(14, 30, "Generated on: "+e.now().Format("02.01.2006"))

	// Summary band
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(245, 247, 250)
	pdf.Rect(14, 35, 182, 25, "F")
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(20, 50, "Total Income: "+pdfAmount(income))
	pdf.Text(80, 50, "Total Expense: "+pdfAmount(expense))
	pdf.Text(140, 50, "Balance: "+pdfAmount(balance))

	// Transaction table
	pdf.SetY(70)
	pdf.SetX(14)
	widths := []float64{28, 24, 40, 65, 25}
	headers := []string{"Date", "Type", "Category", "Description", "Amount"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(79, 70, 229)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetFillColor(245, 247, 250)
	pdf.SetTextColor(40, 40, 40)
	for n, tx := range filtered {
		pdf.SetX(14)
		fill := n%2 == 1
		description := tx.Description
		if description == "" {
			description = "-"
		}
		pdf.CellFormat(widths[0], 7, tx.Date, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[1], 7, string(tx.Type), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[2], 7, tx.Category, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[3], 7, description, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[4], 7, pdfAmount(tx.Amount), "1", 0, "R", fill, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF report: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfAmount formats an amount for the PDF. The core PDF fonts cannot encode
// the rupee sign, so the document uses "Rs." instead.
func pdfAmount(amount decimal.Decimal) string {
	return "Rs. " + amount.String()
}
