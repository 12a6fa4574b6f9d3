package report

import (
	"fmt"

	"rupeewise/internal/models"
	"rupeewise/internal/summary"

	"github.com/gocarina/gocsv"
)

// csvRow mirrors the PDF table columns one-to-one.
type csvRow struct {
	Date        string `csv:"Date"`
	Type        string `csv:"Type"`
	Category    string `csv:"Category"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
}

// CSV renders the current context's transactions as a CSV document with the
// same columns as the PDF table.
func (e *Exporter) CSV(transactions []models.Transaction, ctx models.BudgetContext) ([]byte, error) {
	filtered := summary.FilterByContext(transactions, ctx)

	rows := make([]csvRow, 0, len(filtered))
	for _, tx := range filtered {
		description := tx.Description
		if description == "" {
			description = "-"
		}
		rows = append(rows, csvRow{
			Date:        tx.Date,
			Type:        string(tx.Type),
			Category:    tx.Category,
			Description: description,
			Amount:      models.CurrencySymbol + tx.Amount.String(),
		})
	}

	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to render CSV report: %w", err)
	}
	return data, nil
}
