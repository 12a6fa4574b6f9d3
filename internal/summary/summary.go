// Package summary computes derived aggregates over a transaction
// collection. All functions are pure and deterministic given the same
// input; nothing here holds state or performs I/O.
package summary

import (
	"rupeewise/internal/models"

	"github.com/shopspring/decimal"
)

// FilterByContext retains only transactions belonging to the given budget
// context, preserving order.
func FilterByContext(all []models.Transaction, ctx models.BudgetContext) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(all))
	for _, tx := range all {
		if tx.Context == ctx {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// TotalByType sums the amounts of all transactions of the given type.
// An empty input yields zero.
func TotalByType(transactions []models.Transaction, typ models.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == typ {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// NetBalance is total income minus total expense. It may be negative.
func NetBalance(transactions []models.Transaction) decimal.Decimal {
	return TotalByType(transactions, models.TypeIncome).Sub(TotalByType(transactions, models.TypeExpense))
}

// ExpenseBreakdown groups expense transactions by category and sums each
// group. Entries follow the first-occurrence order of each category in the
// input, not value order, and each entry is assigned a palette color by its
// position (cycling when more than len(models.Colors) categories appear).
// No expense transactions means an empty slice: "no data", not an error.
func ExpenseBreakdown(transactions []models.Transaction) []models.SummaryEntry {
	entries := []models.SummaryEntry{}
	index := make(map[string]int)

	for _, tx := range transactions {
		if tx.Type != models.TypeExpense {
			continue
		}
		if i, ok := index[tx.Category]; ok {
			entries[i].Value = entries[i].Value.Add(tx.Amount)
			continue
		}
		index[tx.Category] = len(entries)
		entries = append(entries, models.SummaryEntry{
			Name:  tx.Category,
			Value: tx.Amount,
			Color: models.Colors[len(entries)%len(models.Colors)],
		})
	}
	return entries
}
