// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// The persisted blob and the API both carry amounts as plain JSON
	// numbers, matching the stored layout of earlier versions.
	decimal.MarshalJSONWithoutQuotes = true
}

// CurrencySymbol is the display symbol for the single implicit currency.
const CurrencySymbol = "₹"

// DateLayout is the calendar date format for transaction dates (ISO 8601, no timezone).
const DateLayout = "2006-01-02"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// Valid returns true if the type is one of the known values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// BudgetContext is the budget bucket a transaction belongs to.
type BudgetContext string

const (
	ContextHome   BudgetContext = "HOME"
	ContextSchool BudgetContext = "SCHOOL"
)

// Valid returns true if the context is one of the known values.
func (c BudgetContext) Valid() bool {
	return c == ContextHome || c == ContextSchool
}

// Title returns the human-readable form of the context ("Home", "School").
func (c BudgetContext) Title() string {
	switch c {
	case ContextHome:
		return "Home"
	case ContextSchool:
		return "School"
	default:
		return string(c)
	}
}

// Transaction is the sole domain entity: one income or expense record.
// Field names match the persisted JSON layout exactly.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
	Context     BudgetContext   `json:"context"`
}

// NewTransaction constructs a validated Transaction with a freshly generated id.
// Validation happens here, at the model boundary; the store trusts its caller.
func NewTransaction(typ TransactionType, category string, amount decimal.Decimal, description, date string, ctx BudgetContext) (Transaction, error) {
	if !typ.Valid() {
		return Transaction{}, fmt.Errorf("invalid transaction type: %q", typ)
	}
	if !ctx.Valid() {
		return Transaction{}, fmt.Errorf("invalid budget context: %q", ctx)
	}
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("amount must not be negative: %s", amount)
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Transaction{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	if !ValidCategory(typ, category) {
		return Transaction{}, fmt.Errorf("category %q is not valid for type %s", category, typ)
	}

	return Transaction{
		ID:          uuid.New().String(),
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: description,
		Type:        typ,
		Context:     ctx,
	}, nil
}

// SummaryEntry is one slice of the expense breakdown chart.
// It is derived data, recomputed on every read and never persisted.
type SummaryEntry struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

// Colors is the chart palette. Breakdown entries cycle through it by position.
var Colors = []string{
	"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#8884d8",
	"#82ca9d", "#ffc658", "#8dd1e1", "#a4de6c", "#d0ed57",
}
