// Package insights asks a generative model for spending insights over the
// current budget context. Every failure path collapses to a fixed
// user-facing string: callers never see an error from this package.
package insights

import (
	"context"
	"fmt"
	"strings"

	"rupeewise/internal/models"
	"rupeewise/internal/summary"

	"github.com/sirupsen/logrus"
)

// Fixed user-facing strings. The requester returns these verbatim instead
// of surfacing raw errors.
const (
	msgNoTransactions = "No transactions found for this category. Add some income or expenses to get insights."
	msgEmptyResponse  = "Could not generate insights at this time."
	msgFailure        = "Sorry, I am unable to analyze your data right now. Please check your API key or connection."
)

// AIClient is the seam between the requester and the hosted model. It keeps
// the request logic testable without network access.
type AIClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Requester builds the insight prompt and delegates to an AIClient.
type Requester struct {
	client AIClient
	log    *logrus.Logger
}

// NewRequester creates a Requester. A nil client is allowed; requests then
// degrade to the fixed failure message once there is data to analyze.
func NewRequester(client AIClient, logger *logrus.Logger) *Requester {
	if logger == nil {
		logger = logrus.New()
	}
	return &Requester{client: client, log: logger}
}

// Request returns insight text for the given context. An empty filtered set
// short-circuits without touching the model. This is the only slow,
// network-bound operation in the system; callers should show a loading
// state and avoid overlapping requests.
func (r *Requester) Request(ctx context.Context, transactions []models.Transaction, budget models.BudgetContext) string {
	filtered := summary.FilterByContext(transactions, budget)
	if len(filtered) == 0 {
		return msgNoTransactions
	}

	if r.client == nil {
		r.log.Warn("No AI client configured, returning fallback insight message")
		return msgFailure
	}

	text, err := r.client.GenerateText(ctx, buildPrompt(filtered, budget))
	if err != nil {
		r.log.WithError(err).WithField("context", budget).Error("Insight request failed")
		return msgFailure
	}
	if strings.TrimSpace(text) == "" {
		return msgEmptyResponse
	}
	return text
}

// buildPrompt embeds the per-transaction history and the computed totals
// into the advisor prompt template.
func buildPrompt(filtered []models.Transaction, budget models.BudgetContext) string {
	income := summary.TotalByType(filtered, models.TypeIncome)
	expense := summary.TotalByType(filtered, models.TypeExpense)

	var history strings.Builder
	for _, tx := range filtered {
		fmt.Fprintf(&history, "- %s: %s of %s%s for %s (%s)\n",
			tx.Date, tx.Type, models.CurrencySymbol, tx.Amount, tx.Category, tx.Description)
	}

	return fmt.Sprintf(`You are a helpful financial advisor. Analyze the following list of transactions for a %q budget context.

Total Income: %s%s
Total Expense: %s%s

Transaction History:
%s
Please provide:
1. A brief summary of spending habits.
2. One or two specific tips to save money based on these categories.
3. An encouraging remark.

Keep the response concise (under 200 words) and formatted in Markdown.`,
		budget, models.CurrencySymbol, income, models.CurrencySymbol, expense, history.String())
}
