package web

import (
	"fmt"
	"net/http"

	"rupeewise/internal/models"
	"rupeewise/internal/report"
	"rupeewise/internal/summary"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// parseBudgetContext reads and validates the context query parameter.
func parseBudgetContext(c *gin.Context) (models.BudgetContext, bool) {
	ctx := models.BudgetContext(c.Query("context"))
	if !ctx.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid context %q, must be HOME or SCHOOL", c.Query("context"))})
		return "", false
	}
	return ctx, true
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{
		"IncomeCategories":  models.IncomeCategories(),
		"ExpenseCategories": models.ExpenseCategories(),
		"CurrencySymbol":    models.CurrencySymbol,
	})
}

// listTransactions returns the collection, optionally filtered by context.
// Order is insertion order; the dashboard reverses it for recency.
func (s *Server) listTransactions(c *gin.Context) {
	transactions := s.store.List()
	if raw := c.Query("context"); raw != "" {
		ctx := models.BudgetContext(raw)
		if !ctx.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid context %q", raw)})
			return
		}
		transactions = summary.FilterByContext(transactions, ctx)
	}
	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

type createTransactionRequest struct {
	Type        string           `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Category    string           `json:"category" validate:"required"`
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	Description string           `json:"description"`
	Date        string           `json:"date" validate:"required"`
	Context     string           `json:"context" validate:"required,oneof=HOME SCHOOL"`
}

// createTransaction validates the request and adds a transaction. Invalid
// input is rejected here, before it can reach the store.
func (s *Server) createTransaction(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := s.store.Add(
		models.TransactionType(req.Type),
		req.Category,
		*req.Amount,
		req.Description,
		req.Date,
		models.BudgetContext(req.Context),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

func (s *Server) deleteTransaction(c *gin.Context) {
	// deleting an unknown id is a silent no-op by contract
	s.store.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (s *Server) clearTransactions(c *gin.Context) {
	s.store.Clear()
	c.Status(http.StatusNoContent)
}

// getSummary returns the aggregates for one context: totals, balance and
// the expense breakdown for chart rendering.
func (s *Server) getSummary(c *gin.Context) {
	ctx, ok := parseBudgetContext(c)
	if !ok {
		return
	}

	filtered := summary.FilterByContext(s.store.List(), ctx)
	c.JSON(http.StatusOK, gin.H{
		"totalIncome":  summary.TotalByType(filtered, models.TypeIncome),
		"totalExpense": summary.TotalByType(filtered, models.TypeExpense),
		"balance":      summary.NetBalance(filtered),
		"breakdown":    summary.ExpenseBreakdown(filtered),
	})
}

func (s *Server) getCategories(c *gin.Context) {
	typ := models.TransactionType(c.Query("type"))
	if !typ.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid type %q, must be INCOME or EXPENSE", c.Query("type"))})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": models.CategoriesFor(typ)})
}

// requestInsights asks the AI advisor for insights over one context. Only
// one request may be in flight at a time; concurrent calls get 409.
func (s *Server) requestInsights(c *gin.Context) {
	ctx, ok := parseBudgetContext(c)
	if !ok {
		return
	}

	if !s.insightBusy.CompareAndSwap(false, true) {
		c.JSON(http.StatusConflict, gin.H{"error": "an insight request is already in progress"})
		return
	}
	defer s.insightBusy.Store(false)

	text := s.insights.Request(c.Request.Context(), s.store.List(), ctx)
	c.JSON(http.StatusOK, gin.H{"insight": text})
}

// downloadReport streams the PDF or CSV report for one context. A rendering
// failure is fatal for the export and surfaces as a 500.
func (s *Server) downloadReport(c *gin.Context) {
	ctx, ok := parseBudgetContext(c)
	if !ok {
		return
	}

	transactions := s.store.List()
	switch c.DefaultQuery("format", "pdf") {
	case "pdf":
		data, err := s.exporter.PDF(transactions, ctx)
		if err != nil {
			s.log.WithError(err).Error("PDF report rendering failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(ctx)))
		c.Data(http.StatusOK, "application/pdf", data)
	case "csv":
		data, err := s.exporter.CSV(transactions, ctx)
		if err != nil {
			s.log.WithError(err).Error("CSV report rendering failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.CSVFilename(ctx)))
		c.Data(http.StatusOK, "text/csv", data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format, use pdf or csv"})
	}
}
