package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"rupeewise/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) *FileAdapter {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewFileAdapter(t.TempDir(), logger)
}

func mustTransaction(t *testing.T, typ models.TransactionType, category string, amount int64, ctx models.BudgetContext) models.Transaction {
	t.Helper()
	tx, err := models.NewTransaction(typ, category, decimal.NewFromInt(amount), "", "2025-01-15", ctx)
	require.NoError(t, err)
	return tx
}

func TestLoad_MissingFile(t *testing.T) {
	adapter := newTestAdapter(t)

	transactions, err := adapter.Load()
	assert.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	adapter := newTestAdapter(t)

	want := []models.Transaction{
		mustTransaction(t, models.TypeIncome, "Bank", 5000, models.ContextHome),
		mustTransaction(t, models.TypeExpense, "Grocery", 1200, models.ContextHome),
	}
	require.NoError(t, adapter.Save(want))

	got, err := adapter.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, want[1].Category, got[1].Category)
	assert.True(t, want[1].Amount.Equal(got[1].Amount))
}

func TestLoad_CorruptPayload(t *testing.T) {
	adapter := newTestAdapter(t)
	require.NoError(t, os.WriteFile(adapter.Path(), []byte("{not json"), 0o600))

	transactions, err := adapter.Load()
	assert.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestClear_RemovesFile(t *testing.T) {
	adapter := newTestAdapter(t)
	require.NoError(t, adapter.Save([]models.Transaction{
		mustTransaction(t, models.TypeIncome, "Cash", 100, models.ContextSchool),
	}))

	require.NoError(t, adapter.Clear())

	// the file itself must be gone, not merely emptied
	_, err := os.Stat(adapter.Path())
	assert.True(t, os.IsNotExist(err))

	transactions, err := adapter.Load()
	assert.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestClear_MissingFileIsNoop(t *testing.T) {
	adapter := newTestAdapter(t)
	assert.NoError(t, adapter.Clear())
}

func TestSave_CreatesDirectory(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	dir := filepath.Join(t.TempDir(), "nested", "data")
	adapter := NewFileAdapter(dir, logger)

	require.NoError(t, adapter.Save(nil))

	got, err := adapter.Load()
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	adapter := NewFileAdapter(dir, logger)

	require.NoError(t, adapter.Save([]models.Transaction{
		mustTransaction(t, models.TypeExpense, "Transport", 40, models.ContextHome),
	}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, StorageFileName, entries[0].Name())
}
