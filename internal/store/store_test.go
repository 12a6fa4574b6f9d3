package store

import (
	"errors"
	"testing"

	"rupeewise/internal/models"
	"rupeewise/internal/persistence"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func newTestStore() (*Store, *persistence.MockAdapter) {
	adapter := &persistence.MockAdapter{}
	return New(adapter, quietLogger()), adapter
}

func TestAdd_AppendsAndFlushes(t *testing.T) {
	s, adapter := newTestStore()

	tx, err := s.Add(models.TypeExpense, "Grocery", decimal.NewFromInt(1200), "weekly shop", "2025-03-14", models.ContextHome)
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)

	// the persisted mirror is consistent before Add returns
	assert.Equal(t, 1, adapter.SaveCalls)
	require.Len(t, adapter.Transactions, 1)
	assert.Equal(t, tx.ID, adapter.Transactions[0].ID)
}

func TestAdd_InvalidInputDoesNotMutate(t *testing.T) {
	s, adapter := newTestStore()

	_, err := s.Add(models.TypeExpense, "Bank", decimal.NewFromInt(10), "", "2025-01-01", models.ContextHome)
	assert.Error(t, err)
	assert.Zero(t, s.Count())
	assert.Zero(t, adapter.SaveCalls)
}

func TestRoundTripFidelity(t *testing.T) {
	s, adapter := newTestStore()

	first, err := s.Add(models.TypeIncome, "Bank", decimal.NewFromInt(5000), "", "2025-01-01", models.ContextHome)
	require.NoError(t, err)
	second, err := s.Add(models.TypeExpense, "Grocery", decimal.NewFromInt(1200), "", "2025-01-02", models.ContextHome)
	require.NoError(t, err)
	_, err = s.Add(models.TypeExpense, "Transport", decimal.NewFromInt(300), "", "2025-01-03", models.ContextSchool)
	require.NoError(t, err)
	s.Delete(second.ID)

	// a store rebuilt from the same adapter sees the same collection
	reloaded := New(adapter, quietLogger())
	require.Equal(t, s.Count(), reloaded.Count())
	got := reloaded.List()
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, "Transport", got[1].Category)
}

func TestDelete_UnknownIDIsNoop(t *testing.T) {
	s, adapter := newTestStore()
	_, err := s.Add(models.TypeIncome, "Cash", decimal.NewFromInt(50), "", "2025-01-01", models.ContextHome)
	require.NoError(t, err)
	saves := adapter.SaveCalls

	s.Delete("no-such-id")

	assert.Equal(t, 1, s.Count())
	assert.Equal(t, saves, adapter.SaveCalls)
}

func TestClear_RemovesPayload(t *testing.T) {
	s, adapter := newTestStore()
	_, err := s.Add(models.TypeIncome, "Cash", decimal.NewFromInt(50), "", "2025-01-01", models.ContextHome)
	require.NoError(t, err)

	s.Clear()

	assert.Zero(t, s.Count())
	assert.Equal(t, 1, adapter.ClearCalls)
	assert.False(t, adapter.Present, "the storage key must be absent, not merely empty")

	reloaded := New(adapter, quietLogger())
	assert.Zero(t, reloaded.Count())
}

func TestFlushFailure_MemoryStaysAuthoritative(t *testing.T) {
	adapter := &persistence.MockAdapter{SaveError: errors.New("quota exceeded")}
	s := New(adapter, quietLogger())

	tx, err := s.Add(models.TypeExpense, "Health", decimal.NewFromInt(80), "", "2025-02-02", models.ContextHome)
	require.NoError(t, err)

	got := s.List()
	require.Len(t, got, 1)
	assert.Equal(t, tx.ID, got[0].ID)
}

func TestHydrationFailure_StartsEmpty(t *testing.T) {
	adapter := &persistence.MockAdapter{LoadError: errors.New("disk gone")}
	s := New(adapter, quietLogger())
	assert.Zero(t, s.Count())
}

func TestRecent_NewestFirst(t *testing.T) {
	s, _ := newTestStore()
	for _, date := range []string{"2025-01-01", "2025-01-02", "2025-01-03"} {
		_, err := s.Add(models.TypeExpense, "Grocery", decimal.NewFromInt(10), "", date, models.ContextHome)
		require.NoError(t, err)
	}

	recent := s.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "2025-01-03", recent[0].Date)
	assert.Equal(t, "2025-01-02", recent[1].Date)

	all := s.Recent(10)
	assert.Len(t, all, 3)
}

func TestList_ReturnsCopy(t *testing.T) {
	s, _ := newTestStore()
	_, err := s.Add(models.TypeExpense, "Grocery", decimal.NewFromInt(10), "", "2025-01-01", models.ContextHome)
	require.NoError(t, err)

	list := s.List()
	list[0].Category = "tampered"
	assert.Equal(t, "Grocery", s.List()[0].Category)
}
