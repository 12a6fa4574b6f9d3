// Package store maintains the authoritative in-memory transaction
// collection for the running session and mirrors it to its persistence
// adapter after every mutation.
package store

import (
	"sync"

	"rupeewise/internal/models"
	"rupeewise/internal/persistence"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Store owns the transaction collection. It is constructed once per process
// with an injected persistence adapter so tests can substitute an in-memory
// fake. Insertion order is preserved and is the default display order.
type Store struct {
	mu           sync.Mutex
	adapter      persistence.Adapter
	log          *logrus.Logger
	transactions []models.Transaction
}

// New creates a Store hydrated from the adapter. A failed hydration is
// logged and degrades to an empty collection; it never fails the caller.
func New(adapter persistence.Adapter, logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.New()
	}
	s := &Store{
		adapter: adapter,
		log:     logger,
	}

	transactions, err := adapter.Load()
	if err != nil {
		logger.WithError(err).Warn("Failed to load persisted transactions, starting empty")
		transactions = []models.Transaction{}
	}
	s.transactions = transactions

	logger.WithField("count", len(transactions)).Debug("Transaction store hydrated")
	return s
}

// Add constructs a new transaction and appends it to the end of the
// collection. Input validation is models.NewTransaction's concern; beyond
// that the store trusts its caller. The persisted state is flushed before
// Add returns.
func (s *Store) Add(typ models.TransactionType, category string, amount decimal.Decimal, description, date string, ctx models.BudgetContext) (models.Transaction, error) {
	tx, err := models.NewTransaction(typ, category, amount, description, date, ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, tx)
	s.flush()

	s.log.WithFields(logrus.Fields{
		"id":       tx.ID,
		"type":     tx.Type,
		"category": tx.Category,
		"context":  tx.Context,
	}).Info("Transaction added")
	return tx, nil
}

// Delete removes the transaction with the given id and flushes. A missing
// id is a silent no-op, not an error.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, tx := range s.transactions {
		if tx.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.flush()
			s.log.WithField("id", id).Info("Transaction deleted")
			return
		}
	}
}

// Clear empties the collection and removes the persisted payload entirely.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = []models.Transaction{}
	if err := s.adapter.Clear(); err != nil {
		s.log.WithError(err).Warn("Failed to remove persisted transactions")
	}
	s.log.Info("All transactions cleared")
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Transaction(nil), s.transactions...)
}

// Recent returns up to n transactions, newest first.
func (s *Store) Recent(n int) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n > len(s.transactions) {
		n = len(s.transactions)
	}
	recent := make([]models.Transaction, 0, n)
	for i := len(s.transactions) - 1; i >= len(s.transactions)-n; i-- {
		recent = append(recent, s.transactions[i])
	}
	return recent
}

// Count returns the number of transactions across all contexts.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}

// flush mirrors the in-memory collection to the adapter. A failed write is
// logged and accepted: in-memory state stays authoritative for the session
// even though it will not survive a restart. Callers hold s.mu.
func (s *Store) flush() {
	if err := s.adapter.Save(s.transactions); err != nil {
		s.log.WithError(err).Warn("Failed to persist transactions, in-memory state remains authoritative")
	}
}
