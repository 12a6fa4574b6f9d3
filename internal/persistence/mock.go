package persistence

import (
	"rupeewise/internal/models"
)

// MockAdapter is an in-memory Adapter for testing.
type MockAdapter struct {
	Transactions []models.Transaction
	Present      bool // whether a payload exists at all

	// Error flags for testing error conditions
	LoadError  error
	SaveError  error
	ClearError error

	// Call counters
	LoadCalls  int
	SaveCalls  int
	ClearCalls int
}

// Load returns the mock collection.
func (m *MockAdapter) Load() ([]models.Transaction, error) {
	m.LoadCalls++
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	if !m.Present {
		return []models.Transaction{}, nil
	}
	// Return a copy to avoid external modifications
	return append([]models.Transaction(nil), m.Transactions...), nil
}

// Save replaces the mock collection.
func (m *MockAdapter) Save(transactions []models.Transaction) error {
	m.SaveCalls++
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Transactions = append([]models.Transaction(nil), transactions...)
	m.Present = true
	return nil
}

// Clear removes the mock payload entirely.
func (m *MockAdapter) Clear() error {
	m.ClearCalls++
	if m.ClearError != nil {
		return m.ClearError
	}
	m.Transactions = nil
	m.Present = false
	return nil
}
