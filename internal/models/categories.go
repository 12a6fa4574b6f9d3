package models

import "sync"

// The two label sets are disjoint: income categories never appear in the
// expense set. Category validity is always checked against the set for the
// transaction's type, so a future overlap between the sets stays harmless.
var (
	categoryMu sync.RWMutex

	incomeCategories = []string{
		"Cash",
		"Bank",
		"Other",
	}

	expenseCategories = []string{
		"Grocery",
		"Rent",
		"Utilities",
		"Education Fees",
		"Books & Stationery",
		"Transport",
		"Health",
		"Entertainment",
		"Shopping",
		"Miscellaneous",
	}
)

// IncomeCategories returns a copy of the income category labels.
func IncomeCategories() []string {
	categoryMu.RLock()
	defer categoryMu.RUnlock()
	return append([]string(nil), incomeCategories...)
}

// ExpenseCategories returns a copy of the expense category labels.
func ExpenseCategories() []string {
	categoryMu.RLock()
	defer categoryMu.RUnlock()
	return append([]string(nil), expenseCategories...)
}

// CategoriesFor returns the category labels valid for the given type.
func CategoriesFor(typ TransactionType) []string {
	if typ == TypeIncome {
		return IncomeCategories()
	}
	return ExpenseCategories()
}

// ValidCategory reports whether name belongs to the enumeration for typ.
func ValidCategory(typ TransactionType, name string) bool {
	for _, c := range CategoriesFor(typ) {
		if c == name {
			return true
		}
	}
	return false
}

// SetCategories replaces either label set. Empty slices leave the current
// set untouched, so a partial override file only changes what it names.
func SetCategories(income, expense []string) {
	categoryMu.Lock()
	defer categoryMu.Unlock()
	if len(income) > 0 {
		incomeCategories = append([]string(nil), income...)
	}
	if len(expense) > 0 {
		expenseCategories = append([]string(nil), expense...)
	}
}
