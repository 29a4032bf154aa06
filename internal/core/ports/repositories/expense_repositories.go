package repositories

import (
	"context"

	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenses retrieves all expenses ordered by date descending.
	FindExpenses(ctx context.Context) ([]domain.Expense, error)

	// FindExpenseByID retrieves a specific expense by its ID.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense replaces an existing expense's details.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense by ID. Deleting an unknown ID is
	// not an error.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
// This is a facade for clients that need access to all operations.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
