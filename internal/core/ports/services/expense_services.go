package services

import (
	"context"

	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	"github.com/spendtrack/spendtrack_backend/internal/dto"
)

// ExpenseReaderSvc defines read operations over the expense ledger
type ExpenseReaderSvc interface {
	// ListExpenses retrieves the full ledger, ordered by date descending.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)

	// GetExpenseByID retrieves a single expense.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// PeriodSummary derives count, total and category breakdown for the
	// records falling in the given period relative to now.
	PeriodSummary(ctx context.Context, period domain.ExportPeriod) (*domain.PeriodSummary, error)
}

// ExpenseWriterSvc defines write operations over the expense ledger
type ExpenseWriterSvc interface {
	// AddExpense validates the draft and persists a new expense,
	// returning the record with its assigned ID.
	AddExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// UpdateExpense validates and replaces an existing expense.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)

	// RemoveExpense deletes by ID. Removing an unknown ID is not an error.
	RemoveExpense(ctx context.Context, expenseID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
