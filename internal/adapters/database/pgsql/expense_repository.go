package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	portsrepo "github.com/spendtrack/spendtrack_backend/internal/core/ports/repositories"
	"github.com/spendtrack/spendtrack_backend/internal/models"
	"github.com/spendtrack/spendtrack_backend/internal/utils/mapping"
)

type PgxExpenseRepository struct {
	db *pgxpool.Pool
}

// NewExpenseRepository creates a new repository for expense data.
func NewExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{db: db}
}

// Ensure PgxExpenseRepository implements the facade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	modelExpense := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_id, amount, category, description, payment_method, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query,
		modelExpense.ExpenseID,
		modelExpense.Amount,
		modelExpense.Category,
		modelExpense.Description,
		modelExpense.PaymentMethod,
		modelExpense.Date,
		modelExpense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT expense_id, amount, category, description, payment_method, date, created_at
		FROM expenses
		WHERE expense_id = $1;
	`
	var modelExpense models.Expense
	err := r.db.QueryRow(ctx, query, expenseID).Scan(
		&modelExpense.ExpenseID,
		&modelExpense.Amount,
		&modelExpense.Category,
		&modelExpense.Description,
		&modelExpense.PaymentMethod,
		&modelExpense.Date,
		&modelExpense.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}

	domainExpense := mapping.ToDomainExpense(modelExpense)
	return &domainExpense, nil
}

func (r *PgxExpenseRepository) FindExpenses(ctx context.Context) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, amount, category, description, payment_method, date, created_at
		FROM expenses
		ORDER BY date DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	modelExpenses := []models.Expense{}
	for rows.Next() {
		var modelExpense models.Expense
		err := rows.Scan(
			&modelExpense.ExpenseID,
			&modelExpense.Amount,
			&modelExpense.Category,
			&modelExpense.Description,
			&modelExpense.PaymentMethod,
			&modelExpense.Date,
			&modelExpense.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		modelExpenses = append(modelExpenses, modelExpense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}

	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	modelExpense := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET amount = $2, category = $3, description = $4, payment_method = $5, date = $6
		WHERE expense_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		modelExpense.ExpenseID,
		modelExpense.Amount,
		modelExpense.Category,
		modelExpense.Description,
		modelExpense.PaymentMethod,
		modelExpense.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", expense.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes the row if present. Deleting an unknown ID is a
// no-op, per the ledger contract.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	query := `DELETE FROM expenses WHERE expense_id = $1;`
	_, err := r.db.Exec(ctx, query, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	return nil
}
