package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	portsrepo "github.com/spendtrack/spendtrack_backend/internal/core/ports/repositories"
	"github.com/spendtrack/spendtrack_backend/internal/models"
	"github.com/spendtrack/spendtrack_backend/internal/utils/mapping"
)

// timeLayout is a fixed-width RFC 3339 form: nanoseconds always padded
// to nine digits, offset always UTC. Lexicographic order of the stored
// text then matches chronological order, which ORDER BY date relies on.
// RFC3339Nano cannot be used for writes because it trims trailing
// fractional zeros.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SqliteExpenseRepository is the embedded on-device variant of the
// expense store. Amounts are stored as decimal strings and dates as
// RFC 3339 text, the way the single-table schema keeps everything
// driver-portable.
type SqliteExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository opens (creating if needed) the sqlite database at
// dbPath and applies embedded migrations.
func NewExpenseRepository(dbPath string) (*SqliteExpenseRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SqliteExpenseRepository{db: db}, nil
}

// Ensure SqliteExpenseRepository implements the facade
var _ portsrepo.ExpenseRepositoryFacade = (*SqliteExpenseRepository)(nil)

// Close releases the underlying database handle.
func (r *SqliteExpenseRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SqliteExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	modelExpense := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_id, amount, category, description, payment_method, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query,
		modelExpense.ExpenseID,
		modelExpense.Amount.String(),
		modelExpense.Category,
		modelExpense.Description,
		modelExpense.PaymentMethod,
		modelExpense.Date.UTC().Format(timeLayout),
		modelExpense.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *SqliteExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT expense_id, amount, category, description, payment_method, date, created_at
		FROM expenses
		WHERE expense_id = ?;
	`
	row := r.db.QueryRowContext(ctx, query, expenseID)
	modelExpense, err := scanExpense(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}

	domainExpense := mapping.ToDomainExpense(modelExpense)
	return &domainExpense, nil
}

func (r *SqliteExpenseRepository) FindExpenses(ctx context.Context) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, amount, category, description, payment_method, date, created_at
		FROM expenses
		ORDER BY date DESC;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	modelExpenses := []models.Expense{}
	for rows.Next() {
		modelExpense, err := scanExpense(rows.Scan)
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

func (r *SqliteExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	modelExpense := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET amount = ?, category = ?, description = ?, payment_method = ?, date = ?
		WHERE expense_id = ?;
	`
	result, err := r.db.ExecContext(ctx, query,
		modelExpense.Amount.String(),
		modelExpense.Category,
		modelExpense.Description,
		modelExpense.PaymentMethod,
		modelExpense.Date.UTC().Format(timeLayout),
		modelExpense.ExpenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", expense.ExpenseID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result for %s: %w", expense.ExpenseID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes the row if present. Deleting an unknown ID is a
// no-op, per the ledger contract.
func (r *SqliteExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE expense_id = ?;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	return nil
}

// scanExpense decodes one row through the text-encoded amount and dates.
func scanExpense(scan func(dest ...any) error) (models.Expense, error) {
	var (
		modelExpense models.Expense
		amountText   string
		dateText     string
		createdText  string
	)
	err := scan(
		&modelExpense.ExpenseID,
		&amountText,
		&modelExpense.Category,
		&modelExpense.Description,
		&modelExpense.PaymentMethod,
		&dateText,
		&createdText,
	)
	if err != nil {
		return models.Expense{}, err
	}

	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return models.Expense{}, fmt.Errorf("decode amount %q: %w", amountText, err)
	}
	date, err := time.Parse(time.RFC3339Nano, dateText)
	if err != nil {
		return models.Expense{}, fmt.Errorf("decode date %q: %w", dateText, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, createdText)
	if err != nil {
		return models.Expense{}, fmt.Errorf("decode created_at %q: %w", createdText, err)
	}

	modelExpense.Amount = amount
	modelExpense.Date = date.Local()
	modelExpense.CreatedAt = createdAt.Local()
	return modelExpense, nil
}
