package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	portsrepo "github.com/spendtrack/spendtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/spendtrack/spendtrack_backend/internal/core/ports/services"
	"github.com/spendtrack/spendtrack_backend/internal/dto"
)

// expenseService implements the ledger store contract: validation before
// persistence, ID assignment, and store-failure mapping.
type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
	now         func() time.Time
}

// NewExpenseService creates the expense ledger service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo, now: time.Now}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// validateDraft checks the required fields. Amount must parse as a
// positive number and category must be non-empty; nothing is persisted
// otherwise.
func validateDraft(draft domain.ExpenseDraft) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(draft.Amount))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", apperrors.ErrValidation, draft.Amount)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if strings.TrimSpace(draft.Category) == "" {
		return decimal.Zero, fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	return amount, nil
}

func (s *expenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.FindExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing expenses: %v", apperrors.ErrStoreUnavailable, err)
	}
	return expenses, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: fetching expense %s: %v", apperrors.ErrStoreUnavailable, expenseID, err)
	}
	return expense, nil
}

func (s *expenseService) AddExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	draft := req.ToDraft()
	amount, err := validateDraft(draft)
	if err != nil {
		return nil, err
	}

	now := s.now()
	date := draft.Date
	if date.IsZero() {
		date = now
	}

	expense := domain.Expense{
		ExpenseID:     uuid.NewString(),
		Amount:        amount,
		Category:      strings.TrimSpace(draft.Category),
		Description:   strings.TrimSpace(draft.Description),
		PaymentMethod: strings.TrimSpace(draft.PaymentMethod),
		Date:          date,
		CreatedAt:     now,
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("%w: saving expense: %v", apperrors.ErrStoreUnavailable, err)
	}
	return &expense, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	draft := req.ToDraft()
	amount, err := validateDraft(draft)
	if err != nil {
		return nil, err
	}

	existing, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: fetching expense %s: %v", apperrors.ErrStoreUnavailable, expenseID, err)
	}

	date := draft.Date
	if date.IsZero() {
		date = existing.Date
	}

	updated := domain.Expense{
		ExpenseID:     existing.ExpenseID,
		Amount:        amount,
		Category:      strings.TrimSpace(draft.Category),
		Description:   strings.TrimSpace(draft.Description),
		PaymentMethod: strings.TrimSpace(draft.PaymentMethod),
		Date:          date,
		CreatedAt:     existing.CreatedAt,
	}

	if err := s.expenseRepo.UpdateExpense(ctx, updated); err != nil {
		return nil, fmt.Errorf("%w: updating expense %s: %v", apperrors.ErrStoreUnavailable, expenseID, err)
	}
	return &updated, nil
}

func (s *expenseService) RemoveExpense(ctx context.Context, expenseID string) error {
	// Idempotent by contract: the repository treats an unknown ID as a no-op.
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		return fmt.Errorf("%w: deleting expense %s: %v", apperrors.ErrStoreUnavailable, expenseID, err)
	}
	return nil
}

func (s *expenseService) PeriodSummary(ctx context.Context, period domain.ExportPeriod) (*domain.PeriodSummary, error) {
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: unknown period %q", apperrors.ErrValidation, period)
	}
	expenses, err := s.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	filtered := domain.FilterByPeriod(expenses, s.now(), period)
	return &domain.PeriodSummary{
		Period:    period,
		Count:     len(filtered),
		Total:     domain.Sum(filtered),
		Breakdown: domain.Breakdown(filtered),
	}, nil
}
