package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to record an expense.
// Amount arrives as the raw input string so the service can reject
// unparsable or non-positive values as a validation error rather than a
// malformed request.
type CreateExpenseRequest struct {
	Amount        string    `json:"amount"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	PaymentMethod string    `json:"paymentMethod"`
	Date          time.Time `json:"date"` // Zero value means "now"
}

// ToDraft converts the request into a domain draft.
func (r CreateExpenseRequest) ToDraft() domain.ExpenseDraft {
	return domain.ExpenseDraft{
		Amount:        r.Amount,
		Category:      r.Category,
		Description:   r.Description,
		PaymentMethod: r.PaymentMethod,
		Date:          r.Date,
	}
}

// UpdateExpenseRequest defines the data allowed when replacing an
// existing expense. Same shape and validation as creation.
type UpdateExpenseRequest struct {
	Amount        string    `json:"amount"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	PaymentMethod string    `json:"paymentMethod"`
	Date          time.Time `json:"date"`
}

// ToDraft converts the request into a domain draft.
func (r UpdateExpenseRequest) ToDraft() domain.ExpenseDraft {
	return domain.ExpenseDraft{
		Amount:        r.Amount,
		Category:      r.Category,
		Description:   r.Description,
		PaymentMethod: r.PaymentMethod,
		Date:          r.Date,
	}
}

// ExpenseResponse is the API representation of an expense.
type ExpenseResponse struct {
	ExpenseID     string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to its response DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		Amount:        e.Amount,
		Category:      e.Category,
		Description:   e.Description,
		PaymentMethod: e.PaymentMethod,
		Date:          e.Date,
		CreatedAt:     e.CreatedAt,
	}
}

// ListExpensesResponse wraps the ledger listing.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToListExpensesResponse converts a slice of domain.Expense to the list DTO.
func ToListExpensesResponse(expenses []domain.Expense) ListExpensesResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return ListExpensesResponse{Expenses: responses}
}

// PeriodParams selects the record window for exports and trend summaries.
type PeriodParams struct {
	Period string `form:"period,default=month"`
}

// PeriodSummaryResponse is the API representation of a period aggregate.
type PeriodSummaryResponse struct {
	Period    string                 `json:"period"`
	Count     int                    `json:"count"`
	Total     decimal.Decimal        `json:"total"`
	Breakdown []domain.CategoryTotal `json:"breakdown"`
}

// ToPeriodSummaryResponse converts a domain.PeriodSummary to its DTO.
func ToPeriodSummaryResponse(s *domain.PeriodSummary) PeriodSummaryResponse {
	return PeriodSummaryResponse{
		Period:    string(s.Period),
		Count:     s.Count,
		Total:     s.Total,
		Breakdown: s.Breakdown,
	}
}
