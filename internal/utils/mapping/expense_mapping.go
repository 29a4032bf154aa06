package mapping

import (
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	"github.com/spendtrack/spendtrack_backend/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:     d.ExpenseID,
		Amount:        d.Amount,
		Category:      d.Category,
		Description:   d.Description,
		PaymentMethod: d.PaymentMethod,
		Date:          d.Date,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:     m.ExpenseID,
		Amount:        m.Amount,
		Category:      m.Category,
		Description:   m.Description,
		PaymentMethod: m.PaymentMethod,
		Date:          m.Date,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
