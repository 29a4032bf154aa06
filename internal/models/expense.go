package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the persistence-layer representation of an expense row.
// Amount is stored as a numeric column and scanned through decimal.
type Expense struct {
	ExpenseID     string          `db:"expense_id"`
	Amount        decimal.Decimal `db:"amount"`
	Category      string          `db:"category"`
	Description   string          `db:"description"`
	PaymentMethod string          `db:"payment_method"`
	Date          time.Time       `db:"date"`
	CreatedAt     time.Time       `db:"created_at"`
}
