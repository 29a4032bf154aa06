package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single recorded expense within the core domain.
// This is the primary representation used by services. Records are
// immutable once created except for deletion.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`     // Primary Key (UUID, assigned at creation)
	Amount        decimal.Decimal `json:"amount"`        // Always > 0, currency-agnostic
	Category      string          `json:"category"`      // Required short label
	Description   string          `json:"description"`   // Optional free text
	PaymentMethod string          `json:"paymentMethod"` // Optional short label
	Date          time.Time       `json:"date"`          // Creation or user-selected date
	CreatedAt     time.Time       `json:"createdAt"`
}

// ExpenseDraft carries the user-supplied fields of an expense before
// validation and ID assignment. Amount is kept as the raw input string so
// the service can distinguish "unparsable" from "not positive".
type ExpenseDraft struct {
	Amount        string
	Category      string
	Description   string
	PaymentMethod string
	Date          time.Time
}
