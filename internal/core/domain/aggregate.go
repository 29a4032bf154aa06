package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExportPeriod selects the record window for exports and trend summaries.
type ExportPeriod string

const (
	PeriodWeek  ExportPeriod = "week"
	PeriodMonth ExportPeriod = "month"
	PeriodYear  ExportPeriod = "year"
)

// IsValid reports whether p is one of the known periods.
func (p ExportPeriod) IsValid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// CategoryTotal is one entry of a category breakdown. Entries keep the
// order in which their category was first seen in the input.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// FilterByDay returns the records whose local calendar day equals day's.
// Input ordering is preserved.
func FilterByDay(records []Expense, day time.Time) []Expense {
	filtered := make([]Expense, 0, len(records))
	for _, r := range records {
		if SameDay(r.Date, day) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterByPeriod returns the records within the given period relative to
// now: week is the trailing seven days, month and year match now's
// calendar month/year in local time.
func FilterByPeriod(records []Expense, now time.Time, period ExportPeriod) []Expense {
	filtered := make([]Expense, 0, len(records))
	for _, r := range records {
		if inPeriod(r.Date, now, period) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func inPeriod(date, now time.Time, period ExportPeriod) bool {
	switch period {
	case PeriodWeek:
		weekAgo := now.Add(-7 * 24 * time.Hour)
		return !date.Before(weekAgo)
	case PeriodMonth:
		return date.Local().Year() == now.Local().Year() && date.Local().Month() == now.Local().Month()
	case PeriodYear:
		return date.Local().Year() == now.Local().Year()
	}
	return true
}

// Sum returns the arithmetic total of the records' amounts. Empty input
// yields zero.
func Sum(records []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// Breakdown accumulates amounts per category. Category keys appear in
// first-seen order.
func Breakdown(records []Expense) []CategoryTotal {
	index := make(map[string]int, len(records))
	totals := make([]CategoryTotal, 0, len(records))
	for _, r := range records {
		i, seen := index[r.Category]
		if !seen {
			index[r.Category] = len(totals)
			totals = append(totals, CategoryTotal{Category: r.Category, Total: r.Amount})
			continue
		}
		totals[i].Total = totals[i].Total.Add(r.Amount)
	}
	return totals
}
