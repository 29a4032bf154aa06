package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Theme is the presentation color scheme toggled from the drawer.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Session is the explicit application state owned by the composition
// root: theme flag, open modal flag, date cursor and drawer machine.
// It is mutated only through named operations, never ambiently.
type Session struct {
	SessionID string
	Theme     Theme
	ModalOpen bool
	Cursor    *DateCursor
	Drawer    *Drawer
}

// ToggleTheme flips between light and dark.
func (s *Session) ToggleTheme() Theme {
	if s.Theme == ThemeDark {
		s.Theme = ThemeLight
	} else {
		s.Theme = ThemeDark
	}
	return s.Theme
}

// OpenModal shows the add-expense form. The drawer gesture recognizer is
// made inert for the duration to avoid conflicting input capture.
func (s *Session) OpenModal() {
	s.ModalOpen = true
	s.Drawer.SetEnabled(false)
}

// CloseModal dismisses the add-expense form and re-arms the gesture
// recognizer.
func (s *Session) CloseModal() {
	s.ModalOpen = false
	s.Drawer.SetEnabled(true)
}

// CanAdd reports whether the add affordance is active. Expense entry is
// restricted to the current day, which keeps back-dated entries out of
// the primary entry point while past days stay browsable.
func (s *Session) CanAdd() bool {
	return s.Cursor.IsToday()
}

// DrawerSnapshot is a point-in-time copy of the drawer machine.
type DrawerSnapshot struct {
	State    DrawerState
	Offset   float64
	Width    float64
	Dragging bool
	Enabled  bool
}

// SessionSnapshot is a value copy of the session state. The live Session
// is only ever touched under the owning service's lock; callers get a
// snapshot and can render it after the lock is released.
type SessionSnapshot struct {
	SessionID  string
	Theme      Theme
	ModalOpen  bool
	CursorDate time.Time
	IsToday    bool
	CanAdd     bool
	Drawer     DrawerSnapshot
}

// Snapshot captures the session's current state. Must be called with the
// owning lock held.
func (s *Session) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		SessionID:  s.SessionID,
		Theme:      s.Theme,
		ModalOpen:  s.ModalOpen,
		CursorDate: s.Cursor.Current(),
		IsToday:    s.Cursor.IsToday(),
		CanAdd:     s.CanAdd(),
		Drawer: DrawerSnapshot{
			State:    s.Drawer.State(),
			Offset:   s.Drawer.Offset(),
			Width:    s.Drawer.Width(),
			Dragging: s.Drawer.Dragging(),
			Enabled:  s.Drawer.Enabled(),
		},
	}
}

// DayView is the derived view for the cursor's day: the matching subset
// of the ledger, its sum and per-category breakdown. Always recomputed
// from current inputs, never stored.
type DayView struct {
	Date            time.Time       `json:"date"`
	IsToday         bool            `json:"isToday"`
	CanAdd          bool            `json:"canAdd"`
	Expenses        []Expense       `json:"expenses"`
	Total           decimal.Decimal `json:"total"`
	Breakdown       []CategoryTotal `json:"breakdown"`
	LedgerAvailable bool            `json:"ledgerAvailable"`
}

// PeriodSummary aggregates a period's records for trend reporting.
type PeriodSummary struct {
	Period    ExportPeriod    `json:"period"`
	Count     int             `json:"count"`
	Total     decimal.Decimal `json:"total"`
	Breakdown []CategoryTotal `json:"breakdown"`
}
