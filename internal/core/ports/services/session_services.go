package services

import (
	"context"

	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	"github.com/spendtrack/spendtrack_backend/internal/dto"
)

// SessionSvcFacade owns per-client application state (theme, modal,
// date cursor, drawer) and derives the day view from the ledger. All
// operations return value snapshots; the live session state never leaves
// the service's lock.
type SessionSvcFacade interface {
	// CreateSession starts a session with the client's drawer width.
	CreateSession(ctx context.Context, drawerWidth float64) (domain.SessionSnapshot, error)

	// GetSession retrieves a session snapshot by ID.
	GetSession(ctx context.Context, sessionID string) (domain.SessionSnapshot, error)

	// View derives the filtered list, total and breakdown for the
	// session's cursor day. A failing store yields an empty ledger view,
	// not an error.
	View(ctx context.Context, sessionID string) (*domain.DayView, error)

	// AddExpense records an expense through the session. Rejected with a
	// validation error while the cursor is not on the current day.
	AddExpense(ctx context.Context, sessionID string, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// ShiftDate moves the cursor by deltaDays.
	ShiftDate(ctx context.Context, sessionID string, deltaDays int) (domain.SessionSnapshot, error)

	// GoToToday resets the cursor to the current day.
	GoToToday(ctx context.Context, sessionID string) (domain.SessionSnapshot, error)

	// OpenModal / CloseModal gate the add-expense form and the drawer
	// gesture recognizer.
	OpenModal(ctx context.Context, sessionID string) (domain.SessionSnapshot, error)
	CloseModal(ctx context.Context, sessionID string) (domain.SessionSnapshot, error)

	// ToggleTheme flips the session's color scheme.
	ToggleTheme(ctx context.Context, sessionID string) (domain.SessionSnapshot, error)

	// Drawer gesture transitions.
	DrawerBegin(ctx context.Context, sessionID string) (domain.SessionSnapshot, error)
	DrawerUpdate(ctx context.Context, sessionID string, translationX float64) (domain.SessionSnapshot, error)
	DrawerEnd(ctx context.Context, sessionID string, translationX, velocityX float64) (domain.SessionSnapshot, error)
}
