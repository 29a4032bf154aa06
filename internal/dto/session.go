package dto

import (
	"time"

	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
)

// CreateSessionRequest starts a session. DrawerWidth is the client's
// rendered drawer width in its own units; the snap midpoint and resting
// offsets derive from it.
type CreateSessionRequest struct {
	DrawerWidth float64 `json:"drawerWidth" binding:"required,gt=0"`
}

// ShiftDateRequest moves the session's date cursor by a relative number
// of days. No binding constraint: zero is a valid (no-op) shift, and the
// validator would treat a required zero as missing.
type ShiftDateRequest struct {
	Days int `json:"days"`
}

// DrawerUpdateRequest carries the running gesture translation.
type DrawerUpdateRequest struct {
	TranslationX float64 `json:"translationX"`
}

// DrawerEndRequest carries the gesture release signal. Cancelled releases
// are decided by the same snap rule as normal ones.
type DrawerEndRequest struct {
	TranslationX float64 `json:"translationX"`
	VelocityX    float64 `json:"velocityX"`
}

// DrawerResponse is the API representation of the drawer machine.
type DrawerResponse struct {
	State    string  `json:"state"`
	Offset   float64 `json:"offset"`
	Width    float64 `json:"width"`
	Dragging bool    `json:"dragging"`
	Enabled  bool    `json:"enabled"`
}

// SessionResponse is the API representation of the application state.
type SessionResponse struct {
	SessionID  string         `json:"sessionID"`
	Theme      string         `json:"theme"`
	ModalOpen  bool           `json:"modalOpen"`
	CursorDate time.Time      `json:"cursorDate"`
	IsToday    bool           `json:"isToday"`
	CanAdd     bool           `json:"canAdd"`
	Drawer     DrawerResponse `json:"drawer"`
}

// ToSessionResponse converts a domain.SessionSnapshot to its response DTO.
func ToSessionResponse(s domain.SessionSnapshot) SessionResponse {
	return SessionResponse{
		SessionID:  s.SessionID,
		Theme:      string(s.Theme),
		ModalOpen:  s.ModalOpen,
		CursorDate: s.CursorDate,
		IsToday:    s.IsToday,
		CanAdd:     s.CanAdd,
		Drawer: DrawerResponse{
			State:    string(s.Drawer.State),
			Offset:   s.Drawer.Offset,
			Width:    s.Drawer.Width,
			Dragging: s.Drawer.Dragging,
			Enabled:  s.Drawer.Enabled,
		},
	}
}

// DayViewResponse is the derived view for the cursor's day.
type DayViewResponse struct {
	Date            time.Time              `json:"date"`
	IsToday         bool                   `json:"isToday"`
	CanAdd          bool                   `json:"canAdd"`
	Total           string                 `json:"total"`
	Breakdown       []domain.CategoryTotal `json:"breakdown"`
	Expenses        []ExpenseResponse      `json:"expenses"`
	LedgerAvailable bool                   `json:"ledgerAvailable"`
}

// ToDayViewResponse converts a domain.DayView to its response DTO.
func ToDayViewResponse(v *domain.DayView) DayViewResponse {
	responses := make([]ExpenseResponse, len(v.Expenses))
	for i := range v.Expenses {
		responses[i] = ToExpenseResponse(&v.Expenses[i])
	}
	return DayViewResponse{
		Date:            v.Date,
		IsToday:         v.IsToday,
		CanAdd:          v.CanAdd,
		Total:           v.Total.StringFixed(2),
		Breakdown:       v.Breakdown,
		Expenses:        responses,
		LedgerAvailable: v.LedgerAvailable,
	}
}
