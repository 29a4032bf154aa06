package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	portssvc "github.com/spendtrack/spendtrack_backend/internal/core/ports/services"
	"github.com/spendtrack/spendtrack_backend/internal/dto"
)

// sessionService owns per-client application state. All state lives in
// explicit Session structs mutated only through named operations; the
// mutex serializes them, since Gin serves requests concurrently. Live
// sessions never escape the lock: every operation returns a value
// snapshot taken while the lock is held.
type sessionService struct {
	expenses          portssvc.ExpenseSvcFacade
	velocityThreshold float64
	now               func() time.Time

	mu       sync.Mutex
	sessions map[string]*domain.Session
}

// NewSessionService creates the session service. velocityThreshold is the
// drawer flick-open threshold, configurable but 500 by default.
func NewSessionService(expenses portssvc.ExpenseSvcFacade, velocityThreshold float64) portssvc.SessionSvcFacade {
	if velocityThreshold <= 0 {
		velocityThreshold = domain.DefaultVelocityThreshold
	}
	return &sessionService{
		expenses:          expenses,
		velocityThreshold: velocityThreshold,
		now:               time.Now,
		sessions:          make(map[string]*domain.Session),
	}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

func (s *sessionService) CreateSession(ctx context.Context, drawerWidth float64) (domain.SessionSnapshot, error) {
	session := &domain.Session{
		SessionID: uuid.NewString(),
		Theme:     domain.ThemeLight,
		Cursor:    domain.NewDateCursorAt(s.now, s.now()),
		Drawer:    domain.NewDrawerAt(drawerWidth, s.velocityThreshold, s.now),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.SessionID] = session
	return session.Snapshot(), nil
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (domain.SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return domain.SessionSnapshot{}, apperrors.ErrNotFound
	}
	return session.Snapshot(), nil
}

// View derives the day view from current inputs on every call. A store
// failure degrades to an empty ledger with LedgerAvailable false; the
// client shows a dismissable notice instead of an error screen.
func (s *sessionService) View(ctx context.Context, sessionID string) (*domain.DayView, error) {
	// Existence check up front so an unknown session is not masked by a
	// store failure.
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	available := true
	records, err := s.expenses.ListExpenses(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrStoreUnavailable) {
			return nil, err
		}
		available = false
		records = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	filtered := domain.FilterByDay(records, session.Cursor.Current())
	return &domain.DayView{
		Date:            session.Cursor.Current(),
		IsToday:         session.Cursor.IsToday(),
		CanAdd:          session.CanAdd(),
		Expenses:        filtered,
		Total:           domain.Sum(filtered),
		Breakdown:       domain.Breakdown(filtered),
		LedgerAvailable: available,
	}, nil
}

// AddExpense is the session-scoped entry point into the ledger. Entry is
// gated on the cursor being on the current day, so back-dated additions
// never come through here; the raw ledger API stays unrestricted.
func (s *sessionService) AddExpense(ctx context.Context, sessionID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, apperrors.ErrNotFound
	}
	canAdd := session.CanAdd()
	s.mu.Unlock()

	if !canAdd {
		return nil, fmt.Errorf("%w: expenses can only be added on the current day", apperrors.ErrValidation)
	}
	return s.expenses.AddExpense(ctx, req)
}

// mutate runs a named operation against a session under the lock and
// returns the resulting snapshot.
func (s *sessionService) mutate(sessionID string, op func(*domain.Session)) (domain.SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return domain.SessionSnapshot{}, apperrors.ErrNotFound
	}
	op(session)
	return session.Snapshot(), nil
}

func (s *sessionService) ShiftDate(ctx context.Context, sessionID string, deltaDays int) (domain.SessionSnapshot, error) {
	return s.mutate(sessionID, func(session *domain.Session) {
		session.Cursor.Shift(deltaDays)
	})
}

func (s *sessionService) GoToToday(ctx context.Context, sessionID string) (domain.SessionSnapshot, error) {
	return s.mutate(sessionID, func(session *domain.Session) {
		session.Cursor.ResetToToday()
	})
}

func (s *sessionService) OpenModal(ctx context.Context, sessionID string) (domain.SessionSnapshot, error) {
	return s.mutate(sessionID, func(session *domain.Session) {
		session.OpenModal()
	})
}

func (s *sessionService) CloseModal(ctx context.Context, sessionID string) (domain.SessionSnapshot, error) {
	return s.mutate(sessionID, func(session *domain.Session) {
		session.CloseModal()
	})
}

func (s *sessionService) ToggleTheme(ctx context.Context, sessionID string) (domain.SessionSnapshot, error) {
	return s.mutate(sessionID, func(session *domain.Session) {
		session.ToggleTheme()
	})
}

func (s *sessionService) DrawerBegin(ctx context.Context, sessionID string) (domain.SessionSnapshot, error) {
	return s.mutate(sessionID, func(session *domain.Session) {
		session.Drawer.BeginDrag()
	})
}

func (s *sessionService) DrawerUpdate(ctx context.Context, sessionID string, translationX float64) (domain.SessionSnapshot, error) {
	return s.mutate(sessionID, func(session *domain.Session) {
		session.Drawer.DragUpdate(translationX)
	})
}

func (s *sessionService) DrawerEnd(ctx context.Context, sessionID string, translationX, velocityX float64) (domain.SessionSnapshot, error) {
	return s.mutate(sessionID, func(session *domain.Session) {
		session.Drawer.DragEnd(translationX, velocityX)
	})
}
