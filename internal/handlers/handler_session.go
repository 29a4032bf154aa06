package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	portssvc "github.com/spendtrack/spendtrack_backend/internal/core/ports/services"
	"github.com/spendtrack/spendtrack_backend/internal/dto"
	"github.com/spendtrack/spendtrack_backend/internal/middleware"
)

// sessionHandler exposes the composition-root state machine: the date
// cursor, the drawer and the modal/theme flags, plus the derived day view.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

func newSessionHandler(ss portssvc.SessionSvcFacade) *sessionHandler {
	return &sessionHandler{sessionService: ss}
}

// registerSessionRoutes registers all session routes.
func registerSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade) {
	h := newSessionHandler(sessionService)

	sessions := rg.Group("/session")
	{
		sessions.POST("", h.createSession)
		sessions.GET("/:id", h.getSession)
		sessions.GET("/:id/view", h.getView)
		sessions.POST("/:id/expense", h.addExpense)
		sessions.POST("/:id/date/shift", h.shiftDate)
		sessions.POST("/:id/date/today", h.goToToday)
		sessions.POST("/:id/modal/open", h.openModal)
		sessions.POST("/:id/modal/close", h.closeModal)
		sessions.POST("/:id/theme/toggle", h.toggleTheme)
		sessions.POST("/:id/drawer/begin", h.drawerBegin)
		sessions.POST("/:id/drawer/update", h.drawerUpdate)
		sessions.POST("/:id/drawer/end", h.drawerEnd)
	}
}

func (h *sessionHandler) createSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create session request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), req.DrawerWidth)
	if err != nil {
		logger.Error("Failed to create session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	logger.Info("Session created", slog.String("session_id", session.SessionID))
	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

func (h *sessionHandler) getSession(c *gin.Context) {
	h.respondSession(c, func(sessionID string) (domain.SessionSnapshot, error) {
		return h.sessionService.GetSession(c.Request.Context(), sessionID)
	})
}

func (h *sessionHandler) getView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	view, err := h.sessionService.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		logger.Error("Failed to derive day view", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive view"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDayViewResponse(view))
}

// addExpense records an expense through the session. The service rejects
// it while the cursor is off the current day.
func (h *sessionHandler) addExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for session add expense request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.sessionService.AddExpense(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Session expense rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to add expense through session", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Expense store is unavailable"})
		}
		return
	}

	logger.Info("Expense created via session", slog.String("expense_id", created.ExpenseID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(created))
}

func (h *sessionHandler) shiftDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ShiftDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for shift date request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.respondSession(c, func(sessionID string) (domain.SessionSnapshot, error) {
		return h.sessionService.ShiftDate(c.Request.Context(), sessionID, req.Days)
	})
}

func (h *sessionHandler) goToToday(c *gin.Context) {
	h.respondSession(c, func(sessionID string) (domain.SessionSnapshot, error) {
		return h.sessionService.GoToToday(c.Request.Context(), sessionID)
	})
}

func (h *sessionHandler) openModal(c *gin.Context) {
	h.respondSession(c, func(sessionID string) (domain.SessionSnapshot, error) {
		return h.sessionService.OpenModal(c.Request.Context(), sessionID)
	})
}

func (h *sessionHandler) closeModal(c *gin.Context) {
	h.respondSession(c, func(sessionID string) (domain.SessionSnapshot, error) {
		return h.sessionService.CloseModal(c.Request.Context(), sessionID)
	})
}

func (h *sessionHandler) toggleTheme(c *gin.Context) {
	h.respondSession(c, func(sessionID string) (domain.SessionSnapshot, error) {
		return h.sessionService.ToggleTheme(c.Request.Context(), sessionID)
	})
}

func (h *sessionHandler) drawerBegin(c *gin.Context) {
	h.respondSession(c, func(sessionID string) (domain.SessionSnapshot, error) {
		return h.sessionService.DrawerBegin(c.Request.Context(), sessionID)
	})
}

func (h *sessionHandler) drawerUpdate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DrawerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for drawer update request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.respondSession(c, func(sessionID string) (domain.SessionSnapshot, error) {
		return h.sessionService.DrawerUpdate(c.Request.Context(), sessionID, req.TranslationX)
	})
}

func (h *sessionHandler) drawerEnd(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DrawerEndRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for drawer end request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.respondSession(c, func(sessionID string) (domain.SessionSnapshot, error) {
		return h.sessionService.DrawerEnd(c.Request.Context(), sessionID, req.TranslationX, req.VelocityX)
	})
}

// respondSession runs a session operation and renders the resulting state.
func (h *sessionHandler) respondSession(c *gin.Context, op func(sessionID string) (domain.SessionSnapshot, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	session, err := op(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		logger.Error("Session operation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session operation failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}
