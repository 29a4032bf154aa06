package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	portssvc "github.com/spendtrack/spendtrack_backend/internal/core/ports/services"
	"github.com/spendtrack/spendtrack_backend/internal/dto"
	"github.com/spendtrack/spendtrack_backend/internal/middleware"
)

// exportHandler streams CSV/PDF reports as downloadable attachments, the
// server-side half of the platform share flow.
type exportHandler struct {
	exportService portssvc.ExportSvcFacade
}

func newExportHandler(es portssvc.ExportSvcFacade) *exportHandler {
	return &exportHandler{exportService: es}
}

// registerExportRoutes registers the export routes.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvcFacade) {
	h := newExportHandler(exportService)

	exports := rg.Group("/export")
	exports.GET("/csv", h.exportCSV)
	exports.GET("/pdf", h.exportPDF)
}

func (h *exportHandler) exportCSV(c *gin.Context) {
	h.export(c, "csv", "text/csv", h.exportService.ExportCSV)
}

func (h *exportHandler) exportPDF(c *gin.Context) {
	h.export(c, "pdf", "application/pdf", h.exportService.ExportPDF)
}

type renderFunc func(ctx context.Context, period domain.ExportPeriod) ([]byte, error)

func (h *exportHandler) export(c *gin.Context, extension, contentType string, render renderFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for export", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	period := domain.ExportPeriod(params.Period)

	document, err := render(c.Request.Context(), period)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrExportEmpty):
			logger.Info("Export skipped, period is empty", slog.String("period", params.Period))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No expenses found for the selected period"})
		default:
			logger.Error("Failed to render export", slog.String("format", extension), slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Expense store is unavailable"})
		}
		return
	}

	filename := fmt.Sprintf("expenses_%s_%s.%s", params.Period, time.Now().Format("20060102"), extension)
	logger.Info("Export rendered", slog.String("format", extension), slog.String("period", params.Period), slog.Int("bytes", len(document)))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, document)
}
