package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	portssvc "github.com/spendtrack/spendtrack_backend/internal/core/ports/services"
)

const exportDateLayout = "2006-01-02"

// exportService renders a period's records as a CSV or PDF document.
type exportService struct {
	expenses portssvc.ExpenseReaderSvc
	now      func() time.Time
}

// ExportOption configures the export service.
type ExportOption func(*exportService)

// WithExportClock overrides the clock used for period selection.
func WithExportClock(now func() time.Time) ExportOption {
	return func(s *exportService) { s.now = now }
}

// NewExportService creates the export service.
func NewExportService(expenses portssvc.ExpenseReaderSvc, opts ...ExportOption) portssvc.ExportSvcFacade {
	s := &exportService{expenses: expenses, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

// periodRecords lists the ledger and narrows it to the period. An empty
// result is ErrExportEmpty so no partial document is ever produced.
func (s *exportService) periodRecords(ctx context.Context, period domain.ExportPeriod) ([]domain.Expense, error) {
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: unknown period %q", apperrors.ErrValidation, period)
	}
	records, err := s.expenses.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	filtered := domain.FilterByPeriod(records, s.now(), period)
	if len(filtered) == 0 {
		return nil, apperrors.ErrExportEmpty
	}
	return filtered, nil
}

func (s *exportService) ExportCSV(ctx context.Context, period domain.ExportPeriod) ([]byte, error) {
	records, err := s.periodRecords(ctx, period)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Date", "Category", "Amount", "Description"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Date.Local().Format(exportDateLayout),
			r.Category,
			r.Amount.StringFixed(2),
			r.Description,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *exportService) ExportPDF(ctx context.Context, period domain.ExportPeriod) ([]byte, error) {
	records, err := s.periodRecords(ctx, period)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 12, fmt.Sprintf("Expense Report - %s", period), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	widths := []float64{30, 45, 30, 85}
	headers := []string{"Date", "Category", "Amount", "Description"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(242, 242, 242)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, r := range records {
		description := r.Description
		if description == "" {
			description = "-"
		}
		pdf.CellFormat(widths[0], 8, r.Date.Local().Format(exportDateLayout), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, r.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, r.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 8, description, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(widths[0]+widths[1], 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[2]+widths[3], 8, domain.Sum(records).StringFixed(2), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
