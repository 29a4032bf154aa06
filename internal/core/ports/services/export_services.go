package services

import (
	"context"

	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
)

// ExportSvcFacade produces shareable documents from the expense ledger.
// Both operations fail with apperrors.ErrExportEmpty when the selected
// period contains no records, leaving no partial file behind.
type ExportSvcFacade interface {
	// ExportCSV renders the period's records as a CSV document with
	// header row Date,Category,Amount,Description.
	ExportCSV(ctx context.Context, period domain.ExportPeriod) ([]byte, error)

	// ExportPDF renders the period's records as a tabular PDF report.
	ExportPDF(ctx context.Context, period domain.ExportPeriod) ([]byte, error)
}
