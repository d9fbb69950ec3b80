package services

import (
	"context"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
)

// ReportingService builds the compliance exports.
type ReportingService interface {
	GenerateReport(ctx context.Context, actor domain.Actor, kind domain.ReportKind, ledgerType domain.LedgerType, ledgerID string) (*domain.Report, error)
}
