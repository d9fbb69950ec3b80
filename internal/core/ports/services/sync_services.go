package services

import (
	"context"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
)

// SyncSvcFacade drives Hub synchronization.
type SyncSvcFacade interface {
	// SyncLedgers runs one pass over the ledgers selected by filter. Per-ledger
	// failures are counted in the result, not returned.
	SyncLedgers(ctx context.Context, actor domain.Actor, filter domain.SyncFilter) (domain.SyncResult, error)

	// ListChangeLogs returns the latest change log entries of a ledger.
	ListChangeLogs(ctx context.Context, actor domain.Actor, ledgerSourceID string, limit int) ([]domain.ChangeLogEntry, error)
}
