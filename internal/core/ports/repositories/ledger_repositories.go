package repositories

import (
	"context"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
)

// LedgerRepositoryFacade reads the registry of organizations and elections.
type LedgerRepositoryFacade interface {
	// FindLedger returns ErrNotFound when the organization or election does not exist.
	FindLedger(ctx context.Context, ledgerType domain.LedgerType, ledgerID string) (*domain.LedgerRef, error)
	// ListLedgers returns the ledgers selected by filter in a stable order.
	ListLedgers(ctx context.Context, filter domain.SyncFilter) ([]domain.LedgerRef, error)
}
