package repositories

import (
	"context"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
)

// SyncStateRepositoryFacade tracks the last payload the Hub acknowledged per journal.
type SyncStateRepositoryFacade interface {
	FindSyncStates(ctx context.Context, ledgerSourceID string) (map[string]domain.JournalSyncState, error)
	SaveSyncStates(ctx context.Context, states []domain.JournalSyncState) error
}

// ChangeLogRepositoryFacade is the append-only sync audit log.
type ChangeLogRepositoryFacade interface {
	AppendChangeLog(ctx context.Context, entry domain.ChangeLogEntry) error
	ListChangeLogs(ctx context.Context, ledgerSourceID string, limit int) ([]domain.ChangeLogEntry, error)
}

// HubGateway is the outbound port to the public disclosure registry.
type HubGateway interface {
	// UpsertLedgerSummary overwrites the ledger record keyed by its source id.
	UpsertLedgerSummary(ctx context.Context, summary domain.LedgerSummary) error
	// PushJournals sends one batch of journal payloads for a ledger.
	PushJournals(ctx context.Context, ledgerSourceID string, journals []domain.HubJournal) (*domain.HubBatchResult, error)
}
