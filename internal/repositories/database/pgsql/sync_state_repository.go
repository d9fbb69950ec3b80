package pgsql

import (
	"context"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/polifund_ledger/internal/models"
	"github.com/SscSPs/polifund_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSyncStateRepository stores the last Hub-acknowledged payload hash per journal.
type PgxSyncStateRepository struct {
	BaseRepository
}

func newPgxSyncStateRepository(pool *pgxpool.Pool) portsrepo.SyncStateRepositoryFacade {
	return &PgxSyncStateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SyncStateRepositoryFacade = (*PgxSyncStateRepository)(nil)

func (r *PgxSyncStateRepository) FindSyncStates(ctx context.Context, ledgerSourceID string) (map[string]domain.JournalSyncState, error) {
	rows, err := r.Pool.Query(ctx, `SELECT journal_id, ledger_source_id, payload_hash, synced_at
		FROM journal_sync_states WHERE ledger_source_id = $1;`, ledgerSourceID)
	if err != nil {
		return nil, queryError("query sync states", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalSyncState])
	if err != nil {
		return nil, queryError("scan sync states", err)
	}
	states := make(map[string]domain.JournalSyncState, len(ms))
	for _, m := range ms {
		states[m.JournalID] = mapping.ToDomainSyncState(m)
	}
	return states, nil
}

// SaveSyncStates upserts all states in one transaction.
func (r *PgxSyncStateRepository) SaveSyncStates(ctx context.Context, states []domain.JournalSyncState) error {
	if len(states) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	upsertSQL := `INSERT INTO journal_sync_states (journal_id, ledger_source_id, payload_hash, synced_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (journal_id) DO UPDATE
		SET ledger_source_id = EXCLUDED.ledger_source_id, payload_hash = EXCLUDED.payload_hash, synced_at = EXCLUDED.synced_at;`
	batch := &pgx.Batch{}
	for _, s := range states {
		m := mapping.ToModelSyncState(s)
		batch.Queue(upsertSQL, m.JournalID, m.LedgerSourceID, m.PayloadHash, m.SyncedAt)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewPersistenceError("failed to save sync states", err)
	}
	return r.Commit(ctx, tx)
}
