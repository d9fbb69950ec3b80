package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/polifund_ledger/internal/models"
	"github.com/SscSPs/polifund_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxChangeLogRepository is the append-only sync audit log.
type PgxChangeLogRepository struct {
	BaseRepository
}

func newPgxChangeLogRepository(pool *pgxpool.Pool) portsrepo.ChangeLogRepositoryFacade {
	return &PgxChangeLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ChangeLogRepositoryFacade = (*PgxChangeLogRepository)(nil)

func (r *PgxChangeLogRepository) AppendChangeLog(ctx context.Context, entry domain.ChangeLogEntry) error {
	m, err := mapping.ToModelChangeLog(entry)
	if err != nil {
		return apperrors.NewPersistenceError("failed to encode change log", err)
	}
	_, err = r.Pool.Exec(ctx, `INSERT INTO sync_change_logs (change_log_id, ledger_source_id, summary, details, created_at)
		VALUES ($1, $2, $3, $4, $5);`, m.ChangeLogID, m.LedgerSourceID, m.Summary, m.Details, m.CreatedAt)
	if err != nil {
		return apperrors.NewPersistenceError(fmt.Sprintf("failed to append change log for %s", entry.LedgerSourceID), err)
	}
	return nil
}

// ListChangeLogs returns the newest entries first. An empty ledgerSourceID lists every ledger.
func (r *PgxChangeLogRepository) ListChangeLogs(ctx context.Context, ledgerSourceID string, limit int) ([]domain.ChangeLogEntry, error) {
	rows, err := r.Pool.Query(ctx, `SELECT change_log_id, ledger_source_id, summary, details, created_at
		FROM sync_change_logs
		WHERE ($1::text = '' OR ledger_source_id = $1::text)
		ORDER BY created_at DESC, change_log_id DESC
		LIMIT $2;`, ledgerSourceID, limit)
	if err != nil {
		return nil, queryError("list change logs", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ChangeLog])
	if err != nil {
		return nil, queryError("scan change logs", err)
	}
	entries := make([]domain.ChangeLogEntry, 0, len(ms))
	for _, m := range ms {
		e, err := mapping.ToDomainChangeLog(m)
		if err != nil {
			return nil, queryError("decode change log", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
