package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ledgerSelect projects organizations and elections onto one ledger shape.
const ledgerSelect = `
	SELECT 'organization' AS ledger_type, organization_id AS ledger_id, name, is_test FROM organizations
	UNION ALL
	SELECT 'election' AS ledger_type, election_id AS ledger_id, name, is_test FROM elections`

type ledgerRow struct {
	LedgerType string `db:"ledger_type"`
	LedgerID   string `db:"ledger_id"`
	Name       string `db:"name"`
	IsTest     bool   `db:"is_test"`
}

func (l ledgerRow) toDomain() domain.LedgerRef {
	return domain.LedgerRef{Type: domain.LedgerType(l.LedgerType), ID: l.LedgerID, Name: l.Name, IsTest: l.IsTest}
}

// PgxLedgerRepository reads the organization and election registries.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func (r *PgxLedgerRepository) FindLedger(ctx context.Context, ledgerType domain.LedgerType, ledgerID string) (*domain.LedgerRef, error) {
	query := `SELECT * FROM (` + ledgerSelect + `) l WHERE ledger_type = $1 AND ledger_id = $2;`
	rows, err := r.Pool.Query(ctx, query, string(ledgerType), ledgerID)
	if err != nil {
		return nil, queryError("query ledger", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[ledgerRow])
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("%s %s not found", ledgerType, ledgerID), "scan ledger")
	}
	ledger := row.toDomain()
	return &ledger, nil
}

// ListLedgers returns the selected ledgers ordered by type then id.
func (r *PgxLedgerRepository) ListLedgers(ctx context.Context, filter domain.SyncFilter) ([]domain.LedgerRef, error) {
	query := `SELECT * FROM (` + ledgerSelect + `) l
		WHERE ($1::text = '' OR ledger_type = $1::text) AND ($2::text = '' OR ledger_id = $2::text)
		ORDER BY ledger_type DESC, ledger_id ASC;`
	rows, err := r.Pool.Query(ctx, query, string(filter.LedgerType), filter.LedgerID)
	if err != nil {
		return nil, queryError("list ledgers", err)
	}
	ls, err := pgx.CollectRows(rows, pgx.RowToStructByName[ledgerRow])
	if err != nil {
		return nil, queryError("scan ledgers", err)
	}
	ledgers := make([]domain.LedgerRef, 0, len(ls))
	for _, l := range ls {
		ledgers = append(ledgers, l.toDomain())
	}
	return ledgers, nil
}
