package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/polifund_ledger/internal/models"
	"github.com/SscSPs/polifund_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const subAccountColumns = `sub_account_id, owner_user_id, ledger_type, account_code, name,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxSubAccountRepository implements portsrepo.SubAccountRepositoryFacade using pgx.
type PgxSubAccountRepository struct {
	BaseRepository
}

func newPgxSubAccountRepository(pool *pgxpool.Pool) portsrepo.SubAccountRepositoryFacade {
	return &PgxSubAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SubAccountRepositoryFacade = (*PgxSubAccountRepository)(nil)

func (r *PgxSubAccountRepository) SaveSubAccount(ctx context.Context, subAccount domain.SubAccount) error {
	m := mapping.ToModelSubAccount(subAccount)
	query := `INSERT INTO sub_accounts (` + subAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	_, err := r.Pool.Exec(ctx, query,
		m.SubAccountID, m.OwnerUserID, m.LedgerType, m.AccountCode, m.Name,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewPersistenceError(fmt.Sprintf("failed to insert sub-account %s", subAccount.SubAccountID), err)
	}
	return nil
}

// RenameSubAccount changes only the display name; the parent account code is fixed.
func (r *PgxSubAccountRepository) RenameSubAccount(ctx context.Context, subAccountID string, name string, updatedBy string, updatedAt time.Time) error {
	query := `UPDATE sub_accounts SET name = $2, last_updated_by = $3, last_updated_at = $4
		WHERE sub_account_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, subAccountID, name, updatedBy, updatedAt)
	if err != nil {
		return apperrors.NewPersistenceError(fmt.Sprintf("failed to rename sub-account %s", subAccountID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("sub-account %s not found", subAccountID))
	}
	return nil
}

func (r *PgxSubAccountRepository) FindSubAccountByID(ctx context.Context, subAccountID string) (*domain.SubAccount, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+subAccountColumns+` FROM sub_accounts WHERE sub_account_id = $1;`, subAccountID)
	if err != nil {
		return nil, queryError("query sub-account", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.SubAccount])
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("sub-account %s not found", subAccountID), "scan sub-account")
	}
	sub := mapping.ToDomainSubAccount(m)
	return &sub, nil
}

func (r *PgxSubAccountRepository) FindSubAccountsByIDs(ctx context.Context, subAccountIDs []string) (map[string]domain.SubAccount, error) {
	found := make(map[string]domain.SubAccount, len(subAccountIDs))
	if len(subAccountIDs) == 0 {
		return found, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+subAccountColumns+` FROM sub_accounts WHERE sub_account_id = ANY($1);`, subAccountIDs)
	if err != nil {
		return nil, queryError("query sub-accounts", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SubAccount])
	if err != nil {
		return nil, queryError("scan sub-accounts", err)
	}
	for _, m := range ms {
		found[m.SubAccountID] = mapping.ToDomainSubAccount(m)
	}
	return found, nil
}

// ListSubAccounts lists an owner's sub-accounts. An empty ledgerType lists both scopes.
func (r *PgxSubAccountRepository) ListSubAccounts(ctx context.Context, ownerUserID string, ledgerType domain.SubAccountLedgerType) ([]domain.SubAccount, error) {
	query := `SELECT ` + subAccountColumns + ` FROM sub_accounts
		WHERE owner_user_id = $1 AND ($2::text = '' OR ledger_type = $2::text)
		ORDER BY ledger_type, account_code, name, sub_account_id;`
	rows, err := r.Pool.Query(ctx, query, ownerUserID, string(ledgerType))
	if err != nil {
		return nil, queryError("list sub-accounts", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SubAccount])
	if err != nil {
		return nil, queryError("scan sub-accounts", err)
	}
	subs := make([]domain.SubAccount, 0, len(ms))
	for _, m := range ms {
		subs = append(subs, mapping.ToDomainSubAccount(m))
	}
	return subs, nil
}
