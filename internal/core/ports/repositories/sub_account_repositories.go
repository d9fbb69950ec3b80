package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
)

// SubAccountReader defines read operations for sub-accounts
type SubAccountReader interface {
	FindSubAccountByID(ctx context.Context, subAccountID string) (*domain.SubAccount, error)
	FindSubAccountsByIDs(ctx context.Context, subAccountIDs []string) (map[string]domain.SubAccount, error)
	ListSubAccounts(ctx context.Context, ownerUserID string, ledgerType domain.SubAccountLedgerType) ([]domain.SubAccount, error)
}

// SubAccountWriter defines write operations for sub-accounts. The parent
// account code is never updated.
type SubAccountWriter interface {
	SaveSubAccount(ctx context.Context, subAccount domain.SubAccount) error
	RenameSubAccount(ctx context.Context, subAccountID string, name string, updatedBy string, updatedAt time.Time) error
}

// SubAccountRepositoryFacade combines sub-account reads and writes
type SubAccountRepositoryFacade interface {
	SubAccountReader
	SubAccountWriter
}
