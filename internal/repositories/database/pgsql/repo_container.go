package pgsql

import (
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JournalRepo:    newPgxJournalRepository(dbPool),
		ContactRepo:    newPgxContactRepository(dbPool),
		SubAccountRepo: newPgxSubAccountRepository(dbPool),
		LedgerRepo:     newPgxLedgerRepository(dbPool),
		SyncStateRepo:  newPgxSyncStateRepository(dbPool),
		ChangeLogRepo:  newPgxChangeLogRepository(dbPool),
	}
}
