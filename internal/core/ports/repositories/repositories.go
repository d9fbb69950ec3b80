package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	JournalRepo    JournalRepositoryFacade
	ContactRepo    ContactRepositoryFacade
	SubAccountRepo SubAccountRepositoryFacade
	LedgerRepo     LedgerRepositoryFacade
	SyncStateRepo  SyncStateRepositoryFacade
	ChangeLogRepo  ChangeLogRepositoryFacade
}
