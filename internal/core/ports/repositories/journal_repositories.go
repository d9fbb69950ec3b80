package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalByID retrieves a journal and its entries.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournalsByLedger retrieves a page of journals for one ledger, newest first.
	// It returns the journals, a token for the next page, and an error.
	ListJournalsByLedger(ctx context.Context, ledger domain.LedgerRef, limit int, nextToken *string) ([]domain.Journal, *string, error)

	// ListApprovedJournalsByLedger retrieves every approved journal of a ledger with its entries.
	ListApprovedJournalsByLedger(ctx context.Context, ledger domain.LedgerRef) ([]domain.Journal, error)

	// CountJournalsByContact counts journals referencing a contact.
	CountJournalsByContact(ctx context.Context, contactID string) (int, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournal persists a journal header and its entries as one unit.
	SaveJournal(ctx context.Context, journal domain.Journal) error

	// ReplaceDraftJournal overwrites a draft header and its entries as one unit.
	ReplaceDraftJournal(ctx context.Context, journal domain.Journal) error

	// ApproveJournal moves a draft journal to approved. It reports false when the
	// journal was already approved.
	ApproveJournal(ctx context.Context, journalID string, approvedBy string, approvedAt time.Time) (bool, error)

	// DeleteDraftJournal removes a draft journal and its entries.
	DeleteDraftJournal(ctx context.Context, journalID string) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
