package services

import (
	"context"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	"github.com/SscSPs/polifund_ledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournal retrieves a journal with its entries.
	GetJournal(ctx context.Context, actor domain.Actor, journalID string) (*domain.Journal, error)

	// ListJournals retrieves a page of journals for one ledger.
	ListJournals(ctx context.Context, actor domain.Actor, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateJournal validates and persists a new journal with its entries.
	CreateJournal(ctx context.Context, actor domain.Actor, req dto.CreateJournalRequest) (*domain.Journal, error)

	// UpdateJournal replaces a draft journal's header and entries.
	UpdateJournal(ctx context.Context, actor domain.Actor, journalID string, req dto.UpdateJournalRequest) (*domain.Journal, error)

	// DeleteJournal removes a draft journal.
	DeleteJournal(ctx context.Context, actor domain.Actor, journalID string) error
}

// ApprovalSvc moves journals through the draft -> approved transition.
type ApprovalSvc interface {
	// ApproveJournal approves a draft journal. Approving an approved journal
	// returns it unchanged.
	ApproveJournal(ctx context.Context, actor domain.Actor, journalID string) (*domain.Journal, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	ApprovalSvc
}
