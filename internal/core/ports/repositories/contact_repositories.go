package repositories

import (
	"context"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
)

// ContactReader defines read operations for contacts
type ContactReader interface {
	FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error)
	// FindContactsByIDs returns the contacts found, keyed by id. Missing ids are absent.
	FindContactsByIDs(ctx context.Context, contactIDs []string) (map[string]domain.Contact, error)
	ListContactsByOwner(ctx context.Context, ownerUserID string) ([]domain.Contact, error)
}

// ContactWriter defines write operations for contacts
type ContactWriter interface {
	SaveContact(ctx context.Context, contact domain.Contact) error
	UpdateContact(ctx context.Context, contact domain.Contact) error
	DeleteContact(ctx context.Context, contactID string) error
}

// ContactRepositoryFacade combines contact reads and writes
type ContactRepositoryFacade interface {
	ContactReader
	ContactWriter
}
