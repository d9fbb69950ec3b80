package services

import (
	"context"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	"github.com/SscSPs/polifund_ledger/internal/dto"
)

// ContactSvcFacade manages the actor's contacts.
type ContactSvcFacade interface {
	CreateContact(ctx context.Context, actor domain.Actor, req dto.ContactRequest) (*domain.Contact, error)
	UpdateContact(ctx context.Context, actor domain.Actor, contactID string, req dto.ContactRequest) (*domain.Contact, error)
	GetContact(ctx context.Context, actor domain.Actor, contactID string) (*domain.Contact, error)
	ListContacts(ctx context.Context, actor domain.Actor) ([]domain.Contact, error)
	DeleteContact(ctx context.Context, actor domain.Actor, contactID string) error
}
