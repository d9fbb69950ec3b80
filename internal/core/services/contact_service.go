package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/polifund_ledger/internal/core/ports/services"
	"github.com/SscSPs/polifund_ledger/internal/dto"
)

type contactService struct {
	BaseService
	contactRepo portsrepo.ContactRepositoryFacade
	journalRepo portsrepo.JournalReader
}

// NewContactService creates the contact service.
func NewContactService(contactRepo portsrepo.ContactRepositoryFacade, journalRepo portsrepo.JournalReader) portssvc.ContactSvcFacade {
	return &contactService{
		BaseService: newBaseService(),
		contactRepo: contactRepo,
		journalRepo: journalRepo,
	}
}

var _ portssvc.ContactSvcFacade = (*contactService)(nil)

func applyContactRequest(c *domain.Contact, req dto.ContactRequest) {
	c.ContactType = domain.ContactType(req.ContactType)
	c.Name = strings.TrimSpace(req.Name)
	c.Address = emptyToNil(req.Address)
	c.Occupation = emptyToNil(req.Occupation)
	c.IsNamePrivate = req.IsNamePrivate
	c.IsAddressPrivate = req.IsAddressPrivate
	c.IsOccupationPrivate = req.IsOccupationPrivate
	c.PrivacyReasonType = nil
	if req.PrivacyReasonType != nil && *req.PrivacyReasonType != "" {
		reason := domain.PrivacyReasonType(*req.PrivacyReasonType)
		c.PrivacyReasonType = &reason
	}
	c.PrivacyReasonOther = strings.TrimSpace(req.PrivacyReasonOther)
}

func (s *contactService) CreateContact(ctx context.Context, actor domain.Actor, req dto.ContactRequest) (*domain.Contact, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.PermManageContacts); err != nil {
		return nil, err
	}
	now := s.now()
	contact := domain.Contact{
		ContactID:   uuid.NewString(),
		OwnerUserID: actor.UserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	applyContactRequest(&contact, req)
	if err := contact.Validate(); err != nil {
		return nil, err
	}
	if err := s.contactRepo.SaveContact(ctx, contact); err != nil {
		s.LogError(ctx, err, "Failed to save contact")
		return nil, err
	}
	s.LogInfo(ctx, "Contact created", slog.String("contact_id", contact.ContactID))
	return &contact, nil
}

// findOwned hides contacts of other actors behind NotFound.
func (s *contactService) findOwned(ctx context.Context, actor domain.Actor, contactID string) (*domain.Contact, error) {
	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if contact.OwnerUserID != actor.UserID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("contact %s not found", contactID))
	}
	return contact, nil
}

func (s *contactService) UpdateContact(ctx context.Context, actor domain.Actor, contactID string, req dto.ContactRequest) (*domain.Contact, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.PermManageContacts); err != nil {
		return nil, err
	}
	contact, err := s.findOwned(ctx, actor, contactID)
	if err != nil {
		return nil, err
	}
	applyContactRequest(contact, req)
	contact.LastUpdatedAt = s.now()
	contact.LastUpdatedBy = actor.UserID
	if err := contact.Validate(); err != nil {
		return nil, err
	}
	if err := s.contactRepo.UpdateContact(ctx, *contact); err != nil {
		s.LogError(ctx, err, "Failed to update contact", slog.String("contact_id", contactID))
		return nil, err
	}
	return contact, nil
}

func (s *contactService) GetContact(ctx context.Context, actor domain.Actor, contactID string) (*domain.Contact, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.PermViewJournal); err != nil {
		return nil, err
	}
	return s.findOwned(ctx, actor, contactID)
}

func (s *contactService) ListContacts(ctx context.Context, actor domain.Actor) ([]domain.Contact, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.PermViewJournal); err != nil {
		return nil, err
	}
	return s.contactRepo.ListContactsByOwner(ctx, actor.UserID)
}

// DeleteContact removes a contact unless a journal references it.
func (s *contactService) DeleteContact(ctx context.Context, actor domain.Actor, contactID string) error {
	if err := s.AuthorizeActor(ctx, actor, domain.PermManageContacts); err != nil {
		return err
	}
	if _, err := s.findOwned(ctx, actor, contactID); err != nil {
		return err
	}
	refs, err := s.journalRepo.CountJournalsByContact(ctx, contactID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperrors.NewConflictError(fmt.Sprintf("contact %s is referenced by %d journal(s)", contactID, refs))
	}
	if err := s.contactRepo.DeleteContact(ctx, contactID); err != nil {
		s.LogError(ctx, err, "Failed to delete contact", slog.String("contact_id", contactID))
		return err
	}
	return nil
}
