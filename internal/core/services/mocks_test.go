package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/polifund_ledger/internal/core/services"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) ListJournalsByLedger(ctx context.Context, ledger domain.LedgerRef, limit int, nextToken *string) ([]domain.Journal, *string, error) {
	args := m.Called(ctx, ledger, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Journal), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) ListApprovedJournalsByLedger(ctx context.Context, ledger domain.LedgerRef) ([]domain.Journal, error) {
	args := m.Called(ctx, ledger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) CountJournalsByContact(ctx context.Context, contactID string) (int, error) {
	args := m.Called(ctx, contactID)
	return args.Int(0), args.Error(1)
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) ReplaceDraftJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) ApproveJournal(ctx context.Context, journalID string, approvedBy string, approvedAt time.Time) (bool, error) {
	args := m.Called(ctx, journalID, approvedBy, approvedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockJournalRepository) DeleteDraftJournal(ctx context.Context, journalID string) error {
	args := m.Called(ctx, journalID)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindLedger(ctx context.Context, ledgerType domain.LedgerType, ledgerID string) (*domain.LedgerRef, error) {
	args := m.Called(ctx, ledgerType, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerRef), args.Error(1)
}

func (m *MockLedgerRepository) ListLedgers(ctx context.Context, filter domain.SyncFilter) ([]domain.LedgerRef, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerRef), args.Error(1)
}

// --- Mock ContactRepository ---
type MockContactRepository struct {
	mock.Mock
}

var _ portsrepo.ContactRepositoryFacade = (*MockContactRepository)(nil)

func (m *MockContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepository) FindContactsByIDs(ctx context.Context, contactIDs []string) (map[string]domain.Contact, error) {
	args := m.Called(ctx, contactIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Contact), args.Error(1)
}

func (m *MockContactRepository) ListContactsByOwner(ctx context.Context, ownerUserID string) ([]domain.Contact, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) DeleteContact(ctx context.Context, contactID string) error {
	args := m.Called(ctx, contactID)
	return args.Error(0)
}

// --- Mock SubAccountRepository ---
type MockSubAccountRepository struct {
	mock.Mock
}

var _ portsrepo.SubAccountRepositoryFacade = (*MockSubAccountRepository)(nil)

func (m *MockSubAccountRepository) FindSubAccountByID(ctx context.Context, subAccountID string) (*domain.SubAccount, error) {
	args := m.Called(ctx, subAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubAccount), args.Error(1)
}

func (m *MockSubAccountRepository) FindSubAccountsByIDs(ctx context.Context, subAccountIDs []string) (map[string]domain.SubAccount, error) {
	args := m.Called(ctx, subAccountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.SubAccount), args.Error(1)
}

func (m *MockSubAccountRepository) ListSubAccounts(ctx context.Context, ownerUserID string, ledgerType domain.SubAccountLedgerType) ([]domain.SubAccount, error) {
	args := m.Called(ctx, ownerUserID, ledgerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubAccount), args.Error(1)
}

func (m *MockSubAccountRepository) SaveSubAccount(ctx context.Context, subAccount domain.SubAccount) error {
	args := m.Called(ctx, subAccount)
	return args.Error(0)
}

func (m *MockSubAccountRepository) RenameSubAccount(ctx context.Context, subAccountID string, name string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, subAccountID, name, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock event publisher ---
type MockEventPublisher struct {
	mock.Mock
}

var _ services.JournalEventPublisher = (*MockEventPublisher)(nil)

func (m *MockEventPublisher) PublishJournalApproved(ctx context.Context, evt domain.JournalApproved) {
	m.Called(ctx, evt)
}
