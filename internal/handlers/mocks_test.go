package handlers_test

import (
	"context"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/polifund_ledger/internal/core/ports/services"
	"github.com/SscSPs/polifund_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetJournal(ctx context.Context, actor domain.Actor, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, actor, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) ListJournals(ctx context.Context, actor domain.Actor, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalsResponse), args.Error(1)
}
func (m *MockJournalService) CreateJournal(ctx context.Context, actor domain.Actor, req dto.CreateJournalRequest) (*domain.Journal, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) UpdateJournal(ctx context.Context, actor domain.Actor, journalID string, req dto.UpdateJournalRequest) (*domain.Journal, error) {
	args := m.Called(ctx, actor, journalID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) DeleteJournal(ctx context.Context, actor domain.Actor, journalID string) error {
	args := m.Called(ctx, actor, journalID)
	return args.Error(0)
}
func (m *MockJournalService) ApproveJournal(ctx context.Context, actor domain.Actor, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, actor, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock ContactService ---
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) CreateContact(ctx context.Context, actor domain.Actor, req dto.ContactRequest) (*domain.Contact, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}
func (m *MockContactService) UpdateContact(ctx context.Context, actor domain.Actor, contactID string, req dto.ContactRequest) (*domain.Contact, error) {
	args := m.Called(ctx, actor, contactID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}
func (m *MockContactService) GetContact(ctx context.Context, actor domain.Actor, contactID string) (*domain.Contact, error) {
	args := m.Called(ctx, actor, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}
func (m *MockContactService) ListContacts(ctx context.Context, actor domain.Actor) ([]domain.Contact, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}
func (m *MockContactService) DeleteContact(ctx context.Context, actor domain.Actor, contactID string) error {
	args := m.Called(ctx, actor, contactID)
	return args.Error(0)
}

var _ portssvc.ContactSvcFacade = (*MockContactService)(nil)

// --- Mock SubAccountService ---
type MockSubAccountService struct {
	mock.Mock
}

func (m *MockSubAccountService) CreateSubAccount(ctx context.Context, actor domain.Actor, req dto.CreateSubAccountRequest) (*domain.SubAccount, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubAccount), args.Error(1)
}
func (m *MockSubAccountService) RenameSubAccount(ctx context.Context, actor domain.Actor, subAccountID string, req dto.RenameSubAccountRequest) (*domain.SubAccount, error) {
	args := m.Called(ctx, actor, subAccountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubAccount), args.Error(1)
}
func (m *MockSubAccountService) ListSubAccounts(ctx context.Context, actor domain.Actor, ledgerType domain.SubAccountLedgerType) ([]domain.SubAccount, error) {
	args := m.Called(ctx, actor, ledgerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubAccount), args.Error(1)
}

var _ portssvc.SubAccountSvcFacade = (*MockSubAccountService)(nil)

// --- Mock SyncService ---
type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) SyncLedgers(ctx context.Context, actor domain.Actor, filter domain.SyncFilter) (domain.SyncResult, error) {
	args := m.Called(ctx, actor, filter)
	return args.Get(0).(domain.SyncResult), args.Error(1)
}
func (m *MockSyncService) ListChangeLogs(ctx context.Context, actor domain.Actor, ledgerSourceID string, limit int) ([]domain.ChangeLogEntry, error) {
	args := m.Called(ctx, actor, ledgerSourceID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChangeLogEntry), args.Error(1)
}

var _ portssvc.SyncSvcFacade = (*MockSyncService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GenerateReport(ctx context.Context, actor domain.Actor, kind domain.ReportKind, ledgerType domain.LedgerType, ledgerID string) (*domain.Report, error) {
	args := m.Called(ctx, actor, kind, ledgerType, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)
