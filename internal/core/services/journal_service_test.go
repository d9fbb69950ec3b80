package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/polifund_ledger/internal/core/ports/services"
	"github.com/SscSPs/polifund_ledger/internal/core/services"
	"github.com/SscSPs/polifund_ledger/internal/dto"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo    *MockJournalRepository
	mockLedgerRepo     *MockLedgerRepository
	mockContactRepo    *MockContactRepository
	mockSubAccountRepo *MockSubAccountRepository
	mockPublisher      *MockEventPublisher
	service            portssvc.JournalSvcFacade
	now                time.Time
	orgID              string
	ledger             domain.LedgerRef
	submitter          domain.Actor
	accountant         domain.Actor
	approver           domain.Actor
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockContactRepo = new(MockContactRepository)
	suite.mockSubAccountRepo = new(MockSubAccountRepository)
	suite.mockPublisher = new(MockEventPublisher)
	suite.now = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	repos := portsrepo.RepositoryProvider{
		JournalRepo:    suite.mockJournalRepo,
		LedgerRepo:     suite.mockLedgerRepo,
		ContactRepo:    suite.mockContactRepo,
		SubAccountRepo: suite.mockSubAccountRepo,
	}
	suite.service = services.NewJournalService(repos, domain.DefaultAccountMaster(),
		services.WithJournalEvents(suite.mockPublisher),
		services.WithJournalClock(func() time.Time { return suite.now }),
	)

	suite.orgID = "org-1"
	suite.ledger = domain.LedgerRef{Type: domain.LedgerOrganization, ID: suite.orgID, Name: "Citizens for Parks"}
	suite.submitter = domain.Actor{UserID: "user-submitter", Role: domain.RoleSubmitter}
	suite.accountant = domain.Actor{UserID: "user-accountant", Role: domain.RoleAccountant}
	suite.approver = domain.Actor{UserID: "user-approver", Role: domain.RoleApprover}
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func (suite *JournalServiceTestSuite) officeRentRequest(debit, credit int64) dto.CreateJournalRequest {
	date := "2024-04-30"
	return dto.CreateJournalRequest{
		OrganizationID: &suite.orgID,
		JournalDate:    &date,
		Description:    "office rent",
		Entries: []dto.JournalEntryRequest{
			{AccountCode: "EXP_OFFICE", DebitAmount: debit},
			{AccountCode: "ASSET_CASH", CreditAmount: credit},
		},
	}
}

func (suite *JournalServiceTestSuite) draftJournal(submittedBy string) *domain.Journal {
	date := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	return &domain.Journal{
		JournalID:         "journal-1",
		OrganizationID:    &suite.orgID,
		JournalDate:       &date,
		Description:       "office rent",
		Status:            domain.Draft,
		SubmittedByUserID: submittedBy,
		Entries: []domain.JournalEntry{
			{EntryID: "e1", JournalID: "journal-1", LineNo: 1, AccountCode: "EXP_OFFICE", DebitAmount: 5000},
			{EntryID: "e2", JournalID: "journal-1", LineNo: 2, AccountCode: "ASSET_CASH", CreditAmount: 5000},
		},
	}
}

// --- Test Cases ---

func (suite *JournalServiceTestSuite) TestCreateJournal_DraftSuccess() {
	ctx := context.Background()
	suite.mockLedgerRepo.On("FindLedger", ctx, domain.LedgerOrganization, suite.orgID).Return(&suite.ledger, nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.Journal")).Return(nil).Once()

	created, err := suite.service.CreateJournal(ctx, suite.submitter, suite.officeRentRequest(5000, 5000))

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.JournalID)
	suite.Equal(domain.Draft, created.Status)
	suite.Equal(suite.submitter.UserID, created.SubmittedByUserID)
	suite.Nil(created.ApprovedAt)
	suite.Require().Len(created.Entries, 2)
	suite.Equal(1, created.Entries[0].LineNo)
	suite.Equal(created.JournalID, created.Entries[1].JournalID)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishJournalApproved", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_Unbalanced() {
	ctx := context.Background()

	_, err := suite.service.CreateJournal(ctx, suite.submitter, suite.officeRentRequest(3000, 2999))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("debit and credit totals do not match (debit 3000, credit 2999)", err.Error())
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_UnknownLedger() {
	ctx := context.Background()
	suite.mockLedgerRepo.On("FindLedger", ctx, domain.LedgerOrganization, suite.orgID).
		Return(nil, apperrors.NewNotFoundError("organization org-1 not found")).Once()

	_, err := suite.service.CreateJournal(ctx, suite.submitter, suite.officeRentRequest(5000, 5000))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_ApprovedRequiresRegisterPermission() {
	ctx := context.Background()
	req := suite.officeRentRequest(5000, 5000)
	req.Status = string(domain.Approved)

	_, err := suite.service.CreateJournal(ctx, suite.submitter, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_ApprovedPublishesEvent() {
	ctx := context.Background()
	req := suite.officeRentRequest(5000, 5000)
	req.Status = string(domain.Approved)
	suite.mockLedgerRepo.On("FindLedger", ctx, domain.LedgerOrganization, suite.orgID).Return(&suite.ledger, nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.Journal")).Return(nil).Once()
	suite.mockPublisher.On("PublishJournalApproved", ctx, mock.MatchedBy(func(evt domain.JournalApproved) bool {
		return evt.ApprovedBy == suite.accountant.UserID && evt.Ledger.SourceID() == "organization:org-1"
	})).Once()

	created, err := suite.service.CreateJournal(ctx, suite.accountant, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Approved, created.Status)
	suite.Equal(suite.now, *created.ApprovedAt)
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_InvalidDate() {
	ctx := context.Background()
	req := suite.officeRentRequest(5000, 5000)
	bad := "30/04/2024"
	req.JournalDate = &bad

	_, err := suite.service.CreateJournal(ctx, suite.submitter, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_SubAccountCodeMismatch() {
	ctx := context.Background()
	subID := "sub-1"
	req := suite.officeRentRequest(5000, 5000)
	req.Entries[0].SubAccountID = &subID
	suite.mockLedgerRepo.On("FindLedger", ctx, domain.LedgerOrganization, suite.orgID).Return(&suite.ledger, nil).Once()
	suite.mockSubAccountRepo.On("FindSubAccountsByIDs", ctx, []string{subID}).Return(map[string]domain.SubAccount{
		subID: {SubAccountID: subID, LedgerType: domain.SubAccountPoliticalOrganization, AccountCode: "EXP_UTILITIES", Name: "Electricity"},
	}, nil).Once()

	_, err := suite.service.CreateJournal(ctx, suite.submitter, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestApproveJournal_SubmitterCannotSelfApprove() {
	ctx := context.Background()
	suite.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(suite.draftJournal(suite.submitter.UserID), nil).Once()

	_, err := suite.service.ApproveJournal(ctx, suite.submitter, "journal-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ApproveJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishJournalApproved", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestApproveJournal_AccountantSelfApproves() {
	ctx := context.Background()
	suite.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(suite.draftJournal(suite.accountant.UserID), nil).Once()
	suite.mockJournalRepo.On("ApproveJournal", ctx, "journal-1", suite.accountant.UserID, suite.now).Return(true, nil).Once()
	suite.mockPublisher.On("PublishJournalApproved", ctx, domain.JournalApproved{
		JournalID:  "journal-1",
		Ledger:     domain.LedgerRef{Type: domain.LedgerOrganization, ID: suite.orgID},
		ApprovedBy: suite.accountant.UserID,
		ApprovedAt: suite.now,
	}).Once()

	approved, err := suite.service.ApproveJournal(ctx, suite.accountant, "journal-1")

	suite.Require().NoError(err)
	suite.Equal(domain.Approved, approved.Status)
	suite.Equal(suite.accountant.UserID, *approved.ApprovedByUserID)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestApproveJournal_ApproverApprovesOthers() {
	ctx := context.Background()
	suite.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(suite.draftJournal(suite.submitter.UserID), nil).Once()
	suite.mockJournalRepo.On("ApproveJournal", ctx, "journal-1", suite.approver.UserID, suite.now).Return(true, nil).Once()
	suite.mockPublisher.On("PublishJournalApproved", ctx, mock.AnythingOfType("domain.JournalApproved")).Once()

	approved, err := suite.service.ApproveJournal(ctx, suite.approver, "journal-1")

	suite.Require().NoError(err)
	suite.Equal(domain.Approved, approved.Status)
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestApproveJournal_AlreadyApprovedIsIdempotent() {
	ctx := context.Background()
	stored := suite.draftJournal(suite.submitter.UserID)
	stored.Status = domain.Approved
	stored.ApprovedByUserID = &suite.approver.UserID
	stored.ApprovedAt = &suite.now
	suite.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(stored, nil).Once()

	got, err := suite.service.ApproveJournal(ctx, suite.accountant, "journal-1")

	suite.Require().NoError(err)
	suite.Equal(domain.Approved, got.Status)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ApproveJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishJournalApproved", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestApproveJournal_LostRaceReturnsStoredState() {
	ctx := context.Background()
	stored := suite.draftJournal(suite.submitter.UserID)
	winner := *stored
	winner.Status = domain.Approved
	winner.ApprovedByUserID = &suite.accountant.UserID
	suite.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(stored, nil).Once()
	suite.mockJournalRepo.On("ApproveJournal", ctx, "journal-1", suite.approver.UserID, suite.now).Return(false, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(&winner, nil).Once()

	got, err := suite.service.ApproveJournal(ctx, suite.approver, "journal-1")

	suite.Require().NoError(err)
	suite.Equal(suite.accountant.UserID, *got.ApprovedByUserID)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishJournalApproved", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestApproveJournal_NotFound() {
	ctx := context.Background()
	suite.mockJournalRepo.On("FindJournalByID", ctx, "missing").Return(nil, apperrors.NewNotFoundError("journal missing not found")).Once()

	_, err := suite.service.ApproveJournal(ctx, suite.accountant, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestDeleteJournal_ApprovedIsConflict() {
	ctx := context.Background()
	stored := suite.draftJournal(suite.accountant.UserID)
	stored.Status = domain.Approved
	suite.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(stored, nil).Once()

	err := suite.service.DeleteJournal(ctx, suite.accountant, "journal-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "DeleteDraftJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestDeleteJournal_DraftByOwner() {
	ctx := context.Background()
	suite.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(suite.draftJournal(suite.submitter.UserID), nil).Once()
	suite.mockJournalRepo.On("DeleteDraftJournal", ctx, "journal-1").Return(nil).Once()

	err := suite.service.DeleteJournal(ctx, suite.submitter, "journal-1")

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestDeleteJournal_ViewerForbidden() {
	ctx := context.Background()
	viewer := domain.Actor{UserID: "user-viewer", Role: domain.RoleViewer}

	err := suite.service.DeleteJournal(ctx, viewer, "journal-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindJournalByID", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestUpdateJournal_ApprovedIsConflict() {
	ctx := context.Background()
	stored := suite.draftJournal(suite.submitter.UserID)
	stored.Status = domain.Approved
	suite.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(stored, nil).Once()

	_, err := suite.service.UpdateJournal(ctx, suite.submitter, "journal-1", dto.UpdateJournalRequest{Description: "changed"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ReplaceDraftJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestUpdateJournal_OtherSubmitterForbidden() {
	ctx := context.Background()
	suite.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(suite.draftJournal("someone-else"), nil).Once()

	_, err := suite.service.UpdateJournal(ctx, suite.submitter, "journal-1", dto.UpdateJournalRequest{Description: "changed"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *JournalServiceTestSuite) TestUpdateJournal_ReplacesDraft() {
	ctx := context.Background()
	suite.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(suite.draftJournal(suite.submitter.UserID), nil).Once()
	suite.mockLedgerRepo.On("FindLedger", ctx, domain.LedgerOrganization, suite.orgID).Return(&suite.ledger, nil).Once()
	suite.mockJournalRepo.On("ReplaceDraftJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return j.Description == "office rent (May)" && j.TotalDebit() == 6000
	})).Return(nil).Once()

	got, err := suite.service.UpdateJournal(ctx, suite.submitter, "journal-1", dto.UpdateJournalRequest{
		Description: "office rent (May)",
		Entries: []dto.JournalEntryRequest{
			{AccountCode: "EXP_OFFICE", DebitAmount: 6000},
			{AccountCode: "ASSET_CASH", CreditAmount: 6000},
		},
	})

	suite.Require().NoError(err)
	suite.Equal(domain.Draft, got.Status)
	suite.Equal(suite.now, got.LastUpdatedAt)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListJournals_RequiresLedger() {
	_, err := suite.service.ListJournals(context.Background(), suite.submitter, dto.ListJournalsParams{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestListJournals_DefaultPageSize() {
	ctx := context.Background()
	ledger := domain.LedgerRef{Type: domain.LedgerOrganization, ID: suite.orgID}
	suite.mockJournalRepo.On("ListJournalsByLedger", ctx, ledger, 20, (*string)(nil)).
		Return([]domain.Journal{*suite.draftJournal(suite.submitter.UserID)}, "next", nil).Once()

	resp, err := suite.service.ListJournals(ctx, suite.submitter, dto.ListJournalsParams{OrganizationID: suite.orgID})

	suite.Require().NoError(err)
	suite.Len(resp.Journals, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next", *resp.NextToken)
}
