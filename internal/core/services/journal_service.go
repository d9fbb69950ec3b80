package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/polifund_ledger/internal/core/ports/services"
	"github.com/SscSPs/polifund_ledger/internal/dto"
	"github.com/SscSPs/polifund_ledger/internal/observability"
)

const defaultJournalPageSize = 20

// journalService provides journal CRUD and the approval transition.
type journalService struct {
	BaseService
	journalRepo    portsrepo.JournalRepositoryFacade
	ledgerRepo     portsrepo.LedgerRepositoryFacade
	contactRepo    portsrepo.ContactReader
	subAccountRepo portsrepo.SubAccountReader
	master         *domain.AccountMaster
	publisher      JournalEventPublisher
	metrics        *observability.Metrics
}

// JournalServiceOption configures the journal service.
type JournalServiceOption func(*journalService)

// WithJournalEvents sets where JournalApproved events are published.
func WithJournalEvents(p JournalEventPublisher) JournalServiceOption {
	return func(s *journalService) { s.publisher = p }
}

// WithJournalMetrics attaches Prometheus collectors.
func WithJournalMetrics(m *observability.Metrics) JournalServiceOption {
	return func(s *journalService) { s.metrics = m }
}

// WithJournalClock overrides the clock used for audit and approval stamps.
func WithJournalClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) { s.Now = now }
}

// NewJournalService creates a new JournalService.
func NewJournalService(repos portsrepo.RepositoryProvider, master *domain.AccountMaster, opts ...JournalServiceOption) portssvc.JournalSvcFacade {
	if master == nil {
		master = domain.DefaultAccountMaster()
	}
	s := &journalService{
		BaseService:    newBaseService(),
		journalRepo:    repos.JournalRepo,
		ledgerRepo:     repos.LedgerRepo,
		contactRepo:    repos.ContactRepo,
		subAccountRepo: repos.SubAccountRepo,
		master:         master,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func parseJournalDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	d, err := time.Parse(dto.DateLayout, *raw)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("journal_date %q must be in YYYY-MM-DD format", *raw))
	}
	return &d, nil
}

func toDomainEntries(journalID string, reqs []dto.JournalEntryRequest) []domain.JournalEntry {
	entries := make([]domain.JournalEntry, len(reqs))
	for i, r := range reqs {
		entries[i] = domain.JournalEntry{
			EntryID:      uuid.NewString(),
			JournalID:    journalID,
			LineNo:       i + 1,
			AccountCode:  r.AccountCode,
			SubAccountID: r.SubAccountID,
			DebitAmount:  r.DebitAmount,
			CreditAmount: r.CreditAmount,
		}
	}
	return entries
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// CreateJournal validates and persists a new journal with its entries.
func (s *journalService) CreateJournal(ctx context.Context, actor domain.Actor, req dto.CreateJournalRequest) (*domain.Journal, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.PermSubmitJournal); err != nil {
		return nil, err
	}
	status := domain.Draft
	if req.Status != "" {
		status = domain.JournalStatus(req.Status)
	}
	if status == domain.Approved {
		// Registering an already-approved journal is self-approval.
		if err := s.AuthorizeActor(ctx, actor, domain.PermRegisterJournal); err != nil {
			return nil, err
		}
	}

	journalDate, err := parseJournalDate(req.JournalDate)
	if err != nil {
		return nil, err
	}

	now := s.now()
	journalID := uuid.NewString()
	journal := domain.Journal{
		JournalID:                  journalID,
		OrganizationID:             emptyToNil(req.OrganizationID),
		ElectionID:                 emptyToNil(req.ElectionID),
		JournalDate:                journalDate,
		Description:                strings.TrimSpace(req.Description),
		ContactID:                  emptyToNil(req.ContactID),
		Status:                     status,
		IsAssetAcquisition:         req.IsAssetAcquisition,
		AssetType:                  domain.AssetType(req.AssetType),
		IsReceiptHardToCollect:     req.IsReceiptHardToCollect,
		ReceiptHardToCollectReason: strings.TrimSpace(req.ReceiptHardToCollectReason),
		AmountPoliticalGrant:       req.AmountPoliticalGrant,
		AmountPoliticalFund:        req.AmountPoliticalFund,
		AmountPublicSubsidy:        req.AmountPublicSubsidy,
		Notes:                      req.Notes,
		IsTest:                     req.IsTest,
		SubmittedByUserID:          actor.UserID,
		Entries:                    toDomainEntries(journalID, req.Entries),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	if !journal.IsAssetAcquisition {
		journal.AssetType = ""
	}
	if status == domain.Approved {
		journal.ApprovedByUserID = &actor.UserID
		journal.ApprovedAt = &now
	}

	if err := s.validateJournal(ctx, journal); err != nil {
		s.GetLogger(ctx).Warn("Journal validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.journalRepo.SaveJournal(ctx, journal); err != nil {
		s.LogError(ctx, err, "Failed to save journal", slog.String("journal_id", journal.JournalID))
		return nil, err
	}
	s.LogInfo(ctx, "Journal created", slog.String("journal_id", journal.JournalID), slog.String("status", string(journal.Status)))

	if journal.IsApproved() {
		s.afterApproval(ctx, journal)
	}
	return &journal, nil
}

// validateJournal runs the model checks and resolves ledger, contact and
// sub-account references.
func (s *journalService) validateJournal(ctx context.Context, journal domain.Journal) error {
	if err := journal.Validate(s.master); err != nil {
		return err
	}

	if _, err := s.ledgerRepo.FindLedger(ctx, journal.LedgerType(), journal.LedgerID()); err != nil {
		return err
	}

	if journal.ContactID != nil {
		if _, err := s.contactRepo.FindContactByID(ctx, *journal.ContactID); err != nil {
			return err
		}
	}

	subIDs := make([]string, 0)
	for _, e := range journal.Entries {
		if e.SubAccountID != nil {
			subIDs = append(subIDs, *e.SubAccountID)
		}
	}
	if len(subIDs) == 0 {
		return nil
	}
	subs, err := s.subAccountRepo.FindSubAccountsByIDs(ctx, subIDs)
	if err != nil {
		return err
	}
	for i, e := range journal.Entries {
		if e.SubAccountID == nil {
			continue
		}
		sub, ok := subs[*e.SubAccountID]
		if !ok {
			return apperrors.NewNotFoundError(fmt.Sprintf("entry %d: sub-account %s not found", i+1, *e.SubAccountID))
		}
		if sub.AccountCode != e.AccountCode {
			return apperrors.NewValidationError(fmt.Sprintf("entry %d: sub-account %s belongs to account code %s, not %s", i+1, sub.SubAccountID, sub.AccountCode, e.AccountCode))
		}
		if sub.LedgerType.LedgerType() != journal.LedgerType() {
			return apperrors.NewValidationError(fmt.Sprintf("entry %d: sub-account %s is scoped to %s ledgers", i+1, sub.SubAccountID, sub.LedgerType))
		}
	}
	return nil
}

// GetJournal retrieves a journal with its entries.
func (s *journalService) GetJournal(ctx context.Context, actor domain.Actor, journalID string) (*domain.Journal, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.PermViewJournal); err != nil {
		return nil, err
	}
	return s.journalRepo.FindJournalByID(ctx, journalID)
}

// ListJournals retrieves a page of journals for one ledger.
func (s *journalService) ListJournals(ctx context.Context, actor domain.Actor, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.PermViewJournal); err != nil {
		return nil, err
	}
	var ledger domain.LedgerRef
	switch {
	case params.OrganizationID != "" && params.ElectionID != "":
		return nil, apperrors.NewValidationError("organization_id and election_id are mutually exclusive")
	case params.OrganizationID != "":
		ledger = domain.LedgerRef{Type: domain.LedgerOrganization, ID: params.OrganizationID}
	case params.ElectionID != "":
		ledger = domain.LedgerRef{Type: domain.LedgerElection, ID: params.ElectionID}
	default:
		return nil, apperrors.NewValidationError("either organization_id or election_id is required")
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultJournalPageSize
	}

	journals, nextToken, err := s.journalRepo.ListJournalsByLedger(ctx, ledger, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals", slog.String("ledger_source_id", ledger.SourceID()))
		return nil, err
	}
	return dto.ToListJournalsResponse(journals, nextToken), nil
}

// loadDraftForChange fetches a journal that the actor intends to edit or delete.
func (s *journalService) loadDraftForChange(ctx context.Context, actor domain.Actor, journalID string) (*domain.Journal, error) {
	existing, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if existing.IsApproved() {
		return nil, apperrors.NewConflictError(fmt.Sprintf("journal %s is approved and can no longer be changed", journalID))
	}
	if existing.SubmittedByUserID != actor.UserID && !actor.Can(domain.PermRegisterJournal) {
		return nil, apperrors.NewForbiddenError("only the submitter may change this draft journal")
	}
	return existing, nil
}

// UpdateJournal replaces a draft journal's header and entries.
func (s *journalService) UpdateJournal(ctx context.Context, actor domain.Actor, journalID string, req dto.UpdateJournalRequest) (*domain.Journal, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.PermSubmitJournal); err != nil {
		return nil, err
	}
	existing, err := s.loadDraftForChange(ctx, actor, journalID)
	if err != nil {
		return nil, err
	}
	journalDate, err := parseJournalDate(req.JournalDate)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.JournalDate = journalDate
	updated.Description = strings.TrimSpace(req.Description)
	updated.ContactID = emptyToNil(req.ContactID)
	updated.IsAssetAcquisition = req.IsAssetAcquisition
	updated.AssetType = ""
	if req.IsAssetAcquisition {
		updated.AssetType = domain.AssetType(req.AssetType)
	}
	updated.IsReceiptHardToCollect = req.IsReceiptHardToCollect
	updated.ReceiptHardToCollectReason = strings.TrimSpace(req.ReceiptHardToCollectReason)
	updated.AmountPoliticalGrant = req.AmountPoliticalGrant
	updated.AmountPoliticalFund = req.AmountPoliticalFund
	updated.AmountPublicSubsidy = req.AmountPublicSubsidy
	updated.Notes = req.Notes
	updated.Entries = toDomainEntries(journalID, req.Entries)
	updated.LastUpdatedAt = s.now()
	updated.LastUpdatedBy = actor.UserID

	if err := s.validateJournal(ctx, updated); err != nil {
		return nil, err
	}
	if err := s.journalRepo.ReplaceDraftJournal(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update journal", slog.String("journal_id", journalID))
		return nil, err
	}
	s.LogInfo(ctx, "Journal updated", slog.String("journal_id", journalID))
	return &updated, nil
}

// DeleteJournal removes a draft journal.
func (s *journalService) DeleteJournal(ctx context.Context, actor domain.Actor, journalID string) error {
	if err := s.AuthorizeActor(ctx, actor, domain.PermDeleteJournal); err != nil {
		return err
	}
	if _, err := s.loadDraftForChange(ctx, actor, journalID); err != nil {
		return err
	}
	if err := s.journalRepo.DeleteDraftJournal(ctx, journalID); err != nil {
		s.LogError(ctx, err, "Failed to delete journal", slog.String("journal_id", journalID))
		return err
	}
	s.LogInfo(ctx, "Journal deleted", slog.String("journal_id", journalID))
	return nil
}

// ApproveJournal moves a draft journal to approved and publishes
// JournalApproved. Approving an approved journal returns it unchanged and
// publishes nothing.
func (s *journalService) ApproveJournal(ctx context.Context, actor domain.Actor, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if !actor.CanApprove(*journal) {
		if journal.SubmittedByUserID == actor.UserID {
			return nil, apperrors.NewForbiddenError("self-approval requires the registerJournal permission")
		}
		return nil, apperrors.NewForbiddenError("approving journals requires the approveJournal permission")
	}
	if journal.IsApproved() {
		s.LogDebug(ctx, "Journal already approved", slog.String("journal_id", journalID))
		return journal, nil
	}

	now := s.now()
	candidate := *journal
	candidate.Status = domain.Approved
	candidate.ApprovedByUserID = &actor.UserID
	candidate.ApprovedAt = &now
	candidate.LastUpdatedAt = now
	candidate.LastUpdatedBy = actor.UserID
	if err := candidate.Validate(s.master); err != nil {
		return nil, err
	}

	transitioned, err := s.journalRepo.ApproveJournal(ctx, journalID, actor.UserID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to approve journal", slog.String("journal_id", journalID))
		return nil, err
	}
	if !transitioned {
		// Approved concurrently by someone else; report the stored state.
		return s.journalRepo.FindJournalByID(ctx, journalID)
	}

	s.LogInfo(ctx, "Journal approved", slog.String("journal_id", journalID))
	s.afterApproval(ctx, candidate)
	return &candidate, nil
}

func (s *journalService) afterApproval(ctx context.Context, journal domain.Journal) {
	s.metrics.IncApproval()
	if s.publisher == nil {
		return
	}
	s.publisher.PublishJournalApproved(ctx, domain.JournalApproved{
		JournalID:  journal.JournalID,
		Ledger:     journal.Ledger(),
		ApprovedBy: *journal.ApprovedByUserID,
		ApprovedAt: *journal.ApprovedAt,
	})
}
