package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/polifund_ledger/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	ledgerRepo     portsrepo.LedgerRepositoryFacade
	journalRepo    portsrepo.JournalReader
	contactRepo    portsrepo.ContactReader
	subAccountRepo portsrepo.SubAccountReader
	master         *domain.AccountMaster
}

// NewReportingService creates a new reporting service.
func NewReportingService(repos portsrepo.RepositoryProvider, master *domain.AccountMaster) portssvc.ReportingService {
	if master == nil {
		master = domain.DefaultAccountMaster()
	}
	return &reportingService{
		BaseService:    newBaseService(),
		ledgerRepo:     repos.LedgerRepo,
		journalRepo:    repos.JournalRepo,
		contactRepo:    repos.ContactRepo,
		subAccountRepo: repos.SubAccountRepo,
		master:         master,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// GenerateReport loads the approved-journal snapshot of a ledger and folds it
// into the requested report.
func (s *reportingService) GenerateReport(ctx context.Context, actor domain.Actor, kind domain.ReportKind, ledgerType domain.LedgerType, ledgerID string) (*domain.Report, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.PermExportReport); err != nil {
		return nil, err
	}
	ledger, err := s.ledgerRepo.FindLedger(ctx, ledgerType, ledgerID)
	if err != nil {
		return nil, err
	}
	journals, err := s.journalRepo.ListApprovedJournalsByLedger(ctx, *ledger)
	if err != nil {
		s.LogError(ctx, err, "Failed to load journals for report", slog.String("ledger_source_id", ledger.SourceID()))
		return nil, err
	}

	contactIDs := make([]string, 0)
	subIDs := make([]string, 0)
	for _, j := range journals {
		if j.ContactID != nil {
			contactIDs = append(contactIDs, *j.ContactID)
		}
		for _, e := range j.Entries {
			if e.SubAccountID != nil {
				subIDs = append(subIDs, *e.SubAccountID)
			}
		}
	}
	contacts := map[string]domain.Contact{}
	if len(contactIDs) > 0 {
		if contacts, err = s.contactRepo.FindContactsByIDs(ctx, contactIDs); err != nil {
			return nil, err
		}
	}
	subs := map[string]domain.SubAccount{}
	if len(subIDs) > 0 {
		if subs, err = s.subAccountRepo.FindSubAccountsByIDs(ctx, subIDs); err != nil {
			return nil, err
		}
	}

	report := BuildReport(kind, ReportInput{
		Ledger:      *ledger,
		Journals:    journals,
		Contacts:    contacts,
		SubAccounts: subs,
		Master:      s.master,
		GeneratedAt: s.now(),
	})
	s.LogInfo(ctx, "Report generated",
		slog.String("kind", string(kind)),
		slog.String("ledger_source_id", ledger.SourceID()),
		slog.Int("rows", len(report.Rows)))
	return report, nil
}
