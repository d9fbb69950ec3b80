package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/polifund_ledger/internal/core/ports/services"
	"github.com/SscSPs/polifund_ledger/internal/observability"
)

const (
	defaultSyncConcurrency = 4
	defaultChangeLogLimit  = 50
)

// SyncService mirrors approved journals into the Hub. Each pass is a complete,
// bounded unit of work; re-running it is the retry mechanism.
type SyncService struct {
	BaseService
	ledgerRepo     portsrepo.LedgerRepositoryFacade
	journalRepo    portsrepo.JournalReader
	contactRepo    portsrepo.ContactReader
	subAccountRepo portsrepo.SubAccountReader
	syncStateRepo  portsrepo.SyncStateRepositoryFacade
	changeLogRepo  portsrepo.ChangeLogRepositoryFacade
	hub            portsrepo.HubGateway
	transformer    *SyncTransformer
	metrics        *observability.Metrics
	concurrency    int

	// approvalMu guards approvalPasses, which maps a ledger source id with an
	// approval pass in flight to whether another pass was requested meanwhile.
	approvalMu     sync.Mutex
	approvalPasses map[string]bool
}

// SyncServiceOption configures a SyncService.
type SyncServiceOption func(*SyncService)

// WithSyncConcurrency bounds how many ledgers sync in parallel.
func WithSyncConcurrency(n int) SyncServiceOption {
	return func(s *SyncService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithSyncMetrics attaches Prometheus collectors.
func WithSyncMetrics(m *observability.Metrics) SyncServiceOption {
	return func(s *SyncService) { s.metrics = m }
}

// WithSyncClock overrides the clock used for sync states and change logs.
func WithSyncClock(now func() time.Time) SyncServiceOption {
	return func(s *SyncService) { s.Now = now }
}

// NewSyncService creates the sync orchestrator.
func NewSyncService(repos portsrepo.RepositoryProvider, hub portsrepo.HubGateway, master *domain.AccountMaster, opts ...SyncServiceOption) *SyncService {
	s := &SyncService{
		BaseService:    newBaseService(),
		ledgerRepo:     repos.LedgerRepo,
		journalRepo:    repos.JournalRepo,
		contactRepo:    repos.ContactRepo,
		subAccountRepo: repos.SubAccountRepo,
		syncStateRepo:  repos.SyncStateRepo,
		changeLogRepo:  repos.ChangeLogRepo,
		hub:            hub,
		transformer:    NewSyncTransformer(master),
		concurrency:    defaultSyncConcurrency,
		approvalPasses: map[string]bool{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.SyncSvcFacade = (*SyncService)(nil)

// SyncLedgers runs one pass over the ledgers selected by filter.
func (s *SyncService) SyncLedgers(ctx context.Context, actor domain.Actor, filter domain.SyncFilter) (domain.SyncResult, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.PermSyncHub); err != nil {
		return domain.SyncResult{}, err
	}
	if filter.LedgerID != "" && filter.LedgerType == "" {
		return domain.SyncResult{}, apperrors.NewValidationError("type is required when ledger_id is given")
	}
	return s.RunPass(ctx, filter)
}

// OnJournalApproved runs a single-ledger pass for the approved journal's
// ledger. Approvals arriving while that ledger's pass is running are folded
// into one follow-up pass. Failures are recorded in the change log, not
// returned.
func (s *SyncService) OnJournalApproved(ctx context.Context, evt domain.JournalApproved) {
	key := evt.Ledger.SourceID()
	s.approvalMu.Lock()
	if _, running := s.approvalPasses[key]; running {
		s.approvalPasses[key] = true
		s.approvalMu.Unlock()
		s.LogDebug(ctx, "Sync after approval coalesced", slog.String("journal_id", evt.JournalID))
		return
	}
	s.approvalPasses[key] = false
	s.approvalMu.Unlock()

	for {
		s.approvalPass(ctx, evt)

		s.approvalMu.Lock()
		if !s.approvalPasses[key] {
			delete(s.approvalPasses, key)
			s.approvalMu.Unlock()
			return
		}
		s.approvalPasses[key] = false
		s.approvalMu.Unlock()
	}
}

func (s *SyncService) approvalPass(ctx context.Context, evt domain.JournalApproved) {
	filter := domain.SyncFilter{LedgerType: evt.Ledger.Type, LedgerID: evt.Ledger.ID}
	result, err := s.RunPass(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Sync after approval failed", slog.String("journal_id", evt.JournalID))
		return
	}
	s.LogInfo(ctx, "Sync after approval finished",
		slog.String("journal_id", evt.JournalID),
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", result.Errors))
}

// RunPass syncs every selected ledger. Only failing to enumerate ledgers is
// returned as an error; per-ledger failures are counted in Errors.
func (s *SyncService) RunPass(ctx context.Context, filter domain.SyncFilter) (domain.SyncResult, error) {
	start := time.Now()
	defer func() { s.metrics.ObservePassDuration(time.Since(start)) }()

	ledgers, err := s.ledgerRepo.ListLedgers(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledgers for sync")
		return domain.SyncResult{}, err
	}
	if filter.LedgerID != "" && len(ledgers) == 0 {
		return domain.SyncResult{}, apperrors.NewNotFoundError(fmt.Sprintf("ledger %s:%s not found", filter.LedgerType, filter.LedgerID))
	}

	var (
		mu     sync.Mutex
		total  domain.SyncResult
		passes errgroup.Group
	)
	passes.SetLimit(s.concurrency)
	for _, ledger := range ledgers {
		passes.Go(func() error {
			result, ledgerErr := s.syncLedger(ctx, ledger, filter.Force)
			if ledgerErr != nil {
				result.Errors++
				s.metrics.IncLedgerFailure(string(ledger.Type))
				s.LogError(ctx, ledgerErr, "Ledger sync failed", slog.String("ledger_source_id", ledger.SourceID()))
			}
			s.metrics.ObserveSyncResult(result.Created, result.Updated, result.Skipped, result.Errors)
			s.appendChangeLog(ctx, ledger, result, ledgerErr)

			mu.Lock()
			total.Add(result)
			mu.Unlock()
			return nil
		})
	}
	_ = passes.Wait()

	s.LogInfo(ctx, "Sync pass finished",
		slog.Int("ledgers", len(ledgers)),
		slog.Int("created", total.Created),
		slog.Int("updated", total.Updated),
		slog.Int("skipped", total.Skipped),
		slog.Int("errors", total.Errors))
	return total, nil
}

// syncLedger performs the per-ledger algorithm. When the Hub cannot be
// reached it returns a zero result and the error, leaving sync states
// untouched so the next pass retries.
func (s *SyncService) syncLedger(ctx context.Context, ledger domain.LedgerRef, force bool) (domain.SyncResult, error) {
	var result domain.SyncResult

	journals, err := s.journalRepo.ListApprovedJournalsByLedger(ctx, ledger)
	if err != nil {
		return domain.SyncResult{}, err
	}
	if ledger.IsTest {
		result.Skipped = len(journals)
		return result, nil
	}

	if err := s.hub.UpsertLedgerSummary(ctx, NewLedgerSummary(ledger, FoldLedgerTotals(journals))); err != nil {
		return domain.SyncResult{}, err
	}

	contacts, subAccounts, err := s.loadReferences(ctx, journals)
	if err != nil {
		return domain.SyncResult{}, err
	}
	states, err := s.syncStateRepo.FindSyncStates(ctx, ledger.SourceID())
	if err != nil {
		return domain.SyncResult{}, err
	}

	batch := make([]domain.HubJournal, 0, len(journals))
	hashes := make(map[string]string, len(journals))
	for _, j := range journals {
		if !IsSyncEligible(j, ledger) {
			result.Skipped++
			continue
		}
		var contact *domain.Contact
		if j.ContactID != nil {
			if c, ok := contacts[*j.ContactID]; ok {
				contact = &c
			}
		}
		payload, err := s.transformer.Transform(j, ledger, contact, subAccounts)
		if err != nil {
			result.Errors++
			s.LogError(ctx, err, "Failed to transform journal", slog.String("journal_id", j.JournalID))
			continue
		}
		hash, err := PayloadHash(payload)
		if err != nil {
			result.Errors++
			s.LogError(ctx, err, "Failed to hash journal payload", slog.String("journal_id", j.JournalID))
			continue
		}
		var state *domain.JournalSyncState
		if st, ok := states[j.JournalID]; ok {
			state = &st
		}
		if !ShouldSync(j, ledger, hash, state, force) {
			result.Skipped++
			continue
		}
		batch = append(batch, payload)
		hashes[j.JournalID] = hash
	}

	if len(batch) == 0 {
		return result, nil
	}

	hubResult, err := s.hub.PushJournals(ctx, ledger.SourceID(), batch)
	if err != nil {
		return domain.SyncResult{}, err
	}
	result.Add(domain.SyncResult{
		Created: hubResult.Created,
		Updated: hubResult.Updated,
		Skipped: hubResult.Skipped,
		Errors:  hubResult.Errors,
	})

	acked := acknowledgedStates(ledger, hubResult, batch, hashes, s.now())
	if len(acked) > 0 {
		if err := s.syncStateRepo.SaveSyncStates(ctx, acked); err != nil {
			return result, err
		}
	}
	return result, nil
}

// acknowledgedStates returns the sync states for items the Hub accepted. When
// the Hub reports no per-item results and no errors, the whole batch counts
// as accepted.
func acknowledgedStates(ledger domain.LedgerRef, res *domain.HubBatchResult, batch []domain.HubJournal, hashes map[string]string, at time.Time) []domain.JournalSyncState {
	states := make([]domain.JournalSyncState, 0, len(batch))
	if len(res.Results) == 0 {
		if res.Errors > 0 {
			return states
		}
		for _, p := range batch {
			states = append(states, domain.JournalSyncState{
				JournalID:      p.JournalSourceID,
				LedgerSourceID: ledger.SourceID(),
				PayloadHash:    hashes[p.JournalSourceID],
				SyncedAt:       at,
			})
		}
		return states
	}
	for _, item := range res.Results {
		hash, ok := hashes[item.JournalSourceID]
		if !ok || item.Status == domain.HubItemError {
			continue
		}
		states = append(states, domain.JournalSyncState{
			JournalID:      item.JournalSourceID,
			LedgerSourceID: ledger.SourceID(),
			PayloadHash:    hash,
			SyncedAt:       at,
		})
	}
	return states
}

func (s *SyncService) loadReferences(ctx context.Context, journals []domain.Journal) (map[string]domain.Contact, map[string]domain.SubAccount, error) {
	contactIDs := make([]string, 0)
	subAccountIDs := make([]string, 0)
	seen := make(map[string]struct{})
	for _, j := range journals {
		if j.ContactID != nil {
			if _, ok := seen["c:"+*j.ContactID]; !ok {
				seen["c:"+*j.ContactID] = struct{}{}
				contactIDs = append(contactIDs, *j.ContactID)
			}
		}
		for _, e := range j.Entries {
			if e.SubAccountID != nil {
				if _, ok := seen["s:"+*e.SubAccountID]; !ok {
					seen["s:"+*e.SubAccountID] = struct{}{}
					subAccountIDs = append(subAccountIDs, *e.SubAccountID)
				}
			}
		}
	}

	contacts := map[string]domain.Contact{}
	if len(contactIDs) > 0 {
		found, err := s.contactRepo.FindContactsByIDs(ctx, contactIDs)
		if err != nil {
			return nil, nil, err
		}
		contacts = found
	}
	subAccounts := map[string]domain.SubAccount{}
	if len(subAccountIDs) > 0 {
		found, err := s.subAccountRepo.FindSubAccountsByIDs(ctx, subAccountIDs)
		if err != nil {
			return nil, nil, err
		}
		subAccounts = found
	}
	return contacts, subAccounts, nil
}

func (s *SyncService) appendChangeLog(ctx context.Context, ledger domain.LedgerRef, result domain.SyncResult, syncErr error) {
	entry := domain.ChangeLogEntry{
		ChangeLogID:    uuid.NewString(),
		LedgerSourceID: ledger.SourceID(),
		Details: domain.ChangeLogDetails{
			Created: result.Created,
			Updated: result.Updated,
			Skipped: result.Skipped,
			Errors:  result.Errors,
		},
		CreatedAt: s.now(),
	}
	if syncErr != nil {
		entry.Summary = fmt.Sprintf("sync failed for %s", ledger.SourceID())
		entry.Details.Error = syncErr.Error()
	} else {
		entry.Summary = fmt.Sprintf("synced %s: %d created, %d updated, %d skipped, %d errors",
			ledger.SourceID(), result.Created, result.Updated, result.Skipped, result.Errors)
	}
	if err := s.changeLogRepo.AppendChangeLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append change log", slog.String("ledger_source_id", ledger.SourceID()))
	}
}

// ListChangeLogs returns the latest change log entries of a ledger.
func (s *SyncService) ListChangeLogs(ctx context.Context, actor domain.Actor, ledgerSourceID string, limit int) ([]domain.ChangeLogEntry, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.PermViewJournal); err != nil {
		return nil, err
	}
	if ledgerSourceID == "" {
		return nil, apperrors.NewValidationError("ledger_source_id is required")
	}
	if limit <= 0 {
		limit = defaultChangeLogLimit
	}
	return s.changeLogRepo.ListChangeLogs(ctx, ledgerSourceID, limit)
}
