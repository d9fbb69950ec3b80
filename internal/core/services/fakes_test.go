package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
)

// In-memory stores used by the sync and reporting tests. Methods the tests do
// not reach are left to the embedded (nil) interface.

type memLedgerRepo struct {
	ledgers []domain.LedgerRef
}

func (r *memLedgerRepo) FindLedger(_ context.Context, ledgerType domain.LedgerType, ledgerID string) (*domain.LedgerRef, error) {
	for _, l := range r.ledgers {
		if l.Type == ledgerType && l.ID == ledgerID {
			found := l
			return &found, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s %s not found", ledgerType, ledgerID))
}

func (r *memLedgerRepo) ListLedgers(_ context.Context, filter domain.SyncFilter) ([]domain.LedgerRef, error) {
	out := make([]domain.LedgerRef, 0, len(r.ledgers))
	for _, l := range r.ledgers {
		if filter.Matches(l) {
			out = append(out, l)
		}
	}
	return out, nil
}

type memJournalRepo struct {
	portsrepo.JournalRepositoryFacade
	mu       sync.Mutex
	journals []domain.Journal
}

func (r *memJournalRepo) ListApprovedJournalsByLedger(_ context.Context, ledger domain.LedgerRef) ([]domain.Journal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Journal, 0)
	for _, j := range r.journals {
		if j.IsApproved() && j.LedgerType() == ledger.Type && j.LedgerID() == ledger.ID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *memJournalRepo) update(journalID string, fn func(*domain.Journal)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.journals {
		if r.journals[i].JournalID == journalID {
			fn(&r.journals[i])
		}
	}
}

type memContactRepo struct {
	portsrepo.ContactRepositoryFacade
	contacts map[string]domain.Contact
}

func (r *memContactRepo) FindContactsByIDs(_ context.Context, ids []string) (map[string]domain.Contact, error) {
	out := make(map[string]domain.Contact, len(ids))
	for _, id := range ids {
		if c, ok := r.contacts[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

type memSubAccountRepo struct {
	portsrepo.SubAccountRepositoryFacade
	subs map[string]domain.SubAccount
}

func (r *memSubAccountRepo) FindSubAccountsByIDs(_ context.Context, ids []string) (map[string]domain.SubAccount, error) {
	out := make(map[string]domain.SubAccount, len(ids))
	for _, id := range ids {
		if s, ok := r.subs[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

type memSyncStateRepo struct {
	mu     sync.Mutex
	states map[string]domain.JournalSyncState
}

func newMemSyncStateRepo() *memSyncStateRepo {
	return &memSyncStateRepo{states: map[string]domain.JournalSyncState{}}
}

func (r *memSyncStateRepo) FindSyncStates(_ context.Context, ledgerSourceID string) (map[string]domain.JournalSyncState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[string]domain.JournalSyncState{}
	for id, st := range r.states {
		if st.LedgerSourceID == ledgerSourceID {
			out[id] = st
		}
	}
	return out, nil
}

func (r *memSyncStateRepo) SaveSyncStates(_ context.Context, states []domain.JournalSyncState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, st := range states {
		r.states[st.JournalID] = st
	}
	return nil
}

type memChangeLogRepo struct {
	mu      sync.Mutex
	entries []domain.ChangeLogEntry
}

func (r *memChangeLogRepo) AppendChangeLog(_ context.Context, entry domain.ChangeLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memChangeLogRepo) ListChangeLogs(_ context.Context, ledgerSourceID string, limit int) ([]domain.ChangeLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ChangeLogEntry, 0)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if r.entries[i].LedgerSourceID == ledgerSourceID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func (r *memChangeLogRepo) bySource() map[string]domain.ChangeLogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[string]domain.ChangeLogEntry{}
	for _, e := range r.entries {
		out[e.LedgerSourceID] = e
	}
	return out
}

// fakeHub keeps the last payload per journal and answers like the real
// registry: created for unseen journals, updated otherwise.
type fakeHub struct {
	mu        sync.Mutex
	summaries map[string]domain.LedgerSummary
	journals  map[string]domain.HubJournal
	failFor   map[string]bool
	pushes    int

	// summaryCalls counts UpsertLedgerSummary calls per ledger. When gate is
	// set, each call announces itself on entered and waits for gate to close.
	summaryCalls map[string]int
	entered      chan string
	gate         chan struct{}
}

var _ portsrepo.HubGateway = (*fakeHub)(nil)

func newFakeHub() *fakeHub {
	return &fakeHub{
		summaries: map[string]domain.LedgerSummary{},
		journals:  map[string]domain.HubJournal{},
		failFor:   map[string]bool{},

		summaryCalls: map[string]int{},
	}
}

func (h *fakeHub) UpsertLedgerSummary(_ context.Context, summary domain.LedgerSummary) error {
	if h.gate != nil {
		h.entered <- summary.LedgerSourceID
		<-h.gate
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.summaryCalls[summary.LedgerSourceID]++
	if h.failFor[summary.LedgerSourceID] {
		return apperrors.NewSyncTransportError("hub unavailable", fmt.Errorf("connection refused"))
	}
	h.summaries[summary.LedgerSourceID] = summary
	return nil
}

func (h *fakeHub) PushJournals(_ context.Context, ledgerSourceID string, journals []domain.HubJournal) (*domain.HubBatchResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.failFor[ledgerSourceID] {
		return nil, apperrors.NewSyncTransportError("hub unavailable", fmt.Errorf("connection refused"))
	}
	h.pushes++
	res := &domain.HubBatchResult{}
	for _, j := range journals {
		status := domain.HubItemCreated
		if _, seen := h.journals[j.JournalSourceID]; seen {
			status = domain.HubItemUpdated
			res.Updated++
		} else {
			res.Created++
		}
		h.journals[j.JournalSourceID] = j
		res.Results = append(res.Results, domain.HubItemResult{JournalSourceID: j.JournalSourceID, Status: status})
	}
	return res, nil
}

func (h *fakeHub) journalsFor(ledgerSourceID string) []domain.HubJournal {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]domain.HubJournal, 0)
	for _, j := range h.journals {
		if j.LedgerSourceID == ledgerSourceID {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].JournalSourceID < out[b].JournalSourceID })
	return out
}

func (h *fakeHub) summaryCallsFor(ledgerSourceID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.summaryCalls[ledgerSourceID]
}
