package services

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	"golang.org/x/crypto/blake2b"
)

const hubDateLayout = "2006-01-02"

// SyncTransformer maps approved journals into the Hub disclosure schema.
// It performs no I/O; identical input always yields identical output.
type SyncTransformer struct {
	master *domain.AccountMaster
}

// NewSyncTransformer creates a transformer backed by master.
func NewSyncTransformer(master *domain.AccountMaster) *SyncTransformer {
	if master == nil {
		master = domain.DefaultAccountMaster()
	}
	return &SyncTransformer{master: master}
}

// Transform builds the Hub payload of j for ledger. contact must be the
// journal's contact when ContactID is set; subAccounts resolves sub-account
// names and may be nil.
func (t *SyncTransformer) Transform(j domain.Journal, ledger domain.LedgerRef, contact *domain.Contact, subAccounts map[string]domain.SubAccount) (domain.HubJournal, error) {
	if !j.IsApproved() {
		return domain.HubJournal{}, apperrors.NewValidationError(fmt.Sprintf("journal %s is not approved", j.JournalID))
	}
	if debit, credit := j.TotalDebit(), j.TotalCredit(); debit != credit {
		return domain.HubJournal{}, apperrors.NewValidationError(fmt.Sprintf("journal %s: debit and credit totals do not match (debit %d, credit %d)", j.JournalID, debit, credit))
	}
	if j.ContactID != nil && (contact == nil || contact.ContactID != *j.ContactID) {
		return domain.HubJournal{}, apperrors.NewNotFoundError(fmt.Sprintf("journal %s: contact %s not found", j.JournalID, *j.ContactID))
	}

	entries := make([]domain.JournalEntry, len(j.Entries))
	copy(entries, j.Entries)
	sort.SliceStable(entries, func(a, b int) bool { return entries[a].LineNo < entries[b].LineNo })

	payload := domain.HubJournal{
		JournalSourceID:            j.JournalID,
		LedgerSourceID:             ledger.SourceID(),
		Description:                j.Description,
		Income:                     []domain.HubEntry{},
		Expense:                    []domain.HubEntry{},
		IsAssetAcquisition:         j.IsAssetAcquisition,
		IsReceiptHardToCollect:     j.IsReceiptHardToCollect,
		ReceiptHardToCollectReason: j.ReceiptHardToCollectReason,
		AmountPoliticalGrant:       j.AmountPoliticalGrant,
		AmountPoliticalFund:        j.AmountPoliticalFund,
		AmountPublicSubsidy:        j.AmountPublicSubsidy,
	}
	if j.JournalDate != nil {
		payload.JournalDate = j.JournalDate.Format(hubDateLayout)
	}
	if j.ApprovedAt != nil {
		payload.ApprovedAt = j.ApprovedAt.UTC().Format(time.RFC3339)
	}
	if j.IsAssetAcquisition {
		payload.AssetType = j.AssetType
	}

	for _, e := range entries {
		switch {
		case domain.IsRevenueCode(e.AccountCode) && e.CreditAmount > 0:
			payload.Income = append(payload.Income, t.hubEntry(e, e.CreditAmount, subAccounts))
		case domain.IsExpenseCode(e.AccountCode) && e.DebitAmount > 0:
			payload.Expense = append(payload.Expense, t.hubEntry(e, e.DebitAmount, subAccounts))
		}
	}

	if contact != nil && j.ContactID != nil {
		view := contact.PublicView()
		payload.Contact = &domain.HubContact{
			ContactType: view.ContactType,
			Name:        view.Name,
			Address:     view.Address,
			Occupation:  view.Occupation,
			Redacted:    view.Redacted,
		}
	}
	return payload, nil
}

func (t *SyncTransformer) hubEntry(e domain.JournalEntry, amount int64, subAccounts map[string]domain.SubAccount) domain.HubEntry {
	entry := domain.HubEntry{
		AccountCode: e.AccountCode,
		AccountName: t.master.Name(e.AccountCode),
		Amount:      amount,
	}
	if e.SubAccountID != nil {
		if sub, ok := subAccounts[*e.SubAccountID]; ok {
			entry.SubAccountName = sub.Name
		}
	}
	return entry
}

// FoldLedgerTotals sums REV_ credits as income and EXP_ debits as expense over
// the journals that the Hub mirrors. Journals with no matching lines add 0.
func FoldLedgerTotals(journals []domain.Journal) domain.LedgerTotals {
	var totals domain.LedgerTotals
	for _, j := range journals {
		if !j.IsApproved() || j.IsTest {
			continue
		}
		totals.JournalCount++
		for _, e := range j.Entries {
			if domain.IsRevenueCode(e.AccountCode) {
				totals.TotalIncome += e.CreditAmount
			}
			if domain.IsExpenseCode(e.AccountCode) {
				totals.TotalExpense += e.DebitAmount
			}
		}
	}
	return totals
}

// NewLedgerSummary builds the Hub ledger record from totals.
func NewLedgerSummary(ledger domain.LedgerRef, totals domain.LedgerTotals) domain.LedgerSummary {
	return domain.LedgerSummary{
		LedgerSourceID: ledger.SourceID(),
		LedgerType:     ledger.Type,
		LedgerID:       ledger.ID,
		Name:           ledger.Name,
		TotalIncome:    totals.TotalIncome,
		TotalExpense:   totals.TotalExpense,
		JournalCount:   totals.JournalCount,
	}
}

// PayloadHash fingerprints a payload with BLAKE2b-256 over its JSON encoding.
func PayloadHash(p domain.HubJournal) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode hub payload %s: %w", p.JournalSourceID, err)
	}
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// IsSyncEligible reports whether j may ever be mirrored: it must be approved
// and neither it nor its ledger may carry the test marker.
func IsSyncEligible(j domain.Journal, ledger domain.LedgerRef) bool {
	return j.IsApproved() && !j.IsTest && !ledger.IsTest
}

// ShouldSync gates a journal for the next batch. An eligible journal is sent
// when forced, when the Hub never acknowledged it, or when its payload changed
// since the last acknowledgement.
func ShouldSync(j domain.Journal, ledger domain.LedgerRef, payloadHash string, state *domain.JournalSyncState, force bool) bool {
	if !IsSyncEligible(j, ledger) {
		return false
	}
	if force || state == nil {
		return true
	}
	return state.PayloadHash != payloadHash
}
