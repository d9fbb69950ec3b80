package domain

import "time"

// LedgerTotals is the ledger-level fold over approved journals.
type LedgerTotals struct {
	TotalIncome  int64
	TotalExpense int64
	JournalCount int
}

// LedgerSummary is the ledger record upserted to the Hub.
type LedgerSummary struct {
	LedgerSourceID string     `json:"ledger_source_id"`
	LedgerType     LedgerType `json:"ledger_type"`
	LedgerID       string     `json:"ledger_id"`
	Name           string     `json:"name"`
	TotalIncome    int64      `json:"total_income"`
	TotalExpense   int64      `json:"total_expense"`
	JournalCount   int        `json:"journal_count"`
}

// HubEntry is one income or expense line in the Hub disclosure schema.
type HubEntry struct {
	AccountCode    string `json:"account_code"`
	AccountName    string `json:"account_name"`
	SubAccountName string `json:"sub_account_name,omitempty"`
	Amount         int64  `json:"amount"`
}

// HubContact carries only the public fields of a contact. Withheld fields are
// absent from the encoded payload and listed in Redacted.
type HubContact struct {
	ContactType ContactType `json:"contact_type"`
	Name        string      `json:"name,omitempty"`
	Address     string      `json:"address,omitempty"`
	Occupation  string      `json:"occupation,omitempty"`
	Redacted    []string    `json:"redacted,omitempty"`
}

// HubJournal is the disclosure payload for one approved journal.
type HubJournal struct {
	JournalSourceID            string      `json:"journal_source_id"`
	LedgerSourceID             string      `json:"ledger_source_id"`
	JournalDate                string      `json:"journal_date"`
	Description                string      `json:"description"`
	Income                     []HubEntry  `json:"income"`
	Expense                    []HubEntry  `json:"expense"`
	Contact                    *HubContact `json:"contact,omitempty"`
	IsAssetAcquisition         bool        `json:"is_asset_acquisition"`
	AssetType                  AssetType   `json:"asset_type,omitempty"`
	IsReceiptHardToCollect     bool        `json:"is_receipt_hard_to_collect"`
	ReceiptHardToCollectReason string      `json:"receipt_hard_to_collect_reason,omitempty"`
	AmountPoliticalGrant       int64       `json:"amount_political_grant"`
	AmountPoliticalFund        int64       `json:"amount_political_fund"`
	AmountPublicSubsidy        int64       `json:"amount_public_subsidy"`
	ApprovedAt                 string      `json:"approved_at,omitempty"`
}

// Hub item outcomes.
const (
	HubItemCreated = "created"
	HubItemUpdated = "updated"
	HubItemSkipped = "skipped"
	HubItemError   = "error"
)

// HubItemResult is the Hub's per-journal outcome.
type HubItemResult struct {
	JournalSourceID string `json:"journal_source_id"`
	Status          string `json:"status"`
}

// HubBatchResult is the Hub's response to a batch push.
type HubBatchResult struct {
	Created int             `json:"created"`
	Updated int             `json:"updated"`
	Skipped int             `json:"skipped"`
	Errors  int             `json:"errors"`
	Results []HubItemResult `json:"results"`
}

// SyncFilter selects the ledgers of a sync pass. An empty LedgerType selects
// every ledger; LedgerID narrows to one ledger of that type.
type SyncFilter struct {
	LedgerType LedgerType
	LedgerID   string
	Force      bool
}

// Matches reports whether l is selected by the filter.
func (f SyncFilter) Matches(l LedgerRef) bool {
	if f.LedgerType != "" && f.LedgerType != l.Type {
		return false
	}
	if f.LedgerID != "" && f.LedgerID != l.ID {
		return false
	}
	return true
}

// SyncResult accumulates outcome counts across ledgers.
type SyncResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Errors  int `json:"errors"`
}

// Add merges other into r.
func (r *SyncResult) Add(other SyncResult) {
	r.Created += other.Created
	r.Updated += other.Updated
	r.Skipped += other.Skipped
	r.Errors += other.Errors
}

// JournalSyncState records the payload fingerprint last acknowledged by the Hub.
type JournalSyncState struct {
	JournalID      string    `json:"journalID"`
	LedgerSourceID string    `json:"ledgerSourceID"`
	PayloadHash    string    `json:"payloadHash"`
	SyncedAt       time.Time `json:"syncedAt"`
}

// ChangeLogDetails is the structured part of a change log entry.
type ChangeLogDetails struct {
	Created int    `json:"created"`
	Updated int    `json:"updated"`
	Skipped int    `json:"skipped"`
	Errors  int    `json:"errors"`
	Error   string `json:"error,omitempty"`
}

// ChangeLogEntry is an append-only audit record of one ledger sync attempt.
type ChangeLogEntry struct {
	ChangeLogID    string           `json:"changeLogID"`
	LedgerSourceID string           `json:"ledgerSourceID"`
	Summary        string           `json:"summary"`
	Details        ChangeLogDetails `json:"details"`
	CreatedAt      time.Time        `json:"createdAt"`
}
