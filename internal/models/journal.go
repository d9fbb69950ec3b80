package models

import "time"

// Journal is a row of the journals table.
type Journal struct {
	JournalID                  string     `db:"journal_id"`
	OrganizationID             *string    `db:"organization_id"`
	ElectionID                 *string    `db:"election_id"`
	JournalDate                *time.Time `db:"journal_date"`
	Description                string     `db:"description"`
	ContactID                  *string    `db:"contact_id"`
	Status                     string     `db:"status"`
	IsAssetAcquisition         bool       `db:"is_asset_acquisition"`
	AssetType                  *string    `db:"asset_type"`
	IsReceiptHardToCollect     bool       `db:"is_receipt_hard_to_collect"`
	ReceiptHardToCollectReason *string    `db:"receipt_hard_to_collect_reason"`
	AmountPoliticalGrant       int64      `db:"amount_political_grant"`
	AmountPoliticalFund        int64      `db:"amount_political_fund"`
	AmountPublicSubsidy        int64      `db:"amount_public_subsidy"`
	Notes                      *string    `db:"notes"`
	IsTest                     bool       `db:"is_test"`
	SubmittedByUserID          string     `db:"submitted_by_user_id"`
	ApprovedByUserID           *string    `db:"approved_by_user_id"`
	ApprovedAt                 *time.Time `db:"approved_at"`
	AuditFields
}

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID      string  `db:"entry_id"`
	JournalID    string  `db:"journal_id"`
	LineNo       int32   `db:"line_no"`
	AccountCode  string  `db:"account_code"`
	SubAccountID *string `db:"sub_account_id"`
	DebitAmount  int64   `db:"debit_amount"`
	CreditAmount int64   `db:"credit_amount"`
}
