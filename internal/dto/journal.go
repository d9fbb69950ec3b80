package dto

import (
	"time"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
)

// DateLayout is the wire format of journal dates.
const DateLayout = "2006-01-02"

// JournalEntryRequest is one debit/credit line of a journal request.
type JournalEntryRequest struct {
	AccountCode  string  `json:"account_code" binding:"required"`
	SubAccountID *string `json:"sub_account_id"`
	DebitAmount  int64   `json:"debit_amount" binding:"gte=0"`
	CreditAmount int64   `json:"credit_amount" binding:"gte=0"`
}

// CreateJournalRequest is the body of POST /journals. Description, ledger and
// balance rules are checked by the journal model so the caller gets the
// specific message.
type CreateJournalRequest struct {
	OrganizationID             *string               `json:"organization_id"`
	ElectionID                 *string               `json:"election_id"`
	JournalDate                *string               `json:"journal_date"`
	Description                string                `json:"description"`
	ContactID                  *string               `json:"contact_id"`
	Status                     string                `json:"status" binding:"omitempty,oneof=draft approved"`
	IsAssetAcquisition         bool                  `json:"is_asset_acquisition"`
	AssetType                  string                `json:"asset_type"`
	IsReceiptHardToCollect     bool                  `json:"is_receipt_hard_to_collect"`
	ReceiptHardToCollectReason string                `json:"receipt_hard_to_collect_reason"`
	AmountPoliticalGrant       int64                 `json:"amount_political_grant" binding:"gte=0"`
	AmountPoliticalFund        int64                 `json:"amount_political_fund" binding:"gte=0"`
	AmountPublicSubsidy        int64                 `json:"amount_public_subsidy" binding:"gte=0"`
	Notes                      string                `json:"notes"`
	IsTest                     bool                  `json:"is_test"`
	Entries                    []JournalEntryRequest `json:"entries" binding:"dive"`
}

// UpdateJournalRequest replaces a draft journal. The ledger cannot change and
// status stays draft; approval goes through the approve endpoint.
type UpdateJournalRequest struct {
	JournalDate                *string               `json:"journal_date"`
	Description                string                `json:"description"`
	ContactID                  *string               `json:"contact_id"`
	IsAssetAcquisition         bool                  `json:"is_asset_acquisition"`
	AssetType                  string                `json:"asset_type"`
	IsReceiptHardToCollect     bool                  `json:"is_receipt_hard_to_collect"`
	ReceiptHardToCollectReason string                `json:"receipt_hard_to_collect_reason"`
	AmountPoliticalGrant       int64                 `json:"amount_political_grant" binding:"gte=0"`
	AmountPoliticalFund        int64                 `json:"amount_political_fund" binding:"gte=0"`
	AmountPublicSubsidy        int64                 `json:"amount_public_subsidy" binding:"gte=0"`
	Notes                      string                `json:"notes"`
	Entries                    []JournalEntryRequest `json:"entries" binding:"dive"`
}

// ListJournalsParams are the query parameters of GET /journals.
type ListJournalsParams struct {
	OrganizationID string  `form:"organization_id"`
	ElectionID     string  `form:"election_id"`
	Limit          int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken      *string `form:"nextToken"`
}

// JournalEntryResponse is one line of a journal response.
type JournalEntryResponse struct {
	EntryID      string  `json:"entry_id"`
	LineNo       int     `json:"line_no"`
	AccountCode  string  `json:"account_code"`
	SubAccountID *string `json:"sub_account_id"`
	DebitAmount  int64   `json:"debit_amount"`
	CreditAmount int64   `json:"credit_amount"`
}

// JournalResponse defines the data returned for a journal.
type JournalResponse struct {
	ID                         string                 `json:"id"`
	OrganizationID             *string                `json:"organization_id"`
	ElectionID                 *string                `json:"election_id"`
	JournalDate                *string                `json:"journal_date"`
	Description                string                 `json:"description"`
	ContactID                  *string                `json:"contact_id"`
	Status                     string                 `json:"status"`
	IsAssetAcquisition         bool                   `json:"is_asset_acquisition"`
	AssetType                  string                 `json:"asset_type,omitempty"`
	IsReceiptHardToCollect     bool                   `json:"is_receipt_hard_to_collect"`
	ReceiptHardToCollectReason string                 `json:"receipt_hard_to_collect_reason,omitempty"`
	AmountPoliticalGrant       int64                  `json:"amount_political_grant"`
	AmountPoliticalFund        int64                  `json:"amount_political_fund"`
	AmountPublicSubsidy        int64                  `json:"amount_public_subsidy"`
	Notes                      string                 `json:"notes"`
	IsTest                     bool                   `json:"is_test"`
	SubmittedByUserID          string                 `json:"submitted_by_user_id"`
	ApprovedByUserID           *string                `json:"approved_by_user_id"`
	ApprovedAt                 *time.Time             `json:"approved_at"`
	CreatedAt                  time.Time              `json:"created_at"`
	Entries                    []JournalEntryResponse `json:"entries"`
}

// ListJournalsResponse is a page of journals.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		ID:                         j.JournalID,
		OrganizationID:             j.OrganizationID,
		ElectionID:                 j.ElectionID,
		Description:                j.Description,
		ContactID:                  j.ContactID,
		Status:                     string(j.Status),
		IsAssetAcquisition:         j.IsAssetAcquisition,
		AssetType:                  string(j.AssetType),
		IsReceiptHardToCollect:     j.IsReceiptHardToCollect,
		ReceiptHardToCollectReason: j.ReceiptHardToCollectReason,
		AmountPoliticalGrant:       j.AmountPoliticalGrant,
		AmountPoliticalFund:        j.AmountPoliticalFund,
		AmountPublicSubsidy:        j.AmountPublicSubsidy,
		Notes:                      j.Notes,
		IsTest:                     j.IsTest,
		SubmittedByUserID:          j.SubmittedByUserID,
		ApprovedByUserID:           j.ApprovedByUserID,
		ApprovedAt:                 j.ApprovedAt,
		CreatedAt:                  j.CreatedAt,
		Entries:                    make([]JournalEntryResponse, len(j.Entries)),
	}
	if j.JournalDate != nil {
		d := j.JournalDate.Format(DateLayout)
		resp.JournalDate = &d
	}
	for i, e := range j.Entries {
		resp.Entries[i] = JournalEntryResponse{
			EntryID:      e.EntryID,
			LineNo:       e.LineNo,
			AccountCode:  e.AccountCode,
			SubAccountID: e.SubAccountID,
			DebitAmount:  e.DebitAmount,
			CreditAmount: e.CreditAmount,
		}
	}
	return resp
}

// ToListJournalsResponse converts a page of journals.
func ToListJournalsResponse(journals []domain.Journal, nextToken *string) *ListJournalsResponse {
	resp := &ListJournalsResponse{Journals: make([]JournalResponse, len(journals)), NextToken: nextToken}
	for i := range journals {
		resp.Journals[i] = ToJournalResponse(&journals[i])
	}
	return resp
}
