package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
)

// JournalStatus indicates the state of a journal. The only transition is
// Draft -> Approved; Approved is terminal.
type JournalStatus string

const (
	Draft    JournalStatus = "draft"
	Approved JournalStatus = "approved"
)

// AssetType is the fixed enumeration of asset classes reported for asset acquisitions.
type AssetType string

const (
	AssetLand            AssetType = "land"
	AssetBuilding        AssetType = "building"
	AssetLandRights      AssetType = "land_rights"
	AssetVehicle         AssetType = "vehicle"
	AssetMovable         AssetType = "movable"
	AssetSecurityDeposit AssetType = "security_deposit"
	AssetFacilityRights  AssetType = "facility_rights"
	AssetSecurities      AssetType = "securities"
	AssetInvestment      AssetType = "investment"
	AssetLoanReceivable  AssetType = "loan_receivable"
	AssetTimeDeposit     AssetType = "time_deposit"
)

var assetTypeLabels = map[AssetType]string{
	AssetLand:            "土地",
	AssetBuilding:        "建物",
	AssetLandRights:      "建物の所有を目的とする地上権又は土地の賃借権",
	AssetVehicle:         "取得価額が100万円を超える動産",
	AssetMovable:         "取得価額が100万円を超える動産以外の備品",
	AssetSecurityDeposit: "敷金",
	AssetFacilityRights:  "施設の利用に関する権利",
	AssetSecurities:      "有価証券",
	AssetInvestment:      "出資による権利",
	AssetLoanReceivable:  "貸付金",
	AssetTimeDeposit:     "預金又は貯金",
}

// Valid reports whether t belongs to the enumeration.
func (t AssetType) Valid() bool {
	_, ok := assetTypeLabels[t]
	return ok
}

// Label returns the report label for t.
func (t AssetType) Label() string {
	if l, ok := assetTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Journal is the aggregate root of a financial event.
type Journal struct {
	JournalID                  string         `json:"journalID"`
	OrganizationID             *string        `json:"organizationID"`
	ElectionID                 *string        `json:"electionID"`
	JournalDate                *time.Time     `json:"journalDate"`
	Description                string         `json:"description"`
	ContactID                  *string        `json:"contactID"`
	Status                     JournalStatus  `json:"status"`
	IsAssetAcquisition         bool           `json:"isAssetAcquisition"`
	AssetType                  AssetType      `json:"assetType"`
	IsReceiptHardToCollect     bool           `json:"isReceiptHardToCollect"`
	ReceiptHardToCollectReason string         `json:"receiptHardToCollectReason"`
	AmountPoliticalGrant       int64          `json:"amountPoliticalGrant"`
	AmountPoliticalFund        int64          `json:"amountPoliticalFund"`
	AmountPublicSubsidy        int64          `json:"amountPublicSubsidy"`
	Notes                      string         `json:"notes"`
	IsTest                     bool           `json:"isTest"`
	SubmittedByUserID          string         `json:"submittedByUserID"`
	ApprovedByUserID           *string        `json:"approvedByUserID"`
	ApprovedAt                 *time.Time     `json:"approvedAt"`
	Entries                    []JournalEntry `json:"entries"`
	AuditFields
}

// LedgerType returns the ledger kind this journal belongs to.
func (j Journal) LedgerType() LedgerType {
	if j.ElectionID != nil {
		return LedgerElection
	}
	return LedgerOrganization
}

// LedgerID returns the owning organization or election id.
func (j Journal) LedgerID() string {
	if j.ElectionID != nil {
		return *j.ElectionID
	}
	if j.OrganizationID != nil {
		return *j.OrganizationID
	}
	return ""
}

// Ledger returns a reference to the owning ledger (without name).
func (j Journal) Ledger() LedgerRef {
	return LedgerRef{Type: j.LedgerType(), ID: j.LedgerID()}
}

// IsApproved reports whether the journal reached the terminal state.
func (j Journal) IsApproved() bool {
	return j.Status == Approved
}

// TotalDebit sums debit amounts over all entries.
func (j Journal) TotalDebit() int64 {
	var sum int64
	for _, e := range j.Entries {
		sum += e.DebitAmount
	}
	return sum
}

// TotalCredit sums credit amounts over all entries.
func (j Journal) TotalCredit() int64 {
	var sum int64
	for _, e := range j.Entries {
		sum += e.CreditAmount
	}
	return sum
}

// checkedTotals sums both sides, reporting false when either sum would
// overflow int64. Amounts must already be non-negative.
func (j Journal) checkedTotals() (debit, credit int64, ok bool) {
	for _, e := range j.Entries {
		if debit > math.MaxInt64-e.DebitAmount || credit > math.MaxInt64-e.CreditAmount {
			return 0, 0, false
		}
		debit += e.DebitAmount
		credit += e.CreditAmount
	}
	return debit, credit, true
}

// Validate checks the journal header and entries against the account master.
// Sub-account and contact references are resolved by the service since they
// require lookups.
func (j Journal) Validate(master *AccountMaster) error {
	if strings.TrimSpace(j.Description) == "" {
		return apperrors.NewValidationError("description is required")
	}
	hasOrg := j.OrganizationID != nil && *j.OrganizationID != ""
	hasElection := j.ElectionID != nil && *j.ElectionID != ""
	if hasOrg && hasElection {
		return apperrors.NewValidationError("organization_id and election_id are mutually exclusive")
	}
	if !hasOrg && !hasElection {
		return apperrors.NewValidationError("either organization_id or election_id is required")
	}
	switch j.Status {
	case Draft, Approved:
	default:
		return apperrors.NewValidationError(fmt.Sprintf("status %q is invalid", j.Status))
	}
	if j.Status == Approved && j.JournalDate == nil {
		return apperrors.NewValidationError("journal_date is required for approved journals")
	}
	if j.IsReceiptHardToCollect && strings.TrimSpace(j.ReceiptHardToCollectReason) == "" {
		return apperrors.NewValidationError("receipt_hard_to_collect_reason is required when the receipt is hard to collect")
	}
	if j.IsAssetAcquisition {
		if j.AssetType == "" {
			return apperrors.NewValidationError("asset_type is required for asset acquisitions")
		}
		if !j.AssetType.Valid() {
			return apperrors.NewValidationError(fmt.Sprintf("asset_type %q is not a valid asset type", j.AssetType))
		}
	}
	if j.AmountPoliticalGrant < 0 || j.AmountPoliticalFund < 0 || j.AmountPublicSubsidy < 0 {
		return apperrors.NewValidationError("grant, fund and subsidy amounts must not be negative")
	}
	if len(j.Entries) == 0 {
		return apperrors.NewValidationError("at least one journal entry is required")
	}

	ledgerType := j.LedgerType()
	for i, e := range j.Entries {
		if e.DebitAmount < 0 || e.CreditAmount < 0 {
			return apperrors.NewValidationError(fmt.Sprintf("entry %d: debit_amount and credit_amount must not be negative", i+1))
		}
		if master == nil {
			continue
		}
		code, ok := master.Lookup(e.AccountCode)
		if !ok {
			return apperrors.NewNotFoundError(fmt.Sprintf("entry %d: account code %s does not exist", i+1, e.AccountCode))
		}
		if !code.AvailableFor(ledgerType) {
			return apperrors.NewValidationError(fmt.Sprintf("entry %d: account code %s is not available for %s ledgers", i+1, e.AccountCode, ledgerType))
		}
	}

	debit, credit, ok := j.checkedTotals()
	if !ok {
		return apperrors.NewValidationError(fmt.Sprintf("journal totals exceed %d", int64(math.MaxInt64)))
	}
	if debit != credit {
		return apperrors.NewValidationError(fmt.Sprintf("debit and credit totals do not match (debit %d, credit %d)", debit, credit))
	}
	if debit == 0 {
		return apperrors.NewValidationError("journal total must be greater than zero")
	}
	return nil
}
