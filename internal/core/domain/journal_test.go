package domain

import (
	"math"
	"testing"
	"time"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func officeRentJournal() Journal {
	return Journal{
		JournalID:      "j-1",
		OrganizationID: strPtr("org-1"),
		Description:    "office rent",
		Status:         Draft,
		Entries: []JournalEntry{
			{AccountCode: "EXP_OFFICE", DebitAmount: 5000},
			{AccountCode: "ASSET_CASH", CreditAmount: 5000},
		},
	}
}

func TestJournalValidate_Balanced(t *testing.T) {
	j := officeRentJournal()
	require.NoError(t, j.Validate(DefaultAccountMaster()))
	assert.Equal(t, int64(5000), j.TotalDebit())
	assert.Equal(t, int64(5000), j.TotalCredit())
	assert.Equal(t, LedgerOrganization, j.LedgerType())
	assert.Equal(t, "organization:org-1", j.Ledger().SourceID())
}

func TestJournalValidate_Errors(t *testing.T) {
	master := DefaultAccountMaster()
	today := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(j *Journal)
		target  error
		message string
	}{
		{
			name:    "unbalanced",
			mutate:  func(j *Journal) { j.Entries[0].DebitAmount = 3000; j.Entries[1].CreditAmount = 2999 },
			target:  apperrors.ErrValidation,
			message: "debit and credit totals do not match (debit 3000, credit 2999)",
		},
		{
			name:    "missing description",
			mutate:  func(j *Journal) { j.Description = "  " },
			target:  apperrors.ErrValidation,
			message: "description is required",
		},
		{
			name:    "no ledger",
			mutate:  func(j *Journal) { j.OrganizationID = nil },
			target:  apperrors.ErrValidation,
			message: "either organization_id or election_id is required",
		},
		{
			name:    "both ledgers",
			mutate:  func(j *Journal) { j.ElectionID = strPtr("el-1") },
			target:  apperrors.ErrValidation,
			message: "organization_id and election_id are mutually exclusive",
		},
		{
			name:    "approved without date",
			mutate:  func(j *Journal) { j.Status = Approved },
			target:  apperrors.ErrValidation,
			message: "journal_date is required for approved journals",
		},
		{
			name:    "no entries",
			mutate:  func(j *Journal) { j.Entries = nil },
			target:  apperrors.ErrValidation,
			message: "at least one journal entry is required",
		},
		{
			name:    "hard to collect without reason",
			mutate:  func(j *Journal) { j.IsReceiptHardToCollect = true },
			target:  apperrors.ErrValidation,
			message: "receipt_hard_to_collect_reason is required when the receipt is hard to collect",
		},
		{
			name:    "asset acquisition without type",
			mutate:  func(j *Journal) { j.IsAssetAcquisition = true },
			target:  apperrors.ErrValidation,
			message: "asset_type is required for asset acquisitions",
		},
		{
			name:   "asset acquisition with unknown type",
			mutate: func(j *Journal) { j.IsAssetAcquisition = true; j.AssetType = "spaceship" },
			target: apperrors.ErrValidation,
		},
		{
			name:   "negative amount",
			mutate: func(j *Journal) { j.Entries[0].DebitAmount = -5000; j.Entries[1].CreditAmount = -5000 },
			target: apperrors.ErrValidation,
		},
		{
			name:   "unknown account code",
			mutate: func(j *Journal) { j.Entries[0].AccountCode = "EXP_NOPE" },
			target: apperrors.ErrNotFound,
		},
		{
			name:   "code unavailable for election ledger",
			mutate: func(j *Journal) { j.OrganizationID = nil; j.ElectionID = strPtr("el-1") },
			target: apperrors.ErrValidation,
		},
		{
			name:    "zero total",
			mutate:  func(j *Journal) { j.Entries[0].DebitAmount = 0; j.Entries[1].CreditAmount = 0 },
			target:  apperrors.ErrValidation,
			message: "journal total must be greater than zero",
		},
		{
			name: "debit total wraps around",
			mutate: func(j *Journal) {
				j.Entries = []JournalEntry{
					{LineNo: 1, AccountCode: "EXP_OFFICE", DebitAmount: math.MaxInt64},
					{LineNo: 2, AccountCode: "EXP_OFFICE", DebitAmount: math.MaxInt64},
					{LineNo: 3, AccountCode: "EXP_OFFICE", DebitAmount: 3},
					{LineNo: 4, AccountCode: "ASSET_CASH", CreditAmount: 1},
				}
			},
			target:  apperrors.ErrValidation,
			message: "journal totals exceed 9223372036854775807",
		},
		{
			name: "credit total overflows",
			mutate: func(j *Journal) {
				j.Entries = []JournalEntry{
					{LineNo: 1, AccountCode: "EXP_OFFICE", DebitAmount: 1},
					{LineNo: 2, AccountCode: "ASSET_CASH", CreditAmount: math.MaxInt64},
					{LineNo: 3, AccountCode: "ASSET_CASH", CreditAmount: 1},
				}
			},
			target: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := officeRentJournal()
			tt.mutate(&j)
			err := j.Validate(master)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			if tt.message != "" {
				assert.Equal(t, tt.message, apperrors.Message(err))
			}
		})
	}

	t.Run("approved with date passes", func(t *testing.T) {
		j := officeRentJournal()
		j.Status = Approved
		j.JournalDate = &today
		assert.NoError(t, j.Validate(master))
	})
}

func TestAssetTypeLabel(t *testing.T) {
	assert.True(t, AssetLand.Valid())
	assert.Equal(t, "土地", AssetLand.Label())
	assert.False(t, AssetType("boat").Valid())
	assert.Equal(t, "boat", AssetType("boat").Label())
}
