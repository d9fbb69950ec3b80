package mapping

import (
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	"github.com/SscSPs/polifund_ledger/internal/models"
)

// ToModelJournal converts a domain Journal to a model Journal
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:                  d.JournalID,
		OrganizationID:             d.OrganizationID,
		ElectionID:                 d.ElectionID,
		JournalDate:                d.JournalDate,
		Description:                d.Description,
		ContactID:                  d.ContactID,
		Status:                     string(d.Status),
		IsAssetAcquisition:         d.IsAssetAcquisition,
		AssetType:                  nilIfEmpty(string(d.AssetType)),
		IsReceiptHardToCollect:     d.IsReceiptHardToCollect,
		ReceiptHardToCollectReason: nilIfEmpty(d.ReceiptHardToCollectReason),
		AmountPoliticalGrant:       d.AmountPoliticalGrant,
		AmountPoliticalFund:        d.AmountPoliticalFund,
		AmountPublicSubsidy:        d.AmountPublicSubsidy,
		Notes:                      nilIfEmpty(d.Notes),
		IsTest:                     d.IsTest,
		SubmittedByUserID:          d.SubmittedByUserID,
		ApprovedByUserID:           d.ApprovedByUserID,
		ApprovedAt:                 d.ApprovedAt,
		AuditFields:                ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a model Journal to a domain Journal without entries
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:                  m.JournalID,
		OrganizationID:             m.OrganizationID,
		ElectionID:                 m.ElectionID,
		JournalDate:                m.JournalDate,
		Description:                m.Description,
		ContactID:                  m.ContactID,
		Status:                     domain.JournalStatus(m.Status),
		IsAssetAcquisition:         m.IsAssetAcquisition,
		AssetType:                  domain.AssetType(derefString(m.AssetType)),
		IsReceiptHardToCollect:     m.IsReceiptHardToCollect,
		ReceiptHardToCollectReason: derefString(m.ReceiptHardToCollectReason),
		AmountPoliticalGrant:       m.AmountPoliticalGrant,
		AmountPoliticalFund:        m.AmountPoliticalFund,
		AmountPublicSubsidy:        m.AmountPublicSubsidy,
		Notes:                      derefString(m.Notes),
		IsTest:                     m.IsTest,
		SubmittedByUserID:          m.SubmittedByUserID,
		ApprovedByUserID:           m.ApprovedByUserID,
		ApprovedAt:                 m.ApprovedAt,
		AuditFields:                ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:      d.EntryID,
		JournalID:    d.JournalID,
		LineNo:       int32(d.LineNo),
		AccountCode:  d.AccountCode,
		SubAccountID: d.SubAccountID,
		DebitAmount:  d.DebitAmount,
		CreditAmount: d.CreditAmount,
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:      m.EntryID,
		JournalID:    m.JournalID,
		LineNo:       int(m.LineNo),
		AccountCode:  m.AccountCode,
		SubAccountID: m.SubAccountID,
		DebitAmount:  m.DebitAmount,
		CreditAmount: m.CreditAmount,
	}
}
