package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	"github.com/SscSPs/polifund_ledger/internal/models"
)

// ToModelSyncState converts a domain JournalSyncState to a model JournalSyncState
func ToModelSyncState(d domain.JournalSyncState) models.JournalSyncState {
	return models.JournalSyncState{
		JournalID:      d.JournalID,
		LedgerSourceID: d.LedgerSourceID,
		PayloadHash:    d.PayloadHash,
		SyncedAt:       d.SyncedAt,
	}
}

// ToDomainSyncState converts a model JournalSyncState to a domain JournalSyncState
func ToDomainSyncState(m models.JournalSyncState) domain.JournalSyncState {
	return domain.JournalSyncState{
		JournalID:      m.JournalID,
		LedgerSourceID: m.LedgerSourceID,
		PayloadHash:    m.PayloadHash,
		SyncedAt:       m.SyncedAt,
	}
}

// ToModelChangeLog converts a domain ChangeLogEntry, encoding its details as JSON.
func ToModelChangeLog(d domain.ChangeLogEntry) (models.ChangeLog, error) {
	details, err := json.Marshal(d.Details)
	if err != nil {
		return models.ChangeLog{}, fmt.Errorf("encode change log details: %w", err)
	}
	return models.ChangeLog{
		ChangeLogID:    d.ChangeLogID,
		LedgerSourceID: d.LedgerSourceID,
		Summary:        d.Summary,
		Details:        details,
		CreatedAt:      d.CreatedAt,
	}, nil
}

// ToDomainChangeLog converts a model ChangeLog, decoding its JSON details.
func ToDomainChangeLog(m models.ChangeLog) (domain.ChangeLogEntry, error) {
	d := domain.ChangeLogEntry{
		ChangeLogID:    m.ChangeLogID,
		LedgerSourceID: m.LedgerSourceID,
		Summary:        m.Summary,
		CreatedAt:      m.CreatedAt,
	}
	if len(m.Details) > 0 {
		if err := json.Unmarshal(m.Details, &d.Details); err != nil {
			return domain.ChangeLogEntry{}, fmt.Errorf("decode change log details %s: %w", m.ChangeLogID, err)
		}
	}
	return d, nil
}
