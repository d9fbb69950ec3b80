package models

import "time"

// JournalSyncState is a row of the journal_sync_states table.
type JournalSyncState struct {
	JournalID      string    `db:"journal_id"`
	LedgerSourceID string    `db:"ledger_source_id"`
	PayloadHash    string    `db:"payload_hash"`
	SyncedAt       time.Time `db:"synced_at"`
}

// ChangeLog is a row of the sync_change_logs table. Details holds JSON.
type ChangeLog struct {
	ChangeLogID    string    `db:"change_log_id"`
	LedgerSourceID string    `db:"ledger_source_id"`
	Summary        string    `db:"summary"`
	Details        []byte    `db:"details"`
	CreatedAt      time.Time `db:"created_at"`
}
