package domain

import "time"

// JournalApproved is emitted once when a journal enters the approved state.
// Subscribers (the sync orchestrator) treat it as "ledger needs a sync pass".
type JournalApproved struct {
	JournalID  string
	Ledger     LedgerRef
	ApprovedBy string
	ApprovedAt time.Time
}
