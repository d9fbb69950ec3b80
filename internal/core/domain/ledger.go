package domain

import "fmt"

// LedgerType distinguishes political-organization ledgers from election-campaign ledgers.
type LedgerType string

const (
	LedgerOrganization LedgerType = "organization"
	LedgerElection     LedgerType = "election"
)

// ParseLedgerType converts a query/body value into a LedgerType.
func ParseLedgerType(s string) (LedgerType, bool) {
	switch LedgerType(s) {
	case LedgerOrganization, LedgerElection:
		return LedgerType(s), true
	}
	return "", false
}

// LedgerRef identifies the set of journals belonging to one organization or one election.
type LedgerRef struct {
	Type   LedgerType `json:"type"`
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	IsTest bool       `json:"isTest"`
}

// SourceID is the stable key the Hub uses for this ledger.
func (l LedgerRef) SourceID() string {
	return fmt.Sprintf("%s:%s", l.Type, l.ID)
}
