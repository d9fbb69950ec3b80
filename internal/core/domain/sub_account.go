package domain

// SubAccountLedgerType scopes a sub-account. It mirrors LedgerType using the
// naming of the sub-account table.
type SubAccountLedgerType string

const (
	SubAccountPoliticalOrganization SubAccountLedgerType = "political_organization"
	SubAccountElection              SubAccountLedgerType = "election"
)

// SubAccountLedgerTypeFor maps a ledger type to the sub-account scope.
func SubAccountLedgerTypeFor(lt LedgerType) SubAccountLedgerType {
	if lt == LedgerElection {
		return SubAccountElection
	}
	return SubAccountPoliticalOrganization
}

// LedgerType maps the sub-account scope back to a ledger type.
func (t SubAccountLedgerType) LedgerType() LedgerType {
	if t == SubAccountElection {
		return LedgerElection
	}
	return LedgerOrganization
}

// SubAccount is a named refinement of one expense account code. The parent
// AccountCode binding is immutable; only Name may change.
type SubAccount struct {
	SubAccountID string               `json:"subAccountID"`
	OwnerUserID  string               `json:"ownerUserID"`
	LedgerType   SubAccountLedgerType `json:"ledgerType"`
	AccountCode  string               `json:"accountCode"`
	Name         string               `json:"name"`
	AuditFields
}
