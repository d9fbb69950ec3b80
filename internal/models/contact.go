package models

// Contact is a row of the contacts table.
type Contact struct {
	ContactID           string  `db:"contact_id"`
	OwnerUserID         string  `db:"owner_user_id"`
	ContactType         string  `db:"contact_type"`
	Name                string  `db:"name"`
	Address             *string `db:"address"`
	Occupation          *string `db:"occupation"`
	IsNamePrivate       bool    `db:"is_name_private"`
	IsAddressPrivate    bool    `db:"is_address_private"`
	IsOccupationPrivate bool    `db:"is_occupation_private"`
	PrivacyReasonType   *string `db:"privacy_reason_type"`
	PrivacyReasonOther  *string `db:"privacy_reason_other"`
	AuditFields
}

// SubAccount is a row of the sub_accounts table.
type SubAccount struct {
	SubAccountID string `db:"sub_account_id"`
	OwnerUserID  string `db:"owner_user_id"`
	LedgerType   string `db:"ledger_type"`
	AccountCode  string `db:"account_code"`
	Name         string `db:"name"`
	AuditFields
}
