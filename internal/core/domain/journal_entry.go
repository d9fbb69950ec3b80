package domain

// JournalEntry is a single debit/credit line of a Journal. Amounts are
// integer minor-currency units.
type JournalEntry struct {
	EntryID      string  `json:"entryID"`
	JournalID    string  `json:"journalID"`
	LineNo       int     `json:"lineNo"`
	AccountCode  string  `json:"accountCode"`
	SubAccountID *string `json:"subAccountID"`
	DebitAmount  int64   `json:"debitAmount"`
	CreditAmount int64   `json:"creditAmount"`
}

// Amount returns whichever side of the line is non-zero (debit first).
func (e JournalEntry) Amount() int64 {
	if e.DebitAmount > 0 {
		return e.DebitAmount
	}
	return e.CreditAmount
}
