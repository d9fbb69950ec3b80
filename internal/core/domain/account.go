package domain

import "strings"

// AccountType defines the fundamental accounting type of an account code.
type AccountType string

const (
	Revenue AccountType = "revenue"
	Expense AccountType = "expense"
	Asset   AccountType = "asset"
	Other   AccountType = "other"
)

const (
	revenuePrefix = "REV_"
	expensePrefix = "EXP_"
)

// AccountCode is an immutable row of the account master.
type AccountCode struct {
	Code                 string       `json:"code"`
	Name                 string       `json:"name"`
	Type                 AccountType  `json:"type"`
	ReportCategory       string       `json:"reportCategory"`
	AvailableLedgerTypes []LedgerType `json:"availableLedgerTypes"`
}

// IsRevenueCode reports whether code belongs to the income side of the Hub schema.
func IsRevenueCode(code string) bool {
	return strings.HasPrefix(code, revenuePrefix)
}

// IsExpenseCode reports whether code belongs to the expense side of the Hub schema.
func IsExpenseCode(code string) bool {
	return strings.HasPrefix(code, expensePrefix)
}

// AvailableFor reports whether journals of ledgerType may use this code.
func (a AccountCode) AvailableFor(ledgerType LedgerType) bool {
	for _, lt := range a.AvailableLedgerTypes {
		if lt == ledgerType {
			return true
		}
	}
	return false
}

// AccountMaster is the read-only catalog of account codes. It is safe for
// concurrent use because it is never mutated after construction.
type AccountMaster struct {
	byCode map[string]AccountCode
	order  []string
}

// NewAccountMaster builds a catalog preserving the given order.
func NewAccountMaster(codes []AccountCode) *AccountMaster {
	m := &AccountMaster{
		byCode: make(map[string]AccountCode, len(codes)),
		order:  make([]string, 0, len(codes)),
	}
	for _, c := range codes {
		if _, dup := m.byCode[c.Code]; dup {
			continue
		}
		m.byCode[c.Code] = c
		m.order = append(m.order, c.Code)
	}
	return m
}

// Lookup returns the account code row for code.
func (m *AccountMaster) Lookup(code string) (AccountCode, bool) {
	c, ok := m.byCode[code]
	return c, ok
}

// Name returns the display name for code, or the code itself when unknown.
func (m *AccountMaster) Name(code string) string {
	if c, ok := m.byCode[code]; ok {
		return c.Name
	}
	return code
}

// Position returns the catalog order of code; unknown codes sort last.
func (m *AccountMaster) Position(code string) int {
	for i, c := range m.order {
		if c == code {
			return i
		}
	}
	return len(m.order)
}

// List returns the codes available for ledgerType in catalog order. An empty
// ledgerType returns every code.
func (m *AccountMaster) List(ledgerType LedgerType) []AccountCode {
	out := make([]AccountCode, 0, len(m.order))
	for _, code := range m.order {
		c := m.byCode[code]
		if ledgerType == "" || c.AvailableFor(ledgerType) {
			out = append(out, c)
		}
	}
	return out
}

var (
	bothLedgers  = []LedgerType{LedgerOrganization, LedgerElection}
	orgOnly      = []LedgerType{LedgerOrganization}
	electionOnly = []LedgerType{LedgerElection}
)

// defaultAccountCodes follows the income/expense categories of the political
// funds income and expenditure report.
var defaultAccountCodes = []AccountCode{
	// Income
	{Code: "REV_MEMBERSHIP_FEE", Name: "個人の負担する党費又は会費", Type: Revenue, ReportCategory: "党費・会費", AvailableLedgerTypes: orgOnly},
	{Code: "REV_INDIVIDUAL", Name: "個人からの寄附", Type: Revenue, ReportCategory: "寄附", AvailableLedgerTypes: bothLedgers},
	{Code: "REV_CORPORATE", Name: "法人その他の団体からの寄附", Type: Revenue, ReportCategory: "寄附", AvailableLedgerTypes: orgOnly},
	{Code: "REV_POLITICAL_ORG", Name: "政治団体からの寄附", Type: Revenue, ReportCategory: "寄附", AvailableLedgerTypes: bothLedgers},
	{Code: "REV_POLITICAL_PARTY", Name: "政党からの寄附", Type: Revenue, ReportCategory: "寄附", AvailableLedgerTypes: electionOnly},
	{Code: "REV_MEDIATED", Name: "政治団体があっせんしたもの", Type: Revenue, ReportCategory: "寄附", AvailableLedgerTypes: orgOnly},
	{Code: "REV_BUSINESS", Name: "事業による収入", Type: Revenue, ReportCategory: "事業収入", AvailableLedgerTypes: orgOnly},
	{Code: "REV_LOAN", Name: "借入金", Type: Revenue, ReportCategory: "借入金", AvailableLedgerTypes: orgOnly},
	{Code: "REV_GRANT", Name: "本部又は支部から供与された交付金", Type: Revenue, ReportCategory: "交付金", AvailableLedgerTypes: orgOnly},
	{Code: "REV_CANDIDATE_SELF", Name: "候補者の自己資金", Type: Revenue, ReportCategory: "自己資金", AvailableLedgerTypes: electionOnly},
	{Code: "REV_OTHER", Name: "その他の収入", Type: Revenue, ReportCategory: "その他の収入", AvailableLedgerTypes: bothLedgers},

	// Ordinary expenses (organization)
	{Code: "EXP_PERSONNEL", Name: "人件費", Type: Expense, ReportCategory: "経常経費", AvailableLedgerTypes: bothLedgers},
	{Code: "EXP_UTILITIES", Name: "光熱水費", Type: Expense, ReportCategory: "経常経費", AvailableLedgerTypes: orgOnly},
	{Code: "EXP_SUPPLIES", Name: "備品・消耗品費", Type: Expense, ReportCategory: "経常経費", AvailableLedgerTypes: orgOnly},
	{Code: "EXP_OFFICE", Name: "事務所費", Type: Expense, ReportCategory: "経常経費", AvailableLedgerTypes: orgOnly},

	// Political activity expenses (organization)
	{Code: "EXP_ORGANIZATION", Name: "組織活動費", Type: Expense, ReportCategory: "政治活動費", AvailableLedgerTypes: orgOnly},
	{Code: "EXP_ELECTION", Name: "選挙関係費", Type: Expense, ReportCategory: "政治活動費", AvailableLedgerTypes: orgOnly},
	{Code: "EXP_PUBLICATION", Name: "機関紙誌の発行事業費", Type: Expense, ReportCategory: "政治活動費", AvailableLedgerTypes: orgOnly},
	{Code: "EXP_PUBLICITY", Name: "宣伝事業費", Type: Expense, ReportCategory: "政治活動費", AvailableLedgerTypes: orgOnly},
	{Code: "EXP_PARTY_EVENT", Name: "政治資金パーティー開催事業費", Type: Expense, ReportCategory: "政治活動費", AvailableLedgerTypes: orgOnly},
	{Code: "EXP_RESEARCH", Name: "調査研究費", Type: Expense, ReportCategory: "政治活動費", AvailableLedgerTypes: orgOnly},
	{Code: "EXP_DONATION", Name: "寄附・交付金", Type: Expense, ReportCategory: "政治活動費", AvailableLedgerTypes: orgOnly},
	{Code: "EXP_OTHER", Name: "その他の経費", Type: Expense, ReportCategory: "政治活動費", AvailableLedgerTypes: orgOnly},

	// Election campaign expenses
	{Code: "EXP_HOUSING", Name: "家屋費", Type: Expense, ReportCategory: "選挙運動費用", AvailableLedgerTypes: electionOnly},
	{Code: "EXP_COMMUNICATION", Name: "通信費", Type: Expense, ReportCategory: "選挙運動費用", AvailableLedgerTypes: electionOnly},
	{Code: "EXP_TRANSPORT", Name: "交通費", Type: Expense, ReportCategory: "選挙運動費用", AvailableLedgerTypes: electionOnly},
	{Code: "EXP_PRINTING", Name: "印刷費", Type: Expense, ReportCategory: "選挙運動費用", AvailableLedgerTypes: electionOnly},
	{Code: "EXP_ADVERTISING", Name: "広告費", Type: Expense, ReportCategory: "選挙運動費用", AvailableLedgerTypes: electionOnly},
	{Code: "EXP_STATIONERY", Name: "文具費", Type: Expense, ReportCategory: "選挙運動費用", AvailableLedgerTypes: electionOnly},
	{Code: "EXP_FOOD", Name: "食料費", Type: Expense, ReportCategory: "選挙運動費用", AvailableLedgerTypes: electionOnly},
	{Code: "EXP_LODGING", Name: "休泊費", Type: Expense, ReportCategory: "選挙運動費用", AvailableLedgerTypes: electionOnly},
	{Code: "EXP_MISC", Name: "雑費", Type: Expense, ReportCategory: "選挙運動費用", AvailableLedgerTypes: electionOnly},

	// Balance sheet side
	{Code: "ASSET_CASH", Name: "現金", Type: Asset, ReportCategory: "資産", AvailableLedgerTypes: bothLedgers},
	{Code: "ASSET_BANK", Name: "普通預金", Type: Asset, ReportCategory: "資産", AvailableLedgerTypes: bothLedgers},
	{Code: "ASSET_TIME_DEPOSIT", Name: "定期預金", Type: Asset, ReportCategory: "資産", AvailableLedgerTypes: orgOnly},
	{Code: "ASSET_SECURITY_DEPOSIT", Name: "敷金", Type: Asset, ReportCategory: "資産", AvailableLedgerTypes: orgOnly},
	{Code: "ASSET_FIXED", Name: "固定資産", Type: Asset, ReportCategory: "資産", AvailableLedgerTypes: orgOnly},
	{Code: "OTHER_LOAN_PAYABLE", Name: "借入金残高", Type: Other, ReportCategory: "負債", AvailableLedgerTypes: orgOnly},
	{Code: "OTHER_CARRYOVER", Name: "前年からの繰越額", Type: Other, ReportCategory: "繰越", AvailableLedgerTypes: bothLedgers},
}

// DefaultAccountMaster returns the built-in account catalog.
func DefaultAccountMaster() *AccountMaster {
	return NewAccountMaster(defaultAccountCodes)
}
