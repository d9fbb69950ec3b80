package domain

import "time"

// ReportKind selects one of the compliance exports.
type ReportKind string

const (
	ReportExpense ReportKind = "expense"
	ReportRevenue ReportKind = "revenue"
	ReportSummary ReportKind = "summary"
	ReportAssets  ReportKind = "assets"
)

// ParseReportKind validates a report kind.
func ParseReportKind(s string) (ReportKind, bool) {
	switch ReportKind(s) {
	case ReportExpense, ReportRevenue, ReportSummary, ReportAssets:
		return ReportKind(s), true
	}
	return "", false
}

// FileBaseName is the export file name without the date suffix.
func (k ReportKind) FileBaseName() string {
	switch k {
	case ReportExpense:
		return "expense_register"
	case ReportRevenue:
		return "revenue_register"
	case ReportSummary:
		return "account_summary"
	case ReportAssets:
		return "asset_register"
	}
	return string(k)
}

// RedactedValue replaces a withheld contact field in exports.
const RedactedValue = "非公開"

// Report is a tabular report: a header row and string cells in header order.
type Report struct {
	Kind        ReportKind
	Ledger      LedgerRef
	GeneratedAt time.Time
	Columns     []string
	Rows        [][]string
}
