package services

import (
	"sort"
	"strconv"
	"time"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
)

var (
	expenseColumns = []string{"年月日", "目的", "金額", "支出先氏名", "支出先住所", "科目", "補助科目", "政党交付金充当額", "政治資金充当額", "公費負担額", "領収書徴収困難", "備考"}
	revenueColumns = []string{"年月日", "摘要", "金額", "寄附者区分", "寄附者氏名", "寄附者住所", "寄附者職業", "科目", "備考"}
	summaryColumns = []string{"科目コード", "科目", "報告区分", "件数", "金額"}
	assetColumns   = []string{"年月日", "摘要", "資産区分", "取得価額", "取得先", "備考"}
)

// ReportInput is the snapshot a report folds over.
type ReportInput struct {
	Ledger      domain.LedgerRef
	Journals    []domain.Journal
	Contacts    map[string]domain.Contact
	SubAccounts map[string]domain.SubAccount
	Master      *domain.AccountMaster
	GeneratedAt time.Time
}

// BuildReport folds the approved journals of in into the requested report.
// Test journals and every journal of a test ledger are left out. Rows follow journal_date ascending with
// created_at and id as tie-breakers; the summary follows catalog order.
func BuildReport(kind domain.ReportKind, in ReportInput) *domain.Report {
	if in.Master == nil {
		in.Master = domain.DefaultAccountMaster()
	}
	journals := reportableJournals(in.Ledger, in.Journals)
	report := &domain.Report{Kind: kind, Ledger: in.Ledger, GeneratedAt: in.GeneratedAt, Rows: [][]string{}}

	switch kind {
	case domain.ReportExpense:
		report.Columns = expenseColumns
		for _, j := range journals {
			if row, ok := expenseRow(j, in); ok {
				report.Rows = append(report.Rows, row)
			}
		}
	case domain.ReportRevenue:
		report.Columns = revenueColumns
		for _, j := range journals {
			if row, ok := revenueRow(j, in); ok {
				report.Rows = append(report.Rows, row)
			}
		}
	case domain.ReportSummary:
		report.Columns = summaryColumns
		report.Rows = summaryRows(journals, in.Master)
	case domain.ReportAssets:
		report.Columns = assetColumns
		for _, j := range journals {
			if !j.IsAssetAcquisition {
				continue
			}
			contact := contactView(j, in.Contacts)
			report.Rows = append(report.Rows, []string{
				formatDate(j.JournalDate),
				j.Description,
				j.AssetType.Label(),
				formatAmount(j.TotalDebit()),
				contactField(contact, domain.FieldName),
				j.Notes,
			})
		}
	}
	return report
}

func reportableJournals(ledger domain.LedgerRef, all []domain.Journal) []domain.Journal {
	out := make([]domain.Journal, 0, len(all))
	if ledger.IsTest {
		return out
	}
	for _, j := range all {
		if j.IsApproved() && !j.IsTest {
			out = append(out, j)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		da, db := out[a].JournalDate, out[b].JournalDate
		switch {
		case da == nil && db != nil:
			return false
		case da != nil && db == nil:
			return true
		case da != nil && db != nil && !da.Equal(*db):
			return da.Before(*db)
		}
		if !out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].CreatedAt.Before(out[b].CreatedAt)
		}
		return out[a].JournalID < out[b].JournalID
	})
	return out
}

func expenseRow(j domain.Journal, in ReportInput) ([]string, bool) {
	var amount int64
	var first *domain.JournalEntry
	for i, e := range j.Entries {
		if !domain.IsExpenseCode(e.AccountCode) || e.DebitAmount == 0 {
			continue
		}
		amount += e.DebitAmount
		if first == nil {
			first = &j.Entries[i]
		}
	}
	if first == nil {
		return nil, false
	}
	contact := contactView(j, in.Contacts)
	return []string{
		formatDate(j.JournalDate),
		j.Description,
		formatAmount(amount),
		contactField(contact, domain.FieldName),
		contactField(contact, domain.FieldAddress),
		in.Master.Name(first.AccountCode),
		subAccountName(first, in.SubAccounts),
		formatAmount(j.AmountPoliticalGrant),
		formatAmount(j.AmountPoliticalFund),
		formatAmount(j.AmountPublicSubsidy),
		formatFlag(j.IsReceiptHardToCollect),
		notesWithReason(j),
	}, true
}

func revenueRow(j domain.Journal, in ReportInput) ([]string, bool) {
	var amount int64
	var first *domain.JournalEntry
	for i, e := range j.Entries {
		if !domain.IsRevenueCode(e.AccountCode) || e.CreditAmount == 0 {
			continue
		}
		amount += e.CreditAmount
		if first == nil {
			first = &j.Entries[i]
		}
	}
	if first == nil {
		return nil, false
	}
	contact := contactView(j, in.Contacts)
	donorType := ""
	if contact != nil {
		donorType = contact.ContactType.Label()
	}
	return []string{
		formatDate(j.JournalDate),
		j.Description,
		formatAmount(amount),
		donorType,
		contactField(contact, domain.FieldName),
		contactField(contact, domain.FieldAddress),
		contactField(contact, domain.FieldOccupation),
		in.Master.Name(first.AccountCode),
		j.Notes,
	}, true
}

type summaryBucket struct {
	code   string
	count  int
	amount int64
}

func summaryRows(journals []domain.Journal, master *domain.AccountMaster) [][]string {
	buckets := map[string]*summaryBucket{}
	for _, j := range journals {
		for _, e := range j.Entries {
			b, ok := buckets[e.AccountCode]
			if !ok {
				b = &summaryBucket{code: e.AccountCode}
				buckets[e.AccountCode] = b
			}
			b.count++
			b.amount += e.Amount()
		}
	}
	ordered := make([]*summaryBucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(a, b int) bool {
		pa, pb := master.Position(ordered[a].code), master.Position(ordered[b].code)
		if pa != pb {
			return pa < pb
		}
		return ordered[a].code < ordered[b].code
	})

	rows := make([][]string, 0, len(ordered))
	for _, b := range ordered {
		category := ""
		if c, ok := master.Lookup(b.code); ok {
			category = c.ReportCategory
		}
		rows = append(rows, []string{
			b.code,
			master.Name(b.code),
			category,
			strconv.Itoa(b.count),
			formatAmount(b.amount),
		})
	}
	return rows
}

// contactView applies the same redaction policy the Hub payload uses.
func contactView(j domain.Journal, contacts map[string]domain.Contact) *domain.ContactView {
	if j.ContactID == nil {
		return nil
	}
	c, ok := contacts[*j.ContactID]
	if !ok {
		return nil
	}
	v := c.PublicView()
	return &v
}

func contactField(v *domain.ContactView, field string) string {
	if v == nil {
		return ""
	}
	if v.IsRedacted(field) {
		return domain.RedactedValue
	}
	switch field {
	case domain.FieldName:
		return v.Name
	case domain.FieldAddress:
		return v.Address
	case domain.FieldOccupation:
		return v.Occupation
	}
	return ""
}

func subAccountName(e *domain.JournalEntry, subs map[string]domain.SubAccount) string {
	if e.SubAccountID == nil {
		return ""
	}
	if s, ok := subs[*e.SubAccountID]; ok {
		return s.Name
	}
	return ""
}

func notesWithReason(j domain.Journal) string {
	if j.IsReceiptHardToCollect && j.ReceiptHardToCollectReason != "" {
		if j.Notes == "" {
			return j.ReceiptHardToCollectReason
		}
		return j.Notes + " / " + j.ReceiptHardToCollectReason
	}
	return j.Notes
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatAmount(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFlag(b bool) string {
	if b {
		return "○"
	}
	return ""
}
