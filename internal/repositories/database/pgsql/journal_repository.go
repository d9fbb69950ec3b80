package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/polifund_ledger/internal/models"
	"github.com/SscSPs/polifund_ledger/internal/utils/mapping"
	"github.com/SscSPs/polifund_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const journalColumns = `journal_id, organization_id, election_id, journal_date, description, contact_id,
	status, is_asset_acquisition, asset_type, is_receipt_hard_to_collect, receipt_hard_to_collect_reason,
	amount_political_grant, amount_political_fund, amount_public_subsidy, notes, is_test,
	submitted_by_user_id, approved_by_user_id, approved_at,
	created_at, created_by, last_updated_at, last_updated_by`

const entryColumns = `entry_id, journal_id, line_no, account_code, sub_account_id, debit_amount, credit_amount`

// PgxJournalRepository implements the journal repository interfaces using pgx.
type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// ledgerColumn returns the journals column that references the ledger type.
func ledgerColumn(t domain.LedgerType) string {
	if t == domain.LedgerElection {
		return "election_id"
	}
	return "organization_id"
}

// SaveJournal saves a journal header and its entries within a single transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournal(journal)
	insertSQL := `INSERT INTO journals (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);`
	_, err = tx.Exec(ctx, insertSQL,
		m.JournalID, m.OrganizationID, m.ElectionID, m.JournalDate, m.Description, m.ContactID,
		m.Status, m.IsAssetAcquisition, m.AssetType, m.IsReceiptHardToCollect, m.ReceiptHardToCollectReason,
		m.AmountPoliticalGrant, m.AmountPoliticalFund, m.AmountPublicSubsidy, m.Notes, m.IsTest,
		m.SubmittedByUserID, m.ApprovedByUserID, m.ApprovedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewPersistenceError(fmt.Sprintf("failed to insert journal %s", journal.JournalID), err)
	}

	if err := r.insertEntries(ctx, tx, journal.Entries); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// ReplaceDraftJournal overwrites the header and entries of a draft journal.
// The header update only matches drafts so a concurrent approval wins.
func (r *PgxJournalRepository) ReplaceDraftJournal(ctx context.Context, journal domain.Journal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournal(journal)
	updateSQL := `UPDATE journals SET
			organization_id = $2, election_id = $3, journal_date = $4, description = $5, contact_id = $6,
			is_asset_acquisition = $7, asset_type = $8, is_receipt_hard_to_collect = $9,
			receipt_hard_to_collect_reason = $10, amount_political_grant = $11, amount_political_fund = $12,
			amount_public_subsidy = $13, notes = $14, is_test = $15,
			last_updated_at = $16, last_updated_by = $17
		WHERE journal_id = $1 AND status = 'draft';`
	cmdTag, err := tx.Exec(ctx, updateSQL,
		m.JournalID, m.OrganizationID, m.ElectionID, m.JournalDate, m.Description, m.ContactID,
		m.IsAssetAcquisition, m.AssetType, m.IsReceiptHardToCollect,
		m.ReceiptHardToCollectReason, m.AmountPoliticalGrant, m.AmountPoliticalFund,
		m.AmountPublicSubsidy, m.Notes, m.IsTest,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewPersistenceError(fmt.Sprintf("failed to update journal %s", journal.JournalID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.missingOrApproved(ctx, tx, journal.JournalID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE journal_id = $1;`, journal.JournalID); err != nil {
		return apperrors.NewPersistenceError(fmt.Sprintf("failed to clear entries of journal %s", journal.JournalID), err)
	}
	if err := r.insertEntries(ctx, tx, journal.Entries); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// ApproveJournal performs the draft to approved transition as a single
// conditional update. Exactly one concurrent caller observes true.
func (r *PgxJournalRepository) ApproveJournal(ctx context.Context, journalID string, approvedBy string, approvedAt time.Time) (bool, error) {
	query := `UPDATE journals
		SET status = 'approved', approved_by_user_id = $2, approved_at = $3,
			last_updated_at = $3, last_updated_by = $2
		WHERE journal_id = $1 AND status = 'draft';`
	cmdTag, err := r.Pool.Exec(ctx, query, journalID, approvedBy, approvedAt)
	if err != nil {
		return false, apperrors.NewPersistenceError(fmt.Sprintf("failed to approve journal %s", journalID), err)
	}
	if cmdTag.RowsAffected() == 1 {
		return true, nil
	}

	var status string
	err = r.Pool.QueryRow(ctx, `SELECT status FROM journals WHERE journal_id = $1;`, journalID).Scan(&status)
	if err != nil {
		return false, notFoundOr(err, fmt.Sprintf("journal %s not found", journalID), "check journal status")
	}
	return false, nil
}

// DeleteDraftJournal removes a draft journal. Entries go with it through the
// ON DELETE CASCADE foreign key.
func (r *PgxJournalRepository) DeleteDraftJournal(ctx context.Context, journalID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `DELETE FROM journals WHERE journal_id = $1 AND status = 'draft';`, journalID)
	if err != nil {
		return apperrors.NewPersistenceError(fmt.Sprintf("failed to delete journal %s", journalID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.missingOrApproved(ctx, tx, journalID)
	}
	return r.Commit(ctx, tx)
}

// FindJournalByID retrieves a journal with its entries.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+journalColumns+` FROM journals WHERE journal_id = $1;`, journalID)
	if err != nil {
		return nil, queryError("query journal", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Journal])
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("journal %s not found", journalID), "scan journal")
	}

	journals, err := r.withEntries(ctx, []models.Journal{m})
	if err != nil {
		return nil, err
	}
	return &journals[0], nil
}

// ListJournalsByLedger retrieves a page of journals for a ledger, newest first.
// The next token encodes the (created_at, journal_id) of the last row returned.
func (r *PgxJournalRepository) ListJournalsByLedger(ctx context.Context, ledger domain.LedgerRef, limit int, nextToken *string) ([]domain.Journal, *string, error) {
	args := []interface{}{ledger.ID}
	query := `SELECT ` + journalColumns + ` FROM journals WHERE ` + ledgerColumn(ledger.Type) + ` = $1`

	if nextToken != nil && *nextToken != "" {
		createdAt, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError(fmt.Sprintf("invalid next_token: %v", err))
		}
		query += ` AND (created_at, journal_id) < ($2, $3)`
		args = append(args, createdAt, lastID)
	}

	// Fetch one extra row to know whether another page exists
	query += fmt.Sprintf(` ORDER BY created_at DESC, journal_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, queryError("list journals", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Journal])
	if err != nil {
		return nil, nil, queryError("scan journals", err)
	}

	var newNextToken *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.JournalID)
		newNextToken = &token
	}

	journals, err := r.withEntries(ctx, ms)
	if err != nil {
		return nil, nil, err
	}
	return journals, newNextToken, nil
}

// ListApprovedJournalsByLedger retrieves every approved journal of a ledger in
// a stable order, entries included.
func (r *PgxJournalRepository) ListApprovedJournalsByLedger(ctx context.Context, ledger domain.LedgerRef) ([]domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals
		WHERE ` + ledgerColumn(ledger.Type) + ` = $1 AND status = 'approved'
		ORDER BY journal_date ASC NULLS LAST, created_at ASC, journal_id ASC;`
	rows, err := r.Pool.Query(ctx, query, ledger.ID)
	if err != nil {
		return nil, queryError("list approved journals", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Journal])
	if err != nil {
		return nil, queryError("scan approved journals", err)
	}
	return r.withEntries(ctx, ms)
}

// CountJournalsByContact counts journals that reference a contact.
func (r *PgxJournalRepository) CountJournalsByContact(ctx context.Context, contactID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM journals WHERE contact_id = $1;`, contactID).Scan(&count)
	if err != nil {
		return 0, queryError("count journals by contact", err)
	}
	return count, nil
}

// insertEntries queues one insert per entry and sends them as a single batch.
func (r *PgxJournalRepository) insertEntries(ctx context.Context, tx pgx.Tx, entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	entrySQL := `INSERT INTO journal_entries (` + entryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	for _, entry := range entries {
		m := mapping.ToModelJournalEntry(entry)
		batch.Queue(entrySQL, m.EntryID, m.JournalID, m.LineNo, m.AccountCode, m.SubAccountID, m.DebitAmount, m.CreditAmount)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewPersistenceError("failed to insert journal entries", err)
	}
	return nil
}

// missingOrApproved explains why a draft-only statement matched no row.
func (r *PgxJournalRepository) missingOrApproved(ctx context.Context, tx pgx.Tx, journalID string) error {
	var status string
	err := tx.QueryRow(ctx, `SELECT status FROM journals WHERE journal_id = $1;`, journalID).Scan(&status)
	if err != nil {
		return notFoundOr(err, fmt.Sprintf("journal %s not found", journalID), "check journal status")
	}
	return apperrors.NewConflictError(fmt.Sprintf("journal %s is already approved and cannot be modified", journalID))
}

// withEntries loads the entries of the given journals in one query and maps
// everything to domain journals, preserving the input order.
func (r *PgxJournalRepository) withEntries(ctx context.Context, ms []models.Journal) ([]domain.Journal, error) {
	journals := make([]domain.Journal, 0, len(ms))
	if len(ms) == 0 {
		return journals, nil
	}

	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.JournalID
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+entryColumns+` FROM journal_entries
		WHERE journal_id = ANY($1) ORDER BY journal_id, line_no;`, ids)
	if err != nil {
		return nil, queryError("query journal entries", err)
	}
	entryModels, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, queryError("scan journal entries", err)
	}

	byJournal := make(map[string][]domain.JournalEntry, len(ms))
	for _, em := range entryModels {
		byJournal[em.JournalID] = append(byJournal[em.JournalID], mapping.ToDomainJournalEntry(em))
	}
	for _, m := range ms {
		j := mapping.ToDomainJournal(m)
		j.Entries = byJournal[m.JournalID]
		journals = append(journals, j)
	}
	return journals, nil
}
