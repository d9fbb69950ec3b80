package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/polifund_ledger/internal/models"
	"github.com/SscSPs/polifund_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const contactColumns = `contact_id, owner_user_id, contact_type, name, address, occupation,
	is_name_private, is_address_private, is_occupation_private, privacy_reason_type, privacy_reason_other,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxContactRepository implements portsrepo.ContactRepositoryFacade using pgx.
type PgxContactRepository struct {
	BaseRepository
}

func newPgxContactRepository(pool *pgxpool.Pool) portsrepo.ContactRepositoryFacade {
	return &PgxContactRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContactRepositoryFacade = (*PgxContactRepository)(nil)

func (r *PgxContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	m := mapping.ToModelContact(contact)
	query := `INSERT INTO contacts (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`
	_, err := r.Pool.Exec(ctx, query,
		m.ContactID, m.OwnerUserID, m.ContactType, m.Name, m.Address, m.Occupation,
		m.IsNamePrivate, m.IsAddressPrivate, m.IsOccupationPrivate, m.PrivacyReasonType, m.PrivacyReasonOther,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewPersistenceError(fmt.Sprintf("failed to insert contact %s", contact.ContactID), err)
	}
	return nil
}

func (r *PgxContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) error {
	m := mapping.ToModelContact(contact)
	query := `UPDATE contacts SET
			contact_type = $2, name = $3, address = $4, occupation = $5,
			is_name_private = $6, is_address_private = $7, is_occupation_private = $8,
			privacy_reason_type = $9, privacy_reason_other = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE contact_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ContactID, m.ContactType, m.Name, m.Address, m.Occupation,
		m.IsNamePrivate, m.IsAddressPrivate, m.IsOccupationPrivate,
		m.PrivacyReasonType, m.PrivacyReasonOther,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewPersistenceError(fmt.Sprintf("failed to update contact %s", contact.ContactID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("contact %s not found", contact.ContactID))
	}
	return nil
}

func (r *PgxContactRepository) DeleteContact(ctx context.Context, contactID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM contacts WHERE contact_id = $1;`, contactID)
	if err != nil {
		return apperrors.NewPersistenceError(fmt.Sprintf("failed to delete contact %s", contactID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("contact %s not found", contactID))
	}
	return nil
}

func (r *PgxContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+contactColumns+` FROM contacts WHERE contact_id = $1;`, contactID)
	if err != nil {
		return nil, queryError("query contact", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Contact])
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("contact %s not found", contactID), "scan contact")
	}
	contact := mapping.ToDomainContact(m)
	return &contact, nil
}

func (r *PgxContactRepository) FindContactsByIDs(ctx context.Context, contactIDs []string) (map[string]domain.Contact, error) {
	found := make(map[string]domain.Contact, len(contactIDs))
	if len(contactIDs) == 0 {
		return found, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+contactColumns+` FROM contacts WHERE contact_id = ANY($1);`, contactIDs)
	if err != nil {
		return nil, queryError("query contacts", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Contact])
	if err != nil {
		return nil, queryError("scan contacts", err)
	}
	for _, m := range ms {
		found[m.ContactID] = mapping.ToDomainContact(m)
	}
	return found, nil
}

func (r *PgxContactRepository) ListContactsByOwner(ctx context.Context, ownerUserID string) ([]domain.Contact, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+contactColumns+` FROM contacts
		WHERE owner_user_id = $1 ORDER BY name ASC, contact_id ASC;`, ownerUserID)
	if err != nil {
		return nil, queryError("list contacts", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Contact])
	if err != nil {
		return nil, queryError("scan contacts", err)
	}
	contacts := make([]domain.Contact, 0, len(ms))
	for _, m := range ms {
		contacts = append(contacts, mapping.ToDomainContact(m))
	}
	return contacts, nil
}
