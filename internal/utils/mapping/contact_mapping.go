package mapping

import (
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	"github.com/SscSPs/polifund_ledger/internal/models"
)

// ToModelContact converts a domain Contact to a model Contact
func ToModelContact(d domain.Contact) models.Contact {
	m := models.Contact{
		ContactID:           d.ContactID,
		OwnerUserID:         d.OwnerUserID,
		ContactType:         string(d.ContactType),
		Name:                d.Name,
		Address:             d.Address,
		Occupation:          d.Occupation,
		IsNamePrivate:       d.IsNamePrivate,
		IsAddressPrivate:    d.IsAddressPrivate,
		IsOccupationPrivate: d.IsOccupationPrivate,
		PrivacyReasonOther:  nilIfEmpty(d.PrivacyReasonOther),
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
	if d.PrivacyReasonType != nil {
		m.PrivacyReasonType = nilIfEmpty(string(*d.PrivacyReasonType))
	}
	return m
}

// ToDomainContact converts a model Contact to a domain Contact
func ToDomainContact(m models.Contact) domain.Contact {
	d := domain.Contact{
		ContactID:           m.ContactID,
		OwnerUserID:         m.OwnerUserID,
		ContactType:         domain.ContactType(m.ContactType),
		Name:                m.Name,
		Address:             m.Address,
		Occupation:          m.Occupation,
		IsNamePrivate:       m.IsNamePrivate,
		IsAddressPrivate:    m.IsAddressPrivate,
		IsOccupationPrivate: m.IsOccupationPrivate,
		PrivacyReasonOther:  derefString(m.PrivacyReasonOther),
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
	if m.PrivacyReasonType != nil {
		reason := domain.PrivacyReasonType(*m.PrivacyReasonType)
		d.PrivacyReasonType = &reason
	}
	return d
}

// ToModelSubAccount converts a domain SubAccount to a model SubAccount
func ToModelSubAccount(d domain.SubAccount) models.SubAccount {
	return models.SubAccount{
		SubAccountID: d.SubAccountID,
		OwnerUserID:  d.OwnerUserID,
		LedgerType:   string(d.LedgerType),
		AccountCode:  d.AccountCode,
		Name:         d.Name,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSubAccount converts a model SubAccount to a domain SubAccount
func ToDomainSubAccount(m models.SubAccount) domain.SubAccount {
	return domain.SubAccount{
		SubAccountID: m.SubAccountID,
		OwnerUserID:  m.OwnerUserID,
		LedgerType:   domain.SubAccountLedgerType(m.LedgerType),
		AccountCode:  m.AccountCode,
		Name:         m.Name,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
