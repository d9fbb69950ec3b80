package domain

import (
	"strings"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
)

// ContactType classifies the counterparty of a journal.
type ContactType string

const (
	ContactPerson                ContactType = "person"
	ContactCorporation           ContactType = "corporation"
	ContactPoliticalOrganization ContactType = "political_organization"
)

// Label is the Japanese donor/payee type used in compliance exports.
func (t ContactType) Label() string {
	switch t {
	case ContactPerson:
		return "個人"
	case ContactCorporation:
		return "法人その他の団体"
	case ContactPoliticalOrganization:
		return "政治団体"
	}
	return string(t)
}

// PrivacyReasonType explains why a contact field is withheld from disclosure.
type PrivacyReasonType string

const (
	PrivacyPersonalInfo PrivacyReasonType = "personal_info"
	PrivacyOther        PrivacyReasonType = "other"
)

// Contact is a counterparty owned by one actor.
type Contact struct {
	ContactID           string             `json:"contactID"`
	OwnerUserID         string             `json:"ownerUserID"`
	ContactType         ContactType        `json:"contactType"`
	Name                string             `json:"name"`
	Address             *string            `json:"address"`
	Occupation          *string            `json:"occupation"`
	IsNamePrivate       bool               `json:"isNamePrivate"`
	IsAddressPrivate    bool               `json:"isAddressPrivate"`
	IsOccupationPrivate bool               `json:"isOccupationPrivate"`
	PrivacyReasonType   *PrivacyReasonType `json:"privacyReasonType"`
	PrivacyReasonOther  string             `json:"privacyReasonOther"`
	AuditFields
}

// HasPrivateFields reports whether any disclosure field is withheld.
func (c Contact) HasPrivateFields() bool {
	return c.IsNamePrivate || c.IsAddressPrivate || c.IsOccupationPrivate
}

// Validate checks the contact aggregate, including the privacy-reason rule.
func (c Contact) Validate() error {
	switch c.ContactType {
	case ContactPerson, ContactCorporation, ContactPoliticalOrganization:
	default:
		return apperrors.NewValidationError("contact_type must be one of person, corporation, political_organization")
	}
	if strings.TrimSpace(c.Name) == "" {
		return apperrors.NewValidationError("contact name is required")
	}
	if c.PrivacyReasonType != nil {
		switch *c.PrivacyReasonType {
		case PrivacyPersonalInfo, PrivacyOther:
		default:
			return apperrors.NewValidationError("privacy_reason_type must be personal_info or other")
		}
	}
	if c.HasPrivateFields() && c.PrivacyReasonType == nil {
		return apperrors.NewValidationError("privacy_reason_type is required when a contact field is private")
	}
	if c.PrivacyReasonType != nil && *c.PrivacyReasonType == PrivacyOther && strings.TrimSpace(c.PrivacyReasonOther) == "" {
		return apperrors.NewValidationError("privacy_reason_other is required when privacy_reason_type is other")
	}
	return nil
}

// Contact fields that can be withheld.
const (
	FieldName       = "name"
	FieldAddress    = "address"
	FieldOccupation = "occupation"
)

// ContactView is the disclosure-safe projection of a Contact. Every outbound
// view (Hub payload, CSV export) is built from it, so a private field never
// leaves the core. Redacted lists the withheld fields in a fixed order.
type ContactView struct {
	ContactType ContactType
	Name        string
	Address     string
	Occupation  string
	Redacted    []string
}

// PublicView applies the privacy flags.
func (c Contact) PublicView() ContactView {
	v := ContactView{ContactType: c.ContactType}
	if c.IsNamePrivate {
		v.Redacted = append(v.Redacted, FieldName)
	} else {
		v.Name = c.Name
	}
	if c.IsAddressPrivate {
		v.Redacted = append(v.Redacted, FieldAddress)
	} else if c.Address != nil {
		v.Address = *c.Address
	}
	if c.IsOccupationPrivate {
		v.Redacted = append(v.Redacted, FieldOccupation)
	} else if c.Occupation != nil {
		v.Occupation = *c.Occupation
	}
	return v
}

// IsRedacted reports whether field was withheld.
func (v ContactView) IsRedacted(field string) bool {
	for _, f := range v.Redacted {
		if f == field {
			return true
		}
	}
	return false
}
