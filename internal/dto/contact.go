package dto

import (
	"time"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
)

// ContactRequest is the body for creating or replacing a contact.
type ContactRequest struct {
	ContactType         string  `json:"contact_type" binding:"required,oneof=person corporation political_organization"`
	Name                string  `json:"name" binding:"required"`
	Address             *string `json:"address"`
	Occupation          *string `json:"occupation"`
	IsNamePrivate       bool    `json:"is_name_private"`
	IsAddressPrivate    bool    `json:"is_address_private"`
	IsOccupationPrivate bool    `json:"is_occupation_private"`
	PrivacyReasonType   *string `json:"privacy_reason_type" binding:"omitempty,oneof=personal_info other"`
	PrivacyReasonOther  string  `json:"privacy_reason_other"`
}

// ContactResponse is the owner's view of a contact, private fields included.
type ContactResponse struct {
	ID                  string    `json:"id"`
	ContactType         string    `json:"contact_type"`
	Name                string    `json:"name"`
	Address             *string   `json:"address"`
	Occupation          *string   `json:"occupation"`
	IsNamePrivate       bool      `json:"is_name_private"`
	IsAddressPrivate    bool      `json:"is_address_private"`
	IsOccupationPrivate bool      `json:"is_occupation_private"`
	PrivacyReasonType   *string   `json:"privacy_reason_type"`
	PrivacyReasonOther  string    `json:"privacy_reason_other,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ToContactResponse converts a domain.Contact.
func ToContactResponse(c *domain.Contact) ContactResponse {
	resp := ContactResponse{
		ID:                  c.ContactID,
		ContactType:         string(c.ContactType),
		Name:                c.Name,
		Address:             c.Address,
		Occupation:          c.Occupation,
		IsNamePrivate:       c.IsNamePrivate,
		IsAddressPrivate:    c.IsAddressPrivate,
		IsOccupationPrivate: c.IsOccupationPrivate,
		PrivacyReasonOther:  c.PrivacyReasonOther,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.LastUpdatedAt,
	}
	if c.PrivacyReasonType != nil {
		r := string(*c.PrivacyReasonType)
		resp.PrivacyReasonType = &r
	}
	return resp
}

// ToContactResponses converts a slice of contacts.
func ToContactResponses(contacts []domain.Contact) []ContactResponse {
	out := make([]ContactResponse, len(contacts))
	for i := range contacts {
		out[i] = ToContactResponse(&contacts[i])
	}
	return out
}
