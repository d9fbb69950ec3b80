package dto

import "github.com/SscSPs/polifund_ledger/internal/core/domain"

// CreateSubAccountRequest is the body of POST /sub-accounts.
type CreateSubAccountRequest struct {
	LedgerType  string `json:"ledger_type" binding:"required,oneof=political_organization election"`
	AccountCode string `json:"account_code" binding:"required"`
	Name        string `json:"name" binding:"required"`
}

// RenameSubAccountRequest is the body of PATCH /sub-accounts/{id}.
type RenameSubAccountRequest struct {
	Name string `json:"name" binding:"required"`
}

// SubAccountResponse describes a sub-account.
type SubAccountResponse struct {
	ID          string `json:"id"`
	LedgerType  string `json:"ledger_type"`
	AccountCode string `json:"account_code"`
	Name        string `json:"name"`
}

// ToSubAccountResponse converts a domain.SubAccount.
func ToSubAccountResponse(s *domain.SubAccount) SubAccountResponse {
	return SubAccountResponse{
		ID:          s.SubAccountID,
		LedgerType:  string(s.LedgerType),
		AccountCode: s.AccountCode,
		Name:        s.Name,
	}
}

// ToSubAccountResponses converts a slice of sub-accounts.
func ToSubAccountResponses(subs []domain.SubAccount) []SubAccountResponse {
	out := make([]SubAccountResponse, len(subs))
	for i := range subs {
		out[i] = ToSubAccountResponse(&subs[i])
	}
	return out
}
