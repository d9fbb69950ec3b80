package dto

import "github.com/SscSPs/polifund_ledger/internal/core/domain"

// AccountCodeResponse is one row of the account master.
type AccountCodeResponse struct {
	Code                 string   `json:"code"`
	Name                 string   `json:"name"`
	Type                 string   `json:"type"`
	ReportCategory       string   `json:"report_category"`
	AvailableLedgerTypes []string `json:"available_ledger_types"`
}

// ToAccountCodeResponses converts account master rows.
func ToAccountCodeResponses(codes []domain.AccountCode) []AccountCodeResponse {
	out := make([]AccountCodeResponse, len(codes))
	for i, c := range codes {
		types := make([]string, len(c.AvailableLedgerTypes))
		for j, lt := range c.AvailableLedgerTypes {
			types[j] = string(lt)
		}
		out[i] = AccountCodeResponse{
			Code:                 c.Code,
			Name:                 c.Name,
			Type:                 string(c.Type),
			ReportCategory:       c.ReportCategory,
			AvailableLedgerTypes: types,
		}
	}
	return out
}
