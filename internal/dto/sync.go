package dto

import (
	"time"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
)

// SyncQuery are the query parameters of POST /sync.
type SyncQuery struct {
	Type     string `form:"type" validate:"omitempty,oneof=election organization"`
	LedgerID string `form:"ledger_id" validate:"omitempty,max=64"`
	Force    bool   `form:"force"`
}

// ToSyncFilter converts the query into a domain filter.
func (q SyncQuery) ToSyncFilter() domain.SyncFilter {
	return domain.SyncFilter{
		LedgerType: domain.LedgerType(q.Type),
		LedgerID:   q.LedgerID,
		Force:      q.Force,
	}
}

// ChangeLogQuery are the query parameters of GET /change-logs.
type ChangeLogQuery struct {
	LedgerSourceID string `form:"ledger_source_id" validate:"required"`
	Limit          int    `form:"limit" validate:"omitempty,min=1,max=200"`
}

// ChangeLogResponse is one change log entry.
type ChangeLogResponse struct {
	ID             string                  `json:"id"`
	LedgerSourceID string                  `json:"ledger_source_id"`
	Summary        string                  `json:"summary"`
	Details        domain.ChangeLogDetails `json:"details"`
	CreatedAt      time.Time               `json:"created_at"`
}

// ToChangeLogResponses converts change log entries.
func ToChangeLogResponses(entries []domain.ChangeLogEntry) []ChangeLogResponse {
	out := make([]ChangeLogResponse, len(entries))
	for i, e := range entries {
		out[i] = ChangeLogResponse{
			ID:             e.ChangeLogID,
			LedgerSourceID: e.LedgerSourceID,
			Summary:        e.Summary,
			Details:        e.Details,
			CreatedAt:      e.CreatedAt,
		}
	}
	return out
}

// ExportQuery are the query parameters of GET /export.
type ExportQuery struct {
	Type           string `form:"type" validate:"required,oneof=expense revenue summary assets"`
	OrganizationID string `form:"organization_id" validate:"required_without=ElectionID,excluded_with=ElectionID"`
	ElectionID     string `form:"election_id" validate:"required_without=OrganizationID"`
}

// Ledger returns the ledger the export targets.
func (q ExportQuery) Ledger() (domain.LedgerType, string) {
	if q.ElectionID != "" {
		return domain.LedgerElection, q.ElectionID
	}
	return domain.LedgerOrganization, q.OrganizationID
}
